package pixel

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a packed 24-bit colour laid out as 0xRRGGBB.
type RGB uint32

// Pack builds an RGB from three channels, clamping each to [0, 255].
func Pack(r, g, b int) RGB {
	return RGB(clampChannel(r)<<16 | clampChannel(g)<<8 | clampChannel(b))
}

func clampChannel(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// Halve darkens all three channels by one bit.
func (c RGB) Halve() RGB {
	return (c >> 1) & 0x7F7F7F
}

// Scale multiplies each channel by f, clamped to the valid channel range.
func (c RGB) Scale(f float64) RGB {
	if f >= 1 {
		return c & 0xFFFFFF
	}
	if f <= 0 {
		return 0
	}
	return Pack(
		int(float64(c.R())*f),
		int(float64(c.G())*f),
		int(float64(c.B())*f),
	)
}

func (c RGB) String() string {
	return fmt.Sprintf("#%06x", uint32(c&0xFFFFFF))
}

// ParseHex accepts "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "#")
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	if len(raw) != 6 {
		return 0, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGB(v), nil
}
