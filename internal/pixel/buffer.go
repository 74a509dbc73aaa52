package pixel

// Order describes how the colour channels of one pixel are laid out in memory.
type Order int

const (
	// OrderRGBA is the image.RGBA layout: R, G, B, then optional alpha.
	OrderRGBA Order = iota
	// OrderBGRA is the little-endian 0x00RRGGBB word layout used by most X11 images.
	OrderBGRA
)

// offset returns the byte offset of (x, y), or -1 when the pixel lies outside
// a width-pixel row or past the end of buf. Row padding is never addressable.
func offset(buf []byte, width, stride, bpp, x, y int) int {
	if bpp < 3 || width <= 0 || width*bpp > stride || x < 0 || y < 0 || x >= width {
		return -1
	}
	off := y*stride + x*bpp
	if off+bpp > len(buf) {
		return -1
	}
	return off
}

// Get reads the pixel at (x, y) from buf, whose rows hold width pixels of bpp
// bytes every stride bytes. The second result is false if the coordinate lies
// outside the image.
func Get(buf []byte, width, stride, bpp int, order Order, x, y int) (RGB, bool) {
	off := offset(buf, width, stride, bpp, x, y)
	if off < 0 {
		return 0, false
	}
	p := buf[off : off+3]
	if order == OrderBGRA {
		return RGB(uint32(p[2])<<16 | uint32(p[1])<<8 | uint32(p[0])), true
	}
	return RGB(uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])), true
}

// Put writes c at (x, y) in buf. A fourth byte, if present, is set opaque.
// Writes outside the buffer are dropped and reported as false.
func Put(buf []byte, width, stride, bpp int, order Order, x, y int, c RGB) bool {
	off := offset(buf, width, stride, bpp, x, y)
	if off < 0 {
		return false
	}
	p := buf[off : off+bpp]
	if order == OrderBGRA {
		p[0], p[1], p[2] = c.B(), c.G(), c.R()
	} else {
		p[0], p[1], p[2] = c.R(), c.G(), c.B()
	}
	if bpp >= 4 {
		p[3] = 0xFF
	}
	return true
}
