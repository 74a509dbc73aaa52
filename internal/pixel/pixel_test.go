package pixel

import "testing"

func TestPack(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    RGB
	}{
		{"Black", 0, 0, 0, 0x000000},
		{"Sky", 120, 180, 255, 0x78b4ff},
		{"Clamped high", 300, 256, 999, 0xffffff},
		{"Clamped low", -1, -50, 10, 0x00000a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Pack(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHalveAndScale(t *testing.T) {
	c := Pack(200, 100, 51)
	if got := c.Halve(); got != Pack(100, 50, 25) {
		t.Errorf("Halve() = %v", got)
	}
	if got := c.Scale(0.5); got != Pack(100, 50, 25) {
		t.Errorf("Scale(0.5) = %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Scale(2) = %v, want unchanged", got)
	}
	if got := c.Scale(-1); got != 0 {
		t.Errorf("Scale(-1) = %v, want black", got)
	}
}

func TestParseHex(t *testing.T) {
	for _, s := range []string{"#3c783c", "3c783c", "0x3c783c", " #3C783C "} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", s, err)
		}
		if c != Pack(60, 120, 60) {
			t.Errorf("ParseHex(%q) = %v", s, c)
		}
	}
	for _, s := range []string{"", "#fff", "#gggggg"} {
		if _, err := ParseHex(s); err == nil {
			t.Errorf("ParseHex(%q) expected error", s)
		}
	}
}

func TestBufferAccessors(t *testing.T) {
	const w, h, bpp = 3, 2, 4
	stride := w*bpp + 4 // padded rows
	buf := make([]byte, stride*h)

	tests := []struct {
		name  string
		order Order
	}{
		{"RGBA", OrderRGBA},
		{"BGRA", OrderBGRA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Pack(1, 2, 3)
			if !Put(buf, w, stride, bpp, tt.order, 2, 1, c) {
				t.Fatal("Put in bounds reported false")
			}
			got, ok := Get(buf, w, stride, bpp, tt.order, 2, 1)
			if !ok || got != c {
				t.Errorf("Get = %v, %v; want %v", got, ok, c)
			}
		})
	}

	if _, ok := Get(buf, w, stride, bpp, OrderRGBA, 3, 0); ok {
		t.Error("Get past row end should fail")
	}
	if _, ok := Get(buf, w, stride, bpp, OrderRGBA, 0, 2); ok {
		t.Error("Get past last row should fail")
	}
	if Put(buf, w, stride, bpp, OrderRGBA, -1, 0, 0) {
		t.Error("Put at negative x should fail")
	}
}

func TestBufferPaddingIsNotAddressable(t *testing.T) {
	const w, h, bpp = 3, 2, 4
	stride := w*bpp + 4
	buf := make([]byte, stride*h)

	for y := 0; y < h; y++ {
		if Put(buf, w, stride, bpp, OrderRGBA, w, y, 0xabcdef) {
			t.Errorf("Put into the padding of row %d reported true", y)
		}
		if c, ok := Get(buf, w, stride, bpp, OrderRGBA, w, y); ok {
			t.Errorf("Get from the padding of row %d = %v, true", y, c)
		}
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d written: %d", i, b)
		}
	}

	if Put(buf, 5, stride, bpp, OrderRGBA, 0, 0, 0xabcdef) {
		t.Error("a width wider than the stride should be rejected")
	}
}

func TestFrameSetPixelIgnoresOutOfBounds(t *testing.T) {
	f := NewFrame(4, 3)
	f.SetPixel(1, 2, 0x123456)
	f.SetPixel(-1, 0, 0xffffff)
	f.SetPixel(4, 0, 0xffffff)
	f.SetPixel(0, 3, 0xffffff)

	if got := f.At(1, 2); got != 0x123456 {
		t.Errorf("At(1,2) = %v", got)
	}
	if a := f.Pix()[(2*f.Image().Stride)+1*4+3]; a != 0xFF {
		t.Errorf("alpha = %d, want opaque", a)
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if (x != 1 || y != 2) && f.At(x, y) != 0 {
				t.Errorf("pixel (%d,%d) was written", x, y)
			}
		}
	}
}
