package pixel

import "image"

// Surface is the write side of a framebuffer.
// SetPixel must ignore coordinates outside Width x Height.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGB)
}

// Frame is a Surface backed by an *image.RGBA so hosts can present it directly.
type Frame struct {
	img *image.RGBA
}

func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	f.Fill(0)
	return f
}

func (f *Frame) Width() int  { return f.img.Rect.Dx() }
func (f *Frame) Height() int { return f.img.Rect.Dy() }

func (f *Frame) SetPixel(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= f.Width() || y >= f.Height() {
		return
	}
	Put(f.img.Pix, f.Width(), f.img.Stride, 4, OrderRGBA, x, y, c)
}

// At returns the colour at (x, y), or black outside the frame.
func (f *Frame) At(x, y int) RGB {
	c, _ := Get(f.img.Pix, f.Width(), f.img.Stride, 4, OrderRGBA, x, y)
	return c
}

func (f *Frame) Fill(c RGB) {
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			Put(f.img.Pix, f.Width(), f.img.Stride, 4, OrderRGBA, x, y, c)
		}
	}
}

// Image exposes the backing image for presentation and overlays.
func (f *Frame) Image() *image.RGBA { return f.img }

// Pix returns the raw RGBA bytes, row-major with no padding.
func (f *Frame) Pix() []byte { return f.img.Pix }
