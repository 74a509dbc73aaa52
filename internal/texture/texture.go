// Package texture holds decoded pixel buffers and the addressing rules used
// to sample them: horizontal wrap, vertical clamp.
package texture

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/trvswgnr/poke3d/internal/pixel"
)

// Texture is an immutable decoded image.
type Texture struct {
	name          string
	width, height int
	stride, bpp   int
	order         pixel.Order
	pix           []byte
}

// New wraps an existing pixel buffer. The buffer must hold height rows of
// stride bytes, each with at least width pixels of bpp bytes.
func New(name string, width, height, stride, bpp int, order pixel.Order, pix []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture %s: empty %dx%d image", name, width, height)
	}
	if bpp < 3 || stride < width*bpp {
		return nil, fmt.Errorf("texture %s: stride %d too small for %d pixels of %d bytes", name, stride, width, bpp)
	}
	if len(pix) < stride*(height-1)+width*bpp {
		return nil, fmt.Errorf("texture %s: %d bytes for %dx%d image", name, len(pix), width, height)
	}
	return &Texture{
		name:   name,
		width:  width,
		height: height,
		stride: stride,
		bpp:    bpp,
		order:  order,
		pix:    pix,
	}, nil
}

// FromImage copies any image into an RGBA-backed texture.
func FromImage(name string, img image.Image) (*Texture, error) {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	}
	return New(name, b.Dx(), b.Dy(), rgba.Stride, 4, pixel.OrderRGBA, rgba.Pix)
}

func (t *Texture) Name() string { return t.name }
func (t *Texture) Width() int   { return t.width }
func (t *Texture) Height() int  { return t.height }

// At samples texel (u, v). u wraps modulo the width so textures tile;
// v is clamped to the first or last row.
func (t *Texture) At(u, v int) pixel.RGB {
	u %= t.width
	if u < 0 {
		u += t.width
	}
	if v < 0 {
		v = 0
	} else if v >= t.height {
		v = t.height - 1
	}
	c, _ := pixel.Get(t.pix, t.width, t.stride, t.bpp, t.order, u, v)
	return c
}

// Sample is At with a nil check; a missing texture samples as black.
func Sample(t *Texture, u, v int) pixel.RGB {
	if t == nil {
		return 0
	}
	return t.At(u, v)
}
