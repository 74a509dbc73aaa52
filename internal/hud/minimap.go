package hud

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/trvswgnr/poke3d/internal/level"
	"github.com/trvswgnr/poke3d/internal/pixel"
)

var (
	colorWall   = pixel.Pack(50, 50, 50)
	colorPillar = pixel.Pack(140, 140, 140)
	colorOpen   = pixel.Pack(200, 200, 200)
	colorPlayer = pixel.Pack(0, 255, 255)
)

// MinimapScale is the side of one map cell on the minimap, in pixels.
// The minimap takes at most a fifth of the frame width.
func MinimapScale(frameWidth int, g *level.Grid) int {
	if g.Width() == 0 {
		return 0
	}
	s := frameWidth / 5 / g.Width()
	if s < 2 {
		s = 2
	}
	return s
}

// MinimapRect is where the minimap sits on the frame: the top-right corner.
func MinimapRect(frameWidth int, g *level.Grid) image.Rectangle {
	s := MinimapScale(frameWidth, g)
	w, h := g.Width()*s, g.Height()*s
	x := frameWidth - w - margin
	return image.Rect(x, margin, x+w, margin+h)
}

func (o *Overlay) drawMinimap(dst *pixel.Frame, st State) {
	img := dst.Image()
	g := st.Grid
	s := MinimapScale(dst.Width(), g)
	r := MinimapRect(dst.Width(), g)

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			c := colorOpen
			switch {
			case g.IsIsolatedWall(col, row):
				c = colorPillar
			case g.IsSolid(col, row):
				c = colorWall
			}
			cell := image.Rect(0, 0, s, s).Add(r.Min.Add(image.Pt(col*s, row*s)))
			draw.Draw(img, cell, image.NewUniform(toColor(c)), image.Point{}, draw.Src)
		}
	}

	if st.Player == nil {
		return
	}
	px := float64(r.Min.X) + st.Player.Pos.X*float64(s)
	py := float64(r.Min.Y) + st.Player.Pos.Y*float64(s)
	size := float64(s) * 1.5
	angle := math.Atan2(st.Player.Dir.Y, st.Player.Dir.X)

	b := img.Bounds()
	if o.raster == nil {
		o.raster = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		o.raster.Reset(b.Dx(), b.Dy())
	}
	z := o.raster
	z.DrawOp = draw.Over
	z.MoveTo(float32(px+size*math.Cos(angle)), float32(py+size*math.Sin(angle)))
	z.LineTo(float32(px+size*math.Cos(angle+2.5)), float32(py+size*math.Sin(angle+2.5)))
	z.LineTo(float32(px+size*math.Cos(angle-2.5)), float32(py+size*math.Sin(angle-2.5)))
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(toColor(colorPlayer)), image.Point{})
}

func toColor(c pixel.RGB) color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}
