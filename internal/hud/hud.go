// Package hud draws the text readout and minimap over a composed frame.
package hud

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"

	"github.com/trvswgnr/poke3d/internal/level"
	"github.com/trvswgnr/poke3d/internal/pixel"
	"github.com/trvswgnr/poke3d/internal/player"
)

const (
	margin          = 10
	defaultFontSize = 12
)

type Options struct {
	Text     bool
	Minimap  bool
	FontSize float64
}

// State is the per-frame data the overlay reports.
type State struct {
	Grid   *level.Grid
	Player *player.Player
	Tick   uint64
	TPS    float64
}

type Overlay struct {
	opts   Options
	font   *truetype.Font
	raster *vector.Rasterizer
}

func New(opts Options) (*Overlay, error) {
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	return &Overlay{opts: opts, font: f}, nil
}

func (o *Overlay) Draw(dst *pixel.Frame, st State) error {
	if o.opts.Minimap && st.Grid != nil {
		o.drawMinimap(dst, st)
	}
	if o.opts.Text {
		if err := o.drawText(dst, Lines(st)); err != nil {
			return err
		}
	}
	return nil
}

// Lines is the text readout for st.
func Lines(st State) []string {
	lines := make([]string, 0, 3)
	if st.Player != nil {
		lines = append(lines,
			fmt.Sprintf("pos %.2f, %.2f", st.Player.Pos.X, st.Player.Pos.Y),
			fmt.Sprintf("heading %.0f", st.Player.Angle()),
		)
	}
	lines = append(lines, fmt.Sprintf("tps %.1f  tick %d", st.TPS, st.Tick))
	return lines
}

func (o *Overlay) drawText(dst *pixel.Frame, lines []string) error {
	img := dst.Image()

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(o.font)
	c.SetFontSize(o.opts.FontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.White)
	c.SetHinting(font.HintingFull)

	lineHeight := int(o.opts.FontSize * 1.4)
	y := margin + int(o.opts.FontSize)
	for _, line := range lines {
		if _, err := c.DrawString(line, freetype.Pt(margin, y)); err != nil {
			return fmt.Errorf("draw hud text: %w", err)
		}
		y += lineHeight
	}
	return nil
}
