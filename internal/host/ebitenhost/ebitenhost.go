// Package ebitenhost runs a session in an ebiten window.
package ebitenhost

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/poke3d/internal/host"
	"github.com/trvswgnr/poke3d/internal/player"
	"github.com/trvswgnr/poke3d/internal/session"
)

const (
	Name  = "ebiten"
	title = "poke3d"
)

func init() {
	host.Register(Name, func(log logrus.FieldLogger) host.Host { return New(log) })
}

type Host struct {
	log logrus.FieldLogger
	// WindowScale multiplies the frame size for the initial window size.
	WindowScale int
}

func New(log logrus.FieldLogger) *Host {
	return &Host{log: log, WindowScale: 1}
}

func (h *Host) Run(ctx context.Context, s *session.Session) error {
	cfg := s.Config()
	scale := h.WindowScale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(cfg.Screen.Width*scale, cfg.Screen.Height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Screen.TPS)

	h.log.WithFields(logrus.Fields{
		"width":  cfg.Screen.Width,
		"height": cfg.Screen.Height,
		"tps":    cfg.Screen.TPS,
	}).Info("ebiten host started")

	g := newGame(ctx, s, ebiten.IsKeyPressed)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ebiten game: %w", err)
	}
	return nil
}

// game adapts a session to ebiten.Game.
type game struct {
	ctx     context.Context
	s       *session.Session
	pressed func(ebiten.Key) bool
	scene   *ebiten.Image
}

func newGame(ctx context.Context, s *session.Session, pressed func(ebiten.Key) bool) *game {
	return &game{ctx: ctx, s: s, pressed: pressed}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.s.Tick(g.ctx, readInput(g.pressed))
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.s.Frame()
	if f == nil {
		return
	}
	if g.scene == nil {
		g.scene = ebiten.NewImage(f.Width(), f.Height())
	}
	g.scene.WritePixels(f.Pix())
	screen.DrawImage(g.scene, nil)
}

// Layout keeps the logical screen at the frame size; ebiten scales it
// to the window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.s.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}

func readInput(pressed func(ebiten.Key) bool) player.Input {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return player.Input{
		Forward:     held(ebiten.KeyW, ebiten.KeyUp),
		Backward:    held(ebiten.KeyS, ebiten.KeyDown),
		StrafeLeft:  held(ebiten.KeyA),
		StrafeRight: held(ebiten.KeyD),
		TurnLeft:    held(ebiten.KeyLeft, ebiten.KeyQ),
		TurnRight:   held(ebiten.KeyRight, ebiten.KeyE),
	}
}
