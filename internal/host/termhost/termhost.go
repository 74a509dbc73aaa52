// Package termhost presents frames in a terminal with tcell, two pixels per
// character cell using the upper half block.
package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/poke3d/internal/host"
	"github.com/trvswgnr/poke3d/internal/pixel"
	"github.com/trvswgnr/poke3d/internal/session"
)

const (
	Name = "terminal"

	// DefaultHold is how long a key counts as held after its last event.
	// Terminals only report presses and repeats, never releases.
	DefaultHold = 250 * time.Millisecond

	halfBlock = '▀'
)

func init() {
	host.Register(Name, func(log logrus.FieldLogger) host.Host { return New(log) })
}

type Host struct {
	log       logrus.FieldLogger
	newScreen func() (tcell.Screen, error)
	hold      time.Duration
}

func New(log logrus.FieldLogger) *Host {
	return &Host{log: log, newScreen: tcell.NewScreen, hold: DefaultHold}
}

// NewWithScreen drives an already constructed screen, such as a
// tcell simulation screen.
func NewWithScreen(log logrus.FieldLogger, scr tcell.Screen) *Host {
	h := New(log)
	h.newScreen = func() (tcell.Screen, error) { return scr, nil }
	return h
}

func (h *Host) Run(ctx context.Context, s *session.Session) error {
	scr, err := h.newScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer scr.Fini()
	scr.HideCursor()
	scr.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go scr.ChannelEvents(events, quit)
	defer close(quit)

	tps := s.Config().Screen.TPS
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	w, th := scr.Size()
	h.log.WithFields(logrus.Fields{"cols": w, "rows": th, "tps": tps}).Info("terminal host started")

	keys := newKeyState(h.hold)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					h.log.Info("quit requested")
					return nil
				}
				if c, ok := controlFor(ev); ok {
					keys.press(c, ev.When())
				}
			case *tcell.EventResize:
				scr.Sync()
			}
		case now := <-ticker.C:
			if err := s.Tick(ctx, keys.input(now)); err != nil {
				return err
			}
			Present(scr, s.Frame())
		}
	}
}

// Present draws f scaled to the whole screen. Each cell shows two frame
// rows: the foreground colours the upper one, the background the lower.
func Present(scr tcell.Screen, f *pixel.Frame) {
	cols, rows := scr.Size()
	if cols <= 0 || rows <= 0 || f == nil {
		return
	}
	fw, fh := f.Width(), f.Height()
	for cy := 0; cy < rows; cy++ {
		upper := 2 * cy * fh / (2 * rows)
		lower := (2*cy + 1) * fh / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			sx := cx * fw / cols
			style := tcell.StyleDefault.
				Foreground(termColor(f.At(sx, upper))).
				Background(termColor(f.At(sx, lower)))
			scr.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	scr.Show()
}

func termColor(c pixel.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
