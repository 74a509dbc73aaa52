//go:build sdl

// Package sdlhost presents frames through an SDL2 streaming texture.
// It needs the SDL2 development libraries and is built with -tags sdl.
package sdlhost

import (
	"context"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/trvswgnr/poke3d/internal/host"
	"github.com/trvswgnr/poke3d/internal/player"
	"github.com/trvswgnr/poke3d/internal/session"
)

const (
	Name  = "sdl"
	title = "poke3d"
)

func init() {
	host.Register(Name, func(log logrus.FieldLogger) host.Host { return New(log) })
}

type Host struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Host {
	return &Host{log: log}
}

func (h *Host) Run(ctx context.Context, s *session.Session) error {
	// SDL video calls must stay on one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := s.Config()
	w, ht := int32(cfg.Screen.Width), int32(cfg.Screen.Height)

	if err := sdl.Init(uint32(sdl.INIT_VIDEO)); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(title, int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, ht, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	// ABGR8888 is R,G,B,A in memory on little-endian hosts, the frame's layout.
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), w, ht)
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	h.log.WithFields(logrus.Fields{"width": w, "height": ht, "tps": cfg.Screen.TPS}).Info("sdl host started")

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Screen.TPS))
	defer ticker.Stop()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					return nil
				}
			}
		}

		if err := s.Tick(ctx, readInput(sdl.GetKeyboardState())); err != nil {
			return err
		}

		img := s.Frame().Image()
		if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
			return fmt.Errorf("upload frame: %w", err)
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func readInput(state []uint8) player.Input {
	held := func(codes ...sdl.Scancode) bool {
		for _, c := range codes {
			if int(c) < len(state) && state[c] == 1 {
				return true
			}
		}
		return false
	}
	return player.Input{
		Forward:     held(sdl.SCANCODE_W, sdl.SCANCODE_UP),
		Backward:    held(sdl.SCANCODE_S, sdl.SCANCODE_DOWN),
		StrafeLeft:  held(sdl.SCANCODE_A),
		StrafeRight: held(sdl.SCANCODE_D),
		TurnLeft:    held(sdl.SCANCODE_LEFT, sdl.SCANCODE_Q),
		TurnRight:   held(sdl.SCANCODE_RIGHT, sdl.SCANCODE_E),
	}
}
