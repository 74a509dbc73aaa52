// Package session owns everything one running renderer needs: the map,
// the player, the bound textures and the frame they are composed into.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/poke3d/internal/config"
	"github.com/trvswgnr/poke3d/internal/hud"
	"github.com/trvswgnr/poke3d/internal/level"
	"github.com/trvswgnr/poke3d/internal/pixel"
	"github.com/trvswgnr/poke3d/internal/player"
	"github.com/trvswgnr/poke3d/internal/raycast"
	"github.com/trvswgnr/poke3d/internal/render"
	"github.com/trvswgnr/poke3d/internal/texture"
)

// statusEvery is how often, in ticks, the player state is logged at debug.
const statusEvery = 300

var (
	ErrClosed     = errors.New("session closed")
	ErrSolidSpawn = errors.New("spawn cell is solid")
	ErrNoSpawn    = errors.New("map has no open cell")
)

type Session struct {
	cfg config.Config
	log logrus.FieldLogger

	grid     *level.Grid
	player   *player.Player
	textures render.Textures
	frame    *pixel.Frame
	renderer *render.Renderer
	overlay  *hud.Overlay

	tick     uint64
	tps      float64
	lastTick time.Time
	closed   bool
}

// New loads the map and textures named by cfg and places the player.
// Any failure is returned before a frame exists.
func New(cfg config.Config, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	grid, err := level.FromSource(cfg.Map.Source)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", cfg.Map.Source, err)
	}

	spawn, err := resolveSpawn(cfg, grid)
	if err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}

	textures, err := loadTextures(cfg.Textures)
	if err != nil {
		return nil, err
	}

	proj := raycast.NewProjector(cfg.Screen.Width, cfg.Screen.Height, cfg.Camera.FOV, cfg.Camera.Horizon)
	s := &Session{
		cfg:      cfg,
		log:      log,
		grid:     grid,
		player:   player.New(spawn.X, spawn.Y, spawn.Angle, cfg.Camera.FOV),
		textures: textures,
		frame:    pixel.NewFrame(cfg.Screen.Width, cfg.Screen.Height),
		renderer: render.New(proj, textures, render.Options{
			Workers:    cfg.Render.Workers,
			SideShade:  cfg.Render.SideShade,
			FloorShade: cfg.Floor.Shade,
			SkyPan:     cfg.Sky.Pan,
			SkyColor:   palette.Sky,
			FloorColor: palette.Floor,
			WallColor:  palette.Wall,
		}),
	}

	if cfg.HUD.Enabled {
		s.overlay, err = hud.New(hud.Options{Text: true, Minimap: cfg.HUD.Minimap})
		if err != nil {
			return nil, err
		}
	}

	log.WithFields(logrus.Fields{
		"map":     cfg.Map.Source,
		"size":    fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"spawn":   fmt.Sprintf("%d,%d", spawn.X, spawn.Y),
		"heading": spawn.Angle,
		"screen":  fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"fov":     cfg.Camera.FOV,
		"scale":   proj.Scale(),
	}).Info("session ready")
	logTextures(log, textures)

	return s, nil
}

func resolveSpawn(cfg config.Config, grid *level.Grid) (level.Spawn, error) {
	spawn, ok := grid.Spawn()
	if cfg.HasSpawn() {
		spawn = level.Spawn{X: cfg.Player.X, Y: cfg.Player.Y, Angle: cfg.Player.Angle}
		ok = true
	}
	if ok {
		if grid.IsSolid(spawn.X, spawn.Y) {
			return spawn, fmt.Errorf("%w: (%d,%d)", ErrSolidSpawn, spawn.X, spawn.Y)
		}
		return spawn, nil
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if !grid.IsSolid(x, y) {
				return level.Spawn{X: x, Y: y, Angle: cfg.Player.Angle}, nil
			}
		}
	}
	return level.Spawn{}, ErrNoSpawn
}

func loadTextures(cfg config.Textures) (render.Textures, error) {
	var t render.Textures
	slots := []struct {
		key string
		src string
		dst **texture.Texture
	}{
		{"textures.wall", cfg.Wall, &t.Walls.A},
		{"textures.wall_alt", cfg.WallAlt, &t.Walls.B},
		{"textures.pillar", cfg.Pillar, &t.Walls.Pillar},
		{"textures.floor", cfg.Floor, &t.Floor},
		{"textures.sky", cfg.Sky, &t.Sky},
	}
	for _, slot := range slots {
		tex, err := texture.FromSource(slot.src, cfg.Size)
		if err != nil {
			return render.Textures{}, fmt.Errorf("load texture %s %q: %w", slot.key, slot.src, err)
		}
		*slot.dst = tex
	}
	return t, nil
}

func logTextures(log logrus.FieldLogger, t render.Textures) {
	fields := logrus.Fields{}
	add := func(name string, tex *texture.Texture) {
		if tex == nil {
			fields[name] = "flat"
			return
		}
		fields[name] = fmt.Sprintf("%s %dx%d", tex.Name(), tex.Width(), tex.Height())
	}
	add("wall", t.Walls.A)
	add("wall_alt", t.Walls.B)
	add("pillar", t.Walls.Pillar)
	add("floor", t.Floor)
	add("sky", t.Sky)
	log.WithFields(fields).Info("textures bound")
}

// Tick advances the player by one step of in, renders the frame and
// advances the tick counter.
func (s *Session) Tick(ctx context.Context, in player.Input) error {
	if s.closed {
		return ErrClosed
	}

	s.player.Update(in, s.grid, s.cfg.Player.MoveSpeed, s.cfg.Player.TurnSpeed)

	scene := render.Scene{Grid: s.grid, Camera: s.player.Camera(), Tick: s.tick}
	if err := s.renderer.Render(ctx, s.frame, scene); err != nil {
		return fmt.Errorf("render tick %d: %w", s.tick, err)
	}
	if s.overlay != nil {
		err := s.overlay.Draw(s.frame, hud.State{Grid: s.grid, Player: s.player, Tick: s.tick, TPS: s.tps})
		if err != nil {
			return err
		}
	}

	s.measure(time.Now())
	s.tick++
	if s.tick%statusEvery == 0 {
		s.log.WithFields(logrus.Fields{
			"tick":    s.tick,
			"x":       s.player.Pos.X,
			"y":       s.player.Pos.Y,
			"heading": s.player.Angle(),
			"tps":     s.tps,
		}).Debug("player")
	}
	return nil
}

// measure keeps a smoothed ticks-per-second estimate.
func (s *Session) measure(now time.Time) {
	if !s.lastTick.IsZero() {
		if dt := now.Sub(s.lastTick).Seconds(); dt > 0 {
			rate := 1 / dt
			if s.tps == 0 {
				s.tps = rate
			} else {
				s.tps = s.tps*0.9 + rate*0.1
			}
		}
	}
	s.lastTick = now
}

func (s *Session) Frame() *pixel.Frame       { return s.frame }
func (s *Session) Player() *player.Player    { return s.player }
func (s *Session) Grid() *level.Grid         { return s.grid }
func (s *Session) Config() config.Config     { return s.cfg }
func (s *Session) Ticks() uint64             { return s.tick }
func (s *Session) Log() logrus.FieldLogger   { return s.log }
func (s *Session) Textures() render.Textures { return s.textures }

// Hits are the per-column wall hits of the last frame.
func (s *Session) Hits() []raycast.Hit {
	if s.renderer == nil {
		return nil
	}
	return s.renderer.Hits()
}

// Close releases the frame and textures. Tick fails after Close.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.log.WithFields(logrus.Fields{"ticks": s.tick}).Info("session closed")
	s.frame = nil
	s.textures = render.Textures{}
	s.renderer = nil
	s.overlay = nil
	return nil
}
