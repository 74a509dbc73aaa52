// Package config resolves the renderer settings from defaults, presets,
// a config file, the environment and command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/trvswgnr/poke3d/internal/pixel"
)

type Screen struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	TPS    int `mapstructure:"tps"`
}

type Camera struct {
	FOV     float64 `mapstructure:"fov"`
	Horizon float64 `mapstructure:"horizon"`
}

// Player overrides the map spawn when X and Y are both non-negative.
type Player struct {
	X         int     `mapstructure:"x"`
	Y         int     `mapstructure:"y"`
	Angle     float64 `mapstructure:"angle"`
	MoveSpeed float64 `mapstructure:"move_speed"`
	TurnSpeed float64 `mapstructure:"turn_speed"`
}

type Map struct {
	Source string `mapstructure:"source"`
}

// Textures are texture sources: "builtin:NAME", a file path, or empty for
// the flat colour.
type Textures struct {
	Wall    string `mapstructure:"wall"`
	WallAlt string `mapstructure:"wall_alt"`
	Pillar  string `mapstructure:"pillar"`
	Floor   string `mapstructure:"floor"`
	Sky     string `mapstructure:"sky"`
	Size    int    `mapstructure:"size"`
}

type Colors struct {
	Sky   string `mapstructure:"sky"`
	Floor string `mapstructure:"floor"`
	Wall  string `mapstructure:"wall"`
}

type Floor struct {
	Shade float64 `mapstructure:"shade"`
}

type Sky struct {
	Pan float64 `mapstructure:"pan"`
}

type Render struct {
	Workers   int  `mapstructure:"workers"`
	SideShade bool `mapstructure:"side_shade"`
}

type HUD struct {
	Enabled bool `mapstructure:"enabled"`
	Minimap bool `mapstructure:"minimap"`
}

type Host struct {
	Backend string `mapstructure:"backend"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Preset   string   `mapstructure:"preset"`
	Screen   Screen   `mapstructure:"screen"`
	Camera   Camera   `mapstructure:"camera"`
	Player   Player   `mapstructure:"player"`
	Map      Map      `mapstructure:"map"`
	Textures Textures `mapstructure:"textures"`
	Colors   Colors   `mapstructure:"colors"`
	Floor    Floor    `mapstructure:"floor"`
	Sky      Sky      `mapstructure:"sky"`
	Render   Render   `mapstructure:"render"`
	HUD      HUD      `mapstructure:"hud"`
	Host     Host     `mapstructure:"host"`
	Log      Log      `mapstructure:"log"`
}

// Palette is the parsed set of flat colours.
type Palette struct {
	Sky, Floor, Wall pixel.RGB
}

// Default returns the base configuration every preset and file is layered on.
func Default() Config {
	return Config{
		Screen:   Screen{Width: 640, Height: 480, TPS: 60},
		Camera:   Camera{FOV: 66, Horizon: 0.5},
		Player:   Player{X: -1, Y: -1, MoveSpeed: 0.05, TurnSpeed: 0.04},
		Map:      Map{Source: "builtin:small"},
		Textures: Textures{Size: 64},
		Colors:   Colors{Sky: "#87ceeb", Floor: "#505050", Wall: "#a03c28"},
		Floor:    Floor{Shade: 0},
		Sky:      Sky{Pan: 0},
		Render:   Render{Workers: 1, SideShade: true},
		HUD:      HUD{Enabled: true, Minimap: true},
		Host:     Host{Backend: "ebiten"},
		Log:      Log{Level: "info", Format: "text"},
	}
}

// HasSpawn reports whether the player position overrides the map spawn.
func (c Config) HasSpawn() bool {
	return c.Player.X >= 0 && c.Player.Y >= 0
}

func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Sky, err = pixel.ParseHex(c.Colors.Sky); err != nil {
		return p, fmt.Errorf("colors.sky: %w", err)
	}
	if p.Floor, err = pixel.ParseHex(c.Colors.Floor); err != nil {
		return p, fmt.Errorf("colors.floor: %w", err)
	}
	if p.Wall, err = pixel.ParseHex(c.Colors.Wall); err != nil {
		return p, fmt.Errorf("colors.wall: %w", err)
	}
	return p, nil
}

var ErrInvalid = errors.New("invalid config")

// Validate checks the settings a session cannot start without.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Screen.Width > 0, "screen.width must be positive, got %d", c.Screen.Width)
	check(c.Screen.Height > 0, "screen.height must be positive, got %d", c.Screen.Height)
	check(c.Screen.TPS > 0, "screen.tps must be positive, got %d", c.Screen.TPS)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	check(c.Camera.Horizon >= 0 && c.Camera.Horizon <= 1, "camera.horizon must be in [0, 1], got %v", c.Camera.Horizon)
	check(c.Player.MoveSpeed >= 0, "player.move_speed must not be negative, got %v", c.Player.MoveSpeed)
	check(c.Player.TurnSpeed >= 0, "player.turn_speed must not be negative, got %v", c.Player.TurnSpeed)
	check(c.Textures.Size >= 0, "textures.size must not be negative, got %d", c.Textures.Size)
	check(c.Floor.Shade >= 0, "floor.shade must not be negative, got %v", c.Floor.Shade)
	check(c.Render.Workers >= 0, "render.workers must not be negative, got %d", c.Render.Workers)
	check(c.Map.Source != "", "map.source is required")

	if _, err := c.Palette(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}
