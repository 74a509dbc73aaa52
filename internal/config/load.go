package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "POKE3D"

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"width":     "screen.width",
	"height":    "screen.height",
	"tps":       "screen.tps",
	"fov":       "camera.fov",
	"horizon":   "camera.horizon",
	"map":       "map.source",
	"workers":   "render.workers",
	"host":      "host.backend",
	"hud":       "hud.enabled",
	"log-level": "log.level",
	"preset":    "preset",
}

// NewFlagSet declares the command-line flags Load understands.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	d := Default()
	fs.StringP("config", "c", "", "config file (yaml, toml or json)")
	fs.String("preset", "", fmt.Sprintf("preset to start from %v", PresetNames()))
	fs.Int("width", d.Screen.Width, "frame width in pixels")
	fs.Int("height", d.Screen.Height, "frame height in pixels")
	fs.Int("tps", d.Screen.TPS, "ticks per second")
	fs.Float64("fov", d.Camera.FOV, "horizontal field of view in degrees")
	fs.Float64("horizon", d.Camera.Horizon, "horizon position as a fraction of the height")
	fs.StringP("map", "m", d.Map.Source, "map: builtin:NAME or a .txt/.png/.bmp/.gif file")
	fs.Int("workers", d.Render.Workers, "parallel column bands")
	fs.String("host", d.Host.Backend, "host backend: ebiten, terminal or sdl")
	fs.Bool("hud", d.HUD.Enabled, "draw the HUD overlay")
	fs.String("log-level", d.Log.Level, "log level")
	return fs
}

// Load resolves the configuration. Later sources win: defaults, the preset,
// the config file, POKE3D_* environment variables, then changed flags.
// fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %q: %w", flag, err)
				}
			}
		}
		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %q: %w", path, err)
			}
		}
	}

	base, err := ApplyPreset(Default(), v.GetString("preset"))
	if err != nil {
		return Config{}, err
	}
	setDefaults(v, base)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("preset", c.Preset)

	v.SetDefault("screen.width", c.Screen.Width)
	v.SetDefault("screen.height", c.Screen.Height)
	v.SetDefault("screen.tps", c.Screen.TPS)

	v.SetDefault("camera.fov", c.Camera.FOV)
	v.SetDefault("camera.horizon", c.Camera.Horizon)

	v.SetDefault("player.x", c.Player.X)
	v.SetDefault("player.y", c.Player.Y)
	v.SetDefault("player.angle", c.Player.Angle)
	v.SetDefault("player.move_speed", c.Player.MoveSpeed)
	v.SetDefault("player.turn_speed", c.Player.TurnSpeed)

	v.SetDefault("map.source", c.Map.Source)

	v.SetDefault("textures.wall", c.Textures.Wall)
	v.SetDefault("textures.wall_alt", c.Textures.WallAlt)
	v.SetDefault("textures.pillar", c.Textures.Pillar)
	v.SetDefault("textures.floor", c.Textures.Floor)
	v.SetDefault("textures.sky", c.Textures.Sky)
	v.SetDefault("textures.size", c.Textures.Size)

	v.SetDefault("colors.sky", c.Colors.Sky)
	v.SetDefault("colors.floor", c.Colors.Floor)
	v.SetDefault("colors.wall", c.Colors.Wall)

	v.SetDefault("floor.shade", c.Floor.Shade)
	v.SetDefault("sky.pan", c.Sky.Pan)

	v.SetDefault("render.workers", c.Render.Workers)
	v.SetDefault("render.side_shade", c.Render.SideShade)

	v.SetDefault("hud.enabled", c.HUD.Enabled)
	v.SetDefault("hud.minimap", c.HUD.Minimap)

	v.SetDefault("host.backend", c.Host.Backend)

	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
}
