package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/trvswgnr/poke3d/internal/pixel"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Screen.Width = 0 }},
		{"negative height", func(c *Config) { c.Screen.Height = -1 }},
		{"zero tps", func(c *Config) { c.Screen.TPS = 0 }},
		{"fov 0", func(c *Config) { c.Camera.FOV = 0 }},
		{"fov 180", func(c *Config) { c.Camera.FOV = 180 }},
		{"horizon above 1", func(c *Config) { c.Camera.Horizon = 1.5 }},
		{"negative shade", func(c *Config) { c.Floor.Shade = -0.1 }},
		{"bad colour", func(c *Config) { c.Colors.Wall = "red" }},
		{"no map", func(c *Config) { c.Map.Source = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	c := Default()
	c.Colors = Colors{Sky: "#010203", Floor: "0x040506", Wall: "070809"}
	p, err := c.Palette()
	if err != nil {
		t.Fatal(err)
	}
	want := Palette{Sky: pixel.Pack(1, 2, 3), Floor: pixel.Pack(4, 5, 6), Wall: pixel.Pack(7, 8, 9)}
	if p != want {
		t.Errorf("Palette() = %+v, want %+v", p, want)
	}
}

func TestApplyPreset(t *testing.T) {
	c, err := ApplyPreset(Default(), "textured")
	if err != nil {
		t.Fatal(err)
	}
	if c.Textures.Wall != "builtin:bricks" || c.Textures.Sky != "builtin:sky" {
		t.Errorf("textures not applied: %+v", c.Textures)
	}
	if c.Screen.Width != 640 || c.Map.Source != "builtin:small" {
		t.Errorf("preset clobbered unrelated defaults: %+v %+v", c.Screen, c.Map)
	}
	if c.Textures.Size != 64 {
		t.Errorf("texture size = %d, want default 64", c.Textures.Size)
	}
	if c.Preset != "textured" {
		t.Errorf("Preset = %q", c.Preset)
	}

	night, err := ApplyPreset(Default(), "night")
	if err != nil {
		t.Fatal(err)
	}
	if night.Map.Source != "builtin:arena" || !night.Render.SideShade {
		t.Errorf("night = %+v %+v", night.Map, night.Render)
	}

	if _, err := ApplyPreset(Default(), "nope"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset err = %v", err)
	}

	for _, name := range PresetNames() {
		c, err := ApplyPreset(Default(), name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLoadWithoutSources(t *testing.T) {
	c, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Errorf("Load(nil) = %+v, want defaults", c)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poke3d.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const fileBody = `
preset: textured
screen:
  width: 320
  height: 200
colors:
  sky: "#000000"
render:
  workers: 4
`

func TestLoadFileOverPreset(t *testing.T) {
	path := writeConfig(t, fileBody)
	fs := NewFlagSet("test")
	if err := fs.Parse([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}

	c, err := Load(fs)
	if err != nil {
		t.Fatal(err)
	}
	if c.Screen.Width != 320 || c.Screen.Height != 200 {
		t.Errorf("screen = %+v, want 320x200", c.Screen)
	}
	if c.Textures.Floor != "builtin:wood" {
		t.Errorf("preset from file not applied: %+v", c.Textures)
	}
	if c.Colors.Sky != "#000000" {
		t.Errorf("colors.sky = %q", c.Colors.Sky)
	}
	if c.Render.Workers != 4 {
		t.Errorf("workers = %d", c.Render.Workers)
	}
	if c.Screen.TPS != 60 {
		t.Errorf("tps = %d, want default", c.Screen.TPS)
	}
}

func TestLoadPriority(t *testing.T) {
	path := writeConfig(t, fileBody)
	t.Setenv("POKE3D_SCREEN_WIDTH", "256")
	t.Setenv("POKE3D_SCREEN_HEIGHT", "144")

	fs := NewFlagSet("test")
	if err := fs.Parse([]string{"--config", path, "--height", "100", "--preset", "night"}); err != nil {
		t.Fatal(err)
	}
	c, err := Load(fs)
	if err != nil {
		t.Fatal(err)
	}

	if c.Screen.Width != 256 {
		t.Errorf("env should beat file: width = %d", c.Screen.Width)
	}
	if c.Screen.Height != 100 {
		t.Errorf("flag should beat env: height = %d", c.Screen.Height)
	}
	if c.Map.Source != "builtin:arena" {
		t.Errorf("flag preset not applied: map = %q", c.Map.Source)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "camera:\n  fov: 200\n")
	fs := NewFlagSet("test")
	if err := fs.Parse([]string{"-c", path}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fs); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFlagSet("test")
	if err := fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fs); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
