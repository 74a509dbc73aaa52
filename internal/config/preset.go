package config

import (
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
)

// presets are sparse overlays; zero fields leave the defaults alone.
var presets = map[string]Config{
	"classic": {
		Camera: Camera{FOV: 66},
		Colors: Colors{Sky: "#383838", Floor: "#707070", Wall: "#a03c28"},
		Render: Render{SideShade: true},
	},
	"textured": {
		Textures: Textures{
			Wall:    "builtin:bricks",
			WallAlt: "builtin:stone",
			Pillar:  "builtin:checker",
			Floor:   "builtin:wood",
			Sky:     "builtin:sky",
		},
		Floor: Floor{Shade: 0.02},
		Sky:   Sky{Pan: 0.0002},
	},
	"night": {
		Map:      Map{Source: "builtin:arena"},
		Textures: Textures{Wall: "builtin:stone", Pillar: "builtin:bricks", Floor: "builtin:checker"},
		Colors:   Colors{Sky: "#0b0b1e", Floor: "#202028", Wall: "#3c3c50"},
		Floor:    Floor{Shade: 0.25},
	},
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset merges the named preset onto base. An empty name is a no-op.
func ApplyPreset(base Config, name string) (Config, error) {
	if name == "" {
		return base, nil
	}
	overlay, ok := presets[name]
	if !ok {
		return base, fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalid, name, PresetNames())
	}
	if err := copier.CopyWithOption(&base, &overlay, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return base, fmt.Errorf("apply preset %q: %w", name, err)
	}
	base.Preset = name
	return base, nil
}
