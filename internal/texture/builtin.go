package texture

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/trvswgnr/poke3d/internal/pixel"
)

type generator func(x, y, size int) pixel.RGB

var generators = map[string]generator{
	"bricks":  bricks,
	"checker": checker,
	"stone":   stone,
	"sky":     sky,
	"wood":    wood,
}

// Builtin generates one of the procedural textures.
func Builtin(name string, size int) (*Texture, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in texture %q (have %v)", name, BuiltinNames())
	}
	if size <= 0 {
		return nil, fmt.Errorf("built-in texture %q: size %d", name, size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pixel.Put(img.Pix, size, img.Stride, 4, pixel.OrderRGBA, x, y, gen(x, y, size))
		}
	}
	return New(BuiltinPrefix+name, size, size, img.Stride, 4, pixel.OrderRGBA, img.Pix)
}

func BuiltinNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// noise is a cheap integer hash in [0, 1).
func noise(x, y int) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return float64(h&0xFFFF) / 0x10000
}

func bricks(x, y, size int) pixel.RGB {
	rowH := size / 4
	if rowH < 1 {
		rowH = 1
	}
	brickW := size / 2
	if brickW < 1 {
		brickW = 1
	}
	row := y / rowH
	offset := 0
	if row%2 == 1 {
		offset = brickW / 2
	}
	if y%rowH == 0 || (x+offset)%brickW == 0 {
		return pixel.Pack(170, 170, 160) // mortar
	}
	n := int(noise(x, y) * 30)
	return pixel.Pack(150+n, 50+n/2, 40+n/3)
}

func checker(x, y, size int) pixel.RGB {
	cell := size / 8
	if cell < 1 {
		cell = 1
	}
	if (x/cell+y/cell)%2 == 0 {
		return pixel.Pack(200, 200, 200)
	}
	return pixel.Pack(60, 60, 60)
}

func stone(x, y, size int) pixel.RGB {
	n := noise(x/2, y/2)*0.6 + noise(x, y)*0.4
	v := 90 + int(n*70)
	return pixel.Pack(v, v, v+8)
}

// sky is a vertical gradient with sparse clouds; it tiles horizontally.
func sky(x, y, size int) pixel.RGB {
	t := float64(y) / float64(size)
	r := 60 + int(t*80)
	g := 110 + int(t*90)
	b := 200 + int(t*50)
	phase := 2 * math.Pi * float64(x) / float64(size)
	cloud := math.Sin(phase*2)*0.5 + math.Sin(phase*5+float64(y)*0.3)*0.3 + noise(x/3, y/3)*0.4
	if cloud > 0.75 && t < 0.6 {
		return pixel.Pack(235, 240, 245)
	}
	return pixel.Pack(r, g, b)
}

func wood(x, y, size int) pixel.RGB {
	plank := size / 4
	if plank < 1 {
		plank = 1
	}
	if x%plank == 0 {
		return pixel.Pack(60, 35, 20)
	}
	grain := math.Sin(float64(y)*0.4+noise(x/plank, 0)*6) * 12
	return pixel.Pack(130+int(grain), 85+int(grain/2), 45)
}
