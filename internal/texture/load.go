package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

const BuiltinPrefix = "builtin:"

// DefaultSize is the edge length of generated textures when none is configured.
const DefaultSize = 64

// Load decodes an image file. When size is positive the image is rescaled
// to size x size with nearest-neighbour filtering.
func Load(path string, size int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	b := img.Bounds()
	if size > 0 && (b.Dx() != size || b.Dy() != size) {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	t, err := FromImage(path, img)
	if err != nil {
		return nil, fmt.Errorf("texture %s (%s): %w", path, format, err)
	}
	return t, nil
}

// FromSource resolves "builtin:NAME" to a generated texture and anything
// else to an image file. An empty source means no texture and is not an error.
func FromSource(src string, size int) (*Texture, error) {
	if src == "" {
		return nil, nil
	}
	if name, ok := strings.CutPrefix(src, BuiltinPrefix); ok {
		if size <= 0 {
			size = DefaultSize
		}
		return Builtin(name, size)
	}
	return Load(src, size)
}
