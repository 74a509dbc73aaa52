package level

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

var spawnAngles = map[rune]float64{
	'E': 0,
	'S': 90,
	'W': 180,
	'N': 270,
}

// Parse builds a grid from text rows of '0' (open) and '1' (solid).
// Rows shorter than the widest row are padded with solid cells. One of
// N/E/S/W may mark an open spawn cell and its facing.
func Parse(rows []string) (*Grid, error) {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	height := len(rows)
	if width == 0 || height == 0 {
		return nil, ErrEmpty
	}

	var spawn *Spawn
	cells := make([]Tile, width*height)
	for y, row := range rows {
		runes := []rune(row)
		for x := 0; x < width; x++ {
			if x >= len(runes) {
				cells[y*width+x] = TileWall
				continue
			}
			r := runes[x]
			if r == WallMarker {
				cells[y*width+x] = TileWall
				continue
			}
			if angle, ok := spawnAngles[r]; ok {
				if spawn != nil {
					return nil, fmt.Errorf("level: second spawn marker at %d,%d", x, y)
				}
				spawn = &Spawn{X: x, Y: y, Angle: angle}
			}
			cells[y*width+x] = TileOpen
		}
	}
	return newGrid(width, height, cells, spawn)
}

// Read parses a text map, skipping blank lines and '#' comments.
func Read(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: read map: %w", err)
	}
	return Parse(rows)
}

// pixel map colours
var (
	ColorOpen  = color.RGBA{255, 255, 255, 255}
	ColorWall  = color.RGBA{0, 0, 0, 255}
	ColorSpawn = color.RGBA{0, 0, 255, 255}
)

// Decode reads a pixel map: black pixels are walls, a blue pixel marks the
// spawn (facing east) and anything else is open.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("level: decode map image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmpty
	}

	var spawn *Spawn
	cells := make([]Tile, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			switch {
			case c == ColorWall:
				cells[y*width+x] = TileWall
			case c == ColorSpawn && spawn == nil:
				spawn = &Spawn{X: x, Y: y}
			}
		}
	}
	return newGrid(width, height, cells, spawn)
}

// Load reads a map file, choosing the image decoder for image extensions
// and the text parser for everything else.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open map: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp", ".gif":
		return Decode(f)
	default:
		return Read(f)
	}
}

// FromSource resolves "builtin:NAME" to a built-in map and anything else to a file.
func FromSource(src string) (*Grid, error) {
	if name, ok := strings.CutPrefix(src, BuiltinPrefix); ok {
		return Builtin(name)
	}
	return Load(src)
}
