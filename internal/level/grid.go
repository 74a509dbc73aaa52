package level

import (
	"errors"
	"fmt"
)

// Tile is the stored state of one grid cell.
type Tile uint8

const (
	TileOpen Tile = iota
	TileWall
)

const (
	WallMarker = '1'
	OpenMarker = '0'
)

var ErrEmpty = errors.New("level: map has no cells")

// Spawn is an optional start cell recorded by the map source.
type Spawn struct {
	X, Y  int
	Angle float64 // degrees, 0 = +x, 90 = +y (down the map)
}

// Grid is an immutable tile map stored row-major in one slice.
// Every coordinate outside the declared bounds reads as solid.
type Grid struct {
	width, height int
	cells         []Tile
	pillars       []bool
	spawn         *Spawn
}

func newGrid(width, height int, cells []Tile, spawn *Spawn) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmpty
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("level: %d cells for %dx%d map", len(cells), width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  cells,
		spawn:  spawn,
	}
	g.pillars = make([]bool, len(cells))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.pillars[y*width+x] = g.classifyIsolated(x, y)
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.width && row < g.height
}

// At returns the tile at (col, row); out-of-bounds reads are TileWall.
func (g *Grid) At(col, row int) Tile {
	if !g.inBounds(col, row) {
		return TileWall
	}
	return g.cells[row*g.width+col]
}

func (g *Grid) IsSolid(col, row int) bool {
	return g.At(col, row) == TileWall
}

// IsIsolatedWall reports a solid interior tile with no solid orthogonal
// neighbour. It only affects texturing.
func (g *Grid) IsIsolatedWall(col, row int) bool {
	if !g.inBounds(col, row) {
		return false
	}
	return g.pillars[row*g.width+col]
}

func (g *Grid) classifyIsolated(col, row int) bool {
	if !g.IsSolid(col, row) {
		return false
	}
	if col == 0 || row == 0 || col == g.width-1 || row == g.height-1 {
		return false
	}
	return !g.IsSolid(col, row-1) &&
		!g.IsSolid(col, row+1) &&
		!g.IsSolid(col+1, row) &&
		!g.IsSolid(col-1, row)
}

// Spawn returns the start cell recorded by the map, if it had one.
func (g *Grid) Spawn() (Spawn, bool) {
	if g.spawn == nil {
		return Spawn{}, false
	}
	return *g.spawn, true
}

// Rows renders the grid back into '0'/'1' text rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	line := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.IsSolid(x, y) {
				line[x] = WallMarker
			} else {
				line[x] = OpenMarker
			}
		}
		rows[y] = string(line)
	}
	return rows
}
