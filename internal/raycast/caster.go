// Package raycast walks rays through a tile grid with a DDA and turns the
// resulting distances into screen strips.
package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Epsilon is the smallest perpendicular distance a hit may report.
const Epsilon = 1e-6

// parallelDelta stands in for 1/0 on an axis the ray never crosses.
const parallelDelta = 1e30

// Grid is the tile predicate the caster needs. Out-of-bounds cells must be solid.
type Grid interface {
	Width() int
	Height() int
	IsSolid(col, row int) bool
}

// Side identifies the family of grid lines a ray crossed when it hit a wall.
type Side int

const (
	// SideVertical is a hit on an x = const grid line (east/west face).
	SideVertical Side = iota
	// SideHorizontal is a hit on a y = const grid line (north/south face).
	SideHorizontal
)

func (s Side) String() string {
	if s == SideVertical {
		return "vertical"
	}
	return "horizontal"
}

// Camera is the view a frame is cast from.
type Camera struct {
	Pos   geom.Vector2
	Dir   geom.Vector2
	Plane geom.Vector2
}

// Hit is the result of casting one column.
type Hit struct {
	MapX, MapY int
	Side       Side
	// Distance is measured along the camera's forward axis, in grid units.
	Distance float64
	// WallX is the position of the hit along the wall face, in [0, 1).
	WallX  float64
	Point  geom.Vector2
	RayDir geom.Vector2
	StepsX int
	StepsY int
}

// CameraX maps a screen column to [-1, 1] across the camera plane.
func CameraX(col, width int) float64 {
	if width <= 0 {
		return 0
	}
	return 2*float64(col)/float64(width) - 1
}

// RayDir returns the unnormalised ray direction for a screen column.
func RayDir(cam Camera, col, width int) geom.Vector2 {
	cx := CameraX(col, width)
	return geom.Vector2{
		X: cam.Dir.X + cam.Plane.X*cx,
		Y: cam.Dir.Y + cam.Plane.Y*cx,
	}
}

// Cast casts the ray for screen column col.
func Cast(grid Grid, cam Camera, col, width int) Hit {
	return CastRay(grid, cam.Pos, RayDir(cam, col, width))
}

// CastRay steps from pos along ray until it enters a solid cell. When both
// axis boundaries are equally close the y axis is stepped first.
func CastRay(grid Grid, pos, ray geom.Vector2) Hit {
	mapX := int(math.Floor(pos.X))
	mapY := int(math.Floor(pos.Y))

	deltaX := parallelDelta
	if ray.X != 0 {
		deltaX = math.Abs(1 / ray.X)
	}
	deltaY := parallelDelta
	if ray.Y != 0 {
		deltaY = math.Abs(1 / ray.Y)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if ray.X < 0 {
		stepX = -1
		sideDistX = (pos.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - pos.X) * deltaX
	}
	if ray.Y < 0 {
		stepY = -1
		sideDistY = (pos.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - pos.Y) * deltaY
	}

	hit := Hit{RayDir: ray}
	maxSteps := grid.Width() + grid.Height() + 2
	for steps := 0; steps < maxSteps; steps++ {
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			hit.Side = SideVertical
			hit.StepsX++
		} else {
			sideDistY += deltaY
			mapY += stepY
			hit.Side = SideHorizontal
			hit.StepsY++
		}
		if grid.IsSolid(mapX, mapY) {
			break
		}
	}

	var dist float64
	if hit.Side == SideVertical {
		dist = sideDistX - deltaX
	} else {
		dist = sideDistY - deltaY
	}
	if !(dist >= Epsilon) {
		dist = Epsilon
	}

	hit.MapX, hit.MapY = mapX, mapY
	hit.Distance = dist
	hit.Point = geom.Vector2{X: pos.X + dist*ray.X, Y: pos.Y + dist*ray.Y}
	if hit.Side == SideVertical {
		hit.WallX = hit.Point.Y - math.Floor(hit.Point.Y)
	} else {
		hit.WallX = hit.Point.X - math.Floor(hit.Point.X)
	}
	return hit
}

// Mirrored reports whether the wall texture must be flipped horizontally so
// faces read the same way regardless of the direction they are seen from.
func (h Hit) Mirrored() bool {
	return (h.Side == SideVertical && h.RayDir.X > 0) ||
		(h.Side == SideHorizontal && h.RayDir.Y < 0)
}

// TexX converts WallX into a column of a texture texWidth wide.
func (h Hit) TexX(texWidth int) int {
	if texWidth <= 0 {
		return 0
	}
	x := int(h.WallX * float64(texWidth))
	if x >= texWidth {
		x = texWidth - 1
	}
	if x < 0 {
		x = 0
	}
	if h.Mirrored() {
		x = texWidth - x - 1
	}
	return x
}
