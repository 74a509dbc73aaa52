// Package player holds the camera state and moves it through a grid.
package player

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/poke3d/internal/raycast"
)

const (
	DefaultMoveSpeed = 0.05
	DefaultTurnSpeed = 0.04
)

// Grid is the collision predicate movement is checked against.
type Grid interface {
	IsSolid(col, row int) bool
}

// Input is the set of controls held during one tick.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
}

// Any reports whether any control is held.
func (in Input) Any() bool {
	return in.Forward || in.Backward || in.StrafeLeft || in.StrafeRight || in.TurnLeft || in.TurnRight
}

// Player is a position with a view direction and a camera plane
// perpendicular to it. Map coordinates grow downward in Y.
type Player struct {
	Pos   geom.Vector2
	Dir   geom.Vector2
	Plane geom.Vector2
}

// New places a player in the centre of cell (col, row) looking along
// angleDeg, with a camera plane sized for a horizontal fov of fovDeg.
func New(col, row int, angleDeg, fovDeg float64) *Player {
	a := angleDeg * math.Pi / 180
	dir := geom.Vector2{X: math.Cos(a), Y: math.Sin(a)}
	k := math.Tan(fovDeg * math.Pi / 360)
	return &Player{
		Pos:   geom.Vector2{X: float64(col) + 0.5, Y: float64(row) + 0.5},
		Dir:   dir,
		Plane: geom.Vector2{X: -dir.Y * k, Y: dir.X * k},
	}
}

func (p *Player) Camera() raycast.Camera {
	return raycast.Camera{Pos: p.Pos, Dir: p.Dir, Plane: p.Plane}
}

// Angle is the view direction in degrees, in [0, 360).
func (p *Player) Angle() float64 {
	deg := math.Atan2(p.Dir.Y, p.Dir.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Update applies one tick of input and reports whether the player moved
// or turned. Translation is checked one axis at a time so the player
// slides along walls instead of stopping dead.
func (p *Player) Update(in Input, grid Grid, moveSpeed, turnSpeed float64) bool {
	moved := false

	// right is the screen-right direction, the same way the camera plane points
	rightX, rightY := -p.Dir.Y, p.Dir.X

	if in.Forward {
		moved = p.step(grid, p.Dir.X*moveSpeed, p.Dir.Y*moveSpeed) || moved
	}
	if in.Backward {
		moved = p.step(grid, -p.Dir.X*moveSpeed, -p.Dir.Y*moveSpeed) || moved
	}
	if in.StrafeRight {
		moved = p.step(grid, rightX*moveSpeed, rightY*moveSpeed) || moved
	}
	if in.StrafeLeft {
		moved = p.step(grid, -rightX*moveSpeed, -rightY*moveSpeed) || moved
	}

	if turnSpeed != 0 {
		if in.TurnLeft {
			p.Rotate(-turnSpeed)
			moved = true
		}
		if in.TurnRight {
			p.Rotate(turnSpeed)
			moved = true
		}
	}
	return moved
}

func (p *Player) step(grid Grid, dx, dy float64) bool {
	moved := false
	if nx := p.Pos.X + dx; dx != 0 && !grid.IsSolid(floor(nx), floor(p.Pos.Y)) {
		p.Pos.X = nx
		moved = true
	}
	if ny := p.Pos.Y + dy; dy != 0 && !grid.IsSolid(floor(p.Pos.X), floor(ny)) {
		p.Pos.Y = ny
		moved = true
	}
	return moved
}

// Rotate turns the view by rad radians. Positive turns clockwise on
// screen, toward the camera plane.
func (p *Player) Rotate(rad float64) {
	s, c := math.Sincos(rad)
	p.Dir = rotate(p.Dir, s, c)
	p.Plane = rotate(p.Plane, s, c)
}

func rotate(v geom.Vector2, s, c float64) geom.Vector2 {
	return geom.Vector2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

func floor(v float64) int { return int(math.Floor(v)) }
