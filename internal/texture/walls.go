package texture

import "github.com/trvswgnr/poke3d/internal/raycast"

// Walls is the set of wall textures a renderer can pick from.
// Any of them may be nil.
type Walls struct {
	A      *Texture // vertical faces, and horizontal faces when B is unset
	B      *Texture // horizontal faces
	Pillar *Texture // isolated single-tile walls
}

// Select returns the texture for a wall hit, or nil for a flat-colour wall.
func (w Walls) Select(side raycast.Side, isolated bool) *Texture {
	if isolated && w.Pillar != nil {
		return w.Pillar
	}
	if side == raycast.SideHorizontal && w.B != nil {
		return w.B
	}
	return w.A
}
