package ebitenhost

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trvswgnr/poke3d/internal/player"
)

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want player.Input
	}{
		{"none", nil, player.Input{}},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyA}, player.Input{Forward: true, StrafeLeft: true}},
		{"arrows", []ebiten.Key{ebiten.KeyDown, ebiten.KeyRight}, player.Input{Backward: true, TurnRight: true}},
		{"turn keys", []ebiten.Key{ebiten.KeyQ, ebiten.KeyD}, player.Input{TurnLeft: true, StrafeRight: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := map[ebiten.Key]bool{}
			for _, k := range tt.keys {
				held[k] = true
			}
			got := readInput(func(k ebiten.Key) bool { return held[k] })
			if got != tt.want {
				t.Errorf("readInput = %+v, want %+v", got, tt.want)
			}
		})
	}
}
