package termhost

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/trvswgnr/poke3d/internal/player"
)

type control int

const (
	forward control = iota
	backward
	strafeLeft
	strafeRight
	turnLeft
	turnRight
	numControls
)

func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return forward, true
	case tcell.KeyDown:
		return backward, true
	case tcell.KeyLeft:
		return turnLeft, true
	case tcell.KeyRight:
		return turnRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return forward, true
		case 's', 'S':
			return backward, true
		case 'a', 'A':
			return strafeLeft, true
		case 'd', 'D':
			return strafeRight, true
		}
	}
	return 0, false
}

// keyState turns press and repeat events into held flags.
type keyState struct {
	hold time.Duration
	last [numControls]time.Time
}

func newKeyState(hold time.Duration) *keyState {
	return &keyState{hold: hold}
}

func (k *keyState) press(c control, at time.Time) {
	k.last[c] = at
}

func (k *keyState) held(c control, now time.Time) bool {
	t := k.last[c]
	return !t.IsZero() && now.Sub(t) <= k.hold
}

func (k *keyState) input(now time.Time) player.Input {
	return player.Input{
		Forward:     k.held(forward, now),
		Backward:    k.held(backward, now),
		StrafeLeft:  k.held(strafeLeft, now),
		StrafeRight: k.held(strafeRight, now),
		TurnLeft:    k.held(turnLeft, now),
		TurnRight:   k.held(turnRight, now),
	}
}
