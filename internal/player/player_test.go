package player

import (
	"math"
	"testing"

	"github.com/trvswgnr/poke3d/internal/level"
	"github.com/trvswgnr/poke3d/internal/raycast"
)

const eps = 1e-9

func corridor(t *testing.T) *level.Grid {
	t.Helper()
	g, err := level.Parse([]string{
		"11111",
		"10001",
		"10001",
		"11111",
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewPlacesPlayerAtCellCentre(t *testing.T) {
	p := New(2, 1, 0, 66)
	if p.Pos.X != 2.5 || p.Pos.Y != 1.5 {
		t.Errorf("pos = %+v, want (2.5,1.5)", p.Pos)
	}
	if math.Abs(p.Dir.X-1) > eps || math.Abs(p.Dir.Y) > eps {
		t.Errorf("dir = %+v, want (1,0)", p.Dir)
	}
	want := math.Tan(33 * math.Pi / 180)
	if math.Abs(p.Plane.X) > eps || math.Abs(p.Plane.Y-want) > eps {
		t.Errorf("plane = %+v, want (0,%v)", p.Plane, want)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		angle float64
	}{
		{0}, {90}, {180}, {270}, {45},
	}
	for _, tt := range tests {
		p := New(1, 1, tt.angle, 66)
		if got := p.Angle(); math.Abs(got-tt.angle) > 1e-6 {
			t.Errorf("Angle() = %v, want %v", got, tt.angle)
		}
	}
}

func TestForwardBlockedStrafeSucceeds(t *testing.T) {
	g := corridor(t)
	// facing east, right next to the east wall
	p := New(3, 1, 0, 66)
	p.Pos.X = 3.95

	if p.Update(Input{Forward: true}, g, 0.1, 0) {
		t.Fatalf("forward into a wall moved the player to %+v", p.Pos)
	}
	if p.Pos.X != 3.95 {
		t.Errorf("x = %v, want unchanged", p.Pos.X)
	}

	// right of east-facing is south (+Y) in a Y-down map
	if !p.Update(Input{StrafeRight: true}, g, 0.1, 0) {
		t.Fatal("strafe right should succeed")
	}
	if math.Abs(p.Pos.Y-1.6) > eps {
		t.Errorf("y = %v, want 1.6", p.Pos.Y)
	}
}

func TestDiagonalSlidesAlongWall(t *testing.T) {
	g := corridor(t)
	p := New(3, 1, 45, 66)
	p.Pos.X = 3.95

	p.Update(Input{Forward: true}, g, 0.1, 0)
	if p.Pos.X != 3.95 {
		t.Errorf("x crossed into the wall: %v", p.Pos.X)
	}
	if p.Pos.Y <= 1.5 {
		t.Errorf("y = %v, want slide south", p.Pos.Y)
	}
}

func TestStrafeRightMatchesCameraPlane(t *testing.T) {
	g := corridor(t)
	p := New(2, 1, 0, 66)
	startY := p.Pos.Y
	p.Update(Input{StrafeRight: true}, g, 0.1, 0)
	movedY := p.Pos.Y - startY
	if movedY*p.Plane.Y <= 0 {
		t.Errorf("strafe right moved %v in y, plane points %v", movedY, p.Plane.Y)
	}
}

func TestRotationKeepsPlanePerpendicular(t *testing.T) {
	p := New(2, 1, 0, 66)
	planeLen := math.Hypot(p.Plane.X, p.Plane.Y)

	const n = 1000
	for i := 0; i < n; i++ {
		p.Rotate(0.037)
	}

	wantAngle := math.Mod(n*0.037*180/math.Pi, 360)
	if math.Abs(p.Angle()-wantAngle) > 1e-6 {
		t.Errorf("angle after %d turns = %v, want %v", n, p.Angle(), wantAngle)
	}
	if dot := p.Dir.X*p.Plane.X + p.Dir.Y*p.Plane.Y; math.Abs(dot) > 1e-9 {
		t.Errorf("dir . plane = %v, want 0", dot)
	}
	if l := math.Hypot(p.Dir.X, p.Dir.Y); math.Abs(l-1) > 1e-9 {
		t.Errorf("|dir| = %v, want 1", l)
	}
	if l := math.Hypot(p.Plane.X, p.Plane.Y); math.Abs(l-planeLen) > 1e-9 {
		t.Errorf("|plane| = %v, want %v", l, planeLen)
	}
}

func TestTurnDirections(t *testing.T) {
	g := corridor(t)
	p := New(2, 1, 0, 66)
	p.Update(Input{TurnRight: true}, g, 0, math.Pi/2)
	if math.Abs(p.Angle()-90) > 1e-6 {
		t.Errorf("turn right from east = %v, want 90 (south)", p.Angle())
	}
	p.Update(Input{TurnLeft: true}, g, 0, math.Pi)
	if math.Abs(p.Angle()-270) > 1e-6 {
		t.Errorf("turn left from south = %v, want 270", p.Angle())
	}
}

func TestCameraMirrorsState(t *testing.T) {
	p := New(2, 1, 90, 66)
	cam := p.Camera()
	want := raycast.Camera{Pos: p.Pos, Dir: p.Dir, Plane: p.Plane}
	if cam != want {
		t.Errorf("Camera() = %+v, want %+v", cam, want)
	}
}

func TestInputAny(t *testing.T) {
	if (Input{}).Any() {
		t.Error("zero input reports held keys")
	}
	if !(Input{TurnLeft: true}).Any() {
		t.Error("TurnLeft not reported")
	}
}

func TestUpdateReportsOnlyRealChanges(t *testing.T) {
	g := corridor(t)
	tests := []struct {
		name      string
		in        Input
		move, rot float64
		want      bool
	}{
		{"idle", Input{}, 0.1, 0.1, false},
		{"turn at zero speed", Input{TurnLeft: true, TurnRight: true}, 0.1, 0, false},
		{"move at zero speed", Input{Forward: true}, 0, 0.1, false},
		{"turn", Input{TurnRight: true}, 0, 0.1, true},
		{"move", Input{Backward: true}, 0.1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(2, 1, 0, 66)
			before := *p
			got := p.Update(tt.in, g, tt.move, tt.rot)
			if got != tt.want {
				t.Errorf("Update = %v, want %v", got, tt.want)
			}
			if !got && *p != before {
				t.Errorf("state changed without reporting it: %+v -> %+v", before, *p)
			}
		})
	}
}
