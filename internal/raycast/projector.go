package raycast

import "math"

// cameraHeight is the eye height in wall units; walls are one unit tall.
const cameraHeight = 0.5

// Projector maps grid-unit distances to screen rows. The same scale is
// used for walls and for floor rows so the two always line up.
type Projector struct {
	width, height int
	horizon       int
	scale         float64
	maxHeight     int
}

// NewProjector derives the projection scale from the screen width and the
// horizontal field of view. horizon is the fraction of the height where the
// eye line sits.
func NewProjector(width, height int, fovDegrees, horizon float64) *Projector {
	p := &Projector{width: width, height: height}

	t := math.Tan(fovDegrees * math.Pi / 360)
	if t > 1e-9 && !math.IsInf(t, 0) && !math.IsNaN(t) && width > 0 {
		p.scale = float64(width) / 2 / t
	} else {
		p.scale = float64(height)
	}
	if p.scale <= 0 {
		p.scale = 1
	}

	if math.IsNaN(horizon) {
		horizon = 0.5
	}
	p.horizon = int(float64(height) * horizon)
	if p.horizon < 0 {
		p.horizon = 0
	}
	if p.horizon > height {
		p.horizon = height
	}

	p.maxHeight = 64 * height
	if p.maxHeight < 1 {
		p.maxHeight = 1
	}
	return p
}

func (p *Projector) Width() int     { return p.width }
func (p *Projector) Height() int    { return p.height }
func (p *Projector) Horizon() int   { return p.horizon }
func (p *Projector) Scale() float64 { return p.scale }

// Strip is the visible span [Top, Bottom) of a wall column. RawTop is where
// the unclamped strip would start and may lie above the screen.
type Strip struct {
	Top, Bottom int
	Height      int
	RawTop      int
}

func (p *Projector) Strip(dist float64) Strip {
	if !(dist >= Epsilon) {
		dist = Epsilon
	}
	h := p.scale / dist
	if h > float64(p.maxHeight) {
		h = float64(p.maxHeight)
	}
	s := Strip{Height: int(h)}
	if s.Height < 1 {
		s.Height = 1
	}
	s.RawTop = p.horizon - s.Height/2
	s.Top = clampInt(s.RawTop, 0, p.height)
	s.Bottom = clampInt(s.RawTop+s.Height, 0, p.height)
	if s.Top > s.Bottom {
		s.Top = s.Bottom
	}
	return s
}

// TexScan returns how many texture rows to advance per screen row and the
// texture row to start at, accounting for rows clipped above the screen.
func (p *Projector) TexScan(s Strip, texHeight int) (step, start float64) {
	if s.Height <= 0 {
		return 0, 0
	}
	step = float64(texHeight) / float64(s.Height)
	start = float64(s.Top-s.RawTop) * step
	return step, start
}

// RowDistance is the distance to the floor plane seen through screen row y.
// Rows at or above the horizon never meet the floor and return +Inf.
func (p *Projector) RowDistance(y int) float64 {
	offset := float64(y-p.horizon) + 0.5
	if offset <= 0 {
		return math.Inf(1)
	}
	return cameraHeight * p.scale / offset
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
