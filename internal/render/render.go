// Package render composes a frame column by column: sky, then floor, then
// the textured wall strip.
package render

import (
	"context"
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/sync/errgroup"

	"github.com/trvswgnr/poke3d/internal/pixel"
	"github.com/trvswgnr/poke3d/internal/raycast"
	"github.com/trvswgnr/poke3d/internal/texture"
)

// Grid is the map contract the renderer reads.
type Grid interface {
	raycast.Grid
	IsIsolatedWall(col, row int) bool
}

// Options are the tunables of one renderer.
type Options struct {
	// Workers > 1 splits the columns into that many bands rendered in parallel.
	Workers int
	// SideShade halves the brightness of horizontal wall faces.
	SideShade bool
	// FloorShade is k in the floor falloff 1/(1+k*d^2).
	FloorShade float64
	// SkyPan is the fraction of a full sky turn added per tick.
	SkyPan float64

	SkyColor   pixel.RGB
	FloorColor pixel.RGB
	WallColor  pixel.RGB
}

// Textures are the bound textures. A nil entry selects the flat colour.
type Textures struct {
	Walls texture.Walls
	Floor *texture.Texture
	Sky   *texture.Texture
}

// Scene is what one frame is rendered from.
type Scene struct {
	Grid   Grid
	Camera raycast.Camera
	Tick   uint64
}

type Renderer struct {
	proj *raycast.Projector
	tex  Textures
	opts Options

	rowDist  []float64
	rowShade []float64
	hits     []raycast.Hit
}

func New(proj *raycast.Projector, tex Textures, opts Options) *Renderer {
	r := &Renderer{
		proj: proj,
		tex:  tex,
		opts: opts,
	}

	h := proj.Height()
	r.rowDist = make([]float64, h)
	r.rowShade = make([]float64, h)
	for y := 0; y < h; y++ {
		d := proj.RowDistance(y)
		r.rowDist[y] = d
		r.rowShade[y] = Shade(d, opts.FloorShade)
	}
	r.hits = make([]raycast.Hit, proj.Width())
	return r
}

// Shade is the distance falloff 1/(1+k*d^2). It is 1 at the camera and
// never increases with distance for k >= 0.
func Shade(dist, k float64) float64 {
	if k <= 0 {
		return 1
	}
	if math.IsInf(dist, 1) {
		return 0
	}
	return 1 / (1 + k*dist*dist)
}

// Hits returns the wall hit of each column from the last rendered frame.
func (r *Renderer) Hits() []raycast.Hit { return r.hits }

func (r *Renderer) Projector() *raycast.Projector { return r.proj }

// Render draws a full frame into dst.
func (r *Renderer) Render(ctx context.Context, dst pixel.Surface, scene Scene) error {
	w := r.proj.Width()
	workers := r.opts.Workers
	if workers <= 1 || w < workers {
		for x := 0; x < w; x++ {
			r.drawColumn(dst, scene, x)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	band := (w + workers - 1) / workers
	for start := 0; start < w; start += band {
		start, end := start, start+band
		if end > w {
			end = w
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := start; x < end; x++ {
				r.drawColumn(dst, scene, x)
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Renderer) drawColumn(dst pixel.Surface, scene Scene, x int) {
	cam := scene.Camera
	hit := raycast.Cast(scene.Grid, cam, x, r.proj.Width())
	r.hits[x] = hit
	strip := r.proj.Strip(hit.Distance)

	r.drawSky(dst, x, strip.Top, hit.RayDir, scene.Tick)
	r.drawFloor(dst, x, strip.Bottom, cam)
	r.drawWall(dst, x, strip, hit, scene.Grid)
}

func (r *Renderer) drawSky(dst pixel.Surface, x, top int, ray geom.Vector2, tick uint64) {
	sky := r.tex.Sky
	if sky == nil {
		for y := 0; y < top; y++ {
			dst.SetPixel(x, y, r.opts.SkyColor)
		}
		return
	}

	turn := (math.Atan2(ray.Y, ray.X)+math.Pi)/(2*math.Pi) + float64(tick)*r.opts.SkyPan
	u := int(math.Floor(turn * float64(sky.Width())))
	horizon := r.proj.Horizon()
	for y := 0; y < top; y++ {
		v := 0
		if horizon > 0 {
			v = y * sky.Height() / horizon
		}
		dst.SetPixel(x, y, sky.At(u, v))
	}
}

func (r *Renderer) drawFloor(dst pixel.Surface, x, bottom int, cam raycast.Camera) {
	h := r.proj.Height()
	floor := r.tex.Floor

	for y := bottom; y < h; y++ {
		d := r.rowDist[y]
		if math.IsInf(d, 1) {
			dst.SetPixel(x, y, r.opts.FloorColor)
			continue
		}
		shade := r.rowShade[y]
		if floor == nil {
			dst.SetPixel(x, y, r.opts.FloorColor.Scale(shade))
			continue
		}

		wx, wy := floorPoint(cam, d, x, r.proj.Width())
		u := int((wx - math.Floor(wx)) * float64(floor.Width()))
		v := int((wy - math.Floor(wy)) * float64(floor.Height()))
		dst.SetPixel(x, y, floor.At(u, v).Scale(shade))
	}
}

// floorPoint is the world point at distance d under column x. It
// interpolates between the rays through the left and right screen edges at
// the same fraction the column's wall ray uses, so floor and wall agree.
func floorPoint(cam raycast.Camera, d float64, x, width int) (wx, wy float64) {
	t := float64(x) / float64(width)
	lx := cam.Pos.X + d*(cam.Dir.X-cam.Plane.X)
	ly := cam.Pos.Y + d*(cam.Dir.Y-cam.Plane.Y)
	rx := cam.Pos.X + d*(cam.Dir.X+cam.Plane.X)
	ry := cam.Pos.Y + d*(cam.Dir.Y+cam.Plane.Y)
	return lx + (rx-lx)*t, ly + (ry-ly)*t
}

func (r *Renderer) drawWall(dst pixel.Surface, x int, strip raycast.Strip, hit raycast.Hit, grid Grid) {
	tex := r.tex.Walls.Select(hit.Side, grid.IsIsolatedWall(hit.MapX, hit.MapY))
	darken := r.opts.SideShade && hit.Side == raycast.SideHorizontal

	if tex == nil {
		c := r.opts.WallColor
		if darken {
			c = c.Halve()
		}
		for y := strip.Top; y < strip.Bottom; y++ {
			dst.SetPixel(x, y, c)
		}
		return
	}

	texX := hit.TexX(tex.Width())
	step, texPos := r.proj.TexScan(strip, tex.Height())
	for y := strip.Top; y < strip.Bottom; y++ {
		c := tex.At(texX, int(texPos))
		texPos += step
		if darken {
			c = c.Halve()
		}
		dst.SetPixel(x, y, c)
	}
}
