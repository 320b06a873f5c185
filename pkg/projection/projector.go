package projection

import (
	"math"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/road"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// HorizonLimit is the highest screen Y (pixels above the horizon line) a
// segment may project to and still be drawn.
const HorizonLimit = 0.5

// Screen is a projected road centre line point in pixels. X is measured from
// the left edge, Y from the horizon line with up positive.
type Screen struct {
	X, Y      float64
	HalfWidth float64
}

// Point is the per-frame projection of one segment. World is a working copy
// of the segment position, shifted by whole laps when the drawn window runs
// past the start line.
type Point struct {
	Segment *road.Segment
	World   road.Vec3
	Camera  road.Vec3
	Screen  Screen
	Scale   float64 // -1 when the point could not be projected
}

// Pair is a drawable slice of road between two consecutive segments.
type Pair struct {
	Prev, Cur Point
	Window    int // Position of Cur in the drawn window, 0 is under the camera
}

// Projector maps the drawn window of segments to screen space every frame.
type Projector struct {
	track           *road.Track
	drawn           int
	roadWidth       float64
	distanceToPlane float64
	halfWidth       float64
	halfHeight      float64

	visible []Pair
}

// NewProjector allocates the scratch buffers for cfg.DrawnSegments pairs.
func NewProjector(cfg *config.Config, track *road.Track) *Projector {
	return &Projector{
		track:           track,
		drawn:           cfg.DrawnSegments,
		roadWidth:       cfg.RoadWidth,
		distanceToPlane: cfg.DistanceToPlane(),
		halfWidth:       float64(cfg.ScreenWidth) / 2,
		halfHeight:      float64(cfg.ScreenHeight) / 2,
		visible:         make([]Pair, 0, cfg.DrawnSegments),
	}
}

// Project returns the visible pairs of the window starting at the segment
// under the camera, nearest first. The returned slice is reused by the next
// call.
func (p *Projector) Project(c vehicle.Camera, v vehicle.Vehicle) ([]Pair, error) {
	p.visible = p.visible[:0]

	base, err := p.track.SegmentAt(c.Position)
	if err != nil {
		return nil, err
	}
	count := p.track.SegmentCount()
	segmentLength := p.track.SegmentLength()
	trackLength := p.track.Length()

	basePercent := math.Mod(c.Position, segmentLength) / segmentLength
	dx := -(base.Curve * basePercent)
	x := 0.0

	for i := 0; i < p.drawn; i++ {
		n := base.Index + i
		curIndex, curLap := wrap(n, count)
		prevIndex, prevLap := wrap(n-1, count)

		cur := p.track.Segment(curIndex)
		prev := p.track.Segment(prevIndex)

		var pair Pair
		pair.Window = i
		p.project(&pair.Prev, prev, prev.World.Z+float64(prevLap)*trackLength, x, 0, c, v)
		p.project(&pair.Cur, cur, cur.World.Z+float64(curLap)*trackLength, x, dx, c, v)

		if !p.drawable(&pair) {
			continue
		}
		p.visible = append(p.visible, pair)

		x += dx
		dx += cur.Curve
	}
	return p.visible, nil
}

func (p *Projector) project(pt *Point, s *road.Segment, z, x, dx float64, c vehicle.Camera, v vehicle.Vehicle) {
	pt.Segment = s
	pt.World = road.Vec3{X: s.World.X, Y: s.World.Y, Z: z}
	pt.Camera = road.Vec3{
		X: pt.World.X - v.Lateral*p.roadWidth - x - dx,
		Y: pt.World.Y - c.Height,
		Z: pt.World.Z - c.Position,
	}
	if pt.Camera.Z == 0 {
		pt.Scale = -1
		pt.Screen = Screen{}
		return
	}

	pt.Scale = p.distanceToPlane / pt.Camera.Z
	pt.Screen = Screen{
		X:         math.Round((1 + pt.Scale*pt.Camera.X) * p.halfWidth),
		Y:         math.Round(pt.Scale * pt.Camera.Y * p.halfHeight),
		HalfWidth: math.Round(pt.Scale * p.roadWidth * p.halfWidth),
	}
}

// drawable rejects pairs touching the camera plane, rising above the
// horizon or starting in front of the projection plane.
func (p *Projector) drawable(pair *Pair) bool {
	switch {
	case pair.Prev.Camera.Z == 0 || pair.Cur.Camera.Z == 0:
		return false
	case pair.Prev.Screen.Y > HorizonLimit || pair.Cur.Screen.Y > HorizonLimit:
		return false
	case pair.Prev.Camera.Z <= p.distanceToPlane:
		return false
	}
	return true
}

// wrap folds a window position into a segment index and the number of whole
// laps it lies ahead of (or behind) the base lap.
func wrap(n, count int) (index, lap int) {
	index = n % count
	lap = n / count
	if index < 0 {
		index += count
		lap--
	}
	return index, lap
}
