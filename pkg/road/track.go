package road

import (
	"fmt"
	"math"

	"github.com/golangdaddy/circuit/pkg/config"
)

// Vec3 is a world or camera space position.
type Vec3 struct {
	X, Y, Z float64
}

// Segment is a fixed length slice of road. Segments are created by the
// Builder and never modified afterwards.
type Segment struct {
	Index int     // Position in the track, contiguous from 0
	World Vec3    // X is always 0, Z is Index*SegmentLength
	Curve float64 // Lateral curvature applied while driving over the segment
}

// Track is the closed loop of segments a race is driven on.
type Track struct {
	Name          string
	segments      []Segment
	segmentLength float64
}

// SegmentLength is the constant spacing between segments.
func (t *Track) SegmentLength() float64 {
	return t.segmentLength
}

// SegmentCount returns the number of segments in the loop.
func (t *Track) SegmentCount() int {
	return len(t.segments)
}

// Length is the distance of one lap.
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * t.segmentLength
}

// Segments returns the segments in order. Callers must not modify them.
func (t *Track) Segments() []Segment {
	return t.segments
}

// Segment returns the segment with the given index, wrapping around the loop.
func (t *Track) Segment(index int) *Segment {
	n := len(t.segments)
	index %= n
	if index < 0 {
		index += n
	}
	return &t.segments[index]
}

// SegmentAt returns the segment covering longitudinal position z. Any finite
// z is folded into [0, Length()) so callers may pass positions from previous
// or following laps.
func (t *Track) SegmentAt(z float64) (*Segment, error) {
	if len(t.segments) == 0 {
		return nil, fmt.Errorf("%w: track %q has no segments", config.ErrConfiguration, t.Name)
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return nil, fmt.Errorf("segment lookup at non-finite position %g", z)
	}

	length := t.Length()
	z = math.Mod(z, length)
	if z < 0 {
		z += length
	}
	index := int(math.Floor(z/t.segmentLength)) % len(t.segments)
	return &t.segments[index], nil
}

// HeightRange returns the lowest and highest segment world Y.
func (t *Track) HeightRange() (lowest, highest float64) {
	for i, s := range t.segments {
		if i == 0 || s.World.Y < lowest {
			lowest = s.World.Y
		}
		if i == 0 || s.World.Y > highest {
			highest = s.World.Y
		}
	}
	return lowest, highest
}
