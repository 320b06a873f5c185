package render

import (
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/projection"
)

// Annotator returns the annotation of a segment. It must not depend on
// anything but the segment index.
type Annotator func(segmentIndex int) Annotation

// Assembler turns projected pairs into the four stripe batches.
type Assembler struct {
	halfWidth  float64
	halfHeight float64
	annotate   Annotator
	batches    [GroupCount]*Batch
}

// NewAssembler preallocates batches large enough for cfg.DrawnSegments
// pairs. annotate may be nil.
func NewAssembler(cfg *config.Config, annotate Annotator) *Assembler {
	a := &Assembler{
		halfWidth:  float64(cfg.ScreenWidth) / 2,
		halfHeight: float64(cfg.ScreenHeight) / 2,
		annotate:   annotate,
	}
	for g := range a.batches {
		a.batches[g] = newBatch(Group(g), cfg.DrawnSegments)
	}
	return a
}

// Assemble rebuilds every batch from pairs. The returned batches are owned
// by the assembler and overwritten by the next call.
func (a *Assembler) Assemble(pairs []projection.Pair) [GroupCount]*Batch {
	for _, b := range a.batches {
		b.reset()
	}

	for _, pair := range pairs {
		index := pair.Cur.Segment.Index
		q := Quad{SegmentIndex: index}
		if a.annotate != nil {
			q.Annotation = a.annotate(index)
		}

		grass, road := a.batches[GrassLight], a.batches[RoadLight]
		if index%2 == 1 {
			grass, road = a.batches[GrassDark], a.batches[RoadDark]
		}

		y1 := a.halfHeight - pair.Prev.Screen.Y
		y2 := a.halfHeight - pair.Cur.Screen.Y

		grass.add(a.halfWidth, y1, a.halfWidth, a.halfWidth, y2, a.halfWidth, q)
		road.add(pair.Prev.Screen.X, y1, pair.Prev.Screen.HalfWidth,
			pair.Cur.Screen.X, y2, pair.Cur.Screen.HalfWidth, q)
	}
	return a.batches
}
