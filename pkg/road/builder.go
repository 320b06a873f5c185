package road

import (
	"fmt"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/config"
)

// Builder appends descriptor segments one section at a time. Height is
// continuous across sections: each section starts at the world Y of the
// last segment emitted so far.
type Builder struct {
	segmentLength float64
	segments      []Segment
	log           *log.Logger
}

// NewBuilder creates a builder for segments spaced segmentLength apart.
func NewBuilder(segmentLength float64) (*Builder, error) {
	if segmentLength <= 0 {
		return nil, fmt.Errorf("%w: segment length must be positive, got %g", config.ErrConfiguration, segmentLength)
	}
	return &Builder{
		segmentLength: segmentLength,
		log:           log.Default().Named("road.builder"),
	}, nil
}

// Add emits the segments of one descriptor.
func (b *Builder) Add(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}

	startY := 0.0
	if len(b.segments) > 0 {
		startY = b.segments[len(b.segments)-1].World.Y
	}
	endY := startY + d.Hill*b.segmentLength
	total := float64(d.Total())

	for i := 0; i < d.EaseIn; i++ {
		b.emit(QuadraticEaseIn(0, d.Curve, float64(i)/float64(d.EaseIn)),
			CosineEaseInOut(startY, endY, float64(i)/total))
	}
	for i := 0; i < d.Main; i++ {
		b.emit(d.Curve,
			CosineEaseInOut(startY, endY, float64(d.EaseIn+i)/total))
	}
	// Curve ease-out uses the cosine ease, not the quadratic mirror of the ease-in.
	for i := 0; i < d.EaseOut; i++ {
		b.emit(CosineEaseInOut(d.Curve, 0, float64(i)/float64(d.EaseOut)),
			CosineEaseInOut(startY, endY, float64(d.EaseIn+d.Main+i)/total))
	}

	b.log.Debug("section built",
		log.Int("segments", d.Total()),
		log.Float64("curve", d.Curve),
		log.Float64("startY", startY),
		log.Float64("endY", endY))
	return nil
}

func (b *Builder) emit(curve, y float64) {
	index := len(b.segments)
	b.segments = append(b.segments, Segment{
		Index: index,
		World: Vec3{X: 0, Y: y, Z: float64(index) * b.segmentLength},
		Curve: curve,
	})
}

// Track hands the segments over as a track. The builder must not be used afterwards.
func (b *Builder) Track(name string) *Track {
	t := &Track{
		Name:          name,
		segments:      b.segments,
		segmentLength: b.segmentLength,
	}
	b.segments = nil
	return t
}

// BuildTrack validates every descriptor and builds the track. An empty
// descriptor list yields an empty track; lookups on it fail.
func BuildTrack(name string, descriptors []Descriptor, cfg *config.Config) (*Track, error) {
	for i, d := range descriptors {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
	}

	b, err := NewBuilder(cfg.SegmentLength)
	if err != nil {
		return nil, err
	}
	b.segments = make([]Segment, 0, SegmentCount(descriptors))
	for _, d := range descriptors {
		if err := b.Add(d); err != nil {
			return nil, err
		}
	}

	t := b.Track(name)
	b.log.Info("track built",
		log.String("track", name),
		log.Int("descriptors", len(descriptors)),
		log.Int("segments", t.SegmentCount()),
		log.Float64("length", t.Length()))
	return t, nil
}
