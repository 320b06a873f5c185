package race

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/projection"
	"github.com/golangdaddy/circuit/pkg/render"
	"github.com/golangdaddy/circuit/pkg/road"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// StartLineSegments is the number of segments painted as the start line.
const StartLineSegments = 3

// Session is one race on one track: the player state plus the per frame
// pipeline that turns it into geometry.
type Session struct {
	ID uuid.UUID

	cfg     *config.Config
	track   *road.Track
	vehicle vehicle.Vehicle
	camera  vehicle.Camera
	segment *road.Segment

	dynamics  *vehicle.Dynamics
	projector *projection.Projector
	assembler *render.Assembler
	batches   [render.GroupCount]*render.Batch

	laps    int
	elapsed time.Duration
	lapTime time.Duration
	lastLap time.Duration
	bestLap time.Duration

	log *log.Logger
}

// Option customises a Session.
type Option func(*Session)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithAnnotator replaces the start line annotator.
func WithAnnotator(a render.Annotator) Option {
	return func(s *Session) {
		s.assembler = render.NewAssembler(s.cfg, a)
	}
}

// StartLine annotates the first StartLineSegments segments.
func StartLine(index int) render.Annotation {
	if index < StartLineSegments {
		return render.AnnotationStartLine
	}
	return render.AnnotationNone
}

// NewSession validates the configuration and places the car on the start line.
func NewSession(cfg *config.Config, track *road.Track, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if track.SegmentCount() == 0 {
		return nil, fmt.Errorf("%w: track %q has no segments", config.ErrConfiguration, track.Name)
	}

	s := &Session{
		ID:        uuid.New(),
		cfg:       cfg,
		track:     track,
		dynamics:  vehicle.NewDynamics(cfg, track),
		projector: projection.NewProjector(cfg, track),
		assembler: render.NewAssembler(cfg, StartLine),
		log:       log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("race").With(log.String("session", s.ID.String()), log.String("track", track.Name))

	s.vehicle.Offset = cfg.CameraDistanceToCar
	player, err := track.SegmentAt(s.vehicle.Offset)
	if err != nil {
		return nil, err
	}
	s.segment = player
	s.camera.Height = cfg.BaseCameraYPosition + player.World.Y

	s.log.Info("session started",
		log.Int("segments", track.SegmentCount()),
		log.Float64("length", track.Length()))
	return s, nil
}

// Tick advances the race by dt seconds.
func (s *Session) Tick(in vehicle.Input, dt float64) error {
	step, err := s.dynamics.Step(&s.vehicle, &s.camera, in, dt)
	if err != nil {
		return fmt.Errorf("failed to step vehicle: %w", err)
	}
	s.segment = step.Segment

	d := time.Duration(dt * float64(time.Second))
	s.elapsed += d
	s.lapTime += d
	if step.Laps > 0 {
		s.laps += step.Laps
		s.lastLap = s.lapTime
		if s.bestLap == 0 || s.lastLap < s.bestLap {
			s.bestLap = s.lastLap
		}
		s.lapTime = 0
		s.log.Info("lap completed",
			log.Int("laps", s.laps),
			log.Duration("time", s.lastLap),
			log.Duration("best", s.bestLap))
	}
	return nil
}

// Render projects the current state and draws it on target. The target is
// always released. It reports whether a frame was produced; a failed frame
// is logged and skipped.
func (s *Session) Render(target render.Target) (ok bool) {
	if err := target.Acquire(); err != nil {
		s.log.Warn("failed to acquire render target", log.ErrorField(err))
		return false
	}
	defer target.Release()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("frame skipped", log.Any("panic", r))
			ok = false
		}
	}()

	pairs, err := s.projector.Project(s.camera, s.vehicle)
	if err != nil {
		s.log.Error("failed to project track", log.ErrorField(err))
		return false
	}
	s.batches = s.assembler.Assemble(pairs)
	for _, b := range s.batches {
		target.Draw(b)
	}
	return true
}

// Batches returns the geometry of the last rendered frame.
func (s *Session) Batches() [render.GroupCount]*render.Batch {
	return s.batches
}

// Track returns the track the session runs on.
func (s *Session) Track() *road.Track {
	return s.track
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}
