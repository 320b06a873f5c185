package headless

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/background"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/render"
	"github.com/golangdaddy/circuit/pkg/road"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// Options scripts a headless run.
type Options struct {
	Ticks       int     // Number of simulation ticks
	Every       int     // Write a frame every this many ticks
	Throttle    float64 // Constant vertical input
	SteerPeriod float64 // Seconds per full left-right steering cycle, 0 drives straight
	OutDir      string
	Seed        int64 // Backdrop seed
}

// Result summarises a finished run.
type Result struct {
	Frames   []string
	Snapshot race.Snapshot
}

// ScriptedInput is the input of tick i.
func ScriptedInput(opts Options, i int, dt float64) vehicle.Input {
	in := vehicle.Input{Vertical: opts.Throttle}
	if opts.SteerPeriod > 0 {
		in.Horizontal = math.Sin(2 * math.Pi * float64(i) * dt / opts.SteerPeriod)
	}
	return in
}

// Run simulates opts.Ticks ticks at the nominal frame step and writes every
// opts.Every-th frame to opts.OutDir as a PNG.
func Run(cfg *config.Config, track *road.Track, opts Options) (Result, error) {
	var res Result
	if opts.Every <= 0 {
		return res, fmt.Errorf("%w: every must be positive, got %d", config.ErrConfiguration, opts.Every)
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return res, fmt.Errorf("failed to create output directory: %w", err)
	}

	session, err := race.NewSession(cfg, track)
	if err != nil {
		return res, err
	}
	logger := log.Default().Named("headless").With(log.String("session", session.ID.String()))

	canvas := render.NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight, render.DefaultPalette())
	backdrop := background.NewGenerator(cfg.ScreenWidth, cfg.ScreenHeight/4).GenerateSkyline(opts.Seed)
	var parallax background.Parallax

	dt := cfg.FrameStep()
	for i := 0; i < opts.Ticks; i++ {
		if err := session.Tick(ScriptedInput(opts, i, dt), dt); err != nil {
			return res, err
		}
		snap := session.Snapshot()
		parallax.Advance(snap.Curve, snap.SpeedRatio)

		if (i+1)%opts.Every != 0 {
			continue
		}
		canvas.SetBackdrop(backdrop, parallax.Offset())
		if !session.Render(canvas) {
			continue
		}
		name := filepath.Join(opts.OutDir, fmt.Sprintf("frame-%05d.png", i+1))
		if err := writePNG(name, canvas); err != nil {
			return res, err
		}
		res.Frames = append(res.Frames, name)
		logger.Debug("frame written", log.String("file", name), log.Int("kph", snap.KPH()))
	}

	res.Snapshot = session.Snapshot()
	logger.Info("headless run finished",
		log.Int("frames", len(res.Frames)),
		log.Int("laps", res.Snapshot.Laps))
	return res, nil
}

func writePNG(name string, canvas *render.Canvas) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create frame: %w", err)
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return f.Close()
}
