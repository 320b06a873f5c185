package headless

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/road"
)

func TestRun_WritesFrames(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ScreenWidth, cfg.ScreenHeight = 64, 48
	cfg.DrawnSegments = 60
	track, err := road.BuildTrack("test", []road.Descriptor{
		{EaseIn: 10, Main: 20, EaseOut: 10, Curve: 4, Hill: 10},
		{Main: 20},
	}, cfg)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "frames")
	res, err := Run(cfg, track, Options{Ticks: 90, Every: 30, Throttle: 1, SteerPeriod: 1, OutDir: dir, Seed: 3})
	require.NoError(t, err)

	require.Len(t, res.Frames, 3)
	assert.Equal(t, filepath.Join(dir, "frame-00030.png"), res.Frames[0])
	assert.Positive(t, res.Snapshot.Vehicle.Speed)

	f, err := os.Open(res.Frames[2])
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestRun_RejectsBadOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	track, err := road.BuildTrack("test", []road.Descriptor{{Main: 10}}, cfg)
	require.NoError(t, err)

	_, err = Run(cfg, track, Options{Ticks: 1, Every: 0, OutDir: t.TempDir()})
	assert.ErrorIs(t, err, config.ErrConfiguration)

	empty, err := road.BuildTrack("empty", nil, cfg)
	require.NoError(t, err)
	_, err = Run(cfg, empty, Options{Ticks: 1, Every: 1, OutDir: t.TempDir()})
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

func TestScriptedInput(t *testing.T) {
	straight := Options{Throttle: 0.5}
	assert.Equal(t, 0.5, ScriptedInput(straight, 10, 1.0/60).Vertical)
	assert.Equal(t, 0.0, ScriptedInput(straight, 10, 1.0/60).Horizontal)

	weave := Options{Throttle: 1, SteerPeriod: 1}
	assert.InDelta(t, 1, ScriptedInput(weave, 15, 1.0/60).Horizontal, 1e-9)
	assert.InDelta(t, -1, ScriptedInput(weave, 45, 1.0/60).Horizontal, 1e-9)
}
