package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.InDelta(t, 0.2, cfg.DistanceToPlane(), 1e-12)
	assert.InDelta(t, 1.0/60, cfg.FrameStep(), 1e-12)
	assert.InDelta(t, 6000, cfg.MaxSpeed(), 1e-9)
	assert.InDelta(t, 1500, cfg.MaxSpeedOffRoad(), 1e-9)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errors int
	}{
		{"valid", func(c *Config) {}, 0},
		{"zero segment length", func(c *Config) { c.SegmentLength = 0 }, 1},
		{"negative segment length", func(c *Config) { c.SegmentLength = -100 }, 1},
		{"no drawn segments", func(c *Config) { c.DrawnSegments = 0 }, 1},
		{"too many drawn segments", func(c *Config) { c.DrawnSegments = MaxDrawnSegments + 1 }, 1},
		{"force above one", func(c *Config) { c.BrakingForce = 1.5 }, 1},
		{"negative force", func(c *Config) { c.CentrifugalForce = -0.1 }, 1},
		{"fps out of range", func(c *Config) { c.TargetFPS = 10 }, 1},
		{"several at once", func(c *Config) {
			c.SegmentLength = 0
			c.RoadWidth = 0
			c.AccelerationForce = 2
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errors == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
			// the wrapped multierr carries one entry per violation
			assert.Len(t, multierr.Errors(unwrapOnce(err)), tt.errors)
		})
	}
}

func unwrapOnce(err error) error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()[1]
	}
	return err
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("segment-length", 200)
	v.Set("drawn-segments", 50)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.SegmentLength)
	assert.Equal(t, 50, cfg.DrawnSegments)
	assert.Equal(t, 1000.0, cfg.RoadWidth)
	assert.InDelta(t, 12000, cfg.MaxSpeed(), 1e-9)
}

func TestFromViper_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("braking-force", 3)

	_, err := FromViper(v)
	assert.ErrorIs(t, err, ErrConfiguration)
}
