package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// ErrConfiguration marks every fatal configuration problem: invalid numeric
// settings, malformed section descriptors and empty tracks.
var ErrConfiguration = errors.New("configuration error")

// MaxDrawnSegments keeps four vertices per drawn segment addressable by uint16 indices.
const MaxDrawnSegments = math.MaxUint16 / 4

// Config is the numeric configuration table shared by the track builder,
// the vehicle dynamics and the projection.
type Config struct {
	// Render target
	ScreenWidth  int `mapstructure:"screen-width"`
	ScreenHeight int `mapstructure:"screen-height"`
	TargetFPS    int `mapstructure:"target-fps"`

	// Road information
	SegmentLength float64 `mapstructure:"segment-length"`
	RoadWidth     float64 `mapstructure:"road-width"`
	DrawnSegments int     `mapstructure:"drawn-segments"`

	// Camera information
	BaseCameraYPosition float64 `mapstructure:"base-camera-y"`
	CameraDistanceToCar float64 `mapstructure:"camera-distance-to-car"`

	// Driving forces, each a fraction of MaxSpeed per second
	CentrifugalForce         float64 `mapstructure:"centrifugal-force"`
	AccelerationForce        float64 `mapstructure:"acceleration-force"`
	DecelerationForce        float64 `mapstructure:"deceleration-force"`
	OffRoadDecelerationForce float64 `mapstructure:"off-road-deceleration-force"`
	OffRoadMaxSpeedModifier  float64 `mapstructure:"off-road-max-speed-modifier"`
	BrakingForce             float64 `mapstructure:"braking-force"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:              320,
		ScreenHeight:             240,
		TargetFPS:                60,
		SegmentLength:            100,
		RoadWidth:                1000,
		DrawnSegments:            200,
		BaseCameraYPosition:      1000,
		CameraDistanceToCar:      200,
		CentrifugalForce:         0.3,
		AccelerationForce:        0.2,
		DecelerationForce:        0.2,
		OffRoadDecelerationForce: 0.5,
		OffRoadMaxSpeedModifier:  0.25,
		BrakingForce:             1.0,
	}
}

// SetDefaults registers the defaults on v so flags, env and config files
// only need to override what they change.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("screen-width", d.ScreenWidth)
	v.SetDefault("screen-height", d.ScreenHeight)
	v.SetDefault("target-fps", d.TargetFPS)
	v.SetDefault("segment-length", d.SegmentLength)
	v.SetDefault("road-width", d.RoadWidth)
	v.SetDefault("drawn-segments", d.DrawnSegments)
	v.SetDefault("base-camera-y", d.BaseCameraYPosition)
	v.SetDefault("camera-distance-to-car", d.CameraDistanceToCar)
	v.SetDefault("centrifugal-force", d.CentrifugalForce)
	v.SetDefault("acceleration-force", d.AccelerationForce)
	v.SetDefault("deceleration-force", d.DecelerationForce)
	v.SetDefault("off-road-deceleration-force", d.OffRoadDecelerationForce)
	v.SetDefault("off-road-max-speed-modifier", d.OffRoadMaxSpeedModifier)
	v.SetDefault("braking-force", d.BrakingForce)
}

// FromViper decodes and validates the configuration table held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config: %w", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out of range value at once.
func (c *Config) Validate() error {
	var errs error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.ScreenWidth > 0, "screen-width must be positive, got %d", c.ScreenWidth)
	check(c.ScreenHeight > 0, "screen-height must be positive, got %d", c.ScreenHeight)
	check(c.TargetFPS >= 24 && c.TargetFPS <= 240, "target-fps must be in [24,240], got %d", c.TargetFPS)
	check(c.SegmentLength > 0, "segment-length must be positive, got %g", c.SegmentLength)
	check(c.RoadWidth > 0, "road-width must be positive, got %g", c.RoadWidth)
	check(c.DrawnSegments > 0 && c.DrawnSegments <= MaxDrawnSegments,
		"drawn-segments must be in [1,%d], got %d", MaxDrawnSegments, c.DrawnSegments)
	check(c.BaseCameraYPosition > 0, "base-camera-y must be positive, got %g", c.BaseCameraYPosition)
	check(c.CameraDistanceToCar > 0, "camera-distance-to-car must be positive, got %g", c.CameraDistanceToCar)

	forces := []struct {
		name  string
		value float64
	}{
		{"centrifugal-force", c.CentrifugalForce},
		{"acceleration-force", c.AccelerationForce},
		{"deceleration-force", c.DecelerationForce},
		{"off-road-deceleration-force", c.OffRoadDecelerationForce},
		{"off-road-max-speed-modifier", c.OffRoadMaxSpeedModifier},
		{"braking-force", c.BrakingForce},
	}
	for _, f := range forces {
		check(f.value >= 0 && f.value <= 1, "%s must be in [0,1], got %g", f.name, f.value)
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, errs)
	}
	return nil
}

// DistanceToPlane is the distance from the camera to the projection plane.
func (c *Config) DistanceToPlane() float64 {
	return c.CameraDistanceToCar / c.BaseCameraYPosition
}

// FrameStep is the nominal tick length in seconds.
func (c *Config) FrameStep() float64 {
	return 1 / float64(c.TargetFPS)
}

// MaxSpeed is one segment per frame at the target frame rate.
func (c *Config) MaxSpeed() float64 {
	return c.SegmentLength / c.FrameStep()
}

// MaxSpeedOffRoad is the speed above which the off-road penalty applies.
func (c *Config) MaxSpeedOffRoad() float64 {
	return c.MaxSpeed() * c.OffRoadMaxSpeedModifier
}
