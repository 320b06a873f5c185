package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/road"
)

func newTestDynamics(t *testing.T, descriptors ...road.Descriptor) (*Dynamics, *config.Config, *road.Track) {
	t.Helper()
	cfg := config.DefaultConfig()
	if len(descriptors) == 0 {
		descriptors = []road.Descriptor{{Main: 100}}
	}
	track, err := road.BuildTrack("test", descriptors, cfg)
	require.NoError(t, err)
	return NewDynamics(cfg, track), cfg, track
}

func TestStep_CoastingDecelerates(t *testing.T) {
	d, cfg, _ := newTestDynamics(t)
	maxSpeed := cfg.MaxSpeed()
	v := &Vehicle{Speed: maxSpeed, Offset: cfg.CameraDistanceToCar}
	c := &Camera{}

	dt := 1.0 / 60
	for i := 0; i < 60; i++ {
		_, err := d.Step(v, c, Input{}, dt)
		require.NoError(t, err)
	}
	assert.InDelta(t, maxSpeed-cfg.DecelerationForce*maxSpeed*1.0, v.Speed, 1e-6)
	assert.Equal(t, 0.0, v.Lateral)
}

func TestStep_SpeedNeverNegative(t *testing.T) {
	d, cfg, _ := newTestDynamics(t)
	v := &Vehicle{Speed: cfg.MaxSpeed() * 0.1}
	c := &Camera{}

	for i := 0; i < 120; i++ {
		_, err := d.Step(v, c, Input{Vertical: -1}, 1.0/60)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v.Speed, 0.0)
	}
	assert.Equal(t, 0.0, v.Speed)
}

func TestStep_AccelerationClampsAtMaxSpeed(t *testing.T) {
	d, cfg, _ := newTestDynamics(t)
	v := &Vehicle{}
	c := &Camera{}

	_, err := d.Step(v, c, Input{Vertical: 1}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, cfg.AccelerationForce*cfg.MaxSpeed()*0.5, v.Speed, 1e-9)

	for i := 0; i < 100; i++ {
		_, err := d.Step(v, c, Input{Vertical: 1}, 0.5)
		require.NoError(t, err)
	}
	assert.Equal(t, cfg.MaxSpeed(), v.Speed)
}

func TestStep_CameraWrapsForward(t *testing.T) {
	d, _, track := newTestDynamics(t)
	v := &Vehicle{Speed: 20}
	c := &Camera{Position: track.Length() - 1}

	step, err := d.Step(v, c, Input{Vertical: 1}, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 4, c.Position, 1e-9)
	assert.Equal(t, 1, step.Laps)
}

func TestStep_CameraWrapsNegativeDrift(t *testing.T) {
	d, _, track := newTestDynamics(t)
	v := &Vehicle{}
	c := &Camera{Position: -2.5 * track.Length()}

	step, err := d.Step(v, c, Input{}, 1.0/60)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*track.Length(), c.Position, 1e-9)
	assert.Equal(t, -3, step.Laps)
}

func TestStep_Steering(t *testing.T) {
	d, cfg, _ := newTestDynamics(t)
	v := &Vehicle{Speed: cfg.MaxSpeed() / 2}
	c := &Camera{}
	dt := 0.1

	_, err := d.Step(v, c, Input{Horizontal: 1, Vertical: 1}, dt)
	require.NoError(t, err)
	assert.InDelta(t, dt*2*0.5, v.Lateral, 1e-12)

	// out of range input is clamped
	v2 := &Vehicle{Speed: cfg.MaxSpeed() / 2}
	_, err = d.Step(v2, &Camera{}, Input{Horizontal: 5, Vertical: 1}, dt)
	require.NoError(t, err)
	assert.InDelta(t, v.Lateral, v2.Lateral, 1e-12)
}

func TestStep_CurvePullsOutwards(t *testing.T) {
	d, cfg, _ := newTestDynamics(t, road.Descriptor{Main: 100, Curve: 4})
	v := &Vehicle{Speed: cfg.MaxSpeed(), Offset: cfg.CameraDistanceToCar}
	c := &Camera{}
	dt := 1.0 / 60

	_, err := d.Step(v, c, Input{Vertical: 1}, dt)
	require.NoError(t, err)
	dx := dt * 2 * 1.0
	assert.InDelta(t, -dx*1.0*4*cfg.CentrifugalForce, v.Lateral, 1e-12)
}

func TestStep_OffRoadPenalty(t *testing.T) {
	d, cfg, _ := newTestDynamics(t)
	maxSpeed := cfg.MaxSpeed()
	dt := 1.0 / 60

	onRoad := &Vehicle{Speed: maxSpeed, Lateral: 0.5}
	offRoad := &Vehicle{Speed: maxSpeed, Lateral: 1.5}
	_, err := d.Step(onRoad, &Camera{}, Input{}, dt)
	require.NoError(t, err)
	_, err = d.Step(offRoad, &Camera{}, Input{}, dt)
	require.NoError(t, err)

	assert.True(t, offRoad.OffRoad())
	assert.False(t, onRoad.OffRoad())
	coasted := maxSpeed - cfg.DecelerationForce*maxSpeed*dt
	assert.InDelta(t, coasted, onRoad.Speed, 1e-9)
	assert.InDelta(t, coasted-cfg.OffRoadDecelerationForce*maxSpeed*dt, offRoad.Speed, 1e-9)

	// slow cars are not penalised
	slow := &Vehicle{Speed: cfg.MaxSpeedOffRoad() / 2, Lateral: 1.5}
	_, err = d.Step(slow, &Camera{}, Input{Vertical: 1}, dt)
	require.NoError(t, err)
	assert.InDelta(t, cfg.MaxSpeedOffRoad()/2+cfg.AccelerationForce*maxSpeed*dt, slow.Speed, 1e-9)
}

func TestStep_LateralClamp(t *testing.T) {
	d, cfg, _ := newTestDynamics(t)
	v := &Vehicle{Speed: cfg.MaxSpeed(), Lateral: 1.99}
	for i := 0; i < 30; i++ {
		_, err := d.Step(v, &Camera{}, Input{Horizontal: 1, Vertical: 1}, 1.0/60)
		require.NoError(t, err)
	}
	assert.Equal(t, 2.0, v.Lateral)
}

func TestStep_CameraHeightFollowsSegment(t *testing.T) {
	d, cfg, track := newTestDynamics(t, road.Descriptor{Main: 50, Hill: 20}, road.Descriptor{Main: 50})
	v := &Vehicle{Offset: cfg.CameraDistanceToCar}
	c := &Camera{Position: 60 * track.SegmentLength()}

	step, err := d.Step(v, c, Input{}, 1.0/60)
	require.NoError(t, err)
	expected, err := track.SegmentAt(c.Position + v.Offset)
	require.NoError(t, err)
	assert.Same(t, expected, step.Segment)
	assert.Equal(t, cfg.BaseCameraYPosition+expected.World.Y, c.Height)
	assert.Greater(t, c.Height, cfg.BaseCameraYPosition)
}

func TestStep_EmptyTrack(t *testing.T) {
	d, _, _ := newTestDynamics(t, road.Descriptor{})
	_, err := d.Step(&Vehicle{}, &Camera{}, Input{}, 1.0/60)
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

func TestStep_RejectsInvalidTimeStep(t *testing.T) {
	d, cfg, track := newTestDynamics(t)

	tests := []struct {
		name  string
		speed float64
		dt    float64
	}{
		{"nan", 100, math.NaN()},
		{"infinite", 100, math.Inf(1)},
		{"negative", 100, -1.0 / 60},
		{"position overflows", math.MaxFloat64, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Vehicle{Speed: tt.speed, Offset: cfg.CameraDistanceToCar}
			c := &Camera{Position: track.Length() / 2, Height: 1000}
			wantV, wantC := *v, *c

			_, err := d.Step(v, c, Input{Horizontal: 1, Vertical: 1}, tt.dt)
			assert.ErrorIs(t, err, ErrInvalidStep)
			assert.Equal(t, wantV, *v)
			assert.Equal(t, wantC, *c)
		})
	}

	// a zero step is valid and moves nothing
	c := &Camera{Position: 10}
	_, err := d.Step(&Vehicle{Speed: 100}, c, Input{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Position)
}

func TestStep_Deterministic(t *testing.T) {
	d, cfg, _ := newTestDynamics(t,
		road.Descriptor{EaseIn: 25, Main: 50, EaseOut: 25, Curve: 4, Hill: 20},
		road.Descriptor{Main: 50, Curve: -6, Hill: -20})

	run := func() (Vehicle, Camera) {
		v := Vehicle{Offset: cfg.CameraDistanceToCar}
		c := Camera{}
		for i := 0; i < 600; i++ {
			in := Input{Vertical: 1, Horizontal: float64(i%7-3) / 3}
			if i%50 > 40 {
				in.Vertical = -1
			}
			_, err := d.Step(&v, &c, in, 1.0/60)
			require.NoError(t, err)
		}
		return v, c
	}

	v1, c1 := run()
	v2, c2 := run()
	assert.Equal(t, v1, v2)
	assert.Equal(t, c1, c2)
}
