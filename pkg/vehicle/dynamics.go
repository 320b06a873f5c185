package vehicle

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/road"
)

// ErrInvalidStep is returned by Step for a time step or position that is
// negative or not finite. The state is left untouched.
var ErrInvalidStep = errors.New("invalid time step")

// Dynamics integrates player input into vehicle speed, lateral position and
// camera position over a fixed track.
type Dynamics struct {
	cfg   *config.Config
	track *road.Track
}

// Step is what a tick reports back besides the mutated state.
type Step struct {
	Segment *road.Segment // Segment under the car at the start of the tick
	Laps    int           // Number of times the camera crossed the start line forward
}

// NewDynamics binds the dynamics to a configuration and track.
func NewDynamics(cfg *config.Config, track *road.Track) *Dynamics {
	return &Dynamics{cfg: cfg, track: track}
}

// Step advances v and c by dt seconds.
func (d *Dynamics) Step(v *Vehicle, c *Camera, in Input, dt float64) (Step, error) {
	maxSpeed := d.cfg.MaxSpeed()
	trackLength := d.track.Length()
	horizontal := lo.Clamp(in.Horizontal, -1, 1)

	var step Step
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return step, fmt.Errorf("%w: dt %g", ErrInvalidStep, dt)
	}
	position := c.Position + dt*v.Speed
	if math.IsNaN(position) || math.IsInf(position, 0) {
		return step, fmt.Errorf("%w: camera position %g", ErrInvalidStep, position)
	}

	if trackLength > 0 {
		laps := math.Floor(position / trackLength)
		position -= laps * trackLength
		if position >= trackLength {
			position -= trackLength
			laps++
		}
		if position < 0 {
			position += trackLength
			laps--
		}
		step.Laps = int(laps)
	}

	player, err := d.track.SegmentAt(position + v.Offset)
	if err != nil {
		return Step{}, err
	}
	c.Position = position
	step.Segment = player

	speedPercent := v.Speed / maxSpeed
	dx := dt * 2 * speedPercent

	switch {
	case in.Vertical > 0:
		v.Speed += d.cfg.AccelerationForce * maxSpeed * dt
	case in.Vertical < 0:
		v.Speed -= d.cfg.BrakingForce * maxSpeed * dt
	default:
		v.Speed -= d.cfg.DecelerationForce * maxSpeed * dt
	}

	v.Lateral += horizontal * dx
	// curves push the car towards the outside
	v.Lateral -= dx * speedPercent * player.Curve * d.cfg.CentrifugalForce

	if math.Abs(v.Lateral) > 1 && v.Speed > d.cfg.MaxSpeedOffRoad() {
		v.Speed -= d.cfg.OffRoadDecelerationForce * maxSpeed * dt
	}

	v.Lateral = lo.Clamp(v.Lateral, -2, 2)
	v.Speed = lo.Clamp(v.Speed, 0, maxSpeed)

	c.Height = d.cfg.BaseCameraYPosition + player.World.Y
	return step, nil
}
