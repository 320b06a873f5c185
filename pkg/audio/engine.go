package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

const (
	idleFrequency = 55.0
	maxFrequency  = 220.0
	amplitude     = 0.2
)

// EngineTone is an endless engine drone whose pitch follows the speed ratio.
// SetSpeedRatio may be called from the game loop while the speaker goroutine
// streams.
type EngineTone struct {
	rate  beep.SampleRate
	phase float64
	ratio atomic.Uint64 // float64 bits
}

// NewEngineTone creates an idling engine tone.
func NewEngineTone(rate beep.SampleRate) *EngineTone {
	return &EngineTone{rate: rate}
}

// SetSpeedRatio sets the current speed as a fraction of the maximum speed.
func (e *EngineTone) SetSpeedRatio(r float64) {
	r = math.Max(0, math.Min(1, r))
	e.ratio.Store(math.Float64bits(r))
}

// SpeedRatio returns the last ratio set.
func (e *EngineTone) SpeedRatio() float64 {
	return math.Float64frombits(e.ratio.Load())
}

// Frequency is the fundamental for the current speed ratio.
func (e *EngineTone) Frequency() float64 {
	return idleFrequency + (maxFrequency-idleFrequency)*e.SpeedRatio()
}

func (e *EngineTone) Stream(samples [][2]float64) (n int, ok bool) {
	freq := e.Frequency()
	step := freq / float64(e.rate)
	for i := range samples {
		saw := 2.0 * (e.phase - 0.5)
		sine := math.Sin(2 * math.Pi * e.phase)
		val := amplitude * (0.6*saw + 0.4*sine)

		samples[i][0] = val
		samples[i][1] = val

		e.phase += step
		e.phase -= math.Floor(e.phase)
	}
	return len(samples), true
}

func (e *EngineTone) Err() error { return nil }
