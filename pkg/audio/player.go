package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and plays the engine tone.
type Player struct {
	mu          sync.Mutex
	engine      *EngineTone
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	initialized bool
}

// NewPlayer creates a paused player. volume is in halvings, 0 is full scale.
func NewPlayer(volume float64) *Player {
	engine := NewEngineTone(sampleRate)
	ctrl := &beep.Ctrl{Streamer: engine, Paused: true}
	return &Player{
		engine: engine,
		ctrl:   ctrl,
		volume: &effects.Volume{Streamer: ctrl, Base: 2, Volume: volume},
	}
}

// Init opens the speaker and starts streaming.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialise speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.initialized = true
	return nil
}

// Update feeds the current speed ratio to the engine tone.
func (p *Player) Update(speedRatio float64) {
	p.engine.SetSpeedRatio(speedRatio)
}

// SetPaused pauses or resumes the engine tone.
func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Paused reports whether the engine tone is paused.
func (p *Player) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
