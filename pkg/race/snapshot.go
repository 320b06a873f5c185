package race

import (
	"fmt"
	"time"

	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// Snapshot is a read only copy of the race state for HUDs and sound.
type Snapshot struct {
	Vehicle    vehicle.Vehicle
	Camera     vehicle.Camera
	Segment    int
	Curve      float64
	SpeedRatio float64
	OffRoad    bool

	Laps    int
	Elapsed time.Duration
	LapTime time.Duration
	LastLap time.Duration
	BestLap time.Duration
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Vehicle:    s.vehicle,
		Camera:     s.camera,
		Segment:    s.segment.Index,
		Curve:      s.segment.Curve,
		SpeedRatio: s.vehicle.Speed / s.cfg.MaxSpeed(),
		OffRoad:    s.vehicle.OffRoad(),
		Laps:       s.laps,
		Elapsed:    s.elapsed,
		LapTime:    s.lapTime,
		LastLap:    s.lastLap,
		BestLap:    s.bestLap,
	}
}

// KPH converts the vehicle speed for display, one segment per frame being 300.
func (s Snapshot) KPH() int {
	return int(s.SpeedRatio*300 + 0.5)
}

// FormatLapTime renders d as m:ss.hh, or --:--.-- when no lap was set.
func FormatLapTime(d time.Duration) string {
	if d <= 0 {
		return "--:--.--"
	}
	hundredths := int64(d / (10 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%02d", hundredths/6000, hundredths/100%60, hundredths%100)
}
