package background

import "math"

// DefaultDrift is how many backdrop pixels a unit of curve scrolls per tick at full speed.
const DefaultDrift = 0.5

// Parallax tracks the horizontal scroll of the backdrop. Driving through a
// curve to the left moves the scenery right.
type Parallax struct {
	Drift  float64
	offset float64
}

// Advance scrolls for one tick through a segment with the given curve.
func (p *Parallax) Advance(curve, speedRatio float64) {
	drift := p.Drift
	if drift == 0 {
		drift = DefaultDrift
	}
	p.offset += curve * speedRatio * drift
}

// Offset is the scroll in whole pixels.
func (p *Parallax) Offset() int {
	return int(math.Floor(p.offset))
}

// Reset scrolls back to the start.
func (p *Parallax) Reset() {
	p.offset = 0
}
