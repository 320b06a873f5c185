package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// DefaultHold is how long a key press keeps its axis engaged. Terminals
// report key repeats but no releases.
const DefaultHold = 180 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// keyState turns key press events into held axes that decay.
type keyState struct {
	hold  time.Duration
	until [dirCount]time.Time
}

// press records a key event. It reports whether the key is a driving key.
func (k *keyState) press(key tcell.Key, r rune, now time.Time) bool {
	var d direction
	switch {
	case key == tcell.KeyLeft || key == tcell.KeyRune && (r == 'a' || r == 'A'):
		d = dirLeft
	case key == tcell.KeyRight || key == tcell.KeyRune && (r == 'd' || r == 'D'):
		d = dirRight
	case key == tcell.KeyUp || key == tcell.KeyRune && (r == 'w' || r == 'W'):
		d = dirUp
	case key == tcell.KeyDown || key == tcell.KeyRune && (r == 's' || r == 'S'):
		d = dirDown
	default:
		return false
	}
	k.until[d] = now.Add(k.hold)
	// opposite keys cancel each other immediately
	switch d {
	case dirLeft:
		k.until[dirRight] = time.Time{}
	case dirRight:
		k.until[dirLeft] = time.Time{}
	case dirUp:
		k.until[dirDown] = time.Time{}
	case dirDown:
		k.until[dirUp] = time.Time{}
	}
	return true
}

func (k *keyState) held(d direction, now time.Time) bool {
	return now.Before(k.until[d])
}

// input returns the axes held at now.
func (k *keyState) input(now time.Time) vehicle.Input {
	var in vehicle.Input
	if k.held(dirLeft, now) {
		in.Horizontal--
	}
	if k.held(dirRight, now) {
		in.Horizontal++
	}
	if k.held(dirUp, now) {
		in.Vertical++
	}
	if k.held(dirDown, now) {
		in.Vertical--
	}
	return in
}
