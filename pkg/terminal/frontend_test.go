package terminal

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/render"
	"github.com/golangdaddy/circuit/pkg/road"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeScreen struct {
	mu     sync.Mutex
	w, h   int
	cells  map[[2]int]cell
	shown  int
	quit   chan struct{}
	closed bool
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, cells: map[[2]int]cell{}, quit: make(chan struct{})}
}

func (s *fakeScreen) Size() (int, int) { return s.w, s.h }

func (s *fakeScreen) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[[2]int{x, y}] = cell{r, style}
}

func (s *fakeScreen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown++
}

func (s *fakeScreen) PollEvent() tcell.Event {
	<-s.quit
	return nil
}

func (s *fakeScreen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.quit)
	}
}

func (s *fakeScreen) row(y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	for x := 0; x < s.w; x++ {
		b.WriteRune(s.cells[[2]int{x, y}].r)
	}
	return b.String()
}

func newTestSession(t *testing.T) *race.Session {
	t.Helper()
	cfg := config.DefaultConfig()
	track, err := road.BuildTrack("test", []road.Descriptor{{Main: 100}}, cfg)
	require.NoError(t, err)
	s, err := race.NewSession(cfg, track)
	require.NoError(t, err)
	return s
}

func TestKeyState_Decays(t *testing.T) {
	k := keyState{hold: 100 * time.Millisecond}
	now := time.Unix(1000, 0)

	assert.True(t, k.press(tcell.KeyUp, 0, now))
	assert.True(t, k.press(tcell.KeyRune, 'a', now))
	assert.False(t, k.press(tcell.KeyRune, 'x', now))

	assert.Equal(t, vehicle.Input{Horizontal: -1, Vertical: 1}, k.input(now.Add(50*time.Millisecond)))
	assert.Equal(t, vehicle.Input{}, k.input(now.Add(100*time.Millisecond)))
}

func TestKeyState_OppositeCancels(t *testing.T) {
	k := keyState{hold: time.Second}
	now := time.Unix(1000, 0)

	k.press(tcell.KeyLeft, 0, now)
	k.press(tcell.KeyRight, 0, now)
	assert.Equal(t, vehicle.Input{Horizontal: 1}, k.input(now))

	k.press(tcell.KeyRune, 'w', now)
	k.press(tcell.KeyRune, 'S', now)
	assert.Equal(t, vehicle.Input{Horizontal: 1, Vertical: -1}, k.input(now))
}

func TestFrontend_Draw(t *testing.T) {
	screen := newFakeScreen(40, 13)
	f := New(screen, newTestSession(t), nil)

	f.draw()

	assert.Equal(t, 1, screen.shown)
	assert.Equal(t, '▀', screen.cells[[2]int{0, 0}].r)
	assert.Equal(t, '▀', screen.cells[[2]int{39, 11}].r)
	assert.Contains(t, screen.row(12), "KPH")
	assert.Contains(t, screen.row(12), "LAP 1")

	// the sky fills the top row, the road the bottom centre
	fg, _, _ := screen.cells[[2]int{0, 0}].style.Decompose()
	sky := render.DefaultPalette().Sky
	assert.Equal(t, tcell.NewRGBColor(int32(sky.R), int32(sky.G), int32(sky.B)), fg)
}

func TestFrontend_RunStopsOnCancel(t *testing.T) {
	screen := newFakeScreen(20, 8)
	f := New(screen, newTestSession(t), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, screen.closed)
	assert.Positive(t, f.session.Snapshot().Elapsed)
}
