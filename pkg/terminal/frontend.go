package terminal

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/background"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/render"
)

// Screen is the part of tcell.Screen the frontend uses.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	PollEvent() tcell.Event
	Fini()
}

// NewScreen opens the controlling terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise screen: %w", err)
	}
	return screen, nil
}

// Frontend races a session in the terminal. Each cell shows two pixels of
// the software canvas using the upper half block.
type Frontend struct {
	screen   Screen
	session  *race.Session
	canvas   *render.Canvas
	backdrop image.Image
	parallax background.Parallax
	keys     keyState
	log      *log.Logger
}

// New creates a frontend drawing session on screen. backdrop may be nil.
func New(screen Screen, session *race.Session, backdrop image.Image) *Frontend {
	cfg := session.Config()
	return &Frontend{
		screen:   screen,
		session:  session,
		canvas:   render.NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight, render.DefaultPalette()),
		backdrop: backdrop,
		keys:     keyState{hold: DefaultHold},
		log:      log.Default().Named("terminal"),
	}
}

// Run drives the race until Escape, Ctrl-C or q is pressed or ctx is
// cancelled. The screen is finalised on return.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 16)

	// PollEvent returns nil once the screen is finalised
	g.Go(func() error {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer f.screen.Fini()
		defer cancel()
		return f.loop(ctx, events)
	})

	return g.Wait()
}

func (f *Frontend) loop(ctx context.Context, events <-chan tcell.Event) error {
	dt := f.session.Config().FrameStep()
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if f.handle(ev, time.Now()) {
				f.log.Info("quit")
				return nil
			}
		case now := <-ticker.C:
			if err := f.session.Tick(f.keys.input(now), dt); err != nil {
				return err
			}
			snap := f.session.Snapshot()
			f.parallax.Advance(snap.Curve, snap.SpeedRatio)
			f.draw()
		}
	}
}

// handle reports whether the player asked to quit.
func (f *Frontend) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		}
		f.keys.press(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		f.draw()
	}
	return false
}

// draw renders a frame and blits it, leaving the last row for the status line.
func (f *Frontend) draw() {
	f.canvas.SetBackdrop(f.backdrop, f.parallax.Offset())
	if !f.session.Render(f.canvas) {
		return
	}

	cols, rows := f.screen.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	blit(f.screen, f.canvas.Image(), cols, rows-1)
	f.status(cols, rows-1)
	f.screen.Show()
}

// blit samples img into cols by rows half block cells.
func blit(screen Screen, img *image.RGBA, cols, rows int) {
	b := img.Bounds()
	pixelRows := rows * 2
	for cy := 0; cy < rows; cy++ {
		top := b.Min.Y + (2*cy)*b.Dy()/pixelRows
		bottom := b.Min.Y + (2*cy+1)*b.Dy()/pixelRows
		for cx := 0; cx < cols; cx++ {
			x := b.Min.X + cx*b.Dx()/cols
			style := tcell.StyleDefault.
				Foreground(rgb(img, x, top)).
				Background(rgb(img, x, bottom))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func rgb(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (f *Frontend) status(cols, row int) {
	snap := f.session.Snapshot()
	line := fmt.Sprintf(" %3d KPH  LAP %d  TIME %s  BEST %s",
		snap.KPH(), snap.Laps+1, race.FormatLapTime(snap.LapTime), race.FormatLapTime(snap.BestLap))
	if snap.OffRoad {
		line += "  OFF ROAD"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(line)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		f.screen.SetContent(x, row, r, nil, style)
	}
}
