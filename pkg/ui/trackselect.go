package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/circuit/pkg/race"
)

// TrackEntry is one selectable track file
type TrackEntry struct {
	Name    string
	File    string
	BestLap time.Duration // Zero when no lap is on record
}

// visibleEntries is how many buttons fit between the title and the help line
const visibleEntries = 5

// TrackSelectScreen lists the available tracks
type TrackSelectScreen struct {
	entries  []TrackEntry
	selected int
	onSelect func(TrackEntry) // Callback when a track is chosen
	onBack   func()
}

// NewTrackSelectScreen creates the menu with the first entry highlighted
func NewTrackSelectScreen(entries []TrackEntry, onSelect func(TrackEntry), onBack func()) *TrackSelectScreen {
	return &TrackSelectScreen{
		entries:  entries,
		onSelect: onSelect,
		onBack:   onBack,
	}
}

// Update handles keyboard navigation
func (ts *TrackSelectScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ts.onBack != nil {
			ts.onBack()
		}
		return nil
	}
	if len(ts.entries) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ts.selected = (ts.selected + len(ts.entries) - 1) % len(ts.entries)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ts.selected = (ts.selected + 1) % len(ts.entries)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ts.onSelect != nil {
			ts.onSelect(ts.entries[ts.selected])
		}
	}
	return nil
}

// Draw renders the menu
func (ts *TrackSelectScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2
	drawCentered(screen, face, "SELECT TRACK", centerX, float64(height)/10, 2, color.RGBA{255, 200, 50, 255})

	buttonWidth := float64(width) * 3 / 4
	buttonHeight := 22.0
	spacing := 28.0
	buttonX := centerX - buttonWidth/2
	top := float64(height) / 4

	// Scroll so the highlighted entry stays on screen
	first := 0
	if ts.selected >= visibleEntries {
		first = ts.selected - visibleEntries + 1
	}
	for i := first; i < len(ts.entries) && i < first+visibleEntries; i++ {
		entry := ts.entries[i]
		bg := color.RGBA{40, 40, 60, 255}
		fg := color.RGBA{255, 255, 255, 255}
		if i == ts.selected {
			bg = color.RGBA{60, 100, 140, 255}
			fg = color.RGBA{200, 240, 255, 255}
		}
		label := fmt.Sprintf("%-14s %s", entry.Name, race.FormatLapTime(entry.BestLap))
		drawButton(screen, face, label, buttonX, top+float64(i-first)*spacing, buttonWidth, buttonHeight, bg, fg)
	}

	if len(ts.entries) == 0 {
		drawCentered(screen, face, "no tracks found", centerX, top, 1, color.RGBA{255, 100, 100, 255})
	}
	drawCentered(screen, face, "UP/DOWN: choose  ENTER: race", centerX, float64(height)-24, 1, color.RGBA{150, 150, 150, 255})
}

// drawButton draws a bordered button with its label centred
func drawButton(screen *ebiten.Image, face text.Face, label string, x, y, width, height float64, bg, fg color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{80, 80, 100, 255}, false)

	// bitmapfont glyphs are about 12px tall
	drawCentered(screen, face, label, x+width/2, y+height/2-6, 1, fg)
}
