package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/circuit/pkg/race"
)

// PauseScreen freezes a race and shows its lap times
type PauseScreen struct {
	track    string
	snap     race.Snapshot
	record   race.Record
	onResume func()
	onQuit   func()
}

// NewPauseScreen creates the pause overlay for a running session
func NewPauseScreen(track string, snap race.Snapshot, record race.Record, onResume, onQuit func()) *PauseScreen {
	return &PauseScreen{
		track:    track,
		snap:     snap,
		record:   record,
		onResume: onResume,
		onQuit:   onQuit,
	}
}

// Update handles input for the pause screen
func (ps *PauseScreen) Update() error {
	// Escape leaves the race
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ps.onQuit != nil {
			ps.onQuit()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ps.onResume != nil {
			ps.onResume()
		}
	}
	return nil
}

// Draw renders the pause screen
func (ps *PauseScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{40, 40, 50, 255})

	face := text.NewGoXFace(bitmapfont.Face)
	drawCentered(screen, face, "PAUSED", float64(width)/2, 24, 2, color.RGBA{255, 200, 0, 255})

	textColor := color.RGBA{200, 200, 200, 255}
	lineHeight := 16.0
	x := float64(width)/2 - 80
	y := 70.0

	lines := []string{
		"Track:    " + ps.track,
		fmt.Sprintf("Laps:     %d", ps.snap.Laps),
		"Lap time: " + race.FormatLapTime(ps.snap.LapTime),
		"Last lap: " + race.FormatLapTime(ps.snap.LastLap),
		"Best lap: " + race.FormatLapTime(ps.snap.BestLap),
	}
	for _, line := range lines {
		drawTextAt(screen, face, line, x, y, textColor)
		y += lineHeight
	}

	y += lineHeight / 2
	recordColor := color.RGBA{255, 200, 50, 255}
	if ps.snap.BestLap > 0 && (ps.record.BestLap == 0 || ps.snap.BestLap < ps.record.BestLap) {
		drawTextAt(screen, face, "New track record!", x, y, color.RGBA{100, 255, 100, 255})
	} else {
		drawTextAt(screen, face, "Record:   "+race.FormatLapTime(ps.record.BestLap), x, y, recordColor)
	}

	instructionColor := color.RGBA{150, 150, 200, 255}
	drawCentered(screen, face, "ENTER to resume, ESC to leave", float64(width)/2, float64(height)-24, 1, instructionColor)
}

func drawTextAt(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
