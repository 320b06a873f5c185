package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/circuit/pkg/race"
)

var hudFace = text.NewGoXFace(bitmapfont.Face)

// drawHUD renders speed, lap counters and the off-road warning
func drawHUD(screen *ebiten.Image, snap race.Snapshot) {
	width := float32(screen.Bounds().Dx())

	// Semi-transparent strip behind the text
	vector.DrawFilledRect(screen, 0, 0, width, 30, color.RGBA{20, 20, 30, 200}, false)

	kph := snap.KPH()
	// Color based on speed (green for normal, yellow for fast, red for very fast)
	var speedColor color.RGBA
	switch {
	case kph < 150:
		speedColor = color.RGBA{100, 255, 100, 255}
	case kph < 250:
		speedColor = color.RGBA{255, 255, 100, 255}
	default:
		speedColor = color.RGBA{255, 100, 100, 255}
	}
	drawText(screen, fmt.Sprintf("%3d KPH", kph), 4, 2, speedColor)
	drawText(screen, fmt.Sprintf("LAP %d", snap.Laps+1), 4, 16, color.RGBA{200, 200, 200, 255})

	right := float64(width) - 4
	drawTextRight(screen, "TIME "+race.FormatLapTime(snap.LapTime), right, 2, color.RGBA{200, 200, 200, 255})
	drawTextRight(screen, "BEST "+race.FormatLapTime(snap.BestLap), right, 16, color.RGBA{255, 200, 50, 255})

	// Speed gauge
	vector.DrawFilledRect(screen, 70, 6, 60, 6, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, 70, 6, float32(60*snap.SpeedRatio), 6, speedColor, false)

	if snap.OffRoad {
		msg := "OFF ROAD"
		w := text.Advance(msg, hudFace)
		drawText(screen, msg, (float64(width)-w)/2, 40, color.RGBA{255, 100, 100, 255})
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}

func drawTextRight(screen *ebiten.Image, s string, right, y float64, c color.Color) {
	drawText(screen, s, right-text.Advance(s, hudFace), y, c)
}
