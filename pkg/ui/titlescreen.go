package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	trackName      string
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen for the given track
func NewTitleScreen(trackName string, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		trackName:      trackName,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	// Enter, space or mouse click to start
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	// Calculate elapsed time for animations
	elapsed := time.Since(ts.startTime).Seconds()
	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Title with pulsing scale and gold colour
	titleText := "CIRCUIT"
	titleScale := 4.0 * (1.0 + 0.05*sinWave(elapsed*2.0))
	brightness := math.Min(1.0, 1.0+0.2*sinWave(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawCentered(screen, face, titleText, centerX, centerY-8*titleScale/2, titleScale, titleColor)

	// Track name as subtitle
	drawCentered(screen, face, ts.trackName, centerX, centerY+40, 1.5, color.RGBA{180, 180, 200, 255})

	// "Press to Start" blinks every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawCentered(screen, face, "ENTER to race, ESC to quit", centerX, float64(height)-40, 1, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height, elapsed)
}

func drawCentered(screen *ebiten.Image, face text.Face, s string, centerX, y, scale float64, c color.Color) {
	w := text.Advance(s, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawDecorativeElements draws two rules and a lane marking scrolling under
// the lower one
func drawDecorativeElements(screen *ebiten.Image, width, height int, elapsed float64) {
	lineColor := color.RGBA{50, 60, 80, 255}
	top := float32(height) / 6
	bottom := float32(height) * 5 / 6
	vector.StrokeLine(screen, 0, top, float32(width), top, 2, lineColor, false)
	vector.StrokeLine(screen, 0, bottom, float32(width), bottom, 2, lineColor, false)

	dashColor := color.RGBA{200, 200, 200, 120}
	offset := float32(math.Mod(elapsed*60, 24))
	for x := -24 + offset; x < float32(width); x += 24 {
		vector.StrokeLine(screen, x, bottom+8, x+12, bottom+8, 2, dashColor, false)
	}
}
