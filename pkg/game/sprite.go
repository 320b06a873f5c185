package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// carSprite builds the rear view of the player's car
func carSprite() *ebiten.Image {
	carWidth, carHeight := 48, 28
	img := image.NewRGBA(image.Rect(0, 0, carWidth, carHeight))
	fill := func(x0, y0, x1, y1 int, c color.RGBA) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}

	// Wheels (black)
	wheelColor := color.RGBA{40, 40, 40, 255}
	fill(2, 18, 10, 28, wheelColor)
	fill(38, 18, 46, 28, wheelColor)

	// Main car body (red)
	fill(4, 10, 44, 24, color.RGBA{220, 20, 20, 255})

	// Roof (slightly darker and smaller)
	fill(10, 2, 38, 10, color.RGBA{180, 15, 15, 255})

	// Rear window (light blue/cyan)
	fill(12, 4, 36, 10, color.RGBA{100, 180, 220, 255})

	// Highlights along the boot
	fill(6, 10, 42, 12, color.RGBA{255, 100, 100, 255})

	// Taillights (red)
	taillightColor := color.RGBA{255, 0, 0, 255}
	fill(6, 14, 12, 18, taillightColor)
	fill(36, 14, 42, 18, taillightColor)

	// Number plate
	fill(19, 16, 29, 20, color.RGBA{255, 255, 100, 255})

	// Outline (black border)
	borderColor := color.RGBA{0, 0, 0, 255}
	fill(4, 23, 44, 24, borderColor)
	fill(4, 10, 5, 24, borderColor)
	fill(43, 10, 44, 24, borderColor)

	return ebiten.NewImageFromImage(img)
}
