package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator creates the backdrop drawn above the horizon
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateSkyline creates a band of rolling hills topped with a tree line.
// Pixels above the silhouette stay transparent so the sky colour shows
// through. The image tiles horizontally.
func (g *Generator) GenerateSkyline(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// Far hills, lighter and hazier
	g.drawHills(img, rng, 0.55, 2, color.RGBA{110, 150, 120, 255})
	// Near hills
	g.drawHills(img, rng, 0.35, 3, color.RGBA{45, 110, 45, 255})

	// Tree line along the bottom
	for x := 0; x < g.Width; x += 4 + rng.Intn(8) {
		if rng.Float64() < 0.35 {
			continue
		}
		g.drawTree(img, x, g.Height-1, rng)
	}

	return img
}

// drawHills fills a sum of sines whose periods divide the width, so the
// outline wraps seamlessly.
func (g *Generator) drawHills(img *image.RGBA, rng *rand.Rand, height float64, waves int, c color.RGBA) {
	phases := make([]float64, waves)
	for i := range phases {
		phases[i] = rng.Float64() * 2 * math.Pi
	}

	for x := 0; x < g.Width; x++ {
		t := float64(x) / float64(g.Width) * 2 * math.Pi
		h := 0.0
		for i, phase := range phases {
			h += math.Sin(t*float64(i+1)+phase) / float64(i+1)
		}
		top := g.Height - int(float64(g.Height)*height*(0.6+0.25*h))
		if top < 0 {
			top = 0
		}
		for y := top; y < g.Height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawTree draws a simple pine tree standing on row y
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 6 + rng.Intn(8)
	width := 4 + rng.Intn(4)

	// Trunk
	trunkColor := color.RGBA{60, 40, 20, 255}
	for ty := 0; ty < height/4; ty++ {
		g.set(img, x, y-ty, trunkColor)
	}

	// Leaves (Triangle shape)
	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	crown := height - height/4
	for ly := 0; ly < crown; ly++ {
		rowW := width * (crown - ly) / crown
		for lx := -rowW / 2; lx <= rowW/2; lx++ {
			g.set(img, x+lx, y-height/4-ly, leavesColor)
		}
	}
}

// set wraps x so trees on the edges continue on the other side.
func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if y < 0 || y >= g.Height {
		return
	}
	x %= g.Width
	if x < 0 {
		x += g.Width
	}
	img.SetRGBA(x, y, c)
}
