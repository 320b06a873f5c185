package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSkyline(t *testing.T) {
	g := NewGenerator(160, 40)
	a := g.GenerateSkyline(7)
	b := g.GenerateSkyline(7)

	assert.Equal(t, 160, a.Bounds().Dx())
	assert.Equal(t, 40, a.Bounds().Dy())
	assert.Equal(t, a.Pix, b.Pix, "same seed gives the same image")
	assert.NotEqual(t, a.Pix, g.GenerateSkyline(8).Pix)

	for x := 0; x < 160; x++ {
		assert.Equal(t, uint8(255), a.RGBAAt(x, 39).A, "bottom row is opaque at x=%d", x)
	}

	transparent := 0
	for x := 0; x < 160; x++ {
		if a.RGBAAt(x, 0).A == 0 {
			transparent++
		}
	}
	assert.Positive(t, transparent, "sky shows through above the hills")
}

func TestParallax(t *testing.T) {
	var p Parallax
	p.Advance(4, 1)
	assert.Equal(t, 2, p.Offset())

	p.Advance(-6, 0.5)
	assert.Equal(t, 0, p.Offset())

	p.Advance(2, 0)
	assert.Equal(t, 0, p.Offset(), "standing still does not scroll")

	p.Advance(-2, 1)
	assert.Equal(t, -1, p.Offset())

	p.Reset()
	assert.Equal(t, 0, p.Offset())

	fast := Parallax{Drift: 2}
	fast.Advance(1, 1)
	assert.Equal(t, 2, fast.Offset())
}
