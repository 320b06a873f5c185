package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/circuit/pkg/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenTarget draws batches with DrawTriangles into an offscreen image and
// copies it to the window on Release.
type ebitenTarget struct {
	width, height int
	palette       render.Palette

	screen     *ebiten.Image
	offscreen  *ebiten.Image
	backdrop   *ebiten.Image
	scroll     int
	vertices   []ebiten.Vertex
	triangles  ebiten.DrawTrianglesOptions
	backdropOp ebiten.DrawImageOptions
	acquired   bool
}

func newEbitenTarget(width, height int, backdrop *ebiten.Image) *ebitenTarget {
	return &ebitenTarget{
		width:    width,
		height:   height,
		palette:  render.DefaultPalette(),
		backdrop: backdrop,
	}
}

// begin sets the window image the next frame is copied to.
func (t *ebitenTarget) begin(screen *ebiten.Image, scroll int) {
	t.screen = screen
	t.scroll = scroll
}

func (t *ebitenTarget) Acquire() error {
	if t.acquired {
		return render.ErrTargetBusy
	}
	if t.offscreen == nil {
		t.offscreen = ebiten.NewImage(t.width, t.height)
	}
	t.acquired = true

	t.offscreen.Fill(t.palette.Sky)
	if t.backdrop != nil {
		t.drawBackdrop()
	}
	return nil
}

func (t *ebitenTarget) drawBackdrop() {
	bw, bh := t.backdrop.Bounds().Dx(), t.backdrop.Bounds().Dy()
	if bw == 0 {
		return
	}
	offset := t.scroll % bw
	if offset < 0 {
		offset += bw
	}
	top := t.height/2 - bh
	for x := -offset; x < t.width; x += bw {
		t.backdropOp.GeoM.Reset()
		t.backdropOp.GeoM.Translate(float64(x), float64(top))
		t.offscreen.DrawImage(t.backdrop, &t.backdropOp)
	}
}

func (t *ebitenTarget) Draw(b *render.Batch) {
	if !t.acquired || b.Len() == 0 {
		return
	}

	t.vertices = t.vertices[:0]
	for i, q := range b.Quads {
		c := t.palette.Color(b.Group, q.Annotation)
		r, g, bl, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
		for _, v := range b.QuadVertices(i) {
			t.vertices = append(t.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: bl,
				ColorA: a,
			})
		}
	}
	t.offscreen.DrawTriangles(t.vertices, b.Indices, whiteSubImage, &t.triangles)
}

func (t *ebitenTarget) Release() {
	t.acquired = false
	if t.screen != nil && t.offscreen != nil {
		t.screen.DrawImage(t.offscreen, nil)
	}
}
