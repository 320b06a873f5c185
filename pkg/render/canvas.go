package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"golang.org/x/image/vector"
)

// ErrTargetBusy is returned by Acquire when the previous frame was not released.
var ErrTargetBusy = errors.New("render target already acquired")

var annotations = [...]Annotation{AnnotationNone, AnnotationStartLine, AnnotationSelected}

// Canvas is a software Target rasterizing into an RGBA image.
type Canvas struct {
	width, height int
	palette       Palette

	frame    *image.RGBA
	raster   *vector.Rasterizer
	fills    map[color.RGBA]*image.Uniform
	done     [len(annotations)]color.RGBA
	backdrop image.Image
	scroll   int
	acquired bool
}

// NewCanvas creates a canvas of width by height pixels.
func NewCanvas(width, height int, palette Palette) *Canvas {
	return &Canvas{
		width:   width,
		height:  height,
		palette: palette,
		frame:   image.NewRGBA(image.Rect(0, 0, width, height)),
		raster:  vector.NewRasterizer(width, height),
		fills:   map[color.RGBA]*image.Uniform{},
	}
}

// fill returns the uniform source for col. Sources are cached because
// storing a colour in an interface allocates.
func (c *Canvas) fill(col color.RGBA) *image.Uniform {
	u, ok := c.fills[col]
	if !ok {
		u = image.NewUniform(col)
		c.fills[col] = u
	}
	return u
}

// SetBackdrop sets the image drawn above the horizon, bottom aligned and
// tiled horizontally. scroll shifts it left by that many pixels.
func (c *Canvas) SetBackdrop(img image.Image, scroll int) {
	c.backdrop = img
	c.scroll = scroll
}

// Acquire clears the frame to the sky colour and paints the backdrop.
func (c *Canvas) Acquire() error {
	if c.acquired {
		return ErrTargetBusy
	}
	c.acquired = true

	draw.Draw(c.frame, c.frame.Bounds(), c.fill(c.palette.Sky), image.Point{}, draw.Src)
	if c.backdrop != nil {
		c.drawBackdrop()
	}
	return nil
}

func (c *Canvas) drawBackdrop() {
	b := c.backdrop.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	horizon := c.height / 2
	top := horizon - b.Dy()

	offset := c.scroll % b.Dx()
	if offset < 0 {
		offset += b.Dx()
	}
	for x := -offset; x < c.width; x += b.Dx() {
		r := image.Rect(x, top, x+b.Dx(), horizon)
		draw.Draw(c.frame, r, c.backdrop, b.Min, draw.Over)
	}
}

// Draw fills every quad of b. Quads sharing a colour are rasterized as one path.
func (c *Canvas) Draw(b *Batch) {
	if !c.acquired || b.Len() == 0 {
		return
	}
	done := c.done[:0]
	for _, a := range annotations {
		want := c.palette.Color(b.Group, a)
		if slices.Contains(done, want) {
			continue
		}
		done = append(done, want)

		c.raster.Reset(c.width, c.height)
		n := 0
		for i, q := range b.Quads {
			if c.palette.Color(b.Group, q.Annotation) != want {
				continue
			}
			c.addQuad(b.QuadVertices(i))
			n++
		}
		if n == 0 {
			continue
		}
		c.raster.Draw(c.frame, c.frame.Bounds(), c.fill(want), image.Point{})
	}
}

// addQuad traces the quad outline with a consistent winding so overlapping
// quads in one path never cancel out.
func (c *Canvas) addQuad(v []Vertex) {
	outline := [4]Vertex{v[0], v[1], v[3], v[2]}
	area := float32(0)
	for i := range outline {
		j := (i + 1) % len(outline)
		area += outline[i].X*outline[j].Y - outline[j].X*outline[i].Y
	}
	if area == 0 {
		return
	}
	if area < 0 {
		outline[1], outline[3] = outline[3], outline[1]
	}
	c.raster.MoveTo(outline[0].X, outline[0].Y)
	for _, p := range outline[1:] {
		c.raster.LineTo(p.X, p.Y)
	}
	c.raster.ClosePath()
}

// Release ends the frame.
func (c *Canvas) Release() {
	c.acquired = false
}

// Image returns the last rasterized frame. It is reused by the next frame.
func (c *Canvas) Image() *image.RGBA {
	return c.frame
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}
