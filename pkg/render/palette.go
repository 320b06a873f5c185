package render

import "image/color"

// Palette maps material groups and annotations to colours.
type Palette struct {
	Sky       color.RGBA
	Groups    [GroupCount]color.RGBA
	StartLine color.RGBA
	Selected  color.RGBA
}

// DefaultPalette returns the stock colours.
func DefaultPalette() Palette {
	return Palette{
		Sky: color.RGBA{135, 206, 235, 255},
		Groups: [GroupCount]color.RGBA{
			GrassLight: {50, 160, 50, 255},
			GrassDark:  {34, 139, 34, 255},
			RoadLight:  {80, 80, 80, 255},
			RoadDark:   {64, 64, 64, 255},
		},
		StartLine: color.RGBA{255, 255, 255, 255},
		Selected:  color.RGBA{255, 255, 100, 255},
	}
}

// Color returns the fill colour of a quad in group g with annotation a.
// Annotations only recolour road quads.
func (p Palette) Color(g Group, a Annotation) color.RGBA {
	if g.Road() {
		switch a {
		case AnnotationStartLine:
			return p.StartLine
		case AnnotationSelected:
			return p.Selected
		}
	}
	return p.Groups[g]
}
