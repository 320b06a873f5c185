package render

// Vertex is a screen position in pixels, origin top left.
type Vertex struct {
	X, Y float32
}

// Group selects the material a batch is drawn with.
type Group int

const (
	GrassLight Group = iota
	GrassDark
	RoadLight
	RoadDark

	GroupCount
)

func (g Group) String() string {
	switch g {
	case GrassLight:
		return "grass-light"
	case GrassDark:
		return "grass-dark"
	case RoadLight:
		return "road-light"
	case RoadDark:
		return "road-dark"
	}
	return "unknown"
}

// Road reports whether the group holds road trapezoids rather than ground quads.
func (g Group) Road() bool {
	return g == RoadLight || g == RoadDark
}

// Annotation is an opaque per segment state forwarded to the rasterizer.
// It never changes the geometry of a quad.
type Annotation int

const (
	AnnotationNone Annotation = iota
	AnnotationStartLine
	AnnotationSelected
)

// Quad describes the origin of four consecutive vertices in a batch.
type Quad struct {
	SegmentIndex int
	Annotation   Annotation
}

// Batch is the triangle list of one material group. Quad i owns
// Vertices[4i:4i+4] and Indices[6i:6i+6].
type Batch struct {
	Group    Group
	Vertices []Vertex
	Indices  []uint16
	Quads    []Quad
}

func newBatch(g Group, quads int) *Batch {
	return &Batch{
		Group:    g,
		Vertices: make([]Vertex, 0, quads*4),
		Indices:  make([]uint16, 0, quads*6),
		Quads:    make([]Quad, 0, quads),
	}
}

func (b *Batch) reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.Quads = b.Quads[:0]
}

// Len is the number of quads in the batch.
func (b *Batch) Len() int {
	return len(b.Quads)
}

// QuadVertices returns the four vertices of quad i: near left, near right,
// far left, far right.
func (b *Batch) QuadVertices(i int) []Vertex {
	return b.Vertices[i*4 : i*4+4]
}

// add appends a trapezoid with centre x1 and half-width w1 on row y1, and
// centre x2 and half-width w2 on row y2.
func (b *Batch) add(x1, y1, w1, x2, y2, w2 float64, q Quad) {
	base := uint16(len(b.Vertices))
	b.Vertices = append(b.Vertices,
		Vertex{X: float32(x1 - w1), Y: float32(y1)},
		Vertex{X: float32(x1 + w1), Y: float32(y1)},
		Vertex{X: float32(x2 - w2), Y: float32(y2)},
		Vertex{X: float32(x2 + w2), Y: float32(y2)},
	)
	b.Indices = append(b.Indices,
		base, base+2, base+1,
		base+2, base+3, base+1,
	)
	b.Quads = append(b.Quads, q)
}
