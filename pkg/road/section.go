package road

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/golangdaddy/circuit/pkg/config"
)

// SectionSpec is one authored road feature expressed in named categories.
type SectionSpec struct {
	EaseIn  LengthCategory `yaml:"ease-in"`
	Main    LengthCategory `yaml:"main"`
	EaseOut LengthCategory `yaml:"ease-out"`
	Curve   CurveCategory  `yaml:"curve"`
	Hill    HillCategory   `yaml:"hill"`
}

// Resolve looks the categories up once and returns the numeric descriptor.
func (s SectionSpec) Resolve() (Descriptor, error) {
	var d Descriptor
	var err error
	if d.EaseIn, err = s.EaseIn.Magnitude(); err != nil {
		return Descriptor{}, fmt.Errorf("ease-in: %w", err)
	}
	if d.Main, err = s.Main.Magnitude(); err != nil {
		return Descriptor{}, fmt.Errorf("main: %w", err)
	}
	if d.EaseOut, err = s.EaseOut.Magnitude(); err != nil {
		return Descriptor{}, fmt.Errorf("ease-out: %w", err)
	}
	curve, err := s.Curve.Magnitude()
	if err != nil {
		return Descriptor{}, err
	}
	hill, err := s.Hill.Magnitude()
	if err != nil {
		return Descriptor{}, err
	}
	d.Curve = float64(curve)
	d.Hill = float64(hill)
	return d, nil
}

// Descriptor is a resolved section: phase lengths in segments, curvature and
// height change in segment lengths.
type Descriptor struct {
	EaseIn  int
	Main    int
	EaseOut int
	Curve   float64
	Hill    float64
}

// Total is the number of segments the descriptor contributes.
func (d Descriptor) Total() int {
	return d.EaseIn + d.Main + d.EaseOut
}

// Validate rejects descriptors the builder cannot honour.
func (d Descriptor) Validate() error {
	if d.EaseIn < 0 || d.Main < 0 || d.EaseOut < 0 {
		return fmt.Errorf("%w: negative section length (ease-in %d, main %d, ease-out %d)",
			config.ErrConfiguration, d.EaseIn, d.Main, d.EaseOut)
	}
	if math.IsNaN(d.Curve) || math.IsInf(d.Curve, 0) || math.IsNaN(d.Hill) || math.IsInf(d.Hill, 0) {
		return fmt.Errorf("%w: non-finite curve %g or hill %g", config.ErrConfiguration, d.Curve, d.Hill)
	}
	return nil
}

// Section is a node of the authored track tree: either a Leaf or a Group.
type Section interface {
	// descriptors appends the resolved leaves below this node in order.
	descriptors(out []Descriptor, path string) ([]Descriptor, error)
}

// Leaf holds a single section.
type Leaf struct {
	Spec SectionSpec
}

// Group holds child sections, which may be groups themselves.
type Group struct {
	Name     string
	Children []Section
}

func (l Leaf) descriptors(out []Descriptor, path string) ([]Descriptor, error) {
	d, err := l.Spec.Resolve()
	if err != nil {
		return out, fmt.Errorf("section %s: %w", path, err)
	}
	return append(out, d), nil
}

func (g Group) descriptors(out []Descriptor, path string) ([]Descriptor, error) {
	var err error
	for i, child := range g.Children {
		out, err = child.descriptors(out, fmt.Sprintf("%s/%s[%d]", path, g.label(), i))
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func (g Group) label() string {
	if g.Name == "" {
		return "group"
	}
	return g.Name
}

// Flatten walks the tree depth first and returns the ordered leaf descriptors.
func Flatten(root Section) ([]Descriptor, error) {
	if root == nil {
		return nil, nil
	}
	return root.descriptors(nil, "")
}

// SegmentCount is the number of segments the descriptors will produce.
func SegmentCount(descriptors []Descriptor) int {
	return lo.SumBy(descriptors, Descriptor.Total)
}
