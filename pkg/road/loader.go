package road

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/golangdaddy/circuit/pkg/config"
)

// Layout is a parsed track file: a name and the root of the section tree.
type Layout struct {
	Name string
	Root Group
}

type layoutFile struct {
	Name     string        `yaml:"name"`
	Sections []sectionNode `yaml:"sections"`
}

// sectionNode decodes either a group (a mapping with "sections") or a leaf.
type sectionNode struct {
	section Section
}

func (n *sectionNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: section must be a mapping", value.Line)
	}

	isGroup := false
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "sections" {
			isGroup = true
			break
		}
	}

	if isGroup {
		var g struct {
			Name     string        `yaml:"name"`
			Sections []sectionNode `yaml:"sections"`
		}
		if err := value.Decode(&g); err != nil {
			return err
		}
		n.section = Group{Name: g.Name, Children: nodesToSections(g.Sections)}
		return nil
	}

	var spec SectionSpec
	if err := value.Decode(&spec); err != nil {
		return err
	}
	n.section = Leaf{Spec: spec}
	return nil
}

func nodesToSections(nodes []sectionNode) []Section {
	out := make([]Section, len(nodes))
	for i, n := range nodes {
		out[i] = n.section
	}
	return out
}

// ParseLayout reads a YAML track description.
func ParseLayout(r io.Reader) (*Layout, error) {
	var f layoutFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty track file", config.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: invalid track file: %w", config.ErrConfiguration, err)
	}
	return &Layout{
		Name: f.Name,
		Root: Group{Name: f.Name, Children: nodesToSections(f.Sections)},
	}, nil
}

// LoadLayout reads a YAML track description from a file. The file name
// without extension is used when the file does not name the track.
func LoadLayout(filename string) (*Layout, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open track file: %w", err)
	}
	defer file.Close()

	layout, err := ParseLayout(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if layout.Name == "" {
		layout.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		layout.Root.Name = layout.Name
	}
	return layout, nil
}

// Build flattens the layout and builds its track.
func (l *Layout) Build(cfg *config.Config) (*Track, error) {
	descriptors, err := Flatten(l.Root)
	if err != nil {
		return nil, err
	}
	return BuildTrack(l.Name, descriptors, cfg)
}

// LoadTrack loads, flattens and builds the track described by filename.
func LoadTrack(filename string, cfg *config.Config) (*Track, error) {
	layout, err := LoadLayout(filename)
	if err != nil {
		return nil, err
	}
	return layout.Build(cfg)
}
