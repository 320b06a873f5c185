package road

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/golangdaddy/circuit/pkg/config"
)

// Summary describes a built track for the inspect command.
type Summary struct {
	Name        string
	Descriptors []Descriptor
	Segments    int
	Length      float64
	Lowest      float64
	Highest     float64
	RightMost   float64 // Most negative curve
	LeftMost    float64 // Most positive curve
	FastestLap  float64 // Seconds per lap at MaxSpeed
}

// Summarize flattens and builds the layout and collects its figures.
func Summarize(layout *Layout, cfg *config.Config) (Summary, error) {
	descriptors, err := Flatten(layout.Root)
	if err != nil {
		return Summary{}, err
	}
	track, err := BuildTrack(layout.Name, descriptors, cfg)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Name:        track.Name,
		Descriptors: descriptors,
		Segments:    track.SegmentCount(),
		Length:      track.Length(),
		FastestLap:  track.Length() / cfg.MaxSpeed(),
	}
	if s.Segments == 0 {
		return s, nil
	}
	s.Lowest, s.Highest = track.HeightRange()
	s.LeftMost = lo.MaxBy(track.Segments(), func(a, b Segment) bool { return a.Curve > b.Curve }).Curve
	s.RightMost = lo.MinBy(track.Segments(), func(a, b Segment) bool { return a.Curve < b.Curve }).Curve
	return s, nil
}

// Write prints the summary as text.
func (s Summary) Write(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("track:       %s", s.Name),
		fmt.Sprintf("sections:    %d", len(s.Descriptors)),
		fmt.Sprintf("segments:    %d", s.Segments),
		fmt.Sprintf("length:      %.0f", s.Length),
		fmt.Sprintf("height:      %.1f .. %.1f", s.Lowest, s.Highest),
		fmt.Sprintf("curve:       %.2f .. %.2f", s.RightMost, s.LeftMost),
		fmt.Sprintf("fastest lap: %.2fs", s.FastestLap),
		"",
		"  #  ease-in  main  ease-out   curve    hill",
	}
	for i, d := range s.Descriptors {
		lines = append(lines, fmt.Sprintf("%3d  %7d  %4d  %8d  %6.1f  %6.1f", i, d.EaseIn, d.Main, d.EaseOut, d.Curve, d.Hill))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
