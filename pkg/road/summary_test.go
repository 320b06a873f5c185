package road

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	layout, err := LoadLayout("testdata/circuit.yaml")
	require.NoError(t, err)
	cfg := testConfig()

	s, err := Summarize(layout, cfg)
	require.NoError(t, err)

	assert.Equal(t, "test-circuit", s.Name)
	assert.Len(t, s.Descriptors, 5)
	assert.Equal(t, SegmentCount(s.Descriptors), s.Segments)
	assert.Equal(t, float64(s.Segments)*cfg.SegmentLength, s.Length)
	assert.Equal(t, 2.0, s.LeftMost)
	assert.Equal(t, -6.0, s.RightMost)
	assert.InDelta(t, 0, s.Lowest, 1e-6)
	assert.Greater(t, s.Highest, 1900.0)
	assert.InDelta(t, s.Length/cfg.MaxSpeed(), s.FastestLap, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	assert.Contains(t, buf.String(), "track:       test-circuit")
	assert.Contains(t, buf.String(), "segments:    ")
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(&Layout{Name: "empty"}, testConfig())
	require.NoError(t, err)
	assert.Zero(t, s.Segments)
	assert.Zero(t, s.Highest)
}
