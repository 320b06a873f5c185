package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/config"
)

func buildTestTrack(t *testing.T) *Track {
	t.Helper()
	track, err := BuildTrack("loop", []Descriptor{
		{EaseIn: 25, Main: 50, EaseOut: 25, Curve: 2},
		{Main: 50, Hill: 20},
	}, testConfig())
	require.NoError(t, err)
	return track
}

func TestTrack_SegmentAt(t *testing.T) {
	track := buildTestTrack(t)
	require.Equal(t, 150, track.SegmentCount())
	require.Equal(t, 15000.0, track.Length())

	tests := []struct {
		z    float64
		want int
	}{
		{0, 0},
		{99.9, 0},
		{100, 1},
		{14999, 149},
		{15000, 0},
		{15150, 1},
		{-1, 149},
		{-100, 149},
		{-100.5, 148},
		{-15000, 0},
		{-15001, 149},
		{-45050, 149},
	}
	for _, tt := range tests {
		s, err := track.SegmentAt(tt.z)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.Index, "z=%g", tt.z)
	}
}

func TestTrack_SegmentAtIsPeriodic(t *testing.T) {
	track := buildTestTrack(t)
	for z := 0.0; z < track.Length(); z += 37.5 {
		a, err := track.SegmentAt(z)
		require.NoError(t, err)
		b, err := track.SegmentAt(z + track.Length())
		require.NoError(t, err)
		assert.Same(t, a, b, "z=%g", z)
	}
}

func TestTrack_EmptyTrack(t *testing.T) {
	track, err := BuildTrack("empty", []Descriptor{{
		EaseIn: 0, Main: 0, EaseOut: 0, Curve: 2, Hill: 20,
	}}, testConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, track.SegmentCount())
	assert.Equal(t, 0.0, track.Length())

	_, err = track.SegmentAt(0)
	assert.ErrorIs(t, err, config.ErrConfiguration)
	_, err = track.SegmentAt(-5)
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

func TestTrack_Segment(t *testing.T) {
	track := buildTestTrack(t)
	assert.Equal(t, 0, track.Segment(150).Index)
	assert.Equal(t, 149, track.Segment(-1).Index)
	assert.Equal(t, 10, track.Segment(10).Index)
}

func TestTrack_HeightRange(t *testing.T) {
	track := buildTestTrack(t)
	low, high := track.HeightRange()
	assert.Equal(t, 0.0, low)
	assert.Greater(t, high, 0.0)
	assert.Less(t, high, 20*100.0)
}
