package road

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/config"
)

func TestMagnitudeTables(t *testing.T) {
	lengths := map[LengthCategory]int{
		LengthNone: 0, LengthShort: 25, LengthMedium: 50, LengthLong: 100, "": 0,
	}
	for c, want := range lengths {
		got, err := c.Magnitude()
		require.NoError(t, err)
		assert.Equal(t, want, got, "length %q", c)
	}

	curves := map[CurveCategory]int{
		CurveRightHard: -6, CurveRightMedium: -4, CurveRightEasy: -2, CurveNone: 0,
		CurveLeftEasy: 2, CurveLeftMedium: 4, CurveLeftHard: 6,
	}
	for c, want := range curves {
		got, err := c.Magnitude()
		require.NoError(t, err)
		assert.Equal(t, want, got, "curve %q", c)
	}

	hills := map[HillCategory]int{
		HillDownHigh: -60, HillDownMedium: -40, HillDownLow: -20, HillNone: 0,
		HillUpLow: 20, HillUpMedium: 40, HillUpHigh: 60,
	}
	for c, want := range hills {
		got, err := c.Magnitude()
		require.NoError(t, err)
		assert.Equal(t, want, got, "hill %q", c)
	}
}

func TestMagnitude_Unknown(t *testing.T) {
	_, err := LengthCategory("HUGE").Magnitude()
	assert.ErrorIs(t, err, config.ErrConfiguration)
	assert.ErrorContains(t, err, "NONE SHORT MEDIUM LONG")

	_, err = CurveCategory("LEFT").Magnitude()
	assert.ErrorIs(t, err, config.ErrConfiguration)

	_, err = HillCategory("UP").Magnitude()
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

func TestFlatten(t *testing.T) {
	straight := SectionSpec{Main: LengthShort}
	left := SectionSpec{EaseIn: LengthShort, Main: LengthMedium, EaseOut: LengthShort, Curve: CurveLeftEasy}
	climb := SectionSpec{Main: LengthLong, Hill: HillUpHigh}

	root := Group{Name: "root", Children: []Section{
		Leaf{Spec: straight},
		Group{Name: "inner", Children: []Section{
			Leaf{Spec: left},
			Group{Children: []Section{Leaf{Spec: climb}}},
		}},
		Leaf{Spec: straight},
	}}

	got, err := Flatten(root)
	require.NoError(t, err)

	want := []Descriptor{
		{Main: 25},
		{EaseIn: 25, Main: 50, EaseOut: 25, Curve: 2},
		{Main: 100, Hill: 60},
		{Main: 25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 250, SegmentCount(got))
}

func TestFlatten_ReportsPath(t *testing.T) {
	root := Group{Name: "root", Children: []Section{
		Group{Name: "inner", Children: []Section{
			Leaf{Spec: SectionSpec{Curve: "SIDEWAYS"}},
		}},
	}}
	_, err := Flatten(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfiguration)
	assert.ErrorContains(t, err, "/root[0]/inner[0]")
}

func TestFlatten_Nil(t *testing.T) {
	got, err := Flatten(nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		d       Descriptor
		wantErr bool
	}{
		{"zero", Descriptor{}, false},
		{"regular", Descriptor{EaseIn: 25, Main: 50, EaseOut: 25, Curve: -4, Hill: 20}, false},
		{"negative ease-in", Descriptor{EaseIn: -1}, true},
		{"negative main", Descriptor{Main: -25}, true},
		{"negative ease-out", Descriptor{EaseOut: -50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
