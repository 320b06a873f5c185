package road

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/golangdaddy/circuit/pkg/config"
)

// LengthCategory names how many segments a section phase spans.
type LengthCategory string

// CurveCategory names the signed curvature of a section. Positive curves bend left.
type CurveCategory string

// HillCategory names the signed height change of a section, in segment lengths.
type HillCategory string

const (
	LengthNone   LengthCategory = "NONE"
	LengthShort  LengthCategory = "SHORT"
	LengthMedium LengthCategory = "MEDIUM"
	LengthLong   LengthCategory = "LONG"
)

const (
	CurveRightHard   CurveCategory = "RIGHT_HARD"
	CurveRightMedium CurveCategory = "RIGHT_MEDIUM"
	CurveRightEasy   CurveCategory = "RIGHT_EASY"
	CurveNone        CurveCategory = "NONE"
	CurveLeftEasy    CurveCategory = "LEFT_EASY"
	CurveLeftMedium  CurveCategory = "LEFT_MEDIUM"
	CurveLeftHard    CurveCategory = "LEFT_HARD"
)

const (
	HillDownHigh   HillCategory = "DOWN_HIGH"
	HillDownMedium HillCategory = "DOWN_MEDIUM"
	HillDownLow    HillCategory = "DOWN_LOW"
	HillNone       HillCategory = "NONE"
	HillUpLow      HillCategory = "UP_LOW"
	HillUpMedium   HillCategory = "UP_MEDIUM"
	HillUpHigh     HillCategory = "UP_HIGH"
)

var lengthTable = map[LengthCategory]int{
	LengthNone:   0,
	LengthShort:  25,
	LengthMedium: 50,
	LengthLong:   100,
}

var curveTable = map[CurveCategory]int{
	CurveRightHard:   -6,
	CurveRightMedium: -4,
	CurveRightEasy:   -2,
	CurveNone:        0,
	CurveLeftEasy:    2,
	CurveLeftMedium:  4,
	CurveLeftHard:    6,
}

var hillTable = map[HillCategory]int{
	HillDownHigh:   -60,
	HillDownMedium: -40,
	HillDownLow:    -20,
	HillNone:       0,
	HillUpLow:      20,
	HillUpMedium:   40,
	HillUpHigh:     60,
}

// Magnitude returns the segment count of the category. The empty name is NONE.
func (c LengthCategory) Magnitude() (int, error) {
	if c == "" {
		return 0, nil
	}
	v, ok := lengthTable[c]
	if !ok {
		return 0, fmt.Errorf("%w: unknown length %q (want one of %v)", config.ErrConfiguration, string(c), names(lengthTable))
	}
	return v, nil
}

// Magnitude returns the curvature of the category. The empty name is NONE.
func (c CurveCategory) Magnitude() (int, error) {
	if c == "" {
		return 0, nil
	}
	v, ok := curveTable[c]
	if !ok {
		return 0, fmt.Errorf("%w: unknown curve %q (want one of %v)", config.ErrConfiguration, string(c), names(curveTable))
	}
	return v, nil
}

// Magnitude returns the height change of the category. The empty name is NONE.
func (c HillCategory) Magnitude() (int, error) {
	if c == "" {
		return 0, nil
	}
	v, ok := hillTable[c]
	if !ok {
		return 0, fmt.Errorf("%w: unknown hill %q (want one of %v)", config.ErrConfiguration, string(c), names(hillTable))
	}
	return v, nil
}

// names lists the table keys ordered by magnitude for error messages.
func names[K ~string](table map[K]int) []string {
	keys := lo.Keys(table)
	sort.Slice(keys, func(i, j int) bool { return table[keys[i]] < table[keys[j]] })
	return lo.Map(keys, func(k K, _ int) string { return string(k) })
}
