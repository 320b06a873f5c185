package road

import "math"

// QuadraticEaseIn interpolates from a to b accelerating with t².
func QuadraticEaseIn(a, b, t float64) float64 {
	return a + (b-a)*t*t
}

// QuadraticEaseOut interpolates from a to b decelerating with 1-(1-t)².
// The builder does not use it: curve ease-out phases use CosineEaseInOut.
func QuadraticEaseOut(a, b, t float64) float64 {
	return a + (b-a)*(1-(1-t)*(1-t))
}

// CosineEaseInOut interpolates from a to b along half a cosine period.
func CosineEaseInOut(a, b, t float64) float64 {
	return a + (b-a)*(0.5-0.5*math.Cos(t*math.Pi))
}
