package vehicle

// Vehicle is the player car state integrated every tick.
type Vehicle struct {
	Lateral float64 // Lateral position in road half-widths, clamped to [-2,2]; |Lateral| > 1 is off-road
	Speed   float64 // Longitudinal speed in world units per second, clamped to [0, MaxSpeed]
	Offset  float64 // Longitudinal distance from the camera to the car
}

// OffRoad reports whether the car is beyond the road edge.
func (v *Vehicle) OffRoad() bool {
	return v.Lateral < -1 || v.Lateral > 1
}

// Camera follows the vehicle along the track.
type Camera struct {
	Position float64 // Longitudinal position in [0, track length)
	Height   float64 // World Y of the camera
}

// Input is one tick of player control. Both axes range over [-1,1].
type Input struct {
	Horizontal float64 // Negative steers left
	Vertical   float64 // Positive accelerates, negative brakes
}
