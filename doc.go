// Package trig provides type safe planar angles.
//
// An Angle carries its magnitude together with the unit it is measured in:
// radians, degrees, gradians, turns or hours on a clock face. Angles are always
// normalized into the domain of their unit, e.g. [0, 360) for degrees, so
// -90 degrees and 270 degrees are the very same value.
//
//	a := trig.Must(trig.Degrees(350.0))
//	b := trig.Must(trig.Radians(math.Pi / 9))
//	c := a.Add(b) // 10°, tagged in degrees like the left operand
//
// Arithmetic is performed on the circle. The usual algebraic laws only hold
// modulo a full turn: 10° - 20° is 350°, not -10°. Use Equal to compare angles,
// as it compares the position on the circle regardless of the unit and
// tolerates rounding errors. The == operator compares unit and magnitude.
//
// The magnitude type is a type parameter, so float32 and float64 angles are
// both supported. Intermediate results are computed in float64 by the math
// package and rounded back to the angle's precision once per produced value.
package trig
