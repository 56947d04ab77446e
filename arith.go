package trig

import (
	"fmt"
	"math"
)

// Add returns the sum of both angles. The result is measured in the unit of a.
//
// Addition happens on the circle, the result wraps around after a full turn:
// 350° + 20° = 10°.
func (a Angle[S]) Add(b Angle[S]) Angle[S] {
	return fromRadians[S](a.unit, normalizeRadians(a.radians()+b.radians()))
}

// Sub returns the difference a - b, measured in the unit of a.
// The result wraps around: 10° - 20° = 350°.
func (a Angle[S]) Sub(b Angle[S]) Angle[S] {
	return fromRadians[S](a.unit, normalizeRadians(a.radians()-b.radians()))
}

// Neg returns the angle that adds up with a to a full circle.
func (a Angle[S]) Neg() Angle[S] {
	return Angle[S]{unit: a.unit, value: normalize[S](-float64(a.value), a.unit.Period())}
}

// Mul scales the magnitude of the angle by f and normalizes the result.
func (a Angle[S]) Mul(f S) (Angle[S], error) {
	if !isFinite(float64(f)) {
		return Angle[S]{}, fmt.Errorf("multiply %s by %v: %w", a, f, ErrInvalidMagnitude)
	}

	return a.scaled(float64(a.value) * float64(f))
}

// Div divides the magnitude of the angle by f and normalizes the result.
// Dividing by zero fails with ErrInvalidMagnitude.
func (a Angle[S]) Div(f S) (Angle[S], error) {
	if f == 0 || !isFinite(float64(f)) {
		return Angle[S]{}, fmt.Errorf("divide %s by %v: %w", a, f, ErrInvalidMagnitude)
	}

	return a.scaled(float64(a.value) / float64(f))
}

func (a Angle[S]) scaled(value float64) (Angle[S], error) {
	if !isFinite(value) {
		return Angle[S]{}, fmt.Errorf("scale %s: %w: %v", a, ErrInvalidMagnitude, value)
	}

	return Angle[S]{unit: a.unit, value: normalize[S](value, a.unit.Period())}, nil
}

// DifferenceTo returns the smallest signed difference a - b in radians,
// normalized to the range [-π, π).
func (a Angle[S]) DifferenceTo(b Angle[S]) S {
	return S(signedRadians(a.radians() - b.radians()))
}

// Lerp interpolates between a and b along the shorter arc. A t of 0 yields a,
// a t of 1 yields b. The result is measured in the unit of a.
func (a Angle[S]) Lerp(b Angle[S], t S) (Angle[S], error) {
	if !isFinite(float64(t)) {
		return Angle[S]{}, fmt.Errorf("lerp %s to %s: %w: t=%v", a, b, ErrInvalidMagnitude, t)
	}

	delta := signedRadians(b.radians() - a.radians())
	return fromRadians[S](a.unit, normalizeRadians(a.radians()+float64(t)*delta)), nil
}

// Equal reports whether both angles point in the same direction. Angles
// measured in different units are compared by their position on the circle,
// within a small tolerance that depends on the precision of S.
func (a Angle[S]) Equal(b Angle[S]) bool {
	d := math.Abs(a.radians() - b.radians())
	d = min(d, 2*math.Pi-d)
	return d <= equalEpsilon[S]()
}

// Compare returns -1 if a is smaller than b, +1 if a is larger than b and 0
// if both angles are Equal. Angles are ordered by their magnitude in radians.
//
// Because equality tolerates rounding across the wrap around point, an angle
// just below a full turn compares equal to zero.
func (a Angle[S]) Compare(b Angle[S]) int {
	switch {
	case a.Equal(b):
		return 0
	case a.radians() < b.radians():
		return -1
	default:
		return 1
	}
}

// Less reports whether a is ordered before b, see Compare.
func (a Angle[S]) Less(b Angle[S]) bool {
	return a.Compare(b) < 0
}

func normalizeRadians(rad float64) float64 {
	return normalize[float64](rad, 2*math.Pi)
}

// signedRadians normalizes the given angle to the range [-π, π)
func signedRadians(rad float64) float64 {
	rad = math.Mod(rad+math.Pi, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}

	return rad - math.Pi
}
