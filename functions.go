package trig

import (
	"fmt"
	"math"
)

// Sin returns the sine of the angle.
func Sin[S Float](a Angle[S]) S {
	return S(math.Sin(a.radians()))
}

// Cos returns the cosine of the angle.
func Cos[S Float](a Angle[S]) S {
	return S(math.Cos(a.radians()))
}

// Sincos returns Sin(a), Cos(a).
func Sincos[S Float](a Angle[S]) (sin, cos S) {
	s, c := math.Sincos(a.radians())
	return S(s), S(c)
}

// Tan returns the tangent of the angle.
//
// The tangent is not defined for odd multiples of π/2. Tan does not return a
// large value near those poles but fails with ErrDomain, once the cosine of the
// angle drops below a small threshold that depends on the precision of S.
func Tan[S Float](a Angle[S]) (S, error) {
	s, c := math.Sincos(a.radians())
	if math.Abs(c) < poleEpsilon[S]() {
		return 0, fmt.Errorf("tan(%s): %w", a, ErrDomain)
	}

	return S(s / c), nil
}

// Asin returns the arcsine of s as an angle in radians.
// The input must be in the range [-1, 1].
func Asin[S Float](s S) (Angle[S], error) {
	if err := checkUnitRange("asin", s); err != nil {
		return Angle[S]{}, err
	}

	return fromRadians[S](UnitRadians, math.Asin(float64(s))), nil
}

// Acos returns the arccosine of s as an angle in radians.
// The input must be in the range [-1, 1].
func Acos[S Float](s S) (Angle[S], error) {
	if err := checkUnitRange("acos", s); err != nil {
		return Angle[S]{}, err
	}

	return fromRadians[S](UnitRadians, math.Acos(float64(s))), nil
}

// Atan returns the arctangent of s as an angle in radians.
func Atan[S Float](s S) (Angle[S], error) {
	if math.IsNaN(float64(s)) {
		return Angle[S]{}, fmt.Errorf("atan(%v): %w", s, ErrInvalidMagnitude)
	}

	return fromRadians[S](UnitRadians, math.Atan(float64(s))), nil
}

// Atan2 returns the angle of the vector (x, y) in radians.
func Atan2[S Float](y, x S) (Angle[S], error) {
	if math.IsNaN(float64(y)) || math.IsNaN(float64(x)) {
		return Angle[S]{}, fmt.Errorf("atan2(%v, %v): %w", y, x, ErrInvalidMagnitude)
	}

	return fromRadians[S](UnitRadians, math.Atan2(float64(y), float64(x))), nil
}

// Sin returns the sine of the angle.
func (a Angle[S]) Sin() S {
	return Sin(a)
}

// Cos returns the cosine of the angle.
func (a Angle[S]) Cos() S {
	return Cos(a)
}

// Tan returns the tangent of the angle, see Tan.
func (a Angle[S]) Tan() (S, error) {
	return Tan(a)
}

func checkUnitRange[S Float](name string, s S) error {
	switch {
	case math.IsNaN(float64(s)):
		return fmt.Errorf("%s(%v): %w", name, s, ErrInvalidMagnitude)
	case s < -1 || s > 1:
		return fmt.Errorf("%s(%v): %w", name, s, ErrDomain)
	}

	return nil
}
