package trig

import (
	"fmt"
	"math"
)

// Float is the set of types that can be used as the magnitude of an Angle.
type Float interface {
	~float32 | ~float64
}

// Angle is an angle in the euclidean plane, measured in one of the
// supported units. The zero value is an angle of 0 radians.
type Angle[S Float] struct {
	unit  Unit
	value S
}

type Angle32 = Angle[float32]
type Angle64 = Angle[float64]

// New returns an angle of x in the given unit. The magnitude is
// normalized into [0, unit.Period()).
func New[S Float](unit Unit, x S) (Angle[S], error) {
	if !unit.Valid() {
		return Angle[S]{}, fmt.Errorf("new angle: %w: %d", ErrInvalidUnit, uint8(unit))
	}

	if !isFinite(float64(x)) {
		return Angle[S]{}, fmt.Errorf("new angle in %s: %w: %v", unit, ErrInvalidMagnitude, x)
	}

	return Angle[S]{unit: unit, value: normalize[S](float64(x), unit.Period())}, nil
}

// Radians returns an angle of x radians.
func Radians[S Float](x S) (Angle[S], error) {
	return New(UnitRadians, x)
}

// Degrees returns an angle of x degrees.
func Degrees[S Float](x S) (Angle[S], error) {
	return New(UnitDegrees, x)
}

// Gradians returns an angle of x gradians. A full circle is 400 gradians.
func Gradians[S Float](x S) (Angle[S], error) {
	return New(UnitGradians, x)
}

// Turns returns an angle of x full turns.
func Turns[S Float](x S) (Angle[S], error) {
	return New(UnitTurns, x)
}

// Clock returns the angle the hour hand of a clock shows at the given time
// in hours. Twelve hours make up a full circle.
func Clock[S Float](hours S) (Angle[S], error) {
	return New(UnitClock, hours)
}

// ClockFace is like Clock, but takes the time split into hours, minutes and seconds.
func ClockFace[S Float](hour, minute, second S) (Angle[S], error) {
	return New(UnitClock, hour+minute/60+second/3600)
}

// Must returns the angle if err is nil and panics otherwise.
// It is intended for use in variable initializations.
func Must[S Float](a Angle[S], err error) Angle[S] {
	if err != nil {
		panic(err)
	}

	return a
}

// Half returns half a circle, π radians.
func Half[S Float]() Angle[S] {
	return Angle[S]{unit: UnitRadians, value: S(math.Pi)}
}

// Quarter returns a quarter of a circle, π/2 radians.
func Quarter[S Float]() Angle[S] {
	return Angle[S]{unit: UnitRadians, value: S(math.Pi / 2)}
}

// Sixth returns a sixth of a circle, π/3 radians.
func Sixth[S Float]() Angle[S] {
	return Angle[S]{unit: UnitRadians, value: S(math.Pi / 3)}
}

// Eighth returns an eighth of a circle, π/4 radians.
func Eighth[S Float]() Angle[S] {
	return Angle[S]{unit: UnitRadians, value: S(math.Pi / 4)}
}

// normalize maps x into [0, period). The check against the period happens
// after rounding to S, as rounding may push a value onto the boundary.
func normalize[S Float](x, period float64) S {
	r := math.Mod(x, period)
	if r < 0 {
		r += period
	}

	value := S(r)
	if value >= S(period) || value == 0 {
		// also turns -0 into 0
		return 0
	}

	return value
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
