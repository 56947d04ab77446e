package trig

import "math"

// Unit returns the unit the angle is measured in.
func (a Angle[S]) Unit() Unit {
	return a.unit
}

// Value returns the magnitude of the angle in its own unit.
func (a Angle[S]) Value() S {
	return a.value
}

// In returns the same angle measured in the given unit.
// In panics if unit is not valid.
func (a Angle[S]) In(unit Unit) Angle[S] {
	return Angle[S]{unit: unit, value: a.to(unit)}
}

// Radians returns the magnitude of the angle in radians, in [0, 2π).
func (a Angle[S]) Radians() S {
	return a.to(UnitRadians)
}

// Degrees returns the magnitude of the angle in degrees, in [0, 360).
func (a Angle[S]) Degrees() S {
	return a.to(UnitDegrees)
}

// Gradians returns the magnitude of the angle in gradians, in [0, 400).
func (a Angle[S]) Gradians() S {
	return a.to(UnitGradians)
}

// Turns returns the magnitude of the angle in turns, in [0, 1).
func (a Angle[S]) Turns() S {
	return a.to(UnitTurns)
}

// Hours returns the position of the angle on a clock face in hours, in [0, 12).
func (a Angle[S]) Hours() S {
	return a.to(UnitClock)
}

// HourMinuteSecond splits the clock face position of the angle into
// whole hours, whole minutes and the remaining seconds.
func (a Angle[S]) HourMinuteSecond() (hour, minute, second S) {
	total := float64(a.Hours()) * 3600

	h := math.Floor(total / 3600)
	m := math.Floor((total - h*3600) / 60)
	s := total - h*3600 - m*60

	return S(h), S(m), S(s)
}

func (a Angle[S]) to(unit Unit) S {
	if unit == a.unit {
		return a.value
	}

	period := unit.Period()
	return normalize[S](float64(a.value)*period/a.unit.Period(), period)
}

// radians returns the magnitude in radians without rounding to S.
func (a Angle[S]) radians() float64 {
	if a.unit == UnitRadians {
		return float64(a.value)
	}

	return float64(a.value) * (2 * math.Pi) / a.unit.Period()
}

// fromRadians builds an angle in the given unit from a magnitude in radians.
func fromRadians[S Float](unit Unit, rad float64) Angle[S] {
	period := unit.Period()
	return Angle[S]{unit: unit, value: normalize[S](rad*period/(2*math.Pi), period)}
}
