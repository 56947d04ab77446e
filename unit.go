package trig

import (
	"fmt"
	"math"
)

// Unit identifies the unit an Angle is measured in.
type Unit uint8

const (
	UnitRadians Unit = iota
	UnitDegrees
	UnitGradians
	UnitTurns

	// UnitClock measures an angle in hours on a twelve hour clock face.
	UnitClock
)

var units = [...]struct {
	name   string
	period float64
}{
	UnitRadians:  {name: "radians", period: 2 * math.Pi},
	UnitDegrees:  {name: "degrees", period: 360},
	UnitGradians: {name: "gradians", period: 400},
	UnitTurns:    {name: "turns", period: 1},
	UnitClock:    {name: "clock", period: 12},
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return int(u) < len(units)
}

// Period returns the size of a full circle in this unit. The domain of
// the unit is the half open range [0, Period).
func (u Unit) Period() float64 {
	if !u.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidUnit, uint8(u)))
	}

	return units[u].period
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}

	return units[u].name
}
