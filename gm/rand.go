package gm

import (
	"math/rand/v2"

	"github.com/oliverbestmann/trig"
)

// RandomAngle returns an angle uniformly sampled from the full circle,
// measured in the given unit.
func RandomAngle(unit trig.Unit) trig.Angle64 {
	return trig.Must(trig.New(unit, rand.Float64()*unit.Period()))
}
