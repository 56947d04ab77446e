package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/trig"
	"github.com/oliverbestmann/trig/gm"
)

// ForAngle returns the unit vector pointing in the direction of angle.
func ForAngle(angle trig.Angle64) cp.Vector {
	return cp.ForAngle(angle.Radians())
}

// VectorAngle returns the direction of the vector.
func VectorAngle(v cp.Vector) (trig.Angle64, error) {
	return trig.Radians(v.ToAngle())
}

// ToVec converts a chipmunk vector into a gm.Vec.
func ToVec(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}

// FromVec converts a gm.Vec into a chipmunk vector.
func FromVec(v gm.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
