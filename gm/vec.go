package gm

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/trig"
)

type Vec struct {
	X, Y float64
}

var VecZero = Vec{}

// VecFromAngle returns the unit vector pointing in the direction of
// the given angle, measured counterclockwise from the positive x axis.
func VecFromAngle(angle trig.Angle64) Vec {
	sin, cos := trig.Sincos(angle)
	return Vec{X: cos, Y: sin}
}

func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec) Mul(scalar float64) Vec {
	return Vec{X: v.X * scalar, Y: v.Y * scalar}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of the vector in radians, measured
// counterclockwise from the positive x axis. The zero vector has an
// angle of zero.
func (v Vec) Angle() (trig.Angle64, error) {
	angle, err := trig.Atan2(v.Y, v.X)
	if err != nil {
		return trig.Angle64{}, fmt.Errorf("angle of %s: %w", v, err)
	}

	return angle, nil
}

// AngleTo returns the angle to rotate v by to point in the same
// direction as other.
func (v Vec) AngleTo(other Vec) (trig.Angle64, error) {
	from, err := v.Angle()
	if err != nil {
		return trig.Angle64{}, err
	}

	to, err := other.Angle()
	if err != nil {
		return trig.Angle64{}, err
	}

	return to.Sub(from), nil
}

// Rotated returns the vector rotated counterclockwise by the given angle.
func (v Vec) Rotated(angle trig.Angle64) Vec {
	return RotationMat(angle).Transform(v)
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
