package gm

import "github.com/oliverbestmann/trig"

// Mat describes a 2d matrix of float64 values in row major order.
type Mat struct {
	XAxis, YAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1},
		YAxis: Vec{Y: 1},
	}
}

// ScaleMat returns a matrix that scales a Vec.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{X: scale.X},
		YAxis: Vec{Y: scale.Y},
	}
}

// RotationMat returns a rotation matrix that rotates a Vec
// counterclockwise by the given angle.
func RotationMat(angle trig.Angle64) Mat {
	sin, cos := trig.Sincos(angle)

	return Mat{
		XAxis: Vec{X: cos, Y: -sin},
		YAxis: Vec{X: sin, Y: cos},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
	}
}

func (m Mat) Mul(n Mat) Mat {
	col0 := Vec{X: n.XAxis.X, Y: n.YAxis.X}
	col1 := Vec{X: n.XAxis.Y, Y: n.YAxis.Y}

	return Mat{
		XAxis: Vec{X: m.XAxis.Dot(col0), Y: m.XAxis.Dot(col1)},
		YAxis: Vec{X: m.YAxis.Dot(col0), Y: m.YAxis.Dot(col1)},
	}
}

// Rotation returns the rotation encoded in the matrix, assuming
// it does not contain any shear.
func (m Mat) Rotation() (trig.Angle64, error) {
	return trig.Atan2(m.YAxis.X, m.XAxis.X)
}
