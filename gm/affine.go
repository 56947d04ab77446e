package gm

import "github.com/oliverbestmann/trig"

// Affine represents an affine transformation. It consists of a Matrix that
// describes rotation and scale, as well as a Translation vector.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{Matrix: IdentityMat()}
}

func (a Affine) Rotate(angle trig.Angle64) Affine {
	return a.Mul(Affine{Matrix: RotationMat(angle)})
}

func (a Affine) Scale(scale Vec) Affine {
	return a.Mul(Affine{Matrix: ScaleMat(scale)})
}

func (a Affine) Translate(translate Vec) Affine {
	return a.Mul(Affine{Matrix: IdentityMat(), Translation: translate})
}

// Transform applies the affine transform to the given point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// Mul multiplies the affine transformation with another transformation.
// Transforming a point by the result first applies other, then a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Matrix.Transform(other.Translation).Add(a.Translation),
	}
}

// Rotation returns the rotation part of the transformation.
func (a Affine) Rotation() (trig.Angle64, error) {
	return a.Matrix.Rotation()
}
