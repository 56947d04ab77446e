// Package gm (stands for geometry math) provides the 2d geometry primitives
// that are driven by angles.
//
// It includes a simple 2d vector type called Vec, a 2d rotation and scale
// matrix Mat and an affine transform named Affine. Rotations are described by
// a trig.Angle64 in any unit.
package gm
