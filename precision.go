package trig

import "unsafe"

func isSinglePrecision[S Float]() bool {
	var zero S
	return unsafe.Sizeof(zero) == 4
}

// equalEpsilon is the tolerance in radians within which two angles are equal.
func equalEpsilon[S Float]() float64 {
	if isSinglePrecision[S]() {
		return 1e-5
	}

	return 1e-9
}

// poleEpsilon is the smallest cosine for which the tangent is still defined.
func poleEpsilon[S Float]() float64 {
	if isSinglePrecision[S]() {
		return 1e-6
	}

	return 1e-12
}

func bitSize[S Float]() int {
	if isSinglePrecision[S]() {
		return 32
	}

	return 64
}
