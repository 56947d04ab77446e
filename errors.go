package trig

import "errors"

// ErrInvalidMagnitude is returned when an angle would be built from a
// magnitude that is not a finite number.
var ErrInvalidMagnitude = errors.New("invalid magnitude")

// ErrDomain is returned when a trigonometric function is evaluated at a point
// where it is not defined.
var ErrDomain = errors.New("outside of function domain")

// ErrInvalidUnit is returned for a Unit outside the known set of units.
var ErrInvalidUnit = errors.New("invalid unit")
