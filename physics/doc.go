// Package physics connects angles to the chipmunk2d physics engine.
//
// Chipmunk stores rotations as plain float64 radians that grow without bound
// while a body spins. The functions in this package convert between those raw
// values and normalized trig.Angle64 values in any unit.
package physics
