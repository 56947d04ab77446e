package physics

import (
	"fmt"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/trig"
)

// BodyAngle returns the rotation of the body, normalized to [0, 2π) radians.
func BodyAngle(body *cp.Body) (trig.Angle64, error) {
	angle, err := trig.Radians(body.Angle())
	if err != nil {
		return trig.Angle64{}, fmt.Errorf("body angle: %w", err)
	}

	return angle, nil
}

// SetBodyAngle rotates the body to the given angle.
func SetBodyAngle(body *cp.Body, angle trig.Angle64) {
	body.SetAngle(angle.Radians())
}

// RotateBody rotates the body by delta, relative to its current rotation.
// The stored rotation is kept in [0, 2π).
func RotateBody(body *cp.Body, delta trig.Angle64) error {
	current, err := BodyAngle(body)
	if err != nil {
		return err
	}

	SetBodyAngle(body, current.Add(delta))
	return nil
}

// AngularVelocity returns the distance the body rotates within one second.
// Full turns are lost, as the result is a normalized angle.
func AngularVelocity(body *cp.Body) (trig.Angle64, error) {
	velocity, err := trig.Radians(body.AngularVelocity())
	if err != nil {
		return trig.Angle64{}, fmt.Errorf("angular velocity: %w", err)
	}

	return velocity, nil
}

// SetAngularVelocity sets the angular velocity of the body to perSecond,
// taking the shorter direction: more than half a turn per second spins the
// body the other way round.
func SetAngularVelocity(body *cp.Body, perSecond trig.Angle64) {
	body.SetAngularVelocity(perSecond.DifferenceTo(trig.Angle64{}))
}
