package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAffine_Transform(t *testing.T) {
	tr := IdentityAffine().Translate(Vec{X: 2.0, Y: 1.0})
	require.Equal(t, Vec{X: 12.0, Y: 11.0}, tr.Transform(Vec{X: 10.0, Y: 10.0}))

	// rotate by 90° first, then move by (10, 0)
	tr = IdentityAffine().Translate(Vec{X: 10.0}).Rotate(degrees(90))
	res := tr.Transform(Vec{X: 1})
	require.InDelta(t, 10.0, res.X, 1e-9)
	require.InDelta(t, 1.0, res.Y, 1e-9)

	// move by (10, 0) in local space first, then rotate by 90°
	tr = IdentityAffine().Rotate(degrees(90)).Translate(Vec{X: 10.0})
	res = tr.Transform(Vec{X: 1})
	require.InDelta(t, 0.0, res.X, 1e-9)
	require.InDelta(t, 11.0, res.Y, 1e-9)

	// scale by 2 first, then move by local 5 (10 real)
	tr = IdentityAffine().Scale(Vec{X: 2, Y: 2}).Translate(Vec{X: 5})
	res = tr.Transform(Vec{X: 10})
	require.InDelta(t, 30.0, res.X, 1e-9)
}

func TestAffine_Rotation(t *testing.T) {
	tr := IdentityAffine().
		Rotate(degrees(30)).
		Translate(Vec{X: 4, Y: 2}).
		Rotate(degrees(60))

	rotation, err := tr.Rotation()
	require.NoError(t, err)
	require.True(t, rotation.Equal(degrees(90)))
}
