package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConversion(t *testing.T) {
	require.InDelta(t, math.Pi, Must(Turns(0.5)).Radians(), 1e-12)
	require.Equal(t, 180.0, Must(Gradians(200.0)).Degrees())
	require.InDelta(t, 90, Must(Radians(math.Pi/2)).Degrees(), 1e-12)
	require.InDelta(t, 100, Must(Degrees(90.0)).Gradians(), 1e-12)
	require.InDelta(t, 0.75, Must(Degrees(270.0)).Turns(), 1e-12)
	require.InDelta(t, 3, Must(Degrees(90.0)).Hours(), 1e-12)
	require.InDelta(t, 180, Must(Clock(6.0)).Degrees(), 1e-12)
	require.InDelta(t, 2*math.Pi/3, Must(Clock(4.0)).Radians(), 1e-12)
}

func TestConversion_NegativeRoundTrip(t *testing.T) {
	deg := Must(Degrees(-5.0))
	require.True(t, deg.In(UnitRadians).In(UnitDegrees).Equal(deg))
	require.InDelta(t, 355, deg.In(UnitRadians).In(UnitDegrees).Value(), 1e-9)

	rad := Must(Radians(-5.0))
	require.True(t, rad.In(UnitDegrees).In(UnitRadians).Equal(rad))
	require.InDelta(t, 2*math.Pi-5, rad.In(UnitDegrees).In(UnitRadians).Value(), 1e-12)
}

func TestConversion_RoundTrip(t *testing.T) {
	inputs := []float64{0, 0.1, 1, 2.5, 7, 11.9, 42, 123.456, 359, 399}

	for _, source := range allUnits {
		for _, target := range allUnits {
			t.Run(source.String()+" to "+target.String(), func(t *testing.T) {
				for _, x := range inputs {
					a := Must(New(source, x))

					b := a.In(target)
					require.Equal(t, target, b.Unit())
					require.GreaterOrEqual(t, b.Value(), 0.0)
					require.Less(t, b.Value(), target.Period())

					back := b.In(source)
					require.Equal(t, source, back.Unit())
					require.True(t, back.Equal(a), "%s -> %s -> %s", a, b, back)
					require.InDelta(t, a.Value(), back.Value(), 1e-9)
				}
			})
		}
	}
}

func TestConversion_RadiansRoundTrip(t *testing.T) {
	for _, unit := range allUnits {
		a := Must(New(unit, 1.25))
		back := fromRadians[float64](unit, float64(a.Radians()))
		require.True(t, back.Equal(a))
		require.InDelta(t, a.Value(), back.Value(), 1e-12)
	}
}

func TestConversion_SinglePrecision(t *testing.T) {
	a := Must(Gradians[float32](200))
	require.Equal(t, float32(180), a.Degrees())

	b := Must(Turns[float32](0.5))
	require.InDelta(t, math.Pi, float64(b.Radians()), 1e-6)
	require.True(t, b.In(UnitDegrees).Equal(b))
}

func TestConversion_SameUnitIsIdentity(t *testing.T) {
	a := Must(Degrees(123.456))
	require.Equal(t, a, a.In(UnitDegrees))
	require.Equal(t, 123.456, a.Degrees())
}

func TestConversion_InvalidUnitPanics(t *testing.T) {
	require.Panics(t, func() {
		Must(Degrees(1.0)).In(Unit(99))
	})
}

func TestHourMinuteSecond(t *testing.T) {
	h, m, s := Must(ClockFace(3.0, 15, 30)).HourMinuteSecond()
	require.Equal(t, 3.0, h)
	require.Equal(t, 15.0, m)
	require.InDelta(t, 30, s, 1e-6)

	h, m, s = Must(Degrees(270.0)).HourMinuteSecond()
	require.Equal(t, 9.0, h)
	require.Equal(t, 0.0, m)
	require.InDelta(t, 0, s, 1e-6)
}
