package trig

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
)

func (a Angle[S]) String() string {
	value := strconv.FormatFloat(float64(a.value), 'g', -1, bitSize[S]())

	switch a.unit {
	case UnitRadians:
		return value + " rad"
	case UnitDegrees:
		return value + "°"
	case UnitGradians:
		return value + " gon"
	case UnitTurns:
		return value + " turns"
	case UnitClock:
		seconds := int(math.Round(float64(a.value)*3600)) % (12 * 3600)
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
	default:
		return fmt.Sprintf("%s(%s)", a.unit, value)
	}
}

func (a Angle[S]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("unit", a.unit.String()),
		slog.Float64("value", float64(a.value)),
	)
}
