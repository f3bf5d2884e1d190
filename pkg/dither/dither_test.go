package dither

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateWithinBounds(t *testing.T) {
	for i := 0; i < 10000; i++ {
		got := Coordinate(40.0)
		offset := math.Abs(got - 40.0)
		require.GreaterOrEqual(t, offset, MinOffset)
		require.Less(t, offset, MaxOffset)
	}
}

func TestCoordinateNeverEqualsInput(t *testing.T) {
	for i := 0; i < 1000; i++ {
		require.NotEqual(t, -70.0, Coordinate(-70.0))
	}
}

func TestCoordinateUsesBothSigns(t *testing.T) {
	var above, below int
	for i := 0; i < 1000; i++ {
		if Coordinate(0) > 0 {
			above++
		} else {
			below++
		}
	}
	assert.Greater(t, above, 0)
	assert.Greater(t, below, 0)
}

func TestCoordinateAxesIndependent(t *testing.T) {
	// If latitude and longitude offsets were drawn from a shared sample, the
	// two signs would always agree. Over many trials all four sign
	// combinations must show up.
	combos := map[[2]bool]int{}
	for i := 0; i < 1000; i++ {
		lat := Coordinate(0) > 0
		lng := Coordinate(0) > 0
		combos[[2]bool{lat, lng}]++
	}
	assert.Len(t, combos, 4)
}
