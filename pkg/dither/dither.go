package dither

import (
	"math/rand/v2"
)

// Offset bounds in degrees. Roughly 500m to 1km of blur at the equator.
const (
	MinOffset = 0.005
	MaxOffset = 0.01
)

// Coordinate displaces v by a random offset whose magnitude is uniform in
// [MinOffset, MaxOffset), with a random sign. The offset is never zero, so the
// returned value never equals the input. Callers must discard the original
// value after dithering; only the dithered coordinate may be stored.
func Coordinate(v float64) float64 {
	offset := MinOffset + rand.Float64()*(MaxOffset-MinOffset)
	if rand.IntN(2) == 0 {
		offset = -offset
	}
	return v + offset
}
