package geohash

import (
	"math"

	"github.com/hankgalt/geocell/pkg/errors"
)

// NumNeighbors is the size of the grid returned by Neighbors.
const NumNeighbors = 9

// Neighbors returns the 3x3 grid of cells centered on the given
// geohash, at the same precision, ordered upper-left, left,
// lower-left, upper-middle, self, lower-middle, upper-right, right,
// lower-right. Crossing the antimeridian wraps into the opposite
// hemisphere; cells beyond a pole collapse onto the boundary cell,
// so the result always holds exactly 9 entries.
func Neighbors(hash string) ([]string, error) {
	precision := len(hash)
	if precision < 1 {
		return nil, errors.WrapError(errors.ErrInvalidPrecision, errors.ERROR_INVALID_PRECISION, precision)
	}

	cell, err := Decode(hash)
	if err != nil {
		return nil, err
	}

	width, height := cell.Width(), cell.Height()
	grid := make([]string, 0, NumNeighbors)
	for _, lonDelta := range []float64{-1, 0, 1} {
		for _, latDelta := range []float64{1, 0, -1} {
			lon := wrapLongitude(cell.Longitude + lonDelta*width)
			lat := clampLatitude(cell.Latitude + latDelta*height)
			neighbor, err := EncodeWithPrecision(lon, lat, precision)
			if err != nil {
				return nil, errors.WrapError(err, errors.ERROR_FINDING_NEIGHBORS)
			}
			grid = append(grid, neighbor)
		}
	}
	return grid, nil
}

// wrapLongitude wraps a longitude modulo 360 into [-180, 180).
func wrapLongitude(lon float64) float64 {
	wrapped := math.Mod(lon+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}

// clampLatitude clamps a latitude to [-90, 90].
func clampLatitude(lat float64) float64 {
	return math.Max(latRange.Min, math.Min(lat, latRange.Max))
}
