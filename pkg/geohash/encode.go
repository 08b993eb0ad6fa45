package geohash

import (
	"github.com/hankgalt/geocell/pkg/errors"
)

// Encode encodes a longitude/latitude pair into a geohash of
// DefaultPrecision symbols.
func Encode(lon float64, lat float64) (string, error) {
	return EncodeWithPrecision(lon, lat, DefaultPrecision)
}

// EncodeWithPrecision encodes a longitude/latitude pair into a
// geohash of precision symbols. Precision must be at least 1 and
// coordinates must lie within [-180, 180] and [-90, 90].
func EncodeWithPrecision(lon float64, lat float64, precision int) (string, error) {
	if precision < 1 {
		return "", errors.WrapError(errors.ErrInvalidPrecision, errors.ERROR_INVALID_PRECISION, precision)
	}
	if lon < lonRange.Min || lon > lonRange.Max {
		return "", errors.WrapError(errors.ErrInvalidCoordinate, errors.ERROR_INVALID_LONGITUDE, lon)
	}
	if lat < latRange.Min || lat > latRange.Max {
		return "", errors.WrapError(errors.ErrInvalidCoordinate, errors.ERROR_INVALID_LATITUDE, lat)
	}

	// longitude takes the extra bit when the total is odd
	totalBits := precision * bitsPerChar
	lonBits := axisBits(lon, lonRange, (totalBits+1)/2)
	latBits := axisBits(lat, latRange, totalBits/2)

	return bitsToHash(interleave(lonBits, latBits))
}

// axisBits bisects the axis interval n times, emitting 1 when the
// value falls in the upper half and 0 otherwise.
func axisBits(value float64, r Range, n int) []byte {
	bits := make([]byte, 0, n)
	low, high := r.Min, r.Max
	for i := 0; i < n; i++ {
		mid := (low + high) / 2
		if value >= mid {
			bits = append(bits, 1)
			low = mid
		} else {
			bits = append(bits, 0)
			high = mid
		}
	}
	return bits
}
