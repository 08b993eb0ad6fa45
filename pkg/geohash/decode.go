package geohash

import (
	"github.com/hankgalt/geocell/pkg/errors"
)

// Decode decodes a geohash into its cell. The cell exposes the
// center point, the point with error margins and the bounding
// polygon as derived views.
func Decode(hash string) (*Cell, error) {
	bits, err := hashToBits(hash)
	if err != nil {
		return nil, err
	}
	lonBits, latBits := deinterleave(bits)

	lon := refineInterval(lonBits, lonRange)
	lat := refineInterval(latBits, latRange)

	return &Cell{
		Longitude: (lon.Min + lon.Max) / 2,
		Latitude:  (lat.Min + lat.Max) / 2,
		LonErr:    (lon.Max - lon.Min) / 2,
		LatErr:    (lat.Max - lat.Min) / 2,
	}, nil
}

// DecodeGeotype decodes a geohash and shapes the result per the
// requested geotype: *Point for GeotypePoint, *PointErr for
// GeotypePointErr and []Point for GeotypePolygon.
func DecodeGeotype(hash string, geotype Geotype) (interface{}, error) {
	switch geotype {
	case GeotypePoint, GeotypePointErr, GeotypePolygon:
	default:
		return nil, errors.WrapError(errors.ErrInvalidGeotype, errors.ERROR_INVALID_GEOTYPE, string(geotype))
	}

	cell, err := Decode(hash)
	if err != nil {
		return nil, err
	}

	switch geotype {
	case GeotypePointErr:
		return cell.PointErr(), nil
	case GeotypePolygon:
		return cell.Polygon(), nil
	default:
		return cell.Point(), nil
	}
}

// refineInterval folds the axis bits over the interval, a 1 bit
// keeps the upper half and a 0 bit the lower half. This mirrors the
// encoder's convention exactly.
func refineInterval(bits []byte, r Range) Range {
	low, high := r.Min, r.Max
	for _, b := range bits {
		mid := (low + high) / 2
		if b == 1 {
			low = mid
		} else {
			high = mid
		}
	}
	return Range{Min: low, Max: high}
}
