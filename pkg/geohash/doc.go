// Package geohash encodes and decodes geohashes, and finds the
// neighboring cells of a geohash at the same precision.
//
// A geohash is a base32 string encoding a rectangular region of the
// earth's surface via interleaved binary subdivision of longitude and
// latitude. Every symbol carries 5 bits, alternating longitude first,
// so each extra character shrinks the cell.
//
// Approximate cell size for typical geohash lengths:
//
//	Length  Width     Height
//	1       5,000km   5,000km
//	2       1,250km   625km
//	3       156km     156km
//	4       39.1km    19.5km
//	5       4.89km    4.89km
//	6       1.22km    0.61km
//	7       153m      153m
//	8       38.2m     19.1m
//	9       4.77m     4.77m
//	10      1.19m     0.596m
//	11      149mm     149mm
//	12      37.2mm    18.6mm
//
// All functions are pure and safe for concurrent use. Longitude comes
// before latitude everywhere in this package, matching the bit
// interleaving order of the encoding itself.
package geohash
