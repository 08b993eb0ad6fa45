package geohash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hankgalt/geocell/pkg/errors"
)

func TestEncode(t *testing.T) {
	hash, err := Encode(-122.3493, 47.6205)
	require.NoError(t, err)
	assert.Equal(t, hash, "c22yzv5cw8te", "default precision encode should match known geohash")

	hash, err = EncodeWithPrecision(-122.3493, 47.6205, 12)
	require.NoError(t, err)
	assert.Equal(t, hash, "c22yzv5cw8te", "encode at precision 12 should match known geohash")

	hash, err = EncodeWithPrecision(10.40744, 57.64911, 11)
	require.NoError(t, err)
	assert.Equal(t, hash, "u4pruydqqvj", "encode should match known geohash")
}

func TestEncodeDeterminism(t *testing.T) {
	first, err := EncodeWithPrecision(13.361389, 38.115556, 9)
	require.NoError(t, err)
	second, err := EncodeWithPrecision(13.361389, 38.115556, 9)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical inputs should yield identical geohashes")
}

func TestEncodeLength(t *testing.T) {
	for precision := 1; precision <= 16; precision++ {
		hash, err := EncodeWithPrecision(-43.1729, -22.9068, precision)
		require.NoError(t, err)
		assert.Equal(t, len(hash), precision, "geohash length should equal requested precision")
	}
}

func TestEncodeAlphabetClosure(t *testing.T) {
	points := [][]float64{
		{-180, -90},
		{-122.3493, 47.6205},
		{-79.4472, 42.62889},
		{0, 0},
		{2.3522, 48.8566},
		{151.2093, -33.8688},
		{180, 90},
	}

	for _, point := range points {
		hash, err := EncodeWithPrecision(point[0], point[1], 12)
		require.NoError(t, err)
		for _, c := range hash {
			assert.True(t, strings.ContainsRune(Base32Alphabet, c), "every output character should belong to the base32 alphabet")
		}
	}
}

func TestEncodeInvalidPrecision(t *testing.T) {
	_, err := EncodeWithPrecision(-122.3493, 47.6205, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPrecision, "precision 0 should be rejected")

	_, err = EncodeWithPrecision(-122.3493, 47.6205, -3)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPrecision, "negative precision should be rejected")
}

func TestEncodeInvalidCoordinate(t *testing.T) {
	_, err := EncodeWithPrecision(181, 47.6205, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinate, "longitude beyond 180 should be rejected")

	_, err = EncodeWithPrecision(-122.3493, -90.5, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinate, "latitude below -90 should be rejected")
}
