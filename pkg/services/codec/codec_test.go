package codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hankgalt/geocell/pkg/errors"
	"github.com/hankgalt/geocell/pkg/geohash"
)

func TestCodecService(t *testing.T) {
	logger := zaptest.NewLogger(t)
	cs := New(logger, geohash.DefaultPrecision)

	testEncode(t, cs)
	testDecode(t, cs)
	testNeighbors(t, cs)
	testGetCodecStats(t, cs, CodecStats{Encodes: 2, Decodes: 1, Neighbors: 1, Failures: 1})
}

func testEncode(t *testing.T, cs *CodecService) {
	t.Helper()
	ctx := context.Background()

	hash, err := cs.Encode(ctx, -122.3493, 47.6205, 6)
	require.NoError(t, err)
	assert.Equal(t, hash, "c22yzv", "encoding should produce the known geohash")

	hash, err = cs.Encode(ctx, -122.3493, 47.6205, 0)
	require.NoError(t, err)
	assert.Equal(t, len(hash), geohash.DefaultPrecision, "precision 0 should fall back to the service default")

	_, err = cs.Encode(ctx, -122.3493, 47.6205, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPrecision, "negative precision should fail and be counted")
}

func testDecode(t *testing.T, cs *CodecService) {
	t.Helper()
	ctx := context.Background()

	result, err := cs.Decode(ctx, "c22yzv", "")
	require.NoError(t, err)

	point, ok := result.(*geohash.Point)
	require.True(t, ok, "an empty geotype should decode to a point")
	assert.InDelta(t, point.Longitude, -122.3493, 1e-2, "decoded longitude should be close to the encoded one")
	assert.InDelta(t, point.Latitude, 47.6205, 1e-2, "decoded latitude should be close to the encoded one")
}

func testNeighbors(t *testing.T, cs *CodecService) {
	t.Helper()
	ctx := context.Background()

	grid, err := cs.Neighbors(ctx, "c22yzv")
	require.NoError(t, err)
	require.Equal(t, len(grid), geohash.NumNeighbors, "the grid should hold exactly 9 cells")
	assert.Equal(t, grid[4], "c22yzv", "the middle slot should be the input geohash")
}

func testGetCodecStats(t *testing.T, cs *CodecService, stats CodecStats) {
	t.Helper()
	assert.Equal(t, cs.GetCodecStats(context.Background()), stats, "operation counters should reflect the calls made")
}

func TestCodecServiceNilContext(t *testing.T) {
	logger := zaptest.NewLogger(t)
	cs := New(logger, geohash.DefaultPrecision)

	var ctx context.Context
	_, err := cs.Encode(ctx, -122.3493, 47.6205, 6)
	assert.ErrorIs(t, err, errors.ErrNilContext, "encode should guard against a nil context")

	_, err = cs.Decode(ctx, "c22yzv", geohash.GeotypePoint)
	assert.ErrorIs(t, err, errors.ErrNilContext, "decode should guard against a nil context")

	_, err = cs.Neighbors(ctx, "c22yzv")
	assert.ErrorIs(t, err, errors.ErrNilContext, "neighbors should guard against a nil context")
}

func TestCodecServiceDefaultPrecisionFallback(t *testing.T) {
	logger := zaptest.NewLogger(t)
	cs := New(logger, -5)

	hash, err := cs.Encode(context.Background(), 10.40744, 57.64911, 0)
	require.NoError(t, err)
	assert.Equal(t, len(hash), geohash.DefaultPrecision, "an invalid configured precision should fall back to the package default")
}
