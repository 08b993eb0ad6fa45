package codec

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hankgalt/geocell/pkg/errors"
	"github.com/hankgalt/geocell/pkg/geohash"
)

// CodecStats counts the operations served since startup.
type CodecStats struct {
	Encodes   int `json:"encodes"`
	Decodes   int `json:"decodes"`
	Neighbors int `json:"neighbors"`
	Failures  int `json:"failures"`
}

// CodecService fronts the geohash codec with logging and operation
// counters. The codec itself is stateless, the mutex only guards the
// stats.
type CodecService struct {
	mu               sync.RWMutex
	logger           *zap.Logger
	defaultPrecision int
	stats            CodecStats
}

func New(logger *zap.Logger, defaultPrecision int) *CodecService {
	if defaultPrecision < 1 {
		defaultPrecision = geohash.DefaultPrecision
	}
	return &CodecService{
		logger:           logger,
		defaultPrecision: defaultPrecision,
	}
}

// Encode encodes a longitude/latitude pair at the given precision.
// Precision 0 selects the service default.
func (cs *CodecService) Encode(ctx context.Context, lon, lat float64, precision int) (string, error) {
	if ctx == nil {
		cs.logger.Error("context is nil", zap.Error(errors.ErrNilContext))
		return "", errors.ErrNilContext
	}
	if precision == 0 {
		precision = cs.defaultPrecision
	}

	hash, err := geohash.EncodeWithPrecision(lon, lat, precision)
	if err != nil {
		cs.logger.Error(errors.ERROR_ENCODING_LON_LAT, zap.Error(err), zap.Float64("longitude", lon), zap.Float64("latitude", lat), zap.Int("precision", precision))
		cs.count(func(s *CodecStats) { s.Failures++ })
		return "", err
	}
	cs.logger.Debug("encoded point", zap.Float64("longitude", lon), zap.Float64("latitude", lat), zap.String("geohash", hash))
	cs.count(func(s *CodecStats) { s.Encodes++ })
	return hash, nil
}

// Decode decodes a geohash and shapes the result per the requested
// geotype. An empty geotype decodes to a point.
func (cs *CodecService) Decode(ctx context.Context, hash string, geotype geohash.Geotype) (interface{}, error) {
	if ctx == nil {
		cs.logger.Error("context is nil", zap.Error(errors.ErrNilContext))
		return nil, errors.ErrNilContext
	}
	if geotype == "" {
		geotype = geohash.GeotypePoint
	}

	result, err := geohash.DecodeGeotype(hash, geotype)
	if err != nil {
		cs.logger.Error(errors.ERROR_DECODING_GEOHASH, zap.Error(err), zap.String("geohash", hash), zap.String("geotype", string(geotype)))
		cs.count(func(s *CodecStats) { s.Failures++ })
		return nil, err
	}
	cs.logger.Debug("decoded geohash", zap.String("geohash", hash), zap.String("geotype", string(geotype)))
	cs.count(func(s *CodecStats) { s.Decodes++ })
	return result, nil
}

// Neighbors returns the 9-cell grid centered on the given geohash.
func (cs *CodecService) Neighbors(ctx context.Context, hash string) ([]string, error) {
	if ctx == nil {
		cs.logger.Error("context is nil", zap.Error(errors.ErrNilContext))
		return nil, errors.ErrNilContext
	}

	grid, err := geohash.Neighbors(hash)
	if err != nil {
		cs.logger.Error(errors.ERROR_FINDING_NEIGHBORS, zap.Error(err), zap.String("geohash", hash))
		cs.count(func(s *CodecStats) { s.Failures++ })
		return nil, err
	}
	cs.logger.Debug("found neighbors", zap.String("geohash", hash), zap.Int("numOfNeighbors", len(grid)))
	cs.count(func(s *CodecStats) { s.Neighbors++ })
	return grid, nil
}

// GetCodecStats returns a snapshot of the operation counters.
func (cs *CodecService) GetCodecStats(ctx context.Context) CodecStats {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.stats
}

func (cs *CodecService) count(update func(*CodecStats)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	update(&cs.stats)
}
