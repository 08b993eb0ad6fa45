package app

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/hankgalt/geocell/pkg/constants"
	"github.com/hankgalt/geocell/pkg/geohash"
	"github.com/hankgalt/geocell/pkg/services/codec"
)

func NewApp(a string, cs *codec.CodecService, l *zap.Logger) *http.Server {
	httpsrv := newApp(cs, l)
	r := mux.NewRouter()

	r.HandleFunc(constants.ENCODE_URL, httpsrv.handleEncode).Methods("POST")
	r.HandleFunc(constants.DECODE_URL, httpsrv.handleDecode).Methods("POST")
	r.HandleFunc(constants.NEIGHBORS_URL, httpsrv.handleNeighbors).Methods("POST")
	r.HandleFunc(constants.STATS_CHECK_URL, httpsrv.handleStatsCheck)
	r.HandleFunc(constants.HEALTH_CHECK_URL, httpsrv.handleHealthCheck)

	return &http.Server{
		Addr:    a,
		Handler: r,
	}
}

type app struct {
	codec  *codec.CodecService
	logger *zap.Logger
}

type EncodeRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Precision int     `json:"precision"`
}

type EncodeResponse struct {
	Geohash   string `json:"geohash"`
	Precision int    `json:"precision"`
}

type DecodeRequest struct {
	Geohash string `json:"geohash"`
	Geotype string `json:"geotype"`
}

type DecodeResponse struct {
	Geohash string      `json:"geohash"`
	Geotype string      `json:"geotype"`
	Result  interface{} `json:"result"`
}

type NeighborsRequest struct {
	Geohash string `json:"geohash"`
}

type NeighborsResponse struct {
	Geohash   string   `json:"geohash"`
	Neighbors []string `json:"neighbors"`
	Count     int      `json:"count"`
}

type StatsResponse struct {
	Stats codec.CodecStats `json:"stats"`
}

func newApp(cs *codec.CodecService, l *zap.Logger) *app {
	return &app{
		codec:  cs,
		logger: l,
	}
}

func (s *app) handleHealthCheck(rw http.ResponseWriter, req *http.Request) {
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte("Success"))
}

func (s *app) handleStatsCheck(rw http.ResponseWriter, req *http.Request) {
	ctx := context.Background()
	stats := s.codec.GetCodecStats(ctx)
	res := StatsResponse{Stats: stats}

	err := json.NewEncoder(rw).Encode(res)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *app) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		s.logger.Error("error decoding encodeRequest", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := s.codec.Encode(r.Context(), req.Longitude, req.Latitude, req.Precision)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := EncodeResponse{Geohash: hash, Precision: len(hash)}
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *app) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		s.logger.Error("error decoding decodeRequest", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Geotype == "" {
		req.Geotype = string(geohash.GeotypePoint)
	}

	result, err := s.codec.Decode(r.Context(), req.Geohash, geohash.Geotype(req.Geotype))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := DecodeResponse{Geohash: req.Geohash, Geotype: req.Geotype, Result: result}
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *app) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	var req NeighborsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		s.logger.Error("error decoding neighborsRequest", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	grid, err := s.codec.Neighbors(r.Context(), req.Geohash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := NeighborsResponse{Geohash: req.Geohash, Neighbors: grid, Count: len(grid)}
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
