package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jageocoder-go/app/config"
	"github.com/jageocoder-go/app/models"
	"github.com/jageocoder-go/internal/dictionary"
	"github.com/jageocoder-go/internal/geocoder"
	"github.com/jageocoder-go/internal/itaiji"
)

// GeocodeService is the HTTP façade's entry point into the geocoder
// engine: it owns the dictionary handle, the tree handle (local or
// remote), and the default search Config, and converts between the
// internal/geocoder types and the app/models DTOs. Generalized from
// the teacher's AddressService, which played the same role between
// app/controllers and internal/parser+internal/search.
type GeocodeService struct {
	tree   geocoder.TreeHandle
	handle *dictionary.Handle
	logger *zap.Logger
	config geocoder.Config

	mu        sync.RWMutex
	startTime time.Time
}

// NewGeocodeService wires a dictionary handle into a LocalTree and
// builds the default search Config from the loaded configuration.
func NewGeocodeService(handle *dictionary.Handle, cfg config.SearchDefaults, logger *zap.Logger) *GeocodeService {
	engine := geocoder.NewEngine(handle.Store, handle.Trie, itaiji.Default)
	tree := geocoder.NewLocalTree(engine, handle.Aza)

	searchCfg := geocoder.DefaultConfig()
	searchCfg.BestOnly = cfg.BestOnly
	searchCfg.RequireCoordinates = cfg.RequireCoordinates
	searchCfg.AutoRedirect = cfg.AutoRedirect
	switch cfg.AzaSkip {
	case "true":
		v := true
		searchCfg.AzaSkip = &v
	case "false":
		v := false
		searchCfg.AzaSkip = &v
	default:
		searchCfg.AzaSkip = nil
	}

	return &GeocodeService{
		tree:      tree,
		handle:    handle,
		logger:    logger,
		config:    searchCfg,
		startTime: time.Now(),
	}
}

// Geocode resolves a free-text query into ranked candidates.
func (s *GeocodeService) Geocode(ctx context.Context, query string) (*models.GeocodeResult, error) {
	if query == "" {
		return nil, errors.New("geocode: empty query")
	}

	start := time.Now()
	candidates, err := s.tree.SearchNode(ctx, query, s.config)
	if err != nil {
		s.logger.Error("geocode query failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	result := &models.GeocodeResult{
		Query:            query,
		Candidates:       make([]models.GeocodeCandidate, 0, len(candidates)),
		DictionarySig:    s.handle.Signature,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
	for _, c := range candidates {
		result.Candidates = append(result.Candidates, toGeocodeCandidate(c))
	}

	switch {
	case len(result.Candidates) == 0:
		result.Status = models.StatusUnmatched
	case len(result.Candidates) == 1:
		result.Status = models.StatusMatched
	default:
		result.Status = models.StatusAmbiguous
	}
	return result, nil
}

func toGeocodeCandidate(c geocoder.Candidate) models.GeocodeCandidate {
	gc := models.GeocodeCandidate{
		Matched:  c.Matched,
		FullName: c.FullName,
	}
	if c.Node != nil {
		gc.NodeID = int64(c.Node.ID)
		gc.Level = int(c.Node.Level)
		gc.X = c.Node.X
		gc.Y = c.Node.Y
		gc.Note = c.Node.Note
	}
	return gc
}

// Reverse is a documented stub: reverse geocoding needs a spatial
// collaborator (Delaunay triangulation / R-tree) that is explicitly out
// of scope (SPEC_FULL §6); the endpoint and DTOs exist so the external
// contract stays complete.
func (s *GeocodeService) Reverse(ctx context.Context, x, y float64) (*models.GeocodeResult, error) {
	return nil, geocoder.ErrReverseUnavailable
}

// AzaByCode resolves a machi-aza code (current or legacy 13-digit form)
// to its postal/name record.
func (s *GeocodeService) AzaByCode(code string) (*models.AzaLookupResult, bool) {
	rec, ok := s.handle.Aza.ByCode(code)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(rec.Names))
	for _, n := range rec.Names {
		names = append(names, n.Name)
	}
	return &models.AzaLookupResult{Code: rec.Code, Names: names, Postcode: rec.Postcode}, true
}

// DictionarySignature reports the signature of the dictionary currently
// serving queries, used as part of the result-cache key.
func (s *GeocodeService) DictionarySignature() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle.Signature
}

// Uptime reports how long this service has been serving queries.
func (s *GeocodeService) Uptime() time.Duration {
	return time.Since(s.startTime)
}
