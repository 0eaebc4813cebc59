package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/avolkovs/wpcloud/internal/client/api"
	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/client/session"
	"github.com/avolkovs/wpcloud/internal/common"
)

// AnalysisService requests descriptive tags for one owned file.
type AnalysisService interface {
	// Analyze verifies locally that key belongs to the current identity
	// before any network call; a foreign key fails with ErrPermissionDenied
	// and no request leaves the client. A missing or malformed analysis
	// document yields an empty, marked result, never an error.
	Analyze(ctx context.Context, key string) (models.AnalysisResult, error)
}

type analysisService struct {
	api   api.Client
	store *session.Store
	gen   atomic.Uint64
}

func NewAnalysisService(api api.Client, store *session.Store) AnalysisService {
	return &analysisService{api: api, store: store}
}

func (s *analysisService) Analyze(ctx context.Context, key string) (models.AnalysisResult, error) {
	sess, ok := s.store.Load()
	if !ok {
		return models.AnalysisResult{}, common.ErrNoSession
	}
	owner := sess.Identity.OwnerID()

	if !models.OwnedBy(owner, key) {
		return models.AnalysisResult{}, fmt.Errorf("not your file: %w", common.ErrPermissionDenied)
	}

	gen := s.gen.Add(1)

	raw, err := s.api.Analyze(ctx, key)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analyze %s: %w", key, err)
	}

	if s.gen.Load() != gen {
		return models.AnalysisResult{}, common.ErrStaleResponse
	}

	return models.ParseAnalysis(raw), nil
}
