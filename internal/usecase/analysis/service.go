package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/reqcontext"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100

	cacheKeyPrefix = "analysis:"
)

// Service defines the analysis use cases exposed to the HTTP layer
type Service interface {
	Analyze(ctx context.Context, text string) (*entities.Analysis, error)
	GetAnalysis(ctx context.Context, id string) (*entities.Analysis, error)
	ListAnalyses(ctx context.Context, limit, offset int) (*ListResult, error)
	DeleteAnalysis(ctx context.Context, id string) error
}

// ListResult is one page of analyses plus the overall count
type ListResult struct {
	Analyses []*entities.Analysis
	Total    int64
}

// Cache is a byte-oriented read cache for analyses fetched by ID.
// Implementations treat backend failures as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// Archiver keeps a copy of each stored analysis outside the database
type Archiver interface {
	Save(ctx context.Context, id uuid.UUID, payload []byte) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// Metrics records analysis outcomes
type Metrics interface {
	AnalysisCompleted(provider string, elapsed time.Duration)
	AnalysisFailed(reason string)
	FallbackUsed()
}

// Option configures optional collaborators of the service
type Option func(*analysisService)

// WithCache enables read-through caching for GetAnalysis
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *analysisService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithArchiver stores a JSON copy of every new analysis
func WithArchiver(archiver Archiver) Option {
	return func(s *analysisService) {
		s.archiver = archiver
	}
}

// WithMetrics reports analysis outcomes to m
func WithMetrics(m Metrics) Option {
	return func(s *analysisService) {
		s.metrics = m
	}
}

type analysisService struct {
	repo     repositories.AnalysisRepository
	primary  ai.Adapter
	fallback ai.Adapter
	cache    Cache
	cacheTTL time.Duration
	archiver Archiver
	metrics  Metrics
	logger   *zap.Logger
}

// NewService constructs the analysis service. primary and fallback may be nil.
func NewService(
	repo repositories.AnalysisRepository,
	primary ai.Adapter,
	fallback ai.Adapter,
	logger *zap.Logger,
	opts ...Option,
) Service {
	s := &analysisService{
		repo:     repo,
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	// never fall back to the same vendor
	if s.primary != nil && s.fallback != nil && s.primary.Provider() == s.fallback.Provider() {
		s.fallback = nil
	}
	return s
}

// Analyze validates the transcript, runs it through the primary adapter (and the
// fallback on adapter failure), then persists the result.
func (s *analysisService) Analyze(ctx context.Context, text string) (*entities.Analysis, error) {
	if v := ValidateTranscript(text); !v.Valid {
		s.recordFailure(apperrors.KindValidation)
		return nil, apperrors.Validation(v.Reason)
	}

	if s.primary == nil {
		s.recordFailure(apperrors.KindConfiguration)
		return nil, apperrors.Configuration("no LLM API key configured")
	}

	started := time.Now()
	used := s.primary
	result, err := s.primary.AnalyzeTranscript(ctx, text)
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindAdapter || s.fallback == nil {
			if s.logger != nil {
				s.logger.Error("❌ LLM analysis failed",
					zap.String("request_id", reqcontext.GetRequestID(ctx)),
					zap.String("provider", string(s.primary.Provider())),
					zap.Error(err),
				)
			}
			s.recordFailure(apperrors.KindOf(err))
			return nil, err
		}

		if s.logger != nil {
			s.logger.Warn("⚠️ Primary LLM failed, attempting fallback",
				zap.String("request_id", reqcontext.GetRequestID(ctx)),
				zap.String("primary", string(s.primary.Provider())),
				zap.String("fallback", string(s.fallback.Provider())),
				zap.Error(err),
			)
		}

		if s.metrics != nil {
			s.metrics.FallbackUsed()
		}

		used = s.fallback
		var fallbackErr error
		result, fallbackErr = s.fallback.AnalyzeTranscript(ctx, text)
		if fallbackErr != nil {
			if s.logger != nil {
				s.logger.Error("❌ Both LLM adapters failed",
					zap.String("request_id", reqcontext.GetRequestID(ctx)),
					zap.String("primary_error", err.Error()),
					zap.String("fallback_error", fallbackErr.Error()),
				)
			}
			s.recordFailure(apperrors.KindUnavailable)
			return nil, apperrors.Unavailable(fmt.Sprintf(
				"both primary and fallback adapters failed. primary: %s; fallback: %s",
				err.Error(), fallbackErr.Error(),
			), nil)
		}
	}

	analysis := entities.NewAnalysis(result, string(used.Provider()), used.Model())
	if err := s.repo.Create(ctx, text, analysis); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to store analysis",
				zap.String("request_id", reqcontext.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
		s.recordFailure(apperrors.KindStorage)
		return nil, apperrors.Storage("write", err)
	}
	analysis.EnsureCollections()

	if s.metrics != nil {
		s.metrics.AnalysisCompleted(analysis.Provider, time.Since(started))
	}

	if s.logger != nil {
		s.logger.Info("✅ Analysis stored",
			zap.String("request_id", reqcontext.GetRequestID(ctx)),
			zap.String("analysis_id", analysis.ID.String()),
			zap.String("provider", analysis.Provider),
			zap.Int("action_items", len(analysis.ActionItems)),
			zap.Int("key_decisions", len(analysis.KeyDecisions)),
			zap.Duration("elapsed", reqcontext.Elapsed(ctx)),
		)
	}

	s.archive(ctx, analysis)
	return analysis, nil
}

// GetAnalysis returns a full analysis including its transcript
func (s *analysisService) GetAnalysis(ctx context.Context, id string) (*entities.Analysis, error) {
	analysisID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("Analysis")
	}

	if cached, ok := s.fromCache(ctx, analysisID); ok {
		return cached, nil
	}

	analysis, err := s.repo.FindByID(ctx, analysisID)
	if err != nil {
		return nil, apperrors.Storage("read", err)
	}
	if analysis == nil {
		return nil, apperrors.NotFound("Analysis")
	}

	s.toCache(ctx, analysis)
	return analysis, nil
}

// ListAnalyses returns one page of analyses, newest first, with the total count
func (s *analysisService) ListAnalyses(ctx context.Context, limit, offset int) (*ListResult, error) {
	if limit < 1 || limit > MaxListLimit {
		return nil, apperrors.Validation(fmt.Sprintf("Limit must be between 1 and %d", MaxListLimit))
	}
	if offset < 0 {
		return nil, apperrors.Validation("Offset must be non-negative")
	}

	var (
		analyses []*entities.Analysis
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		analyses, err = s.repo.List(gctx, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Storage("read", err)
	}

	if analyses == nil {
		analyses = make([]*entities.Analysis, 0)
	}
	return &ListResult{Analyses: analyses, Total: total}, nil
}

// DeleteAnalysis removes the analysis, its children and its transcript
func (s *analysisService) DeleteAnalysis(ctx context.Context, id string) error {
	analysisID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NotFound("Analysis")
	}

	found, err := s.repo.Delete(ctx, analysisID)
	if err != nil {
		return apperrors.Storage("delete", err)
	}
	if !found {
		return apperrors.NotFound("Analysis")
	}

	if s.cache != nil {
		s.cache.Delete(ctx, cacheKey(analysisID))
	}
	if s.archiver != nil {
		if err := s.archiver.Remove(ctx, analysisID); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to remove archived analysis",
				zap.String("analysis_id", analysisID.String()),
				zap.Error(err),
			)
		}
	}

	if s.logger != nil {
		s.logger.Info("🗑️ Analysis deleted", zap.String("analysis_id", analysisID.String()))
	}
	return nil
}

func (s *analysisService) recordFailure(kind apperrors.Kind) {
	if s.metrics != nil {
		s.metrics.AnalysisFailed(kind.String())
	}
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}

func (s *analysisService) fromCache(ctx context.Context, id uuid.UUID) (*entities.Analysis, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok := s.cache.Get(ctx, cacheKey(id))
	if !ok {
		return nil, false
	}

	var analysis entities.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		s.cache.Delete(ctx, cacheKey(id))
		return nil, false
	}
	analysis.EnsureCollections()
	return &analysis, true
}

func (s *analysisService) toCache(ctx context.Context, analysis *entities.Analysis) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	s.cache.Set(ctx, cacheKey(analysis.ID), data, s.cacheTTL)
}

// archive is best-effort, a failed upload never fails the request
func (s *analysisService) archive(ctx context.Context, analysis *entities.Analysis) {
	if s.archiver == nil {
		return
	}
	data, err := json.Marshal(analysis)
	if err == nil {
		err = s.archiver.Save(ctx, analysis.ID, data)
	}
	if err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to archive analysis",
			zap.String("analysis_id", analysis.ID.String()),
			zap.Error(err),
		)
	}
}
