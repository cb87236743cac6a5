package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vocab-quiz/internal/cache"
	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/dto"
	"vocab-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrSummaryNotFound is returned when no summary is cached for a session.
var ErrSummaryNotFound = errors.New("session summary not found in cache")

// SummaryCacheService keeps the final score of ended sessions.
type SummaryCacheService interface {
	Put(ctx context.Context, summary *dto.SessionSummary) error
	Get(ctx context.Context, sessionID string) (*dto.SessionSummary, error)
}

type summaryCacheServiceImpl struct {
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewSummaryCacheService returns a no-op implementation when cache is nil.
func NewSummaryCacheService(c domain.Cache, ttl time.Duration) SummaryCacheService {
	if c == nil {
		logger.Get().Warn("SummaryCacheService initialized with nil cache. Service will be no-op.")
		return &noopSummaryCacheService{}
	}
	return &summaryCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *summaryCacheServiceImpl) Put(ctx context.Context, summary *dto.SessionSummary) error {
	if summary == nil {
		return domain.NewInvalidInputError("cannot cache nil summary")
	}

	key := cache.SessionSummaryKey(summary.SessionID)
	data, err := json.Marshal(summary)
	if err != nil {
		return domain.NewInternalError("failed to marshal session summary", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache session summary", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to cache session summary for key %s", key), err)
	}
	logger.Get().Debug("Cached session summary", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get coalesces concurrent lookups of the same session into one cache read.
// Each caller receives its own copy.
func (s *summaryCacheServiceImpl) Get(ctx context.Context, sessionID string) (*dto.SessionSummary, error) {
	key := cache.SessionSummaryKey(sessionID)
	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		return s.load(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	summary := *res.(*dto.SessionSummary)
	return &summary, nil
}

func (s *summaryCacheServiceImpl) load(ctx context.Context, key string) (*dto.SessionSummary, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Session summary cache miss", zap.String("key", key))
			return nil, ErrSummaryNotFound
		}
		logger.Get().Error("Failed to get session summary from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get session summary for key %s", key), err)
	}
	if data == "" {
		return nil, ErrSummaryNotFound
	}

	var summary dto.SessionSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		logger.Get().Error("Failed to unmarshal session summary", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal session summary for key %s", key), err)
	}
	return &summary, nil
}

type noopSummaryCacheService struct{}

func (s *noopSummaryCacheService) Put(ctx context.Context, summary *dto.SessionSummary) error {
	return nil
}

func (s *noopSummaryCacheService) Get(ctx context.Context, sessionID string) (*dto.SessionSummary, error) {
	return nil, ErrSummaryNotFound
}
