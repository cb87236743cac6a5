package service

import (
	"context"
	"fmt"
	"sync"

	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// VocabularyCatalog holds the loaded lesson sets shared by every session.
type VocabularyCatalog struct {
	repo domain.VocabularyRepository

	mu   sync.RWMutex
	sets map[domain.LessonSet]domain.Vocabulary
}

func NewVocabularyCatalog(repo domain.VocabularyRepository) *VocabularyCatalog {
	return &VocabularyCatalog{
		repo: repo,
		sets: make(map[domain.LessonSet]domain.Vocabulary),
	}
}

// Load fetches every lesson set concurrently. The catalog is only replaced
// when all sets load; on failure the previously loaded sets stay active.
func (c *VocabularyCatalog) Load(ctx context.Context) error {
	loaded := make([]domain.Vocabulary, len(domain.LessonSets))

	g, gctx := errgroup.WithContext(ctx)
	for i, set := range domain.LessonSets {
		g.Go(func() error {
			v, err := c.repo.LoadSet(gctx, set)
			if err != nil {
				return fmt.Errorf("load %s vocabulary: %w", set, err)
			}
			loaded[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to load vocabulary; keeping previous lesson sets", zap.Error(err))
		return err
	}

	c.mu.Lock()
	for i, set := range domain.LessonSets {
		c.sets[set] = loaded[i]
	}
	c.mu.Unlock()

	for i, set := range domain.LessonSets {
		logger.Get().Info("Vocabulary loaded",
			zap.String("lesson_set", string(set)),
			zap.Int("categories", len(loaded[i].Categories)),
			zap.Int("entries", len(loaded[i].Flatten())),
		)
	}
	return nil
}

// Get returns the vocabulary of set, or LESSON_NOT_FOUND if it never loaded.
func (c *VocabularyCatalog) Get(set domain.LessonSet) (domain.Vocabulary, error) {
	if !set.Valid() {
		return domain.Vocabulary{}, domain.NewLessonNotFoundError(set)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.sets[set]
	if !ok {
		return domain.Vocabulary{}, domain.NewLessonNotFoundError(set)
	}
	return v, nil
}

// Loaded lists the lesson sets currently available, in LessonSets order.
func (c *VocabularyCatalog) Loaded() []domain.LessonSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.LessonSet, 0, len(c.sets))
	for _, set := range domain.LessonSets {
		if _, ok := c.sets[set]; ok {
			out = append(out, set)
		}
	}
	return out
}
