package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"vocab-quiz/internal/domain"
)

// FileVocabularyRepository reads lesson sets from JSON documents shaped as
// {"<category>": [{"korean": "...", "sinhalese": "..."}, ...]}.
type FileVocabularyRepository struct {
	paths map[domain.LessonSet]string
}

func NewFileVocabularyRepository(paths map[domain.LessonSet]string) *FileVocabularyRepository {
	return &FileVocabularyRepository{paths: paths}
}

func (r *FileVocabularyRepository) LoadSet(ctx context.Context, set domain.LessonSet) (domain.Vocabulary, error) {
	path, ok := r.paths[set]
	if !ok || path == "" {
		return domain.Vocabulary{}, domain.NewLessonNotFoundError(set)
	}
	if err := ctx.Err(); err != nil {
		return domain.Vocabulary{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("failed to read %s vocabulary from %s: %w", set, path, err)
	}

	var v domain.Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("failed to parse %s vocabulary from %s: %w", set, path, err)
	}
	return v, nil
}

var _ domain.VocabularyRepository = (*FileVocabularyRepository)(nil)
