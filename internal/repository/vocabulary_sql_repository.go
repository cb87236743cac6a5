package repository

import (
	"context"
	"fmt"

	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/repository/models"
)

const (
	selectCategoriesQuery = `SELECT lesson_set, name, position FROM vocabulary_categories WHERE lesson_set = ? ORDER BY position`
	selectEntriesQuery    = `SELECT lesson_set, category, position, primary_word, secondary_word FROM vocabulary_entries WHERE lesson_set = ? ORDER BY category, position`
	deleteEntriesQuery    = `DELETE FROM vocabulary_entries WHERE lesson_set = ?`
	deleteCategoriesQuery = `DELETE FROM vocabulary_categories WHERE lesson_set = ?`
	insertCategoryQuery   = `INSERT INTO vocabulary_categories (lesson_set, name, position) VALUES (:lesson_set, :name, :position)`
	insertEntryQuery      = `INSERT INTO vocabulary_entries (lesson_set, category, position, primary_word, secondary_word) VALUES (:lesson_set, :category, :position, :primary_word, :secondary_word)`
)

// SQLVocabularyRepository stores lesson sets in the vocabulary_categories and
// vocabulary_entries tables.
type SQLVocabularyRepository struct {
	db DBTX
}

func NewSQLVocabularyRepository(db DBTX) *SQLVocabularyRepository {
	return &SQLVocabularyRepository{db: db}
}

// LoadSet rebuilds the vocabulary of set in its stored category order. A set
// with no rows yields an empty vocabulary.
func (r *SQLVocabularyRepository) LoadSet(ctx context.Context, set domain.LessonSet) (domain.Vocabulary, error) {
	exec := GetExecutor(ctx, r.db)

	var categoryRows []models.VocabularyCategory
	if err := exec.SelectContext(ctx, &categoryRows, selectCategoriesQuery, string(set)); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("failed to load categories for %s: %w", set, err)
	}

	var entryRows []models.VocabularyEntry
	if err := exec.SelectContext(ctx, &entryRows, selectEntriesQuery, string(set)); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("failed to load entries for %s: %w", set, err)
	}

	index := make(map[string]int, len(categoryRows))
	categories := make([]domain.Category, 0, len(categoryRows))
	for _, row := range categoryRows {
		index[row.Name] = len(categories)
		categories = append(categories, domain.Category{Name: row.Name, Entries: []domain.VocabularyEntry{}})
	}

	for _, row := range entryRows {
		i, ok := index[row.Category]
		if !ok {
			i = len(categories)
			index[row.Category] = i
			categories = append(categories, domain.Category{Name: row.Category})
		}
		categories[i].Entries = append(categories[i].Entries, domain.VocabularyEntry{
			Primary:   row.PrimaryWord,
			Secondary: row.SecondaryWord,
		})
	}

	return domain.NewVocabulary(categories...), nil
}

// ReplaceSet deletes the stored copy of set and inserts v. Run it inside
// TransactionManager.WithTransaction to make the swap atomic.
func (r *SQLVocabularyRepository) ReplaceSet(ctx context.Context, set domain.LessonSet, v domain.Vocabulary) error {
	exec := GetExecutor(ctx, r.db)

	if _, err := exec.ExecContext(ctx, deleteEntriesQuery, string(set)); err != nil {
		return fmt.Errorf("failed to delete entries for %s: %w", set, err)
	}
	if _, err := exec.ExecContext(ctx, deleteCategoriesQuery, string(set)); err != nil {
		return fmt.Errorf("failed to delete categories for %s: %w", set, err)
	}

	for ci, category := range v.Categories {
		row := models.VocabularyCategory{LessonSet: string(set), Name: category.Name, Position: ci}
		if _, err := exec.NamedExecContext(ctx, insertCategoryQuery, row); err != nil {
			return fmt.Errorf("failed to insert category %q: %w", category.Name, err)
		}
		for ei, entry := range category.Entries {
			entryRow := models.VocabularyEntry{
				LessonSet:     string(set),
				Category:      category.Name,
				Position:      ei,
				PrimaryWord:   entry.Primary,
				SecondaryWord: entry.Secondary,
			}
			if _, err := exec.NamedExecContext(ctx, insertEntryQuery, entryRow); err != nil {
				return fmt.Errorf("failed to insert entry %q in %q: %w", entry.Primary, category.Name, err)
			}
		}
	}
	return nil
}

var (
	_ domain.VocabularyRepository = (*SQLVocabularyRepository)(nil)
	_ domain.VocabularyWriter     = (*SQLVocabularyRepository)(nil)
)
