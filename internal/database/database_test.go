package database

import (
	"context"
	"path/filepath"
	"testing"

	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteMigrationsAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vocabulary.db")
	db, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db.DB))
	require.NoError(t, RunMigrations(db.DB), "re-running is a no-op")

	version, dirty, err := MigrationVersion(db.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	repo := repository.NewSQLVocabularyRepository(db)
	tm := repository.NewTransactionManagerAdapter(db)
	ctx := context.Background()

	v := domain.NewVocabulary(
		domain.Category{Name: "9. 가족", Entries: []domain.VocabularyEntry{{Primary: "가족", Secondary: "පවුල"}}},
		domain.Category{Name: "3-4. 안녕하세요", Entries: []domain.VocabularyEntry{
			{Primary: "안녕하세요", Secondary: "ආයුබෝවන්"},
			{Primary: "네", Secondary: "ඔව්"},
		}},
	)
	for i := 0; i < 2; i++ {
		require.NoError(t, tm.WithTransaction(ctx, func(ctx context.Context) error {
			return repo.ReplaceSet(ctx, domain.LessonBeginner, v)
		}))
	}

	got, err := repo.LoadSet(ctx, domain.LessonBeginner)
	require.NoError(t, err)
	assert.Equal(t, v.CategoryNames(), got.CategoryNames())
	assert.Equal(t, v.Flatten(), got.Flatten())

	other, err := repo.LoadSet(ctx, domain.LessonAdvanced)
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	require.NoError(t, RollbackMigrations(db.DB, 1))
	_, err = repo.LoadSet(ctx, domain.LessonBeginner)
	assert.Error(t, err, "tables are gone after rollback")
}

func TestRollbackMigrations_InvalidSteps(t *testing.T) {
	assert.Error(t, RollbackMigrations(nil, 0))
}
