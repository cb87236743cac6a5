package domain

import "context"

// VocabularyRepository loads a named vocabulary set from a data source.
type VocabularyRepository interface {
	// LoadSet returns the categories of set in source order.
	LoadSet(ctx context.Context, set LessonSet) (Vocabulary, error)
}

// VocabularyWriter stores a vocabulary set, replacing any previous copy.
type VocabularyWriter interface {
	ReplaceSet(ctx context.Context, set LessonSet, v Vocabulary) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
