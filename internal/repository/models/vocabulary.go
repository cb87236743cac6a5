package models

// VocabularyCategory is a row of vocabulary_categories. Position keeps the
// order categories had in the source document.
type VocabularyCategory struct {
	LessonSet string `db:"lesson_set"`
	Name      string `db:"name"`
	Position  int    `db:"position"`
}

// VocabularyEntry is a row of vocabulary_entries.
type VocabularyEntry struct {
	LessonSet     string `db:"lesson_set"`
	Category      string `db:"category"`
	Position      int    `db:"position"`
	PrimaryWord   string `db:"primary_word"`
	SecondaryWord string `db:"secondary_word"`
}
