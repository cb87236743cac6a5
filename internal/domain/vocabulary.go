package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// VocabularyEntry is one Korean/Sinhalese word pair.
type VocabularyEntry struct {
	Primary   string `json:"korean" db:"primary_word"`
	Secondary string `json:"sinhalese" db:"secondary_word"`
}

// Category is a named lesson inside a vocabulary set.
type Category struct {
	Name    string
	Entries []VocabularyEntry
}

// Vocabulary is an ordered collection of categories. Category order follows
// the source document, so flattening is deterministic.
type Vocabulary struct {
	Categories []Category
}

// LessonSet names one of the vocabulary sets a session can drill.
type LessonSet string

const (
	LessonBeginner LessonSet = "beginner"
	LessonAdvanced LessonSet = "advanced"
)

// LessonSets lists every known set in display order.
var LessonSets = []LessonSet{LessonBeginner, LessonAdvanced}

// Valid reports whether s is a known lesson set.
func (s LessonSet) Valid() bool {
	return s == LessonBeginner || s == LessonAdvanced
}

// NewVocabulary builds a Vocabulary from categories in the given order.
func NewVocabulary(categories ...Category) Vocabulary {
	return Vocabulary{Categories: categories}
}

// Flatten returns every entry of every category, in order.
func (v Vocabulary) Flatten() []VocabularyEntry {
	total := 0
	for _, c := range v.Categories {
		total += len(c.Entries)
	}
	pool := make([]VocabularyEntry, 0, total)
	for _, c := range v.Categories {
		pool = append(pool, c.Entries...)
	}
	return pool
}

// Category returns the entries of the named category.
func (v Vocabulary) Category(name string) ([]VocabularyEntry, bool) {
	for _, c := range v.Categories {
		if c.Name == name {
			return c.Entries, true
		}
	}
	return nil, false
}

// CategoryNames returns the category names in source order.
func (v Vocabulary) CategoryNames() []string {
	names := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		names = append(names, c.Name)
	}
	return names
}

// IsEmpty reports whether the vocabulary has no entries at all.
func (v Vocabulary) IsEmpty() bool {
	for _, c := range v.Categories {
		if len(c.Entries) > 0 {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes {"category": [entries...], ...} keeping key order.
func (v *Vocabulary) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("vocabulary: expected JSON object, got %v", tok)
	}

	var categories []Category
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("vocabulary: expected category name, got %v", tok)
		}

		var entries []VocabularyEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("vocabulary: category %q: %w", name, err)
		}
		categories = append(categories, Category{Name: name, Entries: entries})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	v.Categories = categories
	return nil
}

// MarshalJSON encodes the vocabulary as an ordered JSON object.
func (v Vocabulary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range v.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		entries := c.Entries
		if entries == nil {
			entries = []VocabularyEntry{}
		}
		val, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
