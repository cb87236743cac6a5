package dto

import (
	"strconv"
	"time"

	"vocab-quiz/internal/domain"
)

// CreateSessionRequest starts a quiz. Empty fields fall back to the
// configured default lesson and korean-to-sinhalese.
type CreateSessionRequest struct {
	LessonSet string `json:"lesson_set" validate:"omitempty,oneof=beginner advanced"`
	Direction string `json:"direction" validate:"omitempty,oneof=korean-to-sinhalese sinhalese-to-korean"`
}

type AnswerRequest struct {
	Answer string `json:"answer" validate:"required,max=500"`
}

// ScopeRequest selects the pool. A missing category in single mode is left
// to the session, which reports it as SCOPE_ERROR.
type ScopeRequest struct {
	Mode     string `json:"mode" validate:"required,oneof=all single"`
	Category string `json:"category" validate:"max=500"`
}

type DirectionRequest struct {
	Direction string `json:"direction" validate:"required,oneof=korean-to-sinhalese sinhalese-to-korean"`
}

type LessonRequest struct {
	LessonSet string `json:"lesson_set" validate:"required,oneof=beginner advanced"`
}

// ScoreResponse carries the counters. Accuracy is a percentage with two
// decimals, or null before the first answer.
type ScoreResponse struct {
	Correct  int     `json:"correct"`
	Wrong    int     `json:"wrong"`
	Total    int     `json:"total"`
	Accuracy *string `json:"accuracy"`
}

func NewScoreResponse(s domain.ScoreState) ScoreResponse {
	resp := ScoreResponse{Correct: s.Correct, Wrong: s.Wrong, Total: s.Total()}
	if ratio, ok := s.Accuracy(); ok {
		pct := strconv.FormatFloat(ratio*100, 'f', 2, 64)
		resp.Accuracy = &pct
	}
	return resp
}

// QuestionResponse never includes the correct answer.
type QuestionResponse struct {
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	Direction string   `json:"direction"`
}

func NewQuestionResponse(q domain.Question) QuestionResponse {
	return QuestionResponse{Prompt: q.Prompt, Options: q.Options, Direction: string(q.Direction)}
}

type ScopeResponse struct {
	Mode     string `json:"mode"`
	Category string `json:"category,omitempty"`
}

type SessionResponse struct {
	ID               string            `json:"id"`
	LessonSet        string            `json:"lesson_set"`
	Direction        string            `json:"direction"`
	Scope            ScopeResponse     `json:"scope"`
	PoolSize         int               `json:"pool_size"`
	Categories       []string          `json:"categories"`
	Score            ScoreResponse     `json:"score"`
	WrongAnswerCount int               `json:"wrong_answer_count"`
	CurrentQuestion  *QuestionResponse `json:"current_question,omitempty"`
	Answered         bool              `json:"answered"`
}

type OptionMarkResponse struct {
	Option string `json:"option"`
	Mark   string `json:"mark"`
}

type AnswerResponse struct {
	Outcome       string               `json:"outcome"`
	CorrectAnswer string               `json:"correct_answer"`
	Marks         []OptionMarkResponse `json:"marks"`
	Score         ScoreResponse        `json:"score"`
}

func NewAnswerResponse(r domain.AnswerResult) AnswerResponse {
	marks := make([]OptionMarkResponse, 0, len(r.Marks))
	for _, m := range r.Marks {
		marks = append(marks, OptionMarkResponse{Option: m.Option, Mark: string(m.Mark)})
	}
	return AnswerResponse{
		Outcome:       string(r.Outcome),
		CorrectAnswer: r.CorrectAnswer,
		Marks:         marks,
		Score:         NewScoreResponse(r.Score),
	}
}

type DirectionResponse struct {
	Direction string `json:"direction"`
}

type WrongAnswerResponse struct {
	Question      string    `json:"question"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	Direction     string    `json:"direction"`
	Timestamp     time.Time `json:"timestamp"`
}

// HistoryResponse lists the most recent wrong answers first. Total counts
// every retained record, not only the listed ones.
type HistoryResponse struct {
	Items []WrongAnswerResponse `json:"items"`
	Total int                   `json:"total"`
}

func NewHistoryResponse(records []domain.WrongAnswerRecord, total int) HistoryResponse {
	items := make([]WrongAnswerResponse, 0, len(records))
	for _, r := range records {
		items = append(items, WrongAnswerResponse{
			Question:      r.Question,
			UserAnswer:    r.UserAnswer,
			CorrectAnswer: r.CorrectAnswer,
			Direction:     string(r.Direction),
			Timestamp:     r.Timestamp,
		})
	}
	return HistoryResponse{Items: items, Total: total}
}

type LessonSetResponse struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	EntryCount int      `json:"entry_count"`
}

type LessonsResponse struct {
	Lessons []LessonSetResponse `json:"lessons"`
}

type VocabularyEntryResponse struct {
	Korean    string `json:"korean"`
	Sinhalese string `json:"sinhalese"`
}

type CategoryEntriesResponse struct {
	Name    string                    `json:"name"`
	Entries []VocabularyEntryResponse `json:"entries"`
}

// VocabularyResponse is the read-only word list of one lesson set.
type VocabularyResponse struct {
	LessonSet  string                    `json:"lesson_set"`
	Categories []CategoryEntriesResponse `json:"categories"`
}

func NewVocabularyResponse(set domain.LessonSet, v domain.Vocabulary) VocabularyResponse {
	categories := make([]CategoryEntriesResponse, 0, len(v.Categories))
	for _, c := range v.Categories {
		entries := make([]VocabularyEntryResponse, 0, len(c.Entries))
		for _, e := range c.Entries {
			entries = append(entries, VocabularyEntryResponse{Korean: e.Primary, Sinhalese: e.Secondary})
		}
		categories = append(categories, CategoryEntriesResponse{Name: c.Name, Entries: entries})
	}
	return VocabularyResponse{LessonSet: string(set), Categories: categories}
}

// SessionSummary is the final score of a session. It is cached when the
// session ends or expires.
type SessionSummary struct {
	SessionID        string        `json:"session_id"`
	LessonSet        string        `json:"lesson_set"`
	Direction        string        `json:"direction"`
	Score            ScoreResponse `json:"score"`
	WrongAnswerCount int           `json:"wrong_answer_count"`
	Active           bool          `json:"active"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
