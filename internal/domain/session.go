package domain

import (
	"math/rand"
	"time"
)

// DefaultHistoryView is how many wrong answers the history view returns.
const DefaultHistoryView = 10

// ScopeMode selects whether the pool spans all categories or one.
type ScopeMode string

const (
	ScopeAll    ScopeMode = "all"
	ScopeSingle ScopeMode = "single"
)

// Scope is the active pool selection.
type Scope struct {
	Mode     ScopeMode `json:"mode"`
	Category string    `json:"category,omitempty"`
}

// ScoreState counts answered questions.
type ScoreState struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Total returns the number of answered questions.
func (s ScoreState) Total() int {
	return s.Correct + s.Wrong
}

// Accuracy returns Correct/Total. ok is false when nothing has been answered.
func (s ScoreState) Accuracy() (ratio float64, ok bool) {
	total := s.Total()
	if total == 0 {
		return 0, false
	}
	return float64(s.Correct) / float64(total), true
}

// WrongAnswerRecord captures one missed question.
type WrongAnswerRecord struct {
	Question      string    `json:"question"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	Direction     Direction `json:"direction"`
	Timestamp     time.Time `json:"timestamp"`
}

// Outcome is the verdict of a submitted answer.
type Outcome string

const (
	OutcomeCorrect   Outcome = "CORRECT"
	OutcomeIncorrect Outcome = "INCORRECT"
)

// Mark tells the caller how to highlight an option after an answer.
type Mark string

const (
	MarkCorrect   Mark = "correct"
	MarkIncorrect Mark = "incorrect"
	MarkNone      Mark = "none"
)

// OptionMark pairs an option with its highlight.
type OptionMark struct {
	Option string `json:"option"`
	Mark   Mark   `json:"mark"`
}

// AnswerResult is returned by SubmitAnswer.
type AnswerResult struct {
	Outcome       Outcome      `json:"outcome"`
	CorrectAnswer string       `json:"correct_answer"`
	Marks         []OptionMark `json:"marks"`
	Score         ScoreState   `json:"score"`
}

// SessionOptions configures a QuizSession. Zero values fall back to a
// time-seeded source, time.Now and unbounded history.
type SessionOptions struct {
	Rand         RandomSource
	Clock        func() time.Time
	HistoryLimit int
	Direction    Direction
}

// QuizSession holds the state of one player's quiz. It is not safe for
// concurrent use.
type QuizSession struct {
	rnd          RandomSource
	clock        func() time.Time
	historyLimit int

	vocabulary Vocabulary
	scope      Scope
	pool       []VocabularyEntry
	direction  Direction

	score    ScoreState
	wrong    []WrongAnswerRecord
	question *Question
	answered bool
}

// NewQuizSession creates an empty session scoped to all categories.
func NewQuizSession(opts SessionOptions) *QuizSession {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	direction := opts.Direction
	if !direction.Valid() {
		direction = DirectionKoreanToSinhalese
	}
	limit := opts.HistoryLimit
	if limit < 0 {
		limit = 0
	}

	return &QuizSession{
		rnd:          rnd,
		clock:        clock,
		historyLimit: limit,
		scope:        Scope{Mode: ScopeAll},
		direction:    direction,
	}
}

// LoadVocabulary replaces the vocabulary and resets score and history. The
// pool is recomputed for the current scope; a single-category scope whose
// category is missing from v leaves the pool empty.
func (s *QuizSession) LoadVocabulary(v Vocabulary) {
	s.vocabulary = v
	s.pool = s.poolFor(s.scope)
	s.reset()
}

// SetScope switches between all categories and a single one. On failure the
// pool, score and history are left as they were.
func (s *QuizSession) SetScope(mode ScopeMode, category string) error {
	var scope Scope
	switch mode {
	case ScopeAll:
		scope = Scope{Mode: ScopeAll}
	case ScopeSingle:
		if category == "" {
			return NewScopeError(category)
		}
		if _, ok := s.vocabulary.Category(category); !ok {
			return NewScopeError(category)
		}
		scope = Scope{Mode: ScopeSingle, Category: category}
	default:
		return NewError(CodeScope, "unknown scope mode: "+string(mode), nil)
	}

	s.scope = scope
	s.pool = s.poolFor(scope)
	s.reset()
	return nil
}

// NextQuestion replaces the current question with a fresh one. It returns
// ErrInsufficientData when the pool holds fewer than four entries; the
// previous question is discarded either way.
func (s *QuizSession) NextQuestion() (Question, error) {
	s.question = nil
	s.answered = false

	q, err := GenerateQuestion(s.pool, s.direction, s.rnd)
	if err != nil {
		return Question{}, err
	}
	s.question = &q
	return q, nil
}

// SubmitAnswer scores choice against the current question. Only one
// submission is accepted per question.
func (s *QuizSession) SubmitAnswer(choice string) (AnswerResult, error) {
	if s.question == nil || s.answered {
		return AnswerResult{}, ErrAlreadyAnswered
	}
	q := s.question
	s.answered = true

	marks := make([]OptionMark, 0, len(q.Options))
	if choice == q.CorrectAnswer {
		s.score.Correct++
		for _, opt := range q.Options {
			mark := MarkIncorrect
			if opt == q.CorrectAnswer {
				mark = MarkCorrect
			}
			marks = append(marks, OptionMark{Option: opt, Mark: mark})
		}
		return AnswerResult{
			Outcome:       OutcomeCorrect,
			CorrectAnswer: q.CorrectAnswer,
			Marks:         marks,
			Score:         s.score,
		}, nil
	}

	s.score.Wrong++
	s.appendWrong(WrongAnswerRecord{
		Question:      q.Prompt,
		UserAnswer:    choice,
		CorrectAnswer: q.CorrectAnswer,
		Direction:     s.direction,
		Timestamp:     s.clock(),
	})
	for _, opt := range q.Options {
		mark := MarkNone
		switch opt {
		case q.CorrectAnswer:
			mark = MarkCorrect
		case choice:
			mark = MarkIncorrect
		}
		marks = append(marks, OptionMark{Option: opt, Mark: mark})
	}
	return AnswerResult{
		Outcome:       OutcomeIncorrect,
		CorrectAnswer: q.CorrectAnswer,
		Marks:         marks,
		Score:         s.score,
	}, nil
}

// SetDirection changes the translation direction. Score and history are
// kept; the active question is dropped because its answer belongs to the old
// direction.
func (s *QuizSession) SetDirection(d Direction) error {
	if !d.Valid() {
		return NewInvalidInputError("unknown direction: " + string(d))
	}
	if d != s.direction {
		s.direction = d
		s.question = nil
		s.answered = false
	}
	return nil
}

// ReverseDirection flips the direction and returns the new one.
func (s *QuizSession) ReverseDirection() Direction {
	_ = s.SetDirection(s.direction.Reverse())
	return s.direction
}

// ClearHistory empties the wrong-answer log. The score is unaffected.
func (s *QuizSession) ClearHistory() {
	s.wrong = nil
}

// RecentWrongAnswers returns up to n records, most recent first.
func (s *QuizSession) RecentWrongAnswers(n int) []WrongAnswerRecord {
	if n <= 0 || len(s.wrong) == 0 {
		return []WrongAnswerRecord{}
	}
	if n > len(s.wrong) {
		n = len(s.wrong)
	}
	out := make([]WrongAnswerRecord, 0, n)
	for i := len(s.wrong) - 1; i >= len(s.wrong)-n; i-- {
		out = append(out, s.wrong[i])
	}
	return out
}

func (s *QuizSession) WrongAnswerCount() int { return len(s.wrong) }
func (s *QuizSession) Score() ScoreState { return s.score }
func (s *QuizSession) Direction() Direction { return s.direction }
func (s *QuizSession) Scope() Scope { return s.scope }
func (s *QuizSession) PoolSize() int { return len(s.pool) }
func (s *QuizSession) Vocabulary() Vocabulary { return s.vocabulary }
func (s *QuizSession) Answered() bool { return s.answered }

// CurrentQuestion returns the active question, if any.
func (s *QuizSession) CurrentQuestion() (Question, bool) {
	if s.question == nil {
		return Question{}, false
	}
	return *s.question, true
}

func (s *QuizSession) poolFor(scope Scope) []VocabularyEntry {
	if scope.Mode == ScopeSingle {
		entries, _ := s.vocabulary.Category(scope.Category)
		return entries
	}
	return s.vocabulary.Flatten()
}

func (s *QuizSession) reset() {
	s.score = ScoreState{}
	s.wrong = nil
	s.question = nil
	s.answered = false
}

func (s *QuizSession) appendWrong(rec WrongAnswerRecord) {
	s.wrong = append(s.wrong, rec)
	if s.historyLimit > 0 && len(s.wrong) > s.historyLimit {
		drop := len(s.wrong) - s.historyLimit
		s.wrong = append([]WrongAnswerRecord(nil), s.wrong[drop:]...)
	}
}
