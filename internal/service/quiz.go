package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"vocab-quiz/internal/config"
	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/dto"
	"vocab-quiz/internal/logger"
	"vocab-quiz/internal/util"

	"go.uber.org/zap"
)

// QuizService exposes quiz sessions to the HTTP layer. Every session is an
// independent domain.QuizSession keyed by a ULID.
type QuizService interface {
	Health(ctx context.Context) *dto.HealthResponse
	ListLessons(ctx context.Context) (*dto.LessonsResponse, error)
	GetVocabulary(ctx context.Context, set string) (*dto.VocabularyResponse, error)

	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, id string) (*dto.SessionResponse, error)
	EndSession(ctx context.Context, id string) (*dto.SessionSummary, error)

	NextQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, id string, req *dto.AnswerRequest) (*dto.AnswerResponse, error)
	SetScope(ctx context.Context, id string, req *dto.ScopeRequest) (*dto.SessionResponse, error)
	SetDirection(ctx context.Context, id string, req *dto.DirectionRequest) (*dto.DirectionResponse, error)
	ReverseDirection(ctx context.Context, id string) (*dto.DirectionResponse, error)
	SwitchLesson(ctx context.Context, id string, req *dto.LessonRequest) (*dto.SessionResponse, error)

	History(ctx context.Context, id string) (*dto.HistoryResponse, error)
	ClearHistory(ctx context.Context, id string) (*dto.HistoryResponse, error)
	Summary(ctx context.Context, id string) (*dto.SessionSummary, error)

	EvictIdle(ctx context.Context) int
	RunJanitor(ctx context.Context, interval time.Duration)
}

type sessionEntry struct {
	mu       sync.Mutex
	id       string
	lesson   domain.LessonSet
	session  *domain.QuizSession
	lastSeen time.Time
	closed   bool
}

type quizService struct {
	catalog       *VocabularyCatalog
	summaries     SummaryCacheService
	cache         domain.Cache
	cfg           config.QuizConfig
	defaultLesson domain.LessonSet

	clock   func() time.Time
	newRand func() domain.RandomSource

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewQuizService wires the service. cache may be nil when Redis is disabled.
func NewQuizService(
	catalog *VocabularyCatalog,
	summaries SummaryCacheService,
	cache domain.Cache,
	cfg *config.Config,
) QuizService {
	return newQuizService(catalog, summaries, cache, cfg)
}

func newQuizService(catalog *VocabularyCatalog, summaries SummaryCacheService, cache domain.Cache, cfg *config.Config) *quizService {
	if summaries == nil {
		summaries = NewSummaryCacheService(nil, 0)
	}
	defaultLesson := domain.LessonSet(cfg.Vocabulary.DefaultLesson)
	if !defaultLesson.Valid() {
		defaultLesson = domain.LessonAdvanced
	}
	return &quizService{
		catalog:       catalog,
		summaries:     summaries,
		cache:         cache,
		cfg:           cfg.Quiz,
		defaultLesson: defaultLesson,
		clock:         time.Now,
		newRand: func() domain.RandomSource {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		sessions: make(map[string]*sessionEntry),
	}
}

func (s *quizService) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{Status: "ok", Cache: "disabled"}
	if s.cache == nil {
		return resp
	}
	if err := s.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Cache ping failed", zap.Error(err))
		resp.Cache = "unavailable"
		return resp
	}
	resp.Cache = "ok"
	return resp
}

func (s *quizService) ListLessons(ctx context.Context) (*dto.LessonsResponse, error) {
	loaded := s.catalog.Loaded()
	resp := &dto.LessonsResponse{Lessons: make([]dto.LessonSetResponse, 0, len(loaded))}
	for _, set := range loaded {
		v, err := s.catalog.Get(set)
		if err != nil {
			return nil, err
		}
		resp.Lessons = append(resp.Lessons, dto.LessonSetResponse{
			Name:       string(set),
			Categories: v.CategoryNames(),
			EntryCount: len(v.Flatten()),
		})
	}
	return resp, nil
}

func (s *quizService) GetVocabulary(ctx context.Context, set string) (*dto.VocabularyResponse, error) {
	lesson := domain.LessonSet(set)
	v, err := s.catalog.Get(lesson)
	if err != nil {
		return nil, err
	}
	resp := dto.NewVocabularyResponse(lesson, v)
	return &resp, nil
}

func (s *quizService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	lesson := s.defaultLesson
	direction := domain.DirectionKoreanToSinhalese
	if req != nil {
		if req.LessonSet != "" {
			lesson = domain.LessonSet(req.LessonSet)
		}
		if req.Direction != "" {
			direction = domain.Direction(req.Direction)
		}
	}
	if !direction.Valid() {
		return nil, domain.NewInvalidInputError("unknown direction: " + string(direction))
	}

	v, err := s.catalog.Get(lesson)
	if err != nil {
		return nil, err
	}

	qs := domain.NewQuizSession(domain.SessionOptions{
		Rand:         s.newRand(),
		Clock:        s.clock,
		HistoryLimit: s.cfg.HistoryLimit,
		Direction:    direction,
	})
	qs.LoadVocabulary(v)

	entry := &sessionEntry{
		id:       util.NewULID(),
		lesson:   lesson,
		session:  qs,
		lastSeen: s.clock(),
	}

	s.mu.Lock()
	s.sessions[entry.id] = entry
	count := len(s.sessions)
	s.mu.Unlock()

	logger.Get().Info("Quiz session created",
		zap.String("session_id", entry.id),
		zap.String("lesson_set", string(lesson)),
		zap.String("direction", string(direction)),
		zap.Int("active_sessions", count),
	)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return sessionResponse(entry), nil
}

func (s *quizService) GetSession(ctx context.Context, id string) (*dto.SessionResponse, error) {
	var resp *dto.SessionResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		resp = sessionResponse(e)
		return nil
	})
	return resp, err
}

// EndSession removes the session and publishes its final score.
func (s *quizService) EndSession(ctx context.Context, id string) (*dto.SessionSummary, error) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}

	entry.mu.Lock()
	entry.closed = true
	summary := summaryOf(entry, s.clock())
	entry.mu.Unlock()

	s.publishSummary(ctx, summary)
	logger.Get().Info("Quiz session ended",
		zap.String("session_id", id),
		zap.Int("correct", summary.Score.Correct),
		zap.Int("wrong", summary.Score.Wrong),
	)
	return summary, nil
}

func (s *quizService) NextQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	var resp *dto.QuestionResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		q, err := e.session.NextQuestion()
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientData) {
				logger.Get().Debug("Not enough words for a question",
					zap.String("session_id", id),
					zap.Int("pool_size", e.session.PoolSize()),
				)
			}
			return err
		}
		r := dto.NewQuestionResponse(q)
		resp = &r
		return nil
	})
	return resp, err
}

func (s *quizService) SubmitAnswer(ctx context.Context, id string, req *dto.AnswerRequest) (*dto.AnswerResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("answer is required")
	}
	var resp *dto.AnswerResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		result, err := e.session.SubmitAnswer(req.Answer)
		if err != nil {
			return err
		}
		r := dto.NewAnswerResponse(result)
		resp = &r
		return nil
	})
	return resp, err
}

func (s *quizService) SetScope(ctx context.Context, id string, req *dto.ScopeRequest) (*dto.SessionResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("scope is required")
	}
	var resp *dto.SessionResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		if err := e.session.SetScope(domain.ScopeMode(req.Mode), req.Category); err != nil {
			return err
		}
		resp = sessionResponse(e)
		return nil
	})
	return resp, err
}

func (s *quizService) SetDirection(ctx context.Context, id string, req *dto.DirectionRequest) (*dto.DirectionResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("direction is required")
	}
	var resp *dto.DirectionResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		if err := e.session.SetDirection(domain.Direction(req.Direction)); err != nil {
			return err
		}
		resp = &dto.DirectionResponse{Direction: string(e.session.Direction())}
		return nil
	})
	return resp, err
}

func (s *quizService) ReverseDirection(ctx context.Context, id string) (*dto.DirectionResponse, error) {
	var resp *dto.DirectionResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		resp = &dto.DirectionResponse{Direction: string(e.session.ReverseDirection())}
		return nil
	})
	return resp, err
}

// SwitchLesson loads another lesson set into the session. Score and history
// are reset; the scope is kept.
func (s *quizService) SwitchLesson(ctx context.Context, id string, req *dto.LessonRequest) (*dto.SessionResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("lesson_set is required")
	}
	lesson := domain.LessonSet(req.LessonSet)
	v, err := s.catalog.Get(lesson)
	if err != nil {
		return nil, err
	}

	var resp *dto.SessionResponse
	err = s.withSession(id, func(e *sessionEntry) error {
		e.session.LoadVocabulary(v)
		e.lesson = lesson
		resp = sessionResponse(e)
		return nil
	})
	return resp, err
}

func (s *quizService) History(ctx context.Context, id string) (*dto.HistoryResponse, error) {
	var resp *dto.HistoryResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		r := dto.NewHistoryResponse(e.session.RecentWrongAnswers(s.historyView()), e.session.WrongAnswerCount())
		resp = &r
		return nil
	})
	return resp, err
}

func (s *quizService) ClearHistory(ctx context.Context, id string) (*dto.HistoryResponse, error) {
	var resp *dto.HistoryResponse
	err := s.withSession(id, func(e *sessionEntry) error {
		e.session.ClearHistory()
		r := dto.NewHistoryResponse(nil, 0)
		resp = &r
		return nil
	})
	return resp, err
}

// Summary reports a live session from memory and an ended one from the
// summary cache.
func (s *quizService) Summary(ctx context.Context, id string) (*dto.SessionSummary, error) {
	var summary *dto.SessionSummary
	err := s.withSession(id, func(e *sessionEntry) error {
		summary = summaryOf(e, s.clock())
		summary.Active = true
		return nil
	})
	if err == nil {
		return summary, nil
	}
	if !domain.HasCode(err, domain.CodeSessionNotFound) {
		return nil, err
	}

	cached, cacheErr := s.summaries.Get(ctx, id)
	if cacheErr != nil {
		if errors.Is(cacheErr, ErrSummaryNotFound) {
			return nil, err
		}
		return nil, cacheErr
	}
	return cached, nil
}

// EvictIdle drops sessions idle for longer than the session TTL and returns
// how many were removed.
func (s *quizService) EvictIdle(ctx context.Context) int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}
	now := s.clock()
	cutoff := now.Add(-s.cfg.SessionTTL)

	var evicted []*dto.SessionSummary
	s.mu.Lock()
	for id, e := range s.sessions {
		e.mu.Lock()
		if e.lastSeen.Before(cutoff) {
			e.closed = true
			evicted = append(evicted, summaryOf(e, now))
			delete(s.sessions, id)
		}
		e.mu.Unlock()
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	for _, summary := range evicted {
		s.publishSummary(ctx, summary)
	}
	if len(evicted) > 0 {
		logger.Get().Info("Evicted idle quiz sessions",
			zap.Int("evicted", len(evicted)),
			zap.Int("active_sessions", remaining),
		)
	}
	return len(evicted)
}

// RunJanitor calls EvictIdle every interval until ctx is cancelled.
func (s *quizService) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EvictIdle(ctx)
		}
	}
}

func (s *quizService) withSession(id string, fn func(e *sessionEntry) error) error {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return domain.NewSessionNotFoundError(id)
	}
	entry.lastSeen = s.clock()
	return fn(entry)
}

func (s *quizService) publishSummary(ctx context.Context, summary *dto.SessionSummary) {
	if err := s.summaries.Put(ctx, summary); err != nil {
		logger.Get().Warn("Failed to publish session summary",
			zap.String("session_id", summary.SessionID),
			zap.Error(err),
		)
	}
}

func (s *quizService) historyView() int {
	if s.cfg.HistoryView > 0 {
		return s.cfg.HistoryView
	}
	return domain.DefaultHistoryView
}

// sessionResponse must be called with e.mu held.
func sessionResponse(e *sessionEntry) *dto.SessionResponse {
	qs := e.session
	scope := qs.Scope()
	resp := &dto.SessionResponse{
		ID:               e.id,
		LessonSet:        string(e.lesson),
		Direction:        string(qs.Direction()),
		Scope:            dto.ScopeResponse{Mode: string(scope.Mode), Category: scope.Category},
		PoolSize:         qs.PoolSize(),
		Categories:       qs.Vocabulary().CategoryNames(),
		Score:            dto.NewScoreResponse(qs.Score()),
		WrongAnswerCount: qs.WrongAnswerCount(),
		Answered:         qs.Answered(),
	}
	if q, ok := qs.CurrentQuestion(); ok {
		qr := dto.NewQuestionResponse(q)
		resp.CurrentQuestion = &qr
	}
	return resp
}

// summaryOf must be called with e.mu held.
func summaryOf(e *sessionEntry, now time.Time) *dto.SessionSummary {
	return &dto.SessionSummary{
		SessionID:        e.id,
		LessonSet:        string(e.lesson),
		Direction:        string(e.session.Direction()),
		Score:            dto.NewScoreResponse(e.session.Score()),
		WrongAnswerCount: e.session.WrongAnswerCount(),
		UpdatedAt:        now,
	}
}
