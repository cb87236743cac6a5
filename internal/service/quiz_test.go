package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"vocab-quiz/internal/config"
	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func testConfig() *config.Config {
	return &config.Config{
		Vocabulary: config.VocabularyConfig{DefaultLesson: "advanced"},
		Quiz: config.QuizConfig{
			HistoryLimit: 500,
			HistoryView:  10,
			SessionTTL:   time.Hour,
			SummaryTTL:   24 * time.Hour,
		},
	}
}

func newTestQuizService(t *testing.T, summaries SummaryCacheService, cache domain.Cache) (*quizService, *fakeClock) {
	t.Helper()
	repo := new(MockVocabularyRepository)
	repo.On("LoadSet", mock.Anything, domain.LessonBeginner).Return(beginnerVocabulary(), nil)
	repo.On("LoadSet", mock.Anything, domain.LessonAdvanced).Return(advancedVocabulary(), nil)

	catalog := NewVocabularyCatalog(repo)
	require.NoError(t, catalog.Load(context.Background()))

	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	svc := newQuizService(catalog, summaries, cache, testConfig())
	svc.clock = clock.Now
	var seed int64
	svc.newRand = func() domain.RandomSource {
		seed++
		return rand.New(rand.NewSource(seed))
	}
	return svc, clock
}

func correctAnswer(t *testing.T, svc *quizService, id string) string {
	t.Helper()
	svc.mu.RLock()
	entry := svc.sessions[id]
	svc.mu.RUnlock()
	require.NotNil(t, entry)
	q, ok := entry.session.CurrentQuestion()
	require.True(t, ok)
	return q.CorrectAnswer
}

func wrongChoice(options []string, correct string) string {
	for _, o := range options {
		if o != correct {
			return o
		}
	}
	return ""
}

func TestQuizService_CreateSession(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		resp, err := svc.CreateSession(ctx, &dto.CreateSessionRequest{})
		require.NoError(t, err)
		assert.Len(t, resp.ID, 26)
		assert.Equal(t, "advanced", resp.LessonSet)
		assert.Equal(t, "korean-to-sinhalese", resp.Direction)
		assert.Equal(t, "all", resp.Scope.Mode)
		assert.Equal(t, 6, resp.PoolSize)
		assert.Equal(t, []string{"animals", "home"}, resp.Categories)
		assert.Nil(t, resp.Score.Accuracy)
		assert.Nil(t, resp.CurrentQuestion)
	})

	t.Run("explicit lesson and direction", func(t *testing.T) {
		resp, err := svc.CreateSession(ctx, &dto.CreateSessionRequest{LessonSet: "beginner", Direction: "sinhalese-to-korean"})
		require.NoError(t, err)
		assert.Equal(t, "beginner", resp.LessonSet)
		assert.Equal(t, "sinhalese-to-korean", resp.Direction)
		assert.Equal(t, 3, resp.PoolSize)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, &dto.CreateSessionRequest{LessonSet: "expert"})
		assert.True(t, domain.HasCode(err, domain.CodeLessonNotFound))
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, &dto.CreateSessionRequest{Direction: "sideways"})
		assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
	})
}

func TestQuizService_QuestionAndAnswerFlow(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)

	q, err := svc.NextQuestion(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, q.Options, domain.OptionCount)
	correct := correctAnswer(t, svc, session.ID)

	ans, err := svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: correct})
	require.NoError(t, err)
	assert.Equal(t, "CORRECT", ans.Outcome)
	assert.Equal(t, correct, ans.CorrectAnswer)
	assert.Equal(t, 1, ans.Score.Correct)
	require.NotNil(t, ans.Score.Accuracy)
	assert.Equal(t, "100.00", *ans.Score.Accuracy)

	_, err = svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: correct})
	assert.ErrorIs(t, err, domain.ErrAlreadyAnswered)

	q, err = svc.NextQuestion(ctx, session.ID)
	require.NoError(t, err)
	correct = correctAnswer(t, svc, session.ID)
	wrong := wrongChoice(q.Options, correct)

	ans, err = svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: wrong})
	require.NoError(t, err)
	assert.Equal(t, "INCORRECT", ans.Outcome)
	assert.Equal(t, "50.00", *ans.Score.Accuracy)
	for _, m := range ans.Marks {
		switch m.Option {
		case correct:
			assert.Equal(t, "correct", m.Mark)
		case wrong:
			assert.Equal(t, "incorrect", m.Mark)
		default:
			assert.Equal(t, "none", m.Mark)
		}
	}

	history, err := svc.History(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assert.Equal(t, q.Prompt, history.Items[0].Question)
	assert.Equal(t, wrong, history.Items[0].UserAnswer)
	assert.Equal(t, correct, history.Items[0].CorrectAnswer)
	assert.Equal(t, "korean-to-sinhalese", history.Items[0].Direction)

	state, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, state.Answered)
	assert.Equal(t, 2, state.Score.Total)
	require.NotNil(t, state.CurrentQuestion)
	assert.Equal(t, q.Prompt, state.CurrentQuestion.Prompt)
}

func TestQuizService_SubmitWithoutQuestion(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: "බල්ලා"})
	assert.ErrorIs(t, err, domain.ErrAlreadyAnswered)
}

func TestQuizService_InsufficientData(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, &dto.CreateSessionRequest{LessonSet: "beginner"})
	require.NoError(t, err)

	_, err = svc.NextQuestion(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestQuizService_SetScope(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)

	resp, err := svc.SetScope(ctx, session.ID, &dto.ScopeRequest{Mode: "single", Category: "animals"})
	require.NoError(t, err)
	assert.Equal(t, "single", resp.Scope.Mode)
	assert.Equal(t, "animals", resp.Scope.Category)
	assert.Equal(t, 4, resp.PoolSize)

	_, err = svc.SetScope(ctx, session.ID, &dto.ScopeRequest{Mode: "single", Category: "weather"})
	assert.True(t, domain.HasCode(err, domain.CodeScope))

	_, err = svc.SetScope(ctx, session.ID, &dto.ScopeRequest{Mode: "single"})
	assert.True(t, domain.HasCode(err, domain.CodeScope))

	state, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "animals", state.Scope.Category, "failed scope change leaves the pool alone")

	resp, err = svc.SetScope(ctx, session.ID, &dto.ScopeRequest{Mode: "single", Category: "home"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.PoolSize)
	_, err = svc.NextQuestion(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestQuizService_Direction(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)

	resp, err := svc.ReverseDirection(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "sinhalese-to-korean", resp.Direction)

	q, err := svc.NextQuestion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "sinhalese-to-korean", q.Direction)

	resp, err = svc.SetDirection(ctx, session.ID, &dto.DirectionRequest{Direction: "korean-to-sinhalese"})
	require.NoError(t, err)
	assert.Equal(t, "korean-to-sinhalese", resp.Direction)

	_, err = svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: "x"})
	assert.ErrorIs(t, err, domain.ErrAlreadyAnswered, "direction change drops the active question")

	_, err = svc.SetDirection(ctx, session.ID, &dto.DirectionRequest{Direction: "up"})
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
}

func TestQuizService_SwitchLessonResetsScore(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)

	q, err := svc.NextQuestion(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: wrongChoice(q.Options, correctAnswer(t, svc, session.ID))})
	require.NoError(t, err)

	resp, err := svc.SwitchLesson(ctx, session.ID, &dto.LessonRequest{LessonSet: "beginner"})
	require.NoError(t, err)
	assert.Equal(t, "beginner", resp.LessonSet)
	assert.Equal(t, 0, resp.Score.Total)
	assert.Equal(t, 0, resp.WrongAnswerCount)
	assert.Equal(t, 3, resp.PoolSize)
	assert.Equal(t, []string{"1. 인사"}, resp.Categories)

	_, err = svc.SwitchLesson(ctx, session.ID, &dto.LessonRequest{LessonSet: "expert"})
	assert.True(t, domain.HasCode(err, domain.CodeLessonNotFound))
}

func TestQuizService_HistoryViewAndClear(t *testing.T) {
	svc, clock := newTestQuizService(t, nil, nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		clock.Advance(time.Second)
		q, err := svc.NextQuestion(ctx, session.ID)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: wrongChoice(q.Options, correctAnswer(t, svc, session.ID))})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, history.Items, 10)
	assert.Equal(t, 12, history.Total)
	assert.True(t, history.Items[0].Timestamp.After(history.Items[9].Timestamp), "most recent first")

	cleared, err := svc.ClearHistory(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)

	state, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, state.Score.Wrong, "clearing history keeps the score")
	assert.Equal(t, 0, state.WrongAnswerCount)
}

func TestQuizService_UnknownSession(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()
	id := "01ARZ3NDEKTSV4RRFFQ69G5FAV"

	calls := map[string]func() error{
		"get":      func() error { _, err := svc.GetSession(ctx, id); return err },
		"question": func() error { _, err := svc.NextQuestion(ctx, id); return err },
		"answer":   func() error { _, err := svc.SubmitAnswer(ctx, id, &dto.AnswerRequest{Answer: "a"}); return err },
		"reverse":  func() error { _, err := svc.ReverseDirection(ctx, id); return err },
		"history":  func() error { _, err := svc.History(ctx, id); return err },
		"end":      func() error { _, err := svc.EndSession(ctx, id); return err },
		"summary":  func() error { _, err := svc.Summary(ctx, id); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.True(t, domain.HasCode(call(), domain.CodeSessionNotFound))
		})
	}
}

func TestQuizService_EndSessionPublishesSummary(t *testing.T) {
	cache := newMemoryCache()
	svc, _ := newTestQuizService(t, NewSummaryCacheService(cache, time.Hour), cache)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)
	_, err = svc.NextQuestion(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: correctAnswer(t, svc, session.ID)})
	require.NoError(t, err)

	live, err := svc.Summary(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, live.Active)

	ended, err := svc.EndSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, ended.Active)
	assert.Equal(t, 1, ended.Score.Correct)

	_, err = svc.GetSession(ctx, session.ID)
	assert.True(t, domain.HasCode(err, domain.CodeSessionNotFound))

	cached, err := svc.Summary(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, cached.SessionID)
	assert.Equal(t, "100.00", *cached.Score.Accuracy)
	assert.False(t, cached.Active)
}

func TestQuizService_SummaryCacheFailure(t *testing.T) {
	cacheErr := errors.New("redis down")
	failing := &ManualMockCache{
		GetFunc: func(ctx context.Context, key string) (string, error) { return "", cacheErr },
		SetFunc: func(ctx context.Context, key, value string, ttl time.Duration) error { return cacheErr },
	}
	svc, _ := newTestQuizService(t, NewSummaryCacheService(failing, time.Hour), failing)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)
	_, err = svc.EndSession(ctx, session.ID)
	assert.NoError(t, err, "publishing is best effort")

	_, err = svc.Summary(ctx, session.ID)
	assert.ErrorIs(t, err, cacheErr)
}

func TestQuizService_EvictIdle(t *testing.T) {
	cache := newMemoryCache()
	svc, clock := newTestQuizService(t, NewSummaryCacheService(cache, time.Hour), cache)
	ctx := context.Background()

	idle, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)
	clock.Advance(45 * time.Minute)
	busy, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	_, err = svc.GetSession(ctx, busy.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.EvictIdle(ctx))

	_, err = svc.GetSession(ctx, idle.ID)
	assert.True(t, domain.HasCode(err, domain.CodeSessionNotFound))
	_, err = svc.GetSession(ctx, busy.ID)
	assert.NoError(t, err)

	summary, err := svc.Summary(ctx, idle.ID)
	require.NoError(t, err)
	assert.Equal(t, idle.ID, summary.SessionID)
}

func TestQuizService_RunJanitorStopsOnCancel(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.RunJanitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestQuizService_ConcurrentAnswersScoreOnce(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, nil)
	require.NoError(t, err)
	_, err = svc.NextQuestion(ctx, session.ID)
	require.NoError(t, err)
	correct := correctAnswer(t, svc, session.ID)

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitAnswer(ctx, session.ID, &dto.AnswerRequest{Answer: correct})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyAnswered)
		}
	}
	assert.Equal(t, 1, succeeded)

	state, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Score.Total)
}

func TestQuizService_ListLessonsAndVocabulary(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	ctx := context.Background()

	lessons, err := svc.ListLessons(ctx)
	require.NoError(t, err)
	require.Len(t, lessons.Lessons, 2)
	assert.Equal(t, "beginner", lessons.Lessons[0].Name)
	assert.Equal(t, 3, lessons.Lessons[0].EntryCount)
	assert.Equal(t, []string{"animals", "home"}, lessons.Lessons[1].Categories)

	vocab, err := svc.GetVocabulary(ctx, "advanced")
	require.NoError(t, err)
	require.Len(t, vocab.Categories, 2)
	assert.Equal(t, "개", vocab.Categories[0].Entries[0].Korean)

	_, err = svc.GetVocabulary(ctx, "expert")
	assert.True(t, domain.HasCode(err, domain.CodeLessonNotFound))
}

func TestQuizService_Health(t *testing.T) {
	svc, _ := newTestQuizService(t, nil, nil)
	assert.Equal(t, &dto.HealthResponse{Status: "ok", Cache: "disabled"}, svc.Health(context.Background()))

	svc.cache = &ManualMockCache{PingFunc: func(ctx context.Context) error { return nil }}
	assert.Equal(t, "ok", svc.Health(context.Background()).Cache)

	svc.cache = &ManualMockCache{PingFunc: func(ctx context.Context) error { return errors.New("down") }}
	assert.Equal(t, "unavailable", svc.Health(context.Background()).Cache)
}
