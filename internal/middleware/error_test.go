package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vocab-quiz/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, handlerErr error) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return handlerErr })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"insufficient data", domain.ErrInsufficientData, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA"},
		{"already answered", domain.ErrAlreadyAnswered, http.StatusConflict, "ALREADY_ANSWERED"},
		{"scope", domain.NewScopeError("missing"), http.StatusBadRequest, "SCOPE_ERROR"},
		{"session not found", domain.NewSessionNotFoundError("01ARZ3NDEKTSV4RRFFQ69G5FAV"), http.StatusNotFound, "SESSION_NOT_FOUND"},
		{"lesson not found", domain.NewLessonNotFoundError(domain.LessonBeginner), http.StatusNotFound, "LESSON_NOT_FOUND"},
		{"invalid input", domain.NewInvalidInputError("bad direction"), http.StatusBadRequest, "INVALID_INPUT"},
		{"internal", domain.NewInternalError("boom", errors.New("cause")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"wrapped domain error", fmt.Errorf("next question: %w", domain.ErrInsufficientData), http.StatusUnprocessableEntity, "INSUFFICIENT_DATA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, float64(tt.wantStatus), body["status"])
		})
	}
}

func TestErrorHandler_ScopeErrorDetails(t *testing.T) {
	_, body := respond(t, domain.NewScopeError("7. 무엇"))
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "7. 무엇", details["category"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	status, body := respond(t, domain.ValidationErrors{
		domain.NewMissingFieldError("answer"),
		domain.NewInvalidFormatError("direction", "up"),
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestErrorHandler_FiberAndUnknownErrors(t *testing.T) {
	status, body := respond(t, fiber.ErrMethodNotAllowed)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "HTTP_ERROR", body["code"])

	status, body = respond(t, errors.New("unexpected"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.Equal(t, "Internal server error", body["message"])
}
