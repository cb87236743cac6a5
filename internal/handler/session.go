package handler

import (
	"vocab-quiz/internal/dto"
	"vocab-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateSession godoc
// @Summary Start a quiz session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest false "Lesson set and direction"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /sessions [post]
func (h *QuizHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := h.bind(c, &req, true); err != nil {
		return err
	}
	resp, err := h.service.CreateSession(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetSession(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EndSession godoc
// @Summary End a quiz session
// @Description Removes the session and returns its final score
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionSummary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *QuizHandler) EndSession(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.EndSession(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// NextQuestion godoc
// @Summary Draw the next question
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 422 {object} middleware.ErrorResponse "INSUFFICIENT_DATA"
// @Router /sessions/{id}/question [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.NextQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.AnswerRequest true "Chosen option"
// @Success 200 {object} dto.AnswerResponse
// @Failure 409 {object} middleware.ErrorResponse "ALREADY_ANSWERED"
// @Router /sessions/{id}/answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	var req dto.AnswerRequest
	if err := h.bind(c, &req, false); err != nil {
		return err
	}
	resp, err := h.service.SubmitAnswer(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	logger.Get().Debug("Answer submitted",
		zap.String("session_id", id),
		zap.String("outcome", resp.Outcome),
	)
	return c.JSON(resp)
}

// SetScope godoc
// @Summary Quiz all words or a single category
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ScopeRequest true "Scope"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse "SCOPE_ERROR"
// @Router /sessions/{id}/scope [put]
func (h *QuizHandler) SetScope(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	var req dto.ScopeRequest
	if err := h.bind(c, &req, false); err != nil {
		return err
	}
	resp, err := h.service.SetScope(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *QuizHandler) SetDirection(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	var req dto.DirectionRequest
	if err := h.bind(c, &req, false); err != nil {
		return err
	}
	resp, err := h.service.SetDirection(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *QuizHandler) ReverseDirection(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ReverseDirection(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SwitchLesson godoc
// @Summary Switch between beginner and advanced words
// @Description Resets score and wrong-answer history
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.LessonRequest true "Lesson set"
// @Success 200 {object} dto.SessionResponse
// @Router /sessions/{id}/lesson [put]
func (h *QuizHandler) SwitchLesson(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	var req dto.LessonRequest
	if err := h.bind(c, &req, false); err != nil {
		return err
	}
	resp, err := h.service.SwitchLesson(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// History godoc
// @Summary Recent wrong answers
// @Description The ten most recent wrong answers, newest first
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.HistoryResponse
// @Router /sessions/{id}/history [get]
func (h *QuizHandler) History(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.History(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *QuizHandler) ClearHistory(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ClearHistory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *QuizHandler) Summary(c *fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.Summary(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
