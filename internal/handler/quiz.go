package handler

import (
	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/service"
	"vocab-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	if validator == nil {
		validator = validation.NewValidator()
	}
	return &QuizHandler{service: service, validator: validator}
}

// RegisterRoutes mounts every quiz route on router (normally the /api group).
func (h *QuizHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.Health)
	router.Get("/lessons", h.ListLessons)
	router.Get("/lessons/:set/vocabulary", h.GetVocabulary)

	sessions := router.Group("/sessions")
	sessions.Post("/", h.CreateSession)
	sessions.Get("/:id", h.GetSession)
	sessions.Delete("/:id", h.EndSession)
	sessions.Post("/:id/question", h.NextQuestion)
	sessions.Post("/:id/answer", h.SubmitAnswer)
	sessions.Put("/:id/scope", h.SetScope)
	sessions.Put("/:id/direction", h.SetDirection)
	sessions.Post("/:id/direction/reverse", h.ReverseDirection)
	sessions.Put("/:id/lesson", h.SwitchLesson)
	sessions.Get("/:id/history", h.History)
	sessions.Delete("/:id/history", h.ClearHistory)
	sessions.Get("/:id/summary", h.Summary)
}

// Health godoc
// @Summary Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.service.Health(c.UserContext()))
}

// ListLessons godoc
// @Summary List lesson sets
// @Description Returns every loaded lesson set with its categories in source order
// @Tags lessons
// @Produce json
// @Success 200 {object} dto.LessonsResponse
// @Router /lessons [get]
func (h *QuizHandler) ListLessons(c *fiber.Ctx) error {
	resp, err := h.service.ListLessons(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetVocabulary godoc
// @Summary Word list of a lesson set
// @Tags lessons
// @Produce json
// @Param set path string true "beginner or advanced"
// @Success 200 {object} dto.VocabularyResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /lessons/{set}/vocabulary [get]
func (h *QuizHandler) GetVocabulary(c *fiber.Ctx) error {
	resp, err := h.service.GetVocabulary(c.UserContext(), c.Params("set"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// paramID validates the :id path parameter.
func (h *QuizHandler) paramID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if errs := h.validator.ValidateSessionID(id); len(errs) > 0 {
		return "", errs
	}
	return id, nil
}

// bind parses the JSON body into req and validates it. An empty body is
// accepted when optional is set.
func (h *QuizHandler) bind(c *fiber.Ctx, req interface{}, optional bool) error {
	if len(c.Body()) > 0 || !optional {
		if err := c.BodyParser(req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
		}
	}
	if errs := h.validator.ValidateStruct(req); len(errs) > 0 {
		return errs
	}
	return nil
}
