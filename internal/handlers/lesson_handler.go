package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"naraigoto-api/internal/services"
	"naraigoto-api/pkg/lambda"
)

const lessonMethods = "GET,OPTIONS"

// LessonHandler handles lesson catalog HTTP requests
type LessonHandler struct {
	lessonService services.LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
	}
}

// @Summary Get a lesson
// @Description Get a single lesson document by ID
// @Tags lessons
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} PlainError
// @Failure 404 {object} PlainError
// @Router /lessons/{lessonId} [get]
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lessonID := c.Param("lessonId")

	lesson, err := h.lessonService.GetLesson(c.Request.Context(), lessonID)
	if err != nil {
		c.JSON(statusFor(err), lessonError(err))
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// @Summary List lessons
// @Description Return up to 50 lessons in storage order
// @Tags lessons
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /lessons [get]
func (h *LessonHandler) ListLessons(c *gin.Context) {
	lessons, err := h.lessonService.ListLessons(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), lessonError(err))
		return
	}

	c.JSON(http.StatusOK, lessons)
}

// Lambda handler methods

// HandleGet serves GET /lessons/{lessonId} behind API Gateway. The identifier
// may arrive as a path parameter or as the trailing path segment.
func (h *LessonHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(lessonMethods), nil
	}

	lessonID := req.PathParam("lessonId", "lessonsId")

	lesson, err := h.lessonService.GetLesson(ctx, lessonID)
	if err != nil {
		return lambda.JSON(statusFor(err), lessonMethods, lessonError(err)), nil
	}

	return lambda.JSON(http.StatusOK, lessonMethods, lesson), nil
}

// HandleList serves GET /lessons behind API Gateway.
func (h *LessonHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(lessonMethods), nil
	}

	lessons, err := h.lessonService.ListLessons(ctx)
	if err != nil {
		return lambda.JSON(statusFor(err), lessonMethods, lessonError(err)), nil
	}

	return lambda.JSON(http.StatusOK, lessonMethods, lessons), nil
}

// lessonError renders the plain error envelope the catalog endpoints use.
func lessonError(err error) PlainError {
	switch statusFor(err) {
	case http.StatusNotFound:
		return PlainError{Error: "Not Found"}
	case http.StatusBadRequest:
		return PlainError{Error: err.Error()}
	default:
		return PlainError{Error: "internal_error", Message: err.Error()}
	}
}
