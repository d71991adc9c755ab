package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"
	"naraigoto-api/internal/services"
	"naraigoto-api/pkg/lambda"
)

const reviewMethods = "GET,POST,OPTIONS"

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewService services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// reviewCreated is the 201 body for a stored review
type reviewCreated struct {
	Message string         `json:"message"`
	Item    *models.Review `json:"item"`
}

// @Summary Post a review
// @Description Store a parent or child review for a lesson
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body services.PostReviewRequest true "Review data"
// @Success 201 {object} reviewCreated
// @Failure 400 {object} PlainError
// @Failure 500 {object} PlainError
// @Router /reviews [post]
func (h *ReviewHandler) PostReview(c *gin.Context) {
	var req services.PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, PlainError{Error: "invalid_json"})
		return
	}

	review, err := h.reviewService.PostReview(c.Request.Context(), &req)
	if err != nil {
		c.JSON(statusFor(err), reviewError(err))
		return
	}

	c.JSON(http.StatusCreated, reviewCreated{Message: "created", Item: review})
}

// @Summary Get reviews for a lesson
// @Description Return the newest parent and child reviews for a lesson
// @Tags reviews
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} services.ReviewFeed
// @Failure 400 {object} PlainError
// @Router /lessons/{lessonId}/reviews [get]
func (h *ReviewHandler) GetReviewsByLesson(c *gin.Context) {
	lessonID := c.Param("lessonId")
	if lessonID == "" {
		lessonID = c.Query("lessonsId")
	}

	feed, err := h.reviewService.GetReviewsByLesson(c.Request.Context(), lessonID)
	if err != nil {
		c.JSON(statusFor(err), reviewError(err))
		return
	}

	c.JSON(http.StatusOK, feed)
}

// @Summary Get reviews by target
// @Description Return the newest parent and child reviews for a composite target key
// @Tags reviews
// @Produce json
// @Param targetType query string false "Target type" default(school)
// @Param targetId query string true "Target ID"
// @Success 200 {object} services.ReviewFeed
// @Failure 400 {object} PlainError
// @Router /reviews/by-target [get]
func (h *ReviewHandler) GetReviewsByTarget(c *gin.Context) {
	feed, err := h.reviewService.GetReviewsByTarget(c.Request.Context(),
		c.Query("targetType"), c.Query("targetId"))
	if err != nil {
		c.JSON(statusFor(err), reviewError(err))
		return
	}

	c.JSON(http.StatusOK, feed)
}

// Lambda handler methods

// HandlePost serves POST /reviews behind API Gateway.
func (h *ReviewHandler) HandlePost(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(reviewMethods), nil
	}

	var postReq services.PostReviewRequest
	if len(req.Body) == 0 {
		return lambda.JSON(http.StatusBadRequest, reviewMethods, PlainError{Error: "invalid_json"}), nil
	}
	if err := json.Unmarshal(req.Body, &postReq); err != nil {
		return lambda.JSON(http.StatusBadRequest, reviewMethods, PlainError{Error: "invalid_json"}), nil
	}

	review, err := h.reviewService.PostReview(ctx, &postReq)
	if err != nil {
		return lambda.JSON(statusFor(err), reviewMethods, reviewError(err)), nil
	}

	return lambda.JSON(http.StatusCreated, reviewMethods,
		reviewCreated{Message: "created", Item: review}), nil
}

// HandleGetByLesson serves GET /lessons/{lessonId}/reviews behind API Gateway.
// The identifier may come from path parameters, the query string, or the body.
func (h *ReviewHandler) HandleGetByLesson(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(reviewMethods), nil
	}

	lessonID := req.PathParams["lessonId"]
	if lessonID == "" {
		lessonID = req.PathParams["lessonsId"]
	}
	if lessonID == "" {
		lessonID = req.QueryParam("lessonsId", "lessonId")
	}
	if lessonID == "" && len(req.Body) > 0 {
		var payload struct {
			LessonsID string `json:"lessonsId"`
		}
		if err := json.Unmarshal(req.Body, &payload); err == nil {
			lessonID = payload.LessonsID
		}
	}

	feed, err := h.reviewService.GetReviewsByLesson(ctx, lessonID)
	if err != nil {
		return lambda.JSON(statusFor(err), reviewMethods, reviewError(err)), nil
	}

	return lambda.JSON(http.StatusOK, reviewMethods, feed), nil
}

// HandleGetByTarget serves GET /reviews/by-target behind API Gateway.
func (h *ReviewHandler) HandleGetByTarget(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(reviewMethods), nil
	}

	feed, err := h.reviewService.GetReviewsByTarget(ctx,
		req.QueryParam("targetType"), req.QueryParam("targetId"))
	if err != nil {
		return lambda.JSON(statusFor(err), reviewMethods, reviewError(err)), nil
	}

	return lambda.JSON(http.StatusOK, reviewMethods, feed), nil
}

// reviewError renders the review endpoints' error envelope. Validation
// failures list every problem, write collisions surface as a conflict, and
// everything else surfaces as internal_error.
func reviewError(err error) PlainError {
	if details := services.ValidationDetails(err); details != nil {
		if len(details) == 1 {
			return PlainError{Error: details[0]}
		}
		return PlainError{Error: "validation_error", Details: details}
	}
	if repositories.IsDuplicate(err) || repositories.IsConflict(err) {
		return PlainError{Error: "conflict", Message: err.Error()}
	}
	return PlainError{Error: "internal_error", Message: err.Error()}
}
