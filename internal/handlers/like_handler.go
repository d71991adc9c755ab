package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/services"
	"naraigoto-api/pkg/lambda"
)

const likeMethods = "GET,POST,DELETE,OPTIONS"

// LikeHandler handles school-like HTTP requests
type LikeHandler struct {
	likeService services.LikeService
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// likeAck is the ok envelope for like mutations
type likeAck struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// likeListEnvelope wraps a like list in the ok envelope
type likeListEnvelope struct {
	OK    bool           `json:"ok"`
	Likes []*models.Like `json:"likes"`
}

// @Summary Like a school
// @Description Record a unique (user, school) pair; repeats are benign
// @Tags likes
// @Accept json
// @Produce json
// @Param like body services.LikeRequest true "Like data"
// @Success 201 {object} likeAck
// @Success 200 {object} likeAck
// @Failure 400 {object} ErrorResponse
// @Router /likes [post]
func (h *LikeHandler) LikeSchool(c *gin.Context) {
	var req services.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := h.likeService.LikeSchool(c.Request.Context(), &req)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	if result.AlreadyLiked {
		c.JSON(http.StatusOK, likeAck{OK: true, Message: "already liked"})
		return
	}
	c.JSON(http.StatusCreated, likeAck{OK: true})
}

// @Summary Unlike a school
// @Description Remove the (user, school) pair; succeeds even when absent
// @Tags likes
// @Produce json
// @Param userId path string true "User ID"
// @Param schoolId path string true "School ID"
// @Success 200 {object} likeAck
// @Failure 400 {object} ErrorResponse
// @Router /likes/{userId}/{schoolId} [delete]
func (h *LikeHandler) UnlikeSchool(c *gin.Context) {
	userID := c.Param("userId")
	schoolID := c.Param("schoolId")

	if err := h.likeService.UnlikeSchool(c.Request.Context(), userID, schoolID); err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, likeAck{OK: true})
}

// @Summary List likes for a user
// @Tags likes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} likeListEnvelope
// @Failure 400 {object} ErrorResponse
// @Router /likes/{userId} [get]
func (h *LikeHandler) ListLikes(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		userID = c.Query("userId")
	}

	likes, err := h.likeService.ListLikes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, likeListEnvelope{OK: true, Likes: likes})
}

// Lambda handler methods

// HandleLike serves POST /likes behind API Gateway.
func (h *LikeHandler) HandleLike(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(likeMethods), nil
	}

	var likeReq services.LikeRequest
	if len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, &likeReq); err != nil {
			return lambda.JSON(http.StatusBadRequest, likeMethods,
				ErrorResponse{Error: "invalid JSON body"}), nil
		}
	}

	result, err := h.likeService.LikeSchool(ctx, &likeReq)
	if err != nil {
		return lambda.JSON(statusFor(err), likeMethods, ErrorResponse{Error: err.Error()}), nil
	}

	if result.AlreadyLiked {
		return lambda.JSON(http.StatusOK, likeMethods, likeAck{OK: true, Message: "already liked"}), nil
	}
	return lambda.JSON(http.StatusCreated, likeMethods, likeAck{OK: true}), nil
}

// HandleUnlike serves DELETE /likes/{userId}/{schoolId} behind API Gateway,
// with a body fallback for clients that cannot put both ids in the path.
func (h *LikeHandler) HandleUnlike(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(likeMethods), nil
	}

	userID := req.PathParams["userId"]
	schoolID := req.PathParams["schoolId"]
	if schoolID == "" {
		schoolID = req.PathParams["id"]
	}
	if (userID == "" || schoolID == "") && len(req.Body) > 0 {
		var payload services.LikeRequest
		if err := json.Unmarshal(req.Body, &payload); err == nil {
			if userID == "" {
				userID = payload.UserID
			}
			if schoolID == "" {
				schoolID = payload.SchoolID
			}
		}
	}

	if err := h.likeService.UnlikeSchool(ctx, userID, schoolID); err != nil {
		return lambda.JSON(statusFor(err), likeMethods, ErrorResponse{Error: err.Error()}), nil
	}

	return lambda.JSON(http.StatusOK, likeMethods, likeAck{OK: true}), nil
}

// HandleList serves GET /likes/{userId} behind API Gateway.
func (h *LikeHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(likeMethods), nil
	}

	userID := req.PathParams["userId"]
	if userID == "" {
		userID = req.PathParams["id"]
	}
	if userID == "" {
		userID = req.QueryParam("userId")
	}

	likes, err := h.likeService.ListLikes(ctx, userID)
	if err != nil {
		return lambda.JSON(statusFor(err), likeMethods, ErrorResponse{Error: err.Error()}), nil
	}

	return lambda.JSON(http.StatusOK, likeMethods, likeListEnvelope{OK: true, Likes: likes}), nil
}
