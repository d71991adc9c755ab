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

const bookingMethods = "GET,POST,OPTIONS"

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// bookingEnvelope wraps a single booking in the ok envelope
type bookingEnvelope struct {
	OK      bool            `json:"ok"`
	Booking *models.Booking `json:"booking"`
}

// bookingListEnvelope wraps a booking list in the ok envelope
type bookingListEnvelope struct {
	OK       bool              `json:"ok"`
	Bookings []*models.Booking `json:"bookings"`
}

// @Summary Create a booking
// @Description Reserve a lesson slot for a user
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body services.CreateBookingRequest true "Booking data"
// @Success 201 {object} bookingEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bookingEnvelope{OK: true, Booking: booking})
}

// @Summary Cancel a booking
// @Description Transition a reserved booking to canceled; repeat cancellations conflict
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} bookingEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: cancelErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, bookingEnvelope{OK: true, Booking: booking})
}

// @Summary List my bookings
// @Description Return a user's bookings newest-first
// @Tags bookings
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} bookingListEnvelope
// @Failure 400 {object} ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = c.Query("uid")
	}

	bookings, err := h.bookingService.GetMyBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	if bookings == nil {
		bookings = []*models.Booking{}
	}
	c.JSON(http.StatusOK, bookingListEnvelope{OK: true, Bookings: bookings})
}

// Lambda handler methods

// HandleCreate serves POST /bookings behind API Gateway.
func (h *BookingHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(bookingMethods), nil
	}

	var createReq services.CreateBookingRequest
	if len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, &createReq); err != nil {
			return lambda.JSON(http.StatusBadRequest, bookingMethods,
				ErrorResponse{Error: "invalid JSON body"}), nil
		}
	}

	booking, err := h.bookingService.CreateBooking(ctx, &createReq)
	if err != nil {
		return lambda.JSON(statusFor(err), bookingMethods, ErrorResponse{Error: err.Error()}), nil
	}

	return lambda.JSON(http.StatusCreated, bookingMethods,
		bookingEnvelope{OK: true, Booking: booking}), nil
}

// HandleCancel serves POST /bookings/{id}/cancel behind API Gateway.
func (h *BookingHandler) HandleCancel(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(bookingMethods), nil
	}

	bookingID := req.PathParams["id"]
	if bookingID == "" {
		bookingID = req.PathParams["bookingId"]
	}

	booking, err := h.bookingService.CancelBooking(ctx, bookingID)
	if err != nil {
		return lambda.JSON(statusFor(err), bookingMethods,
			ErrorResponse{Error: cancelErrorMessage(err)}), nil
	}

	return lambda.JSON(http.StatusOK, bookingMethods,
		bookingEnvelope{OK: true, Booking: booking}), nil
}

// HandleMyBookings serves GET /bookings?userId= behind API Gateway.
func (h *BookingHandler) HandleMyBookings(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.IsPreflight() {
		return lambda.NoContent(bookingMethods), nil
	}

	userID := req.QueryParam("userId", "uid")

	bookings, err := h.bookingService.GetMyBookings(ctx, userID)
	if err != nil {
		return lambda.JSON(statusFor(err), bookingMethods, ErrorResponse{Error: err.Error()}), nil
	}

	if bookings == nil {
		bookings = []*models.Booking{}
	}
	return lambda.JSON(http.StatusOK, bookingMethods,
		bookingListEnvelope{OK: true, Bookings: bookings}), nil
}

// cancelErrorMessage keeps the conflict wording stable for clients while other
// failures surface their diagnostic text.
func cancelErrorMessage(err error) string {
	if statusFor(err) == http.StatusConflict {
		return "Only reserved bookings can be canceled"
	}
	return err.Error()
}
