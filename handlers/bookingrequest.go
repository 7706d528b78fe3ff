package handlers

import (
	"errors"
	"net/http"

	"aurora/middleware"
	"aurora/models"
	bookingRequestSvc "aurora/services/bookingrequest"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingRequestHandler exposes the public booking-request intake endpoints.
type BookingRequestHandler struct {
	RequestSvc bookingRequestSvc.RequestService
	Logger     *zap.Logger
}

// NewBookingRequestHandler creates a new BookingRequestHandler instance.
func NewBookingRequestHandler(svc bookingRequestSvc.RequestService, logger *zap.Logger) *BookingRequestHandler {
	return &BookingRequestHandler{RequestSvc: svc, Logger: logger}
}

type submitBookingPayload struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	About  string `json:"about"`
	UserID string `json:"userId"`
}

// SubmitBookingRequest handles POST /api/bookings.
func (h *BookingRequestHandler) SubmitBookingRequest(c *gin.Context) {
	var payload submitBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	req, err := h.RequestSvc.Submit(c.Request.Context(), bookingRequestSvc.SubmitInput{
		Name:   payload.Name,
		Email:  payload.Email,
		Phone:  payload.Phone,
		About:  payload.About,
		UserID: payload.UserID,
		Token:  middleware.TokenFrom(c),
	})
	if err != nil {
		var verr *bookingRequestSvc.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
			return
		}
		h.Logger.Error("SubmitBookingRequest: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking request received",
		"booking": gin.H{
			"id":        req.ID,
			"status":    req.Status,
			"createdAt": req.CreatedAt,
		},
	})
}

// ListBookingRequests handles GET /api/bookings. Supports mine=true for the
// caller's own requests and userId=<id> for an explicit filter.
func (h *BookingRequestHandler) ListBookingRequests(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		requests []models.BookingRequest
		err      error
	)
	switch {
	case c.Query("mine") == "true":
		requests, err = h.RequestSvc.ListMine(ctx, middleware.TokenFrom(c))
		if errors.Is(err, bookingRequestSvc.ErrNoIdentity) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
	case c.Query("userId") != "":
		requests, err = h.RequestSvc.ListByUser(ctx, c.Query("userId"))
	default:
		requests, err = h.RequestSvc.ListAll(ctx)
	}
	if err != nil {
		h.Logger.Error("ListBookingRequests: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if requests == nil {
		requests = []models.BookingRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": requests})
}
