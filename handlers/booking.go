package handlers

import (
	"net/http"

	catalogRepo "aurora/database/repository/catalog"
	"aurora/models"
	"aurora/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard session endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingSessionService
	Catalog    catalogRepo.CatalogRepository
	Logger     *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingSessionService, catalog catalogRepo.CatalogRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Catalog: catalog, Logger: logger}
}

// InitiateSession handles POST /api/booking/session. The response carries the
// service catalog for the first step.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.BookingSvc.InitiateSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("InitiateSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to start booking session"})
		return
	}

	services, err := h.Catalog.Services(c.Request.Context())
	if err != nil {
		h.Logger.Error("InitiateSession: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch services"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":  session,
		"services": services,
	})
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.BookingSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ApplySelection handles PUT /api/booking/session/:sessionID. The body must
// address the session's current step; the response includes whatever the next
// step needs to render.
func (h *BookingHandler) ApplySelection(c *gin.Context) {
	var sel booking.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.BookingSvc.ApplySelection(c.Request.Context(), c.Param("sessionID"), sel)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	resp := gin.H{"session": session}
	h.attachStepData(c, session, resp)
	c.JSON(http.StatusOK, resp)
}

// StepBack handles POST /api/booking/session/:sessionID/back. Stored
// selections survive backward navigation.
func (h *BookingHandler) StepBack(c *gin.Context) {
	session, err := h.BookingSvc.StepBack(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	resp := gin.H{"session": session}
	h.attachStepData(c, session, resp)
	c.JSON(http.StatusOK, resp)
}

// ConfirmBooking handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	appt, err := h.BookingSvc.ConfirmBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked",
		"appointment": appt,
	})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.BookingSvc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.Logger.Error("CancelSession: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to cancel booking session"})
		return
	}
	c.Status(http.StatusNoContent)
}

// attachStepData adds the catalog or slot grid the wizard renders next.
func (h *BookingHandler) attachStepData(c *gin.Context, session *models.BookingSession, resp gin.H) {
	switch session.Step {
	case models.StepSelectService:
		if services, err := h.Catalog.Services(c.Request.Context()); err == nil {
			resp["services"] = services
		}
	case models.StepSelectProvider:
		if providers, err := h.Catalog.Providers(c.Request.Context()); err == nil {
			resp["providers"] = providers
		}
	case models.StepSelectLocation:
		if locations, err := h.Catalog.Locations(c.Request.Context()); err == nil {
			resp["locations"] = locations
		}
	case models.StepSelectTime:
		resp["timeSlots"] = booking.TimeSlots()
	}
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case booking.IsCode(err, booking.CodeSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "booking session not found or expired"})
	case booking.IsCode(err, booking.CodeStepMismatch),
		booking.IsCode(err, booking.CodeInvalidSelection),
		booking.IsCode(err, booking.CodeIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.(*booking.SessionError).Message})
	default:
		h.Logger.Error("booking session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "booking session operation failed"})
	}
}
