package handlers

import (
	"net/http"

	appointmentRepo "aurora/database/repository/appointment"
	"aurora/listview"
	"aurora/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the confirmed-appointments dashboard.
type AppointmentHandler struct {
	Repo   appointmentRepo.AppointmentRepository
	Logger *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler instance.
func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Logger: logger}
}

// ListAppointments handles GET /api/appointments. Supports date=, serviceId=
// and providerId= filters.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListAppointments: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch appointments"})
		return
	}

	filtered := listview.Filter(appts,
		listview.Equals(c.Query("date"), func(a models.Appointment) string { return a.Date }),
		listview.Equals(c.Query("serviceId"), func(a models.Appointment) string { return a.ServiceID }),
		listview.Equals(c.Query("providerId"), func(a models.Appointment) string { return a.ProviderID }),
	)

	c.JSON(http.StatusOK, gin.H{"data": filtered})
}
