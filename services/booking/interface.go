package booking

import (
	"context"
	"time"

	appointmentRepo "aurora/database/repository/appointment"
	catalogRepo "aurora/database/repository/catalog"
	"aurora/models"
	"aurora/services/audit"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Selection carries the value for the session's current step. Exactly one
// group of fields is consulted, depending on Step.
type Selection struct {
	Step       int                `json:"step"`
	ServiceID  string             `json:"serviceId,omitempty"`
	ProviderID string             `json:"providerId,omitempty"`
	LocationID string             `json:"locationId,omitempty"`
	Date       string             `json:"date,omitempty"`
	TimeSlot   string             `json:"time,omitempty"`
	ClientInfo *models.ClientInfo `json:"clientInfo,omitempty"`
}

// BookingSessionService drives the seven-step appointment wizard.
type BookingSessionService interface {
	InitiateSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	ApplySelection(ctx context.Context, sessionID string, sel Selection) (*models.BookingSession, error)
	StepBack(ctx context.Context, sessionID string) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService on top of a
// Redis session store, the fixed catalogs and the appointment repository.
type DefaultBookingSessionService struct {
	Cache      *redis.Client
	Catalog    catalogRepo.CatalogRepository
	Appts      appointmentRepo.AppointmentRepository
	Audit      audit.Recorder
	SessionTTL time.Duration
	Logger     *zap.Logger
}
