// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	catalogRepo "aurora/database/repository/catalog"
	"aurora/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSessionTTL = 30 * time.Minute

func (s *DefaultBookingSessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return defaultSessionTTL
}

// InitiateSession creates a new wizard session at the first step, assigns it
// a unique SessionID and stores it in Redis.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context) (*models.BookingSession, error) {
	session := models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepSelectService,
		CreatedAt: time.Now(),
	}
	if err := s.saveSession(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession retrieves a session by id.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// ApplySelection stores the value for the session's current step and advances
// the step by exactly one. A selection addressed to any other step is
// rejected; nothing is mutated on failure.
func (s *DefaultBookingSessionService) ApplySelection(ctx context.Context, sessionID string, sel Selection) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step >= models.StepConfirmation {
		return nil, newSessionError(CodeStepMismatch, "session is already at confirmation")
	}
	if sel.Step != session.Step {
		return nil, newSessionError(CodeStepMismatch,
			fmt.Sprintf("selection is for step %d but session is at step %d", sel.Step, session.Step))
	}

	switch session.Step {
	case models.StepSelectService:
		if _, err := s.Catalog.ServiceByID(ctx, sel.ServiceID); err != nil {
			if err == catalogRepo.ErrNotFound {
				return nil, newSessionError(CodeInvalidSelection, "unknown service")
			}
			return nil, fmt.Errorf("failed to look up service: %w", err)
		}
		session.ServiceID = sel.ServiceID

	case models.StepSelectProvider:
		if _, err := s.Catalog.ProviderByID(ctx, sel.ProviderID); err != nil {
			if err == catalogRepo.ErrNotFound {
				return nil, newSessionError(CodeInvalidSelection, "unknown provider")
			}
			return nil, fmt.Errorf("failed to look up provider: %w", err)
		}
		session.ProviderID = sel.ProviderID

	case models.StepSelectLocation:
		if _, err := s.Catalog.LocationByID(ctx, sel.LocationID); err != nil {
			if err == catalogRepo.ErrNotFound {
				return nil, newSessionError(CodeInvalidSelection, "unknown location")
			}
			return nil, fmt.Errorf("failed to look up location: %w", err)
		}
		session.LocationID = sel.LocationID

	case models.StepSelectDate:
		if err := validateDate(sel.Date); err != nil {
			return nil, err
		}
		session.Date = sel.Date

	case models.StepSelectTime:
		if !ValidTimeSlot(sel.TimeSlot) {
			return nil, newSessionError(CodeInvalidSelection, "time is not an offered slot")
		}
		session.TimeSlot = sel.TimeSlot

	case models.StepEnterClientInfo:
		if sel.ClientInfo == nil {
			return nil, newSessionError(CodeIncomplete, "missing required fields: name, email, phone")
		}
		if missing := missingClientFields(*sel.ClientInfo); len(missing) > 0 {
			return nil, newSessionError(CodeIncomplete,
				"missing required fields: "+strings.Join(missing, ", "))
		}
		session.ClientInfo = *sel.ClientInfo
	}

	session.Step++
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// StepBack decrements the step by one without clearing any stored selection,
// so forward re-navigation resumes with prior choices intact.
func (s *DefaultBookingSessionService) StepBack(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step <= models.StepSelectService || session.Step >= models.StepConfirmation {
		return nil, newSessionError(CodeStepMismatch, "cannot navigate back from this step")
	}
	session.Step--
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking finalizes the wizard: it persists the appointment, records
// an audit event and discards the session.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Appointment, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmation {
		return nil, newSessionError(CodeStepMismatch, "session has not reached confirmation")
	}
	if missing := missingClientFields(session.ClientInfo); len(missing) > 0 {
		return nil, newSessionError(CodeIncomplete,
			"missing required fields: "+strings.Join(missing, ", "))
	}

	appt := models.Appointment{
		ServiceID:   session.ServiceID,
		ProviderID:  session.ProviderID,
		LocationID:  session.LocationID,
		Date:        session.Date,
		TimeSlot:    session.TimeSlot,
		ClientName:  session.ClientInfo.Name,
		ClientEmail: session.ClientInfo.Email,
		ClientPhone: session.ClientInfo.Phone,
		Notes:       session.ClientInfo.Notes,
		Status:      "confirmed",
	}
	id, err := s.Appts.Create(ctx, appt)
	if err != nil {
		return nil, fmt.Errorf("failed to store appointment: %w", err)
	}
	appt.ID = id
	appt.CreatedAt = time.Now()

	if s.Audit != nil {
		s.Audit.Record(ctx, models.AuditEvent{
			Actor:    "booking-wizard",
			Action:   "appointment.confirmed",
			Entity:   "appointment",
			EntityID: appt.ID,
			Detail:   fmt.Sprintf("%s at %s on %s", appt.ClientName, appt.TimeSlot, appt.Date),
		})
	}

	if err := s.Cache.Del(ctx, sessionID).Err(); err != nil {
		s.Logger.Warn("failed to discard confirmed session", zap.Error(err))
	}
	return &appt, nil
}

// CancelSession deletes the session data from the cache. Cancelling a session
// that no longer exists is not an error.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, newSessionError(CodeSessionNotFound, "booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, session.SessionID, data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func validateDate(date string) error {
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return newSessionError(CodeInvalidSelection, "date must be in YYYY-MM-DD format")
	}
	today := time.Now().In(time.Local)
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if parsed.Before(todayMidnight) {
		return newSessionError(CodeInvalidSelection, "date cannot be in the past")
	}
	return nil
}

func missingClientFields(info models.ClientInfo) []string {
	var missing []string
	if strings.TrimSpace(info.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(info.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(info.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}
