package bookingrequest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRequestRepo "aurora/database/repository/bookingrequest"
	"aurora/models"
	"aurora/utils"

	"go.uber.org/zap"
)

// ErrNoIdentity is returned when a caller asks for their own requests without
// a derivable identity.
var ErrNoIdentity = errors.New("no derivable identity")

// ValidationError is a request rejection with a caller-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SubmitInput is one inbound booking inquiry.
type SubmitInput struct {
	Name   string
	Email  string
	Phone  string
	About  string
	UserID string // optional, from the request body
	Token  string // optional bearer token
}

// RequestService accepts and lists booking inquiries.
type RequestService interface {
	Submit(ctx context.Context, in SubmitInput) (*models.BookingRequest, error)
	ListAll(ctx context.Context) ([]models.BookingRequest, error)
	ListByUser(ctx context.Context, userID string) ([]models.BookingRequest, error)
	ListMine(ctx context.Context, token string) ([]models.BookingRequest, error)
}

// DefaultRequestService implements RequestService over the process-local
// request store.
type DefaultRequestService struct {
	Repo   bookingRequestRepo.BookingRequestRepository
	Logger *zap.Logger
}

// Submit validates the inquiry and appends it to the store. Checks run in a
// fixed order; the first failing check wins.
func (s *DefaultRequestService) Submit(ctx context.Context, in SubmitInput) (*models.BookingRequest, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.About == "" {
		return nil, &ValidationError{Message: "Missing required fields"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Message: "Name must be a non-empty string"}
	}
	if !strings.Contains(in.Email, "@") {
		return nil, &ValidationError{Message: "Email must be a valid email address"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, &ValidationError{Message: "Phone must be a non-empty string"}
	}

	req := models.BookingRequest{
		ID:        fmt.Sprintf("booking_%d", time.Now().UnixMilli()),
		UserID:    s.deriveUserID(in),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		About:     in.About,
		Status:    "pending",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Repo.Append(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to store booking request: %w", err)
	}
	s.Logger.Info("booking request received",
		zap.String("id", req.ID), zap.String("userId", req.UserID))
	return &req, nil
}

// deriveUserID resolves identity in order: token hash, body userId,
// time-based fallback. Token problems never surface to the caller.
func (s *DefaultRequestService) deriveUserID(in SubmitInput) string {
	if in.Token != "" {
		return utils.DeriveUserID(in.Token)
	}
	if in.UserID != "" {
		return in.UserID
	}
	return utils.FallbackUserID()
}

// ListAll returns every stored request in insertion order.
func (s *DefaultRequestService) ListAll(ctx context.Context) ([]models.BookingRequest, error) {
	return s.Repo.GetAll(ctx)
}

// ListByUser returns the requests stored for the given literal user id.
func (s *DefaultRequestService) ListByUser(ctx context.Context, userID string) ([]models.BookingRequest, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// ListMine resolves the caller's identity from the token and returns their
// requests. Fails when no identity is derivable.
func (s *DefaultRequestService) ListMine(ctx context.Context, token string) ([]models.BookingRequest, error) {
	if token == "" {
		return nil, ErrNoIdentity
	}
	return s.Repo.GetByUserID(ctx, utils.DeriveUserID(token))
}
