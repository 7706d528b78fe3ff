package bookingRequestRepo

import (
	"context"
	"sync"

	"aurora/models"
)

// BookingRequestRepository stores inbound booking inquiries. The contract
// guarantees insertion order on reads and never removes records.
type BookingRequestRepository interface {
	Append(ctx context.Context, req models.BookingRequest) error
	GetAll(ctx context.Context) ([]models.BookingRequest, error)
	GetByUserID(ctx context.Context, userID string) ([]models.BookingRequest, error)
}

// memoryBookingRequestRepo keeps requests in a process-local ordered list.
// Records survive only for the process lifetime.
type memoryBookingRequestRepo struct {
	mu       sync.Mutex
	requests []models.BookingRequest
}

// NewMemoryBookingRequestRepo returns the process-local store.
func NewMemoryBookingRequestRepo() BookingRequestRepository {
	return &memoryBookingRequestRepo{}
}

// Append adds a request to the end of the list.
func (r *memoryBookingRequestRepo) Append(ctx context.Context, req models.BookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

// GetAll returns every stored request in insertion order.
func (r *memoryBookingRequestRepo) GetAll(ctx context.Context) ([]models.BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BookingRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

// GetByUserID returns the requests belonging to userID in insertion order.
func (r *memoryBookingRequestRepo) GetByUserID(ctx context.Context, userID string) ([]models.BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.BookingRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}
