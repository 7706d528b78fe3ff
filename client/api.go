package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"aurora/models"
)

// BookingSubmission is the public booking-request payload.
type BookingSubmission struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	About  string `json:"about"`
	UserID string `json:"userId,omitempty"`
}

// BookingReceipt is the acknowledgement returned for a submitted request.
type BookingReceipt struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// CreateBooking submits a booking request.
func (c *Client) CreateBooking(ctx context.Context, sub BookingSubmission) (*BookingReceipt, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/api/bookings", sub, "")
	if err != nil {
		return nil, err
	}
	var resp struct {
		Booking BookingReceipt `json:"booking"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// ListBookings fetches booking requests. mine=true scopes to the caller's
// token; a non-empty userID filters by that id.
func (c *Client) ListBookings(ctx context.Context, mine bool, userID string) ([]models.BookingRequest, error) {
	q := url.Values{}
	if mine {
		q.Set("mine", "true")
	}
	if userID != "" {
		q.Set("userId", userID)
	}
	path := "/api/bookings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Bookings []models.BookingRequest `json:"bookings"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

// ListClients fetches the client roster, optionally filtered by a search
// query.
func (c *Client) ListClients(ctx context.Context, query string) ([]models.Client, error) {
	path := "/api/clients"
	if query != "" {
		path += "?search=" + url.QueryEscape(query)
	}
	var resp struct {
		Data []models.Client `json:"data"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListServices fetches the service catalog.
func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var resp struct {
		Data []models.Service `json:"data"`
	}
	if err := c.get(ctx, "/api/services", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListConsents fetches every consent form with its derived status.
func (c *Client) ListConsents(ctx context.Context) ([]models.ConsentFormView, error) {
	var resp struct {
		Data []models.ConsentFormView `json:"data"`
	}
	if err := c.get(ctx, "/api/consents", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetConsent fetches one consent form.
func (c *Client) GetConsent(ctx context.Context, id string) (*models.ConsentFormView, error) {
	var resp struct {
		Data models.ConsentFormView `json:"data"`
	}
	if err := c.get(ctx, "/api/consents/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateConsent submits a new consent form, optionally with a file.
func (c *Client) CreateConsent(ctx context.Context, upload ConsentUpload) (*models.ConsentFormView, error) {
	body, contentType, err := upload.multipartBody()
	if err != nil {
		return nil, err
	}
	raw, err := c.Do(ctx, http.MethodPost, "/api/consents", body, contentType)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data models.ConsentFormView `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateConsent resubmits a consent form's full field set. Omitting the file
// keeps the stored one.
func (c *Client) UpdateConsent(ctx context.Context, id string, upload ConsentUpload) (*models.ConsentFormView, error) {
	body, contentType, err := upload.multipartBody()
	if err != nil {
		return nil, err
	}
	raw, err := c.Do(ctx, http.MethodPost, "/api/consents/"+url.PathEscape(id), body, contentType)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data models.ConsentFormView `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteConsent removes a consent form and its stored file.
func (c *Client) DeleteConsent(ctx context.Context, id string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/api/consents/"+url.PathEscape(id), nil, "")
	return err
}
