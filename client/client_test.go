package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoNormalizesJSONErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Missing required fields"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Do(context.Background(), http.MethodPost, "/api/bookings", nil, "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing required fields", apiErr.Message)
}

func TestDoNormalizesErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Authentication required"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Do(context.Background(), http.MethodGet, "/api/bookings?mine=true", nil, "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Authentication required", apiErr.Message)
}

func TestDoFallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable\n"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Do(context.Background(), http.MethodGet, "/health", nil, "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestDoEmptyBodySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	raw, err := New(srv.URL).Do(context.Background(), http.MethodDelete, "/api/booking/session/s1", nil, "")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithToken("opaque-token-abc")).Do(context.Background(), http.MethodGet, "/api/services", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token-abc", gotAuth)
}

func TestCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Dana Reyes", payload["name"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Booking request received","booking":{"id":"booking_1","status":"pending","createdAt":"2026-08-31T12:00:00Z"}}`))
	}))
	defer srv.Close()

	receipt, err := New(srv.URL).CreateBooking(context.Background(), BookingSubmission{
		Name:  "Dana Reyes",
		Email: "dana@example.com",
		Phone: "555-0100",
		About: "Consultation",
	})
	require.NoError(t, err)
	assert.Equal(t, "booking_1", receipt.ID)
	assert.Equal(t, "pending", receipt.Status)
}

func TestListBookingsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("mine"))
		w.Write([]byte(`{"bookings":[{"id":"booking_1","userId":"user_42","status":"pending"}]}`))
	}))
	defer srv.Close()

	bookings, err := New(srv.URL, WithToken("tok")).ListBookings(context.Background(), true, "")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "booking_1", bookings[0].ID)
}

func TestCreateConsentSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "client_1", r.FormValue("client_id"))
		assert.Equal(t, "consent", r.FormValue("form_type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "signed.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Consent form created","data":{"id":"consent_1","client_id":"client_1","form_type":"consent","status":{"state":"signed"}}}`))
	}))
	defer srv.Close()

	view, err := New(srv.URL).CreateConsent(context.Background(), ConsentUpload{
		ClientID:        "client_1",
		ServiceID:       "svc_botox",
		FormType:        "consent",
		FileName:        "signed.pdf",
		FileContentType: "application/pdf",
		File:            bytes.NewReader([]byte("%PDF-1.4")),
	})
	require.NoError(t, err)
	assert.Equal(t, "consent_1", view.ID)
	assert.Equal(t, "signed", view.Status.State)
}

func TestCreateConsentWithoutFileOmitsPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		_, _, err := r.FormFile("file")
		assert.ErrorIs(t, err, http.ErrMissingFile)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"consent_2","status":{"state":"pending"}}}`))
	}))
	defer srv.Close()

	view, err := New(srv.URL).CreateConsent(context.Background(), ConsentUpload{
		ClientID:  "client_1",
		ServiceID: "svc_botox",
		FormType:  "consent",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", view.Status.State)
}

func TestDeleteConsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/consents/consent_1", r.URL.Path)
		w.Write([]byte(`{"message":"Consent form deleted"}`))
	}))
	defer srv.Close()

	assert.NoError(t, New(srv.URL).DeleteConsent(context.Background(), "consent_1"))
}
