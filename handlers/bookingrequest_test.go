package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRequestRepo "aurora/database/repository/bookingrequest"
	"aurora/middleware"
	bookingRequestSvc "aurora/services/bookingrequest"
	"aurora/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRequestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &bookingRequestSvc.DefaultRequestService{
		Repo:   bookingRequestRepo.NewMemoryBookingRequestRepo(),
		Logger: zap.NewNop(),
	}
	h := NewBookingRequestHandler(svc, zap.NewNop())

	router := gin.New()
	router.Use(utils.ErrorHandler())
	api := router.Group("/api")
	api.Use(middleware.Identity())
	api.POST("/bookings", h.SubmitBookingRequest)
	api.GET("/bookings", h.ListBookingRequests)
	return router
}

func postBooking(router *gin.Engine, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBookingBody = `{"name":"Dana Reyes","email":"dana@example.com","phone":"555-0100","about":"Consultation"}`

func TestSubmitBookingRequestCreated(t *testing.T) {
	router := newBookingRequestRouter()

	w := postBooking(router, validBookingBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
		Booking struct {
			ID        string `json:"id"`
			Status    string `json:"status"`
			CreatedAt string `json:"createdAt"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking request received", resp.Message)
	assert.Regexp(t, `^booking_\d+$`, resp.Booking.ID)
	assert.Equal(t, "pending", resp.Booking.Status)
	assert.NotEmpty(t, resp.Booking.CreatedAt)
}

func TestSubmitBookingRequestValidationMessages(t *testing.T) {
	router := newBookingRequestRouter()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			"missing field",
			`{"name":"Dana","email":"dana@example.com","phone":"555-0100"}`,
			"Missing required fields",
		},
		{
			"whitespace name",
			`{"name":"  ","email":"dana@example.com","phone":"555-0100","about":"hi"}`,
			"Name must be a non-empty string",
		},
		{
			"invalid email",
			`{"name":"Dana","email":"dana.example.com","phone":"555-0100","about":"hi"}`,
			"Email must be a valid email address",
		},
		{
			"malformed json",
			`{"name":`,
			"Missing required fields",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postBooking(router, tc.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestListBookingRequestsMineRequiresToken(t *testing.T) {
	router := newBookingRequestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?mine=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Authentication required", resp.Message)
}

func TestListBookingRequestsMineFiltersByToken(t *testing.T) {
	router := newBookingRequestRouter()

	require.Equal(t, http.StatusCreated, postBooking(router, validBookingBody, "token-mine").Code)
	require.Equal(t, http.StatusCreated, postBooking(router, validBookingBody, "token-other").Code)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?mine=true", nil)
	req.Header.Set("Authorization", "Bearer token-mine")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Bookings []struct {
			UserID string `json:"userId"`
		} `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, utils.DeriveUserID("token-mine"), resp.Bookings[0].UserID)
}

func TestListBookingRequestsEmptyIsArray(t *testing.T) {
	router := newBookingRequestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())
}

func TestListBookingRequestsByUserID(t *testing.T) {
	router := newBookingRequestRouter()

	body := `{"name":"Dana","email":"dana@example.com","phone":"555-0100","about":"hi","userId":"user_explicit"}`
	require.Equal(t, http.StatusCreated, postBooking(router, body, "").Code)
	require.Equal(t, http.StatusCreated, postBooking(router, validBookingBody, "token-x").Code)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?userId=user_explicit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Bookings []struct {
			Name   string `json:"name"`
			UserID string `json:"userId"`
		} `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "user_explicit", resp.Bookings[0].UserID)
}
