package handlers

import (
	"errors"
	"net/http"

	"aurora/middleware"
	consentSvc "aurora/services/consent"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsentHandler exposes the consent form CRUD endpoints.
type ConsentHandler struct {
	ConsentSvc consentSvc.ConsentService
	Logger     *zap.Logger
}

// NewConsentHandler creates a new ConsentHandler instance.
func NewConsentHandler(svc consentSvc.ConsentService, logger *zap.Logger) *ConsentHandler {
	return &ConsentHandler{ConsentSvc: svc, Logger: logger}
}

// ListConsents handles GET /api/consents.
func (h *ConsentHandler) ListConsents(c *gin.Context) {
	views, err := h.ConsentSvc.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListConsents: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch consent forms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// GetConsent handles GET /api/consents/:id.
func (h *ConsentHandler) GetConsent(c *gin.Context) {
	view, err := h.ConsentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if consentSvc.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Consent form not found"})
			return
		}
		h.Logger.Error("GetConsent: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch consent form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}

// CreateConsent handles POST /api/consents (multipart form).
func (h *ConsentHandler) CreateConsent(c *gin.Context) {
	in, cleanup, err := h.consentInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}
	defer cleanup()

	view, err := h.ConsentSvc.Create(c.Request.Context(), in)
	if err != nil {
		h.respondConsentError(c, err, "Failed to create consent form")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Consent form created",
		"data":    view,
	})
}

// UpdateConsent handles POST /api/consents/:id (multipart form). Omitting the
// file keeps the existing one.
func (h *ConsentHandler) UpdateConsent(c *gin.Context) {
	in, cleanup, err := h.consentInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}
	defer cleanup()

	view, err := h.ConsentSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if consentSvc.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Consent form not found"})
			return
		}
		h.respondConsentError(c, err, "Failed to update consent form")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Consent form updated",
		"data":    view,
	})
}

// DeleteConsent handles DELETE /api/consents/:id.
func (h *ConsentHandler) DeleteConsent(c *gin.Context) {
	err := h.ConsentSvc.Delete(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c))
	if err != nil {
		if consentSvc.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Consent form not found"})
			return
		}
		h.Logger.Error("DeleteConsent: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete consent form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consent form deleted"})
}

// consentInput parses the multipart fields and the optional file. The returned
// cleanup closes the opened file and must run after the service call.
func (h *ConsentHandler) consentInput(c *gin.Context) (consentSvc.Input, func(), error) {
	in := consentSvc.Input{
		ClientID:         c.PostForm("client_id"),
		ServiceID:        c.PostForm("service_id"),
		FormType:         c.PostForm("form_type"),
		DigitalSignature: c.PostForm("digital_signature"),
		Actor:            middleware.UserIDFrom(c),
	}
	cleanup := func() {}

	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return in, cleanup, nil
		}
		return in, cleanup, err
	}

	f, err := header.Open()
	if err != nil {
		return in, cleanup, err
	}
	in.File = &consentSvc.FileUpload{
		Content:     f,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	return in, func() { f.Close() }, nil
}

func (h *ConsentHandler) respondConsentError(c *gin.Context, err error, fallback string) {
	var verr *consentSvc.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
		return
	}
	h.Logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}
