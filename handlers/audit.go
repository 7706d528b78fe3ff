package handlers

import (
	"net/http"

	auditRepo "aurora/database/repository/audit"
	"aurora/listview"
	"aurora/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditHandler serves the admin audit trail.
type AuditHandler struct {
	Repo   auditRepo.AuditRepository
	Logger *zap.Logger
}

// NewAuditHandler creates a new AuditHandler instance.
func NewAuditHandler(repo auditRepo.AuditRepository, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{Repo: repo, Logger: logger}
}

// ListAuditEvents handles GET /api/audit (admin). Supports actor=, action=,
// entity= and search= filters.
func (h *AuditHandler) ListAuditEvents(c *gin.Context) {
	events, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListAuditEvents: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch audit events"})
		return
	}

	filtered := listview.Filter(events,
		listview.Equals(c.Query("actor"), func(e models.AuditEvent) string { return e.Actor }),
		listview.Equals(c.Query("action"), func(e models.AuditEvent) string { return e.Action }),
		listview.Equals(c.Query("entity"), func(e models.AuditEvent) string { return e.Entity }),
		listview.TextSearch(c.Query("search"), func(e models.AuditEvent) []string {
			return []string{e.Action, e.EntityID, e.Detail}
		}),
	)

	c.JSON(http.StatusOK, gin.H{"data": filtered})
}
