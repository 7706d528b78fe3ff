package handlers

import (
	"errors"
	"net/http"

	staffRepo "aurora/database/repository/staff"
	"aurora/listview"
	"aurora/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler serves the staff roster screens.
type StaffHandler struct {
	Repo   staffRepo.StaffRepository
	Logger *zap.Logger
}

// NewStaffHandler creates a new StaffHandler instance.
func NewStaffHandler(repo staffRepo.StaffRepository, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{Repo: repo, Logger: logger}
}

// ListStaff handles GET /api/staff. Supports search=, role= and active=true
// filters.
func (h *StaffHandler) ListStaff(c *gin.Context) {
	members, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListStaff: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch staff"})
		return
	}

	predicates := []listview.Predicate[models.StaffMember]{
		listview.TextSearch(c.Query("search"), func(m models.StaffMember) []string {
			return []string{m.FullName, m.Role, m.Specialty}
		}),
		listview.Equals(c.Query("role"), func(m models.StaffMember) string {
			return m.Role
		}),
	}
	if c.Query("active") == "true" {
		predicates = append(predicates, func(m models.StaffMember) bool { return m.Active })
	}

	filtered := listview.Filter(members, predicates...)
	summary := listview.Summarize(filtered,
		listview.Count[models.StaffMember](),
		listview.CountIf("active", func(m models.StaffMember) bool { return m.Active }),
	)

	c.JSON(http.StatusOK, gin.H{"data": filtered, "summary": summary})
}

// CreateStaffMember handles POST /api/staff (admin).
func (h *StaffHandler) CreateStaffMember(c *gin.Context) {
	var member models.StaffMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid staff payload", "details": err.Error()})
		return
	}
	if member.FullName == "" || member.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "full_name and role are required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), member)
	if err != nil {
		h.Logger.Error("CreateStaffMember: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create staff member"})
		return
	}
	member.ID = id
	c.JSON(http.StatusCreated, gin.H{"data": member})
}

// UpdateStaffMember handles PUT /api/staff/:id (admin).
func (h *StaffHandler) UpdateStaffMember(c *gin.Context) {
	var member models.StaffMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid staff payload", "details": err.Error()})
		return
	}
	member.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), member); err != nil {
		if errors.Is(err, staffRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Staff member not found"})
			return
		}
		h.Logger.Error("UpdateStaffMember: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": member})
}

// DeleteStaffMember handles DELETE /api/staff/:id (admin).
func (h *StaffHandler) DeleteStaffMember(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, staffRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Staff member not found"})
			return
		}
		h.Logger.Error("DeleteStaffMember: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
