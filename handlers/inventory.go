package handlers

import (
	"errors"
	"net/http"

	inventoryRepo "aurora/database/repository/inventory"
	"aurora/listview"
	"aurora/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler serves the stock dashboard.
type InventoryHandler struct {
	Repo   inventoryRepo.InventoryRepository
	Logger *zap.Logger
}

// NewInventoryHandler creates a new InventoryHandler instance.
func NewInventoryHandler(repo inventoryRepo.InventoryRepository, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{Repo: repo, Logger: logger}
}

// ListInventory handles GET /api/inventory. Supports search=, category= and
// low=true filters; the response carries the summary cards for the
// (filtered) view.
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListInventory: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch inventory"})
		return
	}

	predicates := []listview.Predicate[models.InventoryItem]{
		listview.TextSearch(c.Query("search"), func(i models.InventoryItem) []string {
			return []string{i.Name, i.Category}
		}),
		listview.Equals(c.Query("category"), func(i models.InventoryItem) string {
			return i.Category
		}),
	}
	if c.Query("low") == "true" {
		predicates = append(predicates, models.InventoryItem.LowStock)
	}

	filtered := listview.Filter(items, predicates...)
	summary := listview.Summarize(filtered,
		listview.Count[models.InventoryItem](),
		listview.CountIf("low_stock", models.InventoryItem.LowStock),
		listview.Sum("total_value", func(i models.InventoryItem) float64 {
			return float64(i.Quantity) * i.UnitCost
		}),
	)

	c.JSON(http.StatusOK, gin.H{"data": filtered, "summary": summary})
}

// CreateInventoryItem handles POST /api/inventory (admin).
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid inventory payload", "details": err.Error()})
		return
	}
	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), item)
	if err != nil {
		h.Logger.Error("CreateInventoryItem: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create inventory item"})
		return
	}
	item.ID = id
	c.JSON(http.StatusCreated, gin.H{"data": item})
}

// UpdateInventoryItem handles PUT /api/inventory/:id (admin).
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid inventory payload", "details": err.Error()})
		return
	}
	item.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), item); err != nil {
		if errors.Is(err, inventoryRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Inventory item not found"})
			return
		}
		h.Logger.Error("UpdateInventoryItem: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// DeleteInventoryItem handles DELETE /api/inventory/:id (admin).
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, inventoryRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Inventory item not found"})
			return
		}
		h.Logger.Error("DeleteInventoryItem: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}
