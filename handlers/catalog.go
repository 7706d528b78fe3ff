package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	catalogRepo "aurora/database/repository/catalog"
	clientRepo "aurora/database/repository/client"
	"aurora/listview"
	"aurora/models"
	"aurora/services/search"
	"aurora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// catalogCacheTTL bounds how stale a cached catalog response may get after a
// reseed.
const catalogCacheTTL = 5 * time.Minute

// CatalogHandler serves the read-only service/provider/location catalogs and
// the client roster.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Clients clientRepo.ClientRepository
	Search  search.SearchService
	Logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository, clients clientRepo.ClientRepository, searchSvc search.SearchService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Clients: clients, Search: searchSvc, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	if h.serveCachedCatalog(c, "catalog:services") {
		return
	}
	services, err := h.Catalog.Services(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServices: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch services"})
		return
	}
	h.cacheCatalog(c.Request.Context(), "catalog:services", services)
	c.JSON(http.StatusOK, gin.H{"data": services})
}

// ListProviders handles GET /api/providers.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	if h.serveCachedCatalog(c, "catalog:providers") {
		return
	}
	providers, err := h.Catalog.Providers(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListProviders: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch providers"})
		return
	}
	h.cacheCatalog(c.Request.Context(), "catalog:providers", providers)
	c.JSON(http.StatusOK, gin.H{"data": providers})
}

// ListLocations handles GET /api/locations.
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	if h.serveCachedCatalog(c, "catalog:locations") {
		return
	}
	locations, err := h.Catalog.Locations(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListLocations: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch locations"})
		return
	}
	h.cacheCatalog(c.Request.Context(), "catalog:locations", locations)
	c.JSON(http.StatusOK, gin.H{"data": locations})
}

// serveCachedCatalog replays a cached catalog payload. Returns false when the
// cache is disabled or cold.
func (h *CatalogHandler) serveCachedCatalog(c *gin.Context, key string) bool {
	if utils.CacheClient == nil {
		return false
	}
	payload, err := utils.CacheClient.Get(c.Request.Context(), key).Result()
	if err != nil {
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
	return true
}

func (h *CatalogHandler) cacheCatalog(ctx context.Context, key string, data interface{}) {
	if utils.CacheClient == nil {
		return
	}
	payload, err := json.Marshal(gin.H{"data": data})
	if err != nil {
		return
	}
	if err := utils.CacheClient.Set(ctx, key, payload, catalogCacheTTL).Err(); err != nil {
		h.Logger.Warn("failed to cache catalog payload", zap.String("key", key), zap.Error(err))
	}
}

// ListClients handles GET /api/clients?search=. Search goes through
// Elasticsearch when it is configured and falls back to an in-process scan
// otherwise.
func (h *CatalogHandler) ListClients(c *gin.Context) {
	ctx := c.Request.Context()
	clients, err := h.Clients.GetAll(ctx)
	if err != nil {
		h.Logger.Error("ListClients: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch clients"})
		return
	}

	query := c.Query("search")
	if query != "" && h.Search != nil {
		ids, err := h.Search.Search(ctx, search.IndexClients, query,
			[]string{"full_name", "email", "phone"})
		if err == nil {
			wanted := make(map[string]bool, len(ids))
			for _, id := range ids {
				wanted[id] = true
			}
			clients = listview.Filter(clients, func(cl models.Client) bool {
				return wanted[cl.ID]
			})
			c.JSON(http.StatusOK, gin.H{"data": clients})
			return
		}
		h.Logger.Warn("client search fell back to local scan", zap.Error(err))
	}

	clients = listview.Filter(clients, listview.TextSearch(query, func(cl models.Client) []string {
		return []string{cl.FullName, cl.Email, cl.Phone}
	}))
	c.JSON(http.StatusOK, gin.H{"data": clients})
}

// GetClient handles GET /api/clients/:id.
func (h *CatalogHandler) GetClient(c *gin.Context) {
	client, err := h.Clients.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, clientRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
			return
		}
		h.Logger.Error("GetClient: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": client})
}

// CreateClient handles POST /api/clients (admin).
func (h *CatalogHandler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid client payload", "details": err.Error()})
		return
	}
	if client.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "full_name is required"})
		return
	}

	id, err := h.Clients.Create(c.Request.Context(), client)
	if err != nil {
		h.Logger.Error("CreateClient: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create client"})
		return
	}
	client.ID = id
	h.indexClient(c, client)
	c.JSON(http.StatusCreated, gin.H{"data": client})
}

// UpdateClient handles PUT /api/clients/:id (admin).
func (h *CatalogHandler) UpdateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid client payload", "details": err.Error()})
		return
	}
	client.ID = c.Param("id")

	if err := h.Clients.Update(c.Request.Context(), client); err != nil {
		if errors.Is(err, clientRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
			return
		}
		h.Logger.Error("UpdateClient: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update client"})
		return
	}
	h.indexClient(c, client)
	c.JSON(http.StatusOK, gin.H{"data": client})
}

// DeleteClient handles DELETE /api/clients/:id (admin).
func (h *CatalogHandler) DeleteClient(c *gin.Context) {
	id := c.Param("id")
	if err := h.Clients.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, clientRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
			return
		}
		h.Logger.Error("DeleteClient: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete client"})
		return
	}
	if h.Search != nil {
		if err := h.Search.Delete(c.Request.Context(), search.IndexClients, id); err != nil {
			h.Logger.Warn("failed to remove client from search index", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

func (h *CatalogHandler) indexClient(c *gin.Context, client models.Client) {
	if h.Search == nil {
		return
	}
	if err := h.Search.Index(c.Request.Context(), search.IndexClients, client.ID, client); err != nil {
		h.Logger.Warn("failed to index client", zap.Error(err))
	}
}
