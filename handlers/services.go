package handlers

import (
	"net/http"

	catalogRepo "beautybar/database/repository/catalog"
	"beautybar/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service catalogue.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	c.JSON(http.StatusOK, cats)
}

// ListServices handles GET /api/services, optionally filtered by ?category=<name>.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()
	if name := c.Query("category"); name != "" {
		cat, err := h.Catalog.GetCategoryByName(ctx, name)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
			return
		}
		if cat == nil {
			utils.JSONError(c, http.StatusNotFound, "Not found", "category not found")
			return
		}
		svcs, err := h.Catalog.ListServicesByCategory(ctx, cat.ID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
			return
		}
		c.JSON(http.StatusOK, svcs)
		return
	}

	svcs, err := h.Catalog.ListServices(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	c.JSON(http.StatusOK, svcs)
}

// GetService handles GET /api/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Catalog.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	if svc == nil {
		utils.JSONError(c, http.StatusNotFound, "Not found", "service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}
