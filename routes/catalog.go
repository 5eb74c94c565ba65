package routes

import (
	"beautybar/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only service catalogue.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	r.GET("/api/categories", h.ListCategories)
	r.GET("/api/services", h.ListServices)
	r.GET("/api/services/:id", h.GetService)
}
