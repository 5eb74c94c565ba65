package routes

import (
	"beautybar/handlers"
	"beautybar/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Catalog      *handlers.CatalogHandler
	Admin        *handlers.AdminHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	RegisterCatalogRoutes(r, h.Catalog)
	RegisterAvailabilityRoutes(r, h.Availability)
	RegisterBookingRoutes(r, h.Booking)
	RegisterAdminRoutes(r, h.Admin)
}

// RegisterAdminRoutes registers back-office endpoints. Everything except
// login sits behind the admin JWT guard.
func RegisterAdminRoutes(r *gin.Engine, h *handlers.AdminHandler) {
	r.POST("/api/admin/login", h.Login)

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.PUT("/availability/:category", h.SetTemplateEntry)
		admin.POST("/blocked/:category", h.AddBlockedDate)
		admin.DELETE("/blocked/:category/:id", h.RemoveBlockedDate)
	}
}
