package routes

import (
	"beautybar/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public availability surface.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	avail := r.Group("/api/availability")
	{
		avail.GET("/services/:serviceId/time-slots", h.GetServiceTimeSlots)
		avail.GET("/blocked/:category", h.GetBlockedDates)
		avail.GET("/:category", h.GetCategoryTemplate)
	}
}
