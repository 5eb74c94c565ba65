package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	catalogRepo "beautybar/database/repository/catalog"
	"beautybar/models"
	"beautybar/services/scheduling"
	"beautybar/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// slotCacheTTL keeps slot responses hot for repeated calendar views while
// staying short enough that a stale "available" is corrected quickly. The
// admission path re-validates everything anyway.
const slotCacheTTL = 60 * time.Second

// AvailabilityHandler serves the public availability surface.
type AvailabilityHandler struct {
	Engine  scheduling.SchedulingEngine
	Catalog catalogRepo.CatalogRepository
	Cache   *redis.Client
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(engine scheduling.SchedulingEngine, catalog catalogRepo.CatalogRepository, cache *redis.Client) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Catalog: catalog, Cache: cache}
}

func slotCacheKey(serviceID, date string) string {
	return fmt.Sprintf("slots:%s:%s", serviceID, date)
}

// GetServiceTimeSlots handles GET /api/availability/services/:serviceId/time-slots?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetServiceTimeSlots(c *gin.Context) {
	logger := utils.GetLogger()
	serviceID := c.Param("serviceId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "date query parameter is required")
		return
	}
	allowPast := c.Query("allowPast") == "true"

	ctx := c.Request.Context()
	cacheKey := slotCacheKey(serviceID, date)
	if !allowPast && h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var slots []models.Slot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				c.JSON(http.StatusOK, slots)
				return
			}
		}
	}

	slots, err := h.Engine.AvailableSlots(ctx, scheduling.SlotQuery{
		ServiceID: serviceID,
		Date:      date,
		AllowPast: allowPast,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	if !allowPast && h.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			if err := h.Cache.Set(ctx, cacheKey, data, slotCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache slot response", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, slots)
}

// GetCategoryTemplate handles GET /api/availability/:category, returning the
// category's seven weekly template entries. The path segment is the category
// name, mirroring the public site's calendar fetch.
func (h *AvailabilityHandler) GetCategoryTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	cat, err := h.Catalog.GetCategoryByName(ctx, c.Param("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	if cat == nil {
		utils.JSONError(c, http.StatusNotFound, "Not found", "category not found")
		return
	}

	week, err := h.Engine.WeeklyTemplate(ctx, cat.ID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// GetBlockedDates handles GET /api/availability/blocked/:category.
func (h *AvailabilityHandler) GetBlockedDates(c *gin.Context) {
	ctx := c.Request.Context()
	cat, err := h.Catalog.GetCategoryByName(ctx, c.Param("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	if cat == nil {
		utils.JSONError(c, http.StatusNotFound, "Not found", "category not found")
		return
	}

	blocked, err := h.Engine.BlockedDates(ctx, cat.ID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocked)
}
