package handlers

import (
	"net/http"
	"time"

	adminRepo "beautybar/database/repository/admin"
	catalogRepo "beautybar/database/repository/catalog"
	"beautybar/models"
	"beautybar/services/scheduling"
	"beautybar/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler serves back-office authentication and availability management.
type AdminHandler struct {
	Admins  adminRepo.AdminRepository
	Catalog catalogRepo.CatalogRepository
	Engine  scheduling.SchedulingEngine
	Cache   *redis.Client
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(admins adminRepo.AdminRepository, catalog catalogRepo.CatalogRepository, engine scheduling.SchedulingEngine, cache *redis.Client) *AdminHandler {
	return &AdminHandler{Admins: admins, Catalog: catalog, Engine: engine, Cache: cache}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	admin, err := h.Admins.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

type templateEntryInput struct {
	Weekday      int    `json:"weekday"`
	IsAvailable  bool   `json:"isAvailable"`
	OpenTime     string `json:"openTime"`
	CloseTime    string `json:"closeTime"`
	MaxBookings  int    `json:"maxBookings"`
	BreakMinutes int    `json:"breakMinutes"`
}

// SetTemplateEntry handles PUT /api/admin/availability/:category.
func (h *AdminHandler) SetTemplateEntry(c *gin.Context) {
	var input templateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

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

	entry, err := h.Engine.SetWeeklyTemplateEntry(ctx, models.WeeklyTemplateEntry{
		CategoryID:   cat.ID,
		Weekday:      input.Weekday,
		IsAvailable:  input.IsAvailable,
		OpenTime:     input.OpenTime,
		CloseTime:    input.CloseTime,
		MaxBookings:  input.MaxBookings,
		BreakMinutes: input.BreakMinutes,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.flushSlotCache(c)
	c.JSON(http.StatusOK, entry)
}

type blockedDateInput struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Reason    string  `json:"reason"`
}

// AddBlockedDate handles POST /api/admin/blocked/:category.
func (h *AdminHandler) AddBlockedDate(c *gin.Context) {
	var input blockedDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

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

	reason := input.Reason
	if reason == "" {
		reason = "Admin blocked"
	}
	blocked, err := h.Engine.AddBlockedDate(ctx, scheduling.BlockedDateRequest{
		CategoryID: cat.ID,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Reason:     reason,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.flushSlotCache(c)
	c.JSON(http.StatusCreated, blocked)
}

// RemoveBlockedDate handles DELETE /api/admin/blocked/:category/:id.
func (h *AdminHandler) RemoveBlockedDate(c *gin.Context) {
	if err := h.Engine.RemoveBlockedDate(c.Request.Context(), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	h.flushSlotCache(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// flushSlotCache drops every cached slot response. Availability edits change
// whole-day windows, so targeted invalidation buys nothing here; these are
// rare admin operations over a small keyspace.
func (h *AdminHandler) flushSlotCache(c *gin.Context) {
	if h.Cache == nil {
		return
	}
	ctx := c.Request.Context()
	keys, err := h.Cache.Keys(ctx, "slots:*").Result()
	if err != nil {
		utils.GetLogger().Warn("failed to scan slot cache keys", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := h.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to flush slot cache", zap.Error(err))
	}
}
