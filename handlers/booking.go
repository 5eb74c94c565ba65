package handlers

import (
	"net/http"

	bookingRepo "beautybar/database/repository/booking"
	"beautybar/services/scheduling"
	"beautybar/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingHandler serves the booking write path and the admin booking list.
type BookingHandler struct {
	Engine scheduling.SchedulingEngine
	Ledger bookingRepo.BookingRepository
	Clock  *scheduling.Clock
	Cache  *redis.Client
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine scheduling.SchedulingEngine, ledger bookingRepo.BookingRepository, clock *scheduling.Clock, cache *redis.Client) *BookingHandler {
	return &BookingHandler{Engine: engine, Ledger: ledger, Clock: clock, Cache: cache}
}

type createBookingInput struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
}

// CreateBooking handles POST /api/bookings. The engine re-validates the
// requested slot regardless of what the client saw earlier; a 409 means the
// slot was taken in the meantime and the user must pick again.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	booking, err := h.Engine.AdmitBooking(c.Request.Context(), scheduling.AdmissionRequest{
		ServiceID:     input.ServiceID,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.invalidateSlotCache(c, input.ServiceID, input.Date)
	c.JSON(http.StatusCreated, booking)
}

// ListBookings handles GET /api/bookings (admin).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type statusUpdateInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status (admin).
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	booking, err := h.Engine.TransitionBooking(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	// A cancellation frees the slot, so the cached slot view for that day is
	// stale the moment it lands.
	date, _ := h.Clock.BusinessDate(booking.AppointmentStart)
	h.invalidateSlotCache(c, booking.ServiceID, date)
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) invalidateSlotCache(c *gin.Context, serviceID, date string) {
	if h.Cache == nil {
		return
	}
	key := slotCacheKey(serviceID, date)
	if err := h.Cache.Del(c.Request.Context(), key).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache",
			zap.String("key", key), zap.Error(err))
	}
}
