// Package handler provides the HTTP handlers for the tracking feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness_backend/internal/api"
	"wellness_backend/internal/feature/tracking/domain/entity"
	"wellness_backend/internal/feature/tracking/transport/http/dto"
	"wellness_backend/internal/feature/tracking/usecase"
	jwtmw "wellness_backend/internal/platform/jwt"
)

// TrackingUsecase defines the daily-record operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TrackingUsecase interface {
	AddWater(ctx context.Context, userID uint, amountML int) (*entity.DailyRecord, error)
	AddFood(ctx context.Context, userID uint, calories, meals int) (*entity.DailyRecord, error)
	AddSleep(ctx context.Context, userID uint, hours float64) (*entity.DailyRecord, error)
	ResetWater(ctx context.Context, userID uint) (*entity.DailyRecord, error)
	ResetFood(ctx context.Context, userID uint) (*entity.DailyRecord, error)
	ResetSleep(ctx context.Context, userID uint) (*entity.DailyRecord, error)
	GetToday(ctx context.Context, userID uint) (*entity.DailyRecord, error)
	ListWeek(ctx context.Context, userID uint) ([]*entity.DailyRecord, error)
}

// TrackingHandler handles HTTP requests for daily-record operations. All
// routes sit behind the JWT middleware; the user ID comes from the context.
type TrackingHandler struct {
	tracking TrackingUsecase
}

// NewTrackingHandler creates a new TrackingHandler with the given usecase.
func NewTrackingHandler(tracking TrackingUsecase) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// GetToday returns today's record, or 404 when the user has not logged
// anything yet today. Reading never creates a record.
func (h *TrackingHandler) GetToday(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	record, err := h.tracking.GetToday(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no record found for today"})
			return
		}
		h.writeInternal(c, "get today failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": dto.NewRecordResponse(record)})
}

// GetWeekly returns the trailing 7-day window of records, oldest first.
// An empty window is a 200 with an empty list.
func (h *TrackingHandler) GetWeekly(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	records, err := h.tracking.ListWeek(c.Request.Context(), userID)
	if err != nil {
		h.writeInternal(c, "weekly read failed", err, userID)
		return
	}

	out := make([]dto.RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewRecordResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// UpdateWater adds the given amount to today's water intake, creating the
// record on first use of the day.
func (h *TrackingHandler) UpdateWater(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.WaterUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.tracking.AddWater(c.Request.Context(), userID, *req.Amount)
	if err != nil {
		h.writeInternal(c, "water update failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "water intake updated",
		"water":   dto.NewWaterResponse(record),
	})
}

// UpdateFood adds calories (and a meal count, default 1) to today's food intake.
func (h *TrackingHandler) UpdateFood(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.FoodUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	meals := 1
	if req.Meals != nil {
		meals = *req.Meals
	}

	record, err := h.tracking.AddFood(c.Request.Context(), userID, *req.Calories, meals)
	if err != nil {
		h.writeInternal(c, "food update failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "food intake updated",
		"food":    dto.NewFoodResponse(record),
	})
}

// UpdateSleep adds hours to today's sleep total.
func (h *TrackingHandler) UpdateSleep(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.SleepUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.tracking.AddSleep(c.Request.Context(), userID, *req.Hours)
	if err != nil {
		h.writeInternal(c, "sleep update failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "sleep updated",
		"sleep":   dto.NewSleepResponse(record),
	})
}

// ResetWater zeroes today's water intake. 404 when no record exists yet.
func (h *TrackingHandler) ResetWater(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	record, err := h.tracking.ResetWater(c.Request.Context(), userID)
	if err != nil {
		h.writeResetError(c, "water reset failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "water intake reset",
		"water":   dto.NewWaterResponse(record),
	})
}

// ResetFood zeroes today's food calories and meal count.
func (h *TrackingHandler) ResetFood(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	record, err := h.tracking.ResetFood(c.Request.Context(), userID)
	if err != nil {
		h.writeResetError(c, "food reset failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "food intake reset",
		"food":    dto.NewFoodResponse(record),
	})
}

// ResetSleep zeroes today's sleep hours.
func (h *TrackingHandler) ResetSleep(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	record, err := h.tracking.ResetSleep(c.Request.Context(), userID)
	if err != nil {
		h.writeResetError(c, "sleep reset failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "sleep hours reset",
		"sleep":   dto.NewSleepResponse(record),
	})
}

func (h *TrackingHandler) writeResetError(c *gin.Context, msg string, err error, userID uint) {
	if errors.Is(err, usecase.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no record found for today"})
		return
	}
	h.writeInternal(c, msg, err, userID)
}

func (h *TrackingHandler) writeInternal(c *gin.Context, msg string, err error, userID uint) {
	slog.Error(msg, "error", err, "user_id", userID)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}
