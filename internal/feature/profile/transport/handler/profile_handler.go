// Package handler provides the HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness_backend/internal/api"
	"wellness_backend/internal/feature/auth/domain/entity"
	"wellness_backend/internal/feature/profile/transport/http/dto"
	"wellness_backend/internal/feature/profile/usecase"
	jwtmw "wellness_backend/internal/platform/jwt"
)

// ProfileUsecase defines the profile operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProfileUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, upd usecase.ProfileUpdate) (*entity.User, error)
	UpdateGoals(ctx context.Context, userID uint, upd usecase.GoalsUpdate) (*entity.User, error)
}

// ProfileHandler handles HTTP requests for profile and goal management.
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler with the given usecase.
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get returns the authenticated user's profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	user, err := h.profile.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "profile read failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.NewProfileResponse(user)})
}

// Update applies a partial profile update; only supplied fields change.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.ProfileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), userID, usecase.ProfileUpdate{
		Name:   req.Name,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
	})
	if err != nil {
		h.writeError(c, "profile update failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated",
		"user":    dto.NewProfileResponse(user),
	})
}

// UpdateGoals applies a partial goals update; each goal changes independently.
func (h *ProfileHandler) UpdateGoals(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.GoalsUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.profile.UpdateGoals(c.Request.Context(), userID, usecase.GoalsUpdate{
		WaterML:    req.Water,
		FoodCal:    req.Food,
		SleepHours: req.Sleep,
	})
	if err != nil {
		h.writeError(c, "goals update failed", err, userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "goals updated",
		"goals":   dto.NewProfileResponse(user).Goals,
	})
}

func (h *ProfileHandler) writeError(c *gin.Context, msg string, err error, userID uint) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		return
	}
	slog.Error(msg, "error", err, "user_id", userID)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}
