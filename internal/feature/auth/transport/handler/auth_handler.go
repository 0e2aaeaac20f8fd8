// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness_backend/internal/api"
	"wellness_backend/internal/feature/auth/transport/http/dto"
	"wellness_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) error
	Login(ctx context.Context, email, password, userAgent, ip string) (access, refresh string, err error)
	Refresh(ctx context.Context, refreshToken, userAgent, ip string) (access, refresh string, err error)
	Logout(ctx context.Context, refreshToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the given usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles user registration.
// Returns 400 on validation failure, 409 on any signup failure (the real
// reason is not exposed, to prevent user enumeration), 201 on success.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	in := usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Weight:   req.Weight,
		Height:   req.Height,
	}
	if err := h.auth.Signup(c.Request.Context(), in); err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login handles user authentication.
// Returns 400 on validation failure, 401 on failed authentication, 200 with
// an access token and refresh token on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	access, refresh, err := h.auth.Login(c.Request.Context(), req.Email, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: access, RefreshToken: refresh})
}

// Refresh rotates a refresh token and issues a new access token.
// Returns 401 for unknown, revoked or expired sessions.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	access, refresh, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRefreshToken),
			errors.Is(err, usecase.ErrSessionRevoked),
			errors.Is(err, usecase.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		default:
			slog.Error("refresh failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, api.TokenResponse{Token: access, RefreshToken: refresh})
}

// Logout revokes the presented refresh token. Unknown tokens still return
// 200; logout is idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// ForgotPassword emails a 6-digit verification code for the password reset flow.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("password reset request failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	slog.Info("password reset code sent", "email", req.Email)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "verification code sent to email"})
}

// VerifyCode checks a password-reset verification code without consuming it.
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.auth.VerifyResetCode(c.Request.Context(), req.Email, req.Code); err != nil {
		h.writeResetError(c, err, req.Email)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "code verified"})
}

// ResetPassword sets a new password after verifying the reset code.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		h.writeResetError(c, err, req.Email)
		return
	}
	slog.Info("password reset successful", "email", req.Email)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "password reset successful"})
}

// writeResetError maps password-reset flow errors to HTTP responses.
func (h *AuthHandler) writeResetError(c *gin.Context, err error, email string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidResetCode):
		// A wrong email and a wrong code look the same to the caller.
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid verification code"})
	case errors.Is(err, usecase.ErrResetCodeExpired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "verification code expired"})
	default:
		slog.Error("password reset failed", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
