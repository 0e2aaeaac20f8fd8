// Package router wires HTTP routes to their handlers.
package router

import (
	authhandler "wellness_backend/internal/feature/auth/transport/handler"
	profilehandler "wellness_backend/internal/feature/profile/transport/handler"
	trackinghandler "wellness_backend/internal/feature/tracking/transport/handler"
	platformhandler "wellness_backend/internal/platform/http/handler"
	jwtmw "wellness_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin engine with all application routes. jwtSecret is
// the HMAC key used to verify access tokens on the protected group.
func NewRouter(jwtSecret string, authH *authhandler.AuthHandler,
	profileH *profilehandler.ProfileHandler, trackingH *trackinghandler.TrackingHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.POST("/refresh", authH.Refresh)
	r.POST("/logout", authH.Logout)

	// Password reset flow: request a code, verify it, set the new password.
	r.POST("/auth/forgot", authH.ForgotPassword)
	r.POST("/auth/verify-code", authH.VerifyCode)
	r.POST("/auth/reset-password", authH.ResetPassword)

	// Routes below require a valid access token.
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/profile", profileH.Get)
		auth.PUT("/profile", profileH.Update)
		auth.PUT("/profile/goals", profileH.UpdateGoals)

		auth.GET("/tracking/today", trackingH.GetToday)
		auth.GET("/tracking/weekly", trackingH.GetWeekly)

		auth.PUT("/tracking/water", trackingH.UpdateWater)
		auth.DELETE("/tracking/water", trackingH.ResetWater)
		auth.PUT("/tracking/food", trackingH.UpdateFood)
		auth.DELETE("/tracking/food", trackingH.ResetFood)
		auth.PUT("/tracking/sleep", trackingH.UpdateSleep)
		auth.DELETE("/tracking/sleep", trackingH.ResetSleep)
	}

	return r
}
