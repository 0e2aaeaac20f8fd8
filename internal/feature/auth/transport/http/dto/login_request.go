package dto

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshReq represents the request body for the /refresh and /logout
// endpoints.
type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
