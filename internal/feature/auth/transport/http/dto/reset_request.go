package dto

// ForgotPasswordReq represents the request body for /auth/forgot.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeReq represents the request body for /auth/verify-code.
type VerifyCodeReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResetPasswordReq represents the request body for /auth/reset-password.
type ResetPasswordReq struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
