// Package api defines response envelopes shared by all HTTP handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful requests that carry
// no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by login and refresh with a signed access token
// and the opaque refresh token for the session.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
