// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// Age, Weight and Height are optional; pointer fields distinguish "absent"
// from a zero value so bounds only apply when supplied.
type SignupReq struct {
	Name     string   `json:"name" binding:"required,min=2"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Age      *int     `json:"age" binding:"omitempty,min=1,max=120"`
	Weight   *float64 `json:"weight" binding:"omitempty,min=1"`
	Height   *float64 `json:"height" binding:"omitempty,min=1"`
}
