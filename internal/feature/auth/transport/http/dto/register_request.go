// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/register endpoint.
// It uses Gin's binding tags for validation (required, email format, password length).
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=8"`
}
