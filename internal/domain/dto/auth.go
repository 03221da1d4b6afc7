package dto

import "strings"

// LoginRequest represents the JSON request body for the cashier login endpoint.
//
// @Description Request to open a cashier session
// @Example {"cashier": "till-1", "pin": "1234"}
type LoginRequest struct {
	// Cashier is the name shown on audit entries.
	Cashier string `json:"cashier" binding:"required,max=64" example:"till-1"`
	// PIN is the shared register PIN.
	PIN string `json:"pin" binding:"required,min=4,max=32" example:"1234"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Cashier session token
// @Example {"token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...", "expires_in": 28800, "cashier": "till-1"}
type LoginResponse struct {
	// Token is the JWT bearer token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"28800"`
	// Cashier echoes the authenticated cashier.
	Cashier string `json:"cashier" example:"till-1"`
} // @name LoginResponse

// Claims represents the cashier claims carried by a session token.
type Claims struct {
	Cashier string `json:"cashier"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Cashier) == "" {
		return &ValidationError{
			Field:   "cashier",
			Message: "cashier is required",
		}
	}
	if len(r.PIN) < 4 {
		return &ValidationError{
			Field:   "pin",
			Message: "pin must be at least 4 characters",
		}
	}
	return nil
}
