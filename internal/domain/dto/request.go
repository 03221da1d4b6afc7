// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the register domain,
// providing validation and serialization for API communication.
package dto

import "strings"

// AddItemRequest represents the JSON request body for adding a product to the cart.
//
// @Description Request to add one unit of a catalog product
// @Example {"name": "Burger"}
type AddItemRequest struct {
	// Name is the catalog product name.
	Name string `json:"name" binding:"required,max=64" example:"Burger"`
} // @name AddItemRequest

// EditCellRequest represents the JSON request body for a cart table cell edit.
//
// Value is the raw text typed into the cell. Non-numeric quantities are
// accepted and leave the cart unchanged.
//
// @Description Raw cell input
// @Example {"value": "3"}
type EditCellRequest struct {
	// Value is the raw cell input.
	Value string `json:"value" example:"3"`
} // @name EditCellRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrEmptyProductName is returned when the product name is blank.
	ErrEmptyProductName = &ValidationError{
		Field:   "name",
		Message: "must not be blank",
	}
)

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyProductName
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
