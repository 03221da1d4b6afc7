// Package i18n provides internationalization support for the register API.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates a wrong cashier PIN.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyLoginDisabled indicates cashier login is not configured.
	ErrKeyLoginDisabled = "error.login_disabled"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyServiceUnavailable indicates a backing store is unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Register error translation keys.
const (
	// ErrKeyProductNotFound indicates the product is not in the catalog.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyProductName indicates a blank product name.
	ErrKeyProductName = "error.validation.product_name"
	// ErrKeyInvalidRow indicates a malformed row index.
	ErrKeyInvalidRow = "error.validation.row"
	// ErrKeyRowOutOfRange indicates a row index past the cart lines.
	ErrKeyRowOutOfRange = "error.row_out_of_range"
	// ErrKeyUnknownColumn indicates a column outside the cart table.
	ErrKeyUnknownColumn = "error.unknown_column"
	// ErrKeyCheckoutOpen indicates the cart is locked by an open checkout.
	ErrKeyCheckoutOpen = "error.checkout_open"
	// ErrKeyNoCheckout indicates no checkout is open.
	ErrKeyNoCheckout = "error.no_checkout"
	// ErrKeyInvalidTransition indicates a checkout action not allowed in its state.
	ErrKeyInvalidTransition = "error.invalid_transition"
	// ErrKeyCloseDisabled indicates the checkout cannot close while processing.
	ErrKeyCloseDisabled = "error.close_disabled"
	// ErrKeyInvalidQuery indicates malformed audit query parameters.
	ErrKeyInvalidQuery = "error.validation.query"
)
