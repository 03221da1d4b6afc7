package http

import (
	"errors"
	"net/http"

	"github.com/guttosm/pos-service/internal/circuitbreaker"
	"github.com/guttosm/pos-service/internal/i18n"
	"github.com/guttosm/pos-service/internal/service"
)

// errorMapping pairs a sentinel error with its HTTP status and message key.
type errorMapping struct {
	err    error
	status int
	key    string
}

var errorMappings = []errorMapping{
	{service.ErrProductNotFound, http.StatusNotFound, i18n.ErrKeyProductNotFound},
	{service.ErrRowOutOfRange, http.StatusNotFound, i18n.ErrKeyRowOutOfRange},
	{service.ErrNoCheckout, http.StatusNotFound, i18n.ErrKeyNoCheckout},
	{service.ErrUnknownColumn, http.StatusBadRequest, i18n.ErrKeyUnknownColumn},
	{service.ErrCheckoutOpen, http.StatusConflict, i18n.ErrKeyCheckoutOpen},
	{service.ErrCloseDisabled, http.StatusConflict, i18n.ErrKeyCloseDisabled},
	{service.ErrInvalidTransition, http.StatusConflict, i18n.ErrKeyInvalidTransition},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials},
	{service.ErrInvalidToken, http.StatusUnauthorized, i18n.ErrKeyInvalidToken},
	{service.ErrLoginDisabled, http.StatusServiceUnavailable, i18n.ErrKeyLoginDisabled},
	{circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
}

// statusFor returns the HTTP status and message key for err. Unknown errors are 500s.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.key
		}
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}
