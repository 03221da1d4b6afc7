package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pos-service/internal/circuitbreaker"
	"github.com/guttosm/pos-service/internal/domain/dto"
	"github.com/guttosm/pos-service/internal/i18n"
	"github.com/guttosm/pos-service/internal/mocks"
	"github.com/guttosm/pos-service/internal/pricing"
	"github.com/guttosm/pos-service/internal/service"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err            error
		expectedStatus int
		expectedKey    string
	}{
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
		{fmt.Errorf("add Pizza: %w", service.ErrProductNotFound), http.StatusNotFound, i18n.ErrKeyProductNotFound},
		{errors.New("boom"), http.StatusInternalServerError, i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, key := statusFor(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedKey, key)
		})
	}
}

func TestHandler_DomainErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		locale         string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unexpected error is a 500",
			err:            errors.New("disk on fire"),
			locale:         "en",
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
		{
			name:           "checkout open in dutch",
			err:            service.ErrCheckoutOpen,
			locale:         "nl",
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeFromStatus(http.StatusConflict),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := &mocks.MockPointOfSale{}
			pos.On("Formatter").Return(pricing.NewFormatter("₱")).Maybe()
			pos.On("ClearCart", mock.Anything).Return(service.CartUpdate{}, tt.err)

			router := NewRouter(NewHandler(pos), nil, testRouterConfig())
			w := serve(t, router, http.MethodDelete, "/api/cart", nil, "Accept-Language", tt.locale)

			statusIs(t, w, tt.expectedStatus)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			_, key := statusFor(tt.err)
			assert.Equal(t, i18n.GetTranslator().Translate(key, tt.locale), resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			pos.AssertExpectations(t)
		})
	}
}
