package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/pos-service/config"
)

const testSecret = "test-secret-key-for-cashier-tokens"

func newTestCashierAuth(t *testing.T, pin string) *CashierAuthImpl {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)

	return NewCashierAuth(config.AuthConfig{
		CashierPINHash: string(hash),
		JWTSecretKey:   testSecret,
		TokenTTL:       time.Hour,
	})
}

func TestCashierAuth_Login(t *testing.T) {
	auth := newTestCashierAuth(t, "1234")
	ctx := context.Background()

	tests := []struct {
		name        string
		cashier     string
		pin         string
		expectedErr error
	}{
		{name: "valid pin", cashier: "till-1", pin: "1234"},
		{name: "wrong pin", cashier: "till-1", pin: "9999", expectedErr: ErrInvalidCredentials},
		{name: "blank cashier", cashier: "  ", pin: "1234", expectedErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := auth.Login(ctx, tt.cashier, tt.pin)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, int64(3600), resp.ExpiresIn)
			assert.Equal(t, tt.cashier, resp.Cashier)
		})
	}
}

func TestCashierAuth_LoginDisabled(t *testing.T) {
	auth := NewCashierAuth(config.AuthConfig{JWTSecretKey: testSecret})

	_, err := auth.Login(context.Background(), "till-1", "1234")

	assert.ErrorIs(t, err, ErrLoginDisabled)
}

func TestCashierAuth_ValidateToken(t *testing.T) {
	auth := newTestCashierAuth(t, "1234")
	ctx := context.Background()

	resp, err := auth.Login(ctx, "till-1", "1234")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims, err := auth.ValidateToken(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "till-1", claims.Cashier)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewCashierAuth(config.AuthConfig{JWTSecretKey: "another-secret"})
		_, err := other.ValidateToken(ctx, resp.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { auth.now = time.Now }()

		_, err := auth.ValidateToken(ctx, resp.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &ClaimsWithJWT{})
		unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = auth.ValidateToken(ctx, unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
