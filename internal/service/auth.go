package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when the cashier PIN does not match.
	ErrInvalidCredentials = errors.New("invalid cashier or pin")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrLoginDisabled is returned when no cashier PIN hash is configured.
	ErrLoginDisabled = errors.New("cashier login is not configured")
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// CashierAuth issues and validates cashier session tokens.
type CashierAuth interface {
	Login(ctx context.Context, cashier, pin string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// CashierAuthImpl implements CashierAuth with a shared bcrypt PIN hash and HS256 tokens.
type CashierAuthImpl struct {
	pinHash   []byte
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewCashierAuth creates a cashier authenticator from the auth configuration.
func NewCashierAuth(cfg config.AuthConfig) *CashierAuthImpl {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &CashierAuthImpl{
		pinHash:   []byte(cfg.CashierPINHash),
		secretKey: []byte(cfg.JWTSecretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Login checks the PIN and returns a signed session token for the cashier.
func (a *CashierAuthImpl) Login(_ context.Context, cashier, pin string) (*dto.LoginResponse, error) {
	if len(a.pinHash) == 0 || len(a.secretKey) == 0 {
		return nil, ErrLoginDisabled
	}
	cashier = strings.TrimSpace(cashier)
	if cashier == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.pinHash, []byte(pin)); err != nil {
		return nil, ErrInvalidCredentials
	}

	issuedAt := a.now()
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{Cashier: cashier},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cashier,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secretKey)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresIn: int64(a.ttl.Seconds()),
		Cashier:   cashier,
	}, nil
}

// ValidateToken parses a session token and returns its cashier claims.
func (a *CashierAuthImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	if len(a.secretKey) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return a.secretKey, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid && claims.Cashier != "" {
		return &claims.Claims, nil
	}

	return nil, ErrInvalidToken
}

var _ CashierAuth = (*CashierAuthImpl)(nil)
