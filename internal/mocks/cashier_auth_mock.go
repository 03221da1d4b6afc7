// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pos-service/internal/domain/dto"
	"github.com/stretchr/testify/mock"
)

type MockCashierAuth struct {
	mock.Mock
}

func (m *MockCashierAuth) Login(ctx context.Context, cashier, pin string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, cashier, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockCashierAuth) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}
