// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pos-service/internal/cartview"
	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/pricing"
	"github.com/guttosm/pos-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockPointOfSale struct {
	mock.Mock
}

func (m *MockPointOfSale) Catalog() []model.Product {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Product)
}

func (m *MockPointOfSale) Formatter() pricing.Formatter {
	args := m.Called()
	return args.Get(0).(pricing.Formatter)
}

func (m *MockPointOfSale) AddProduct(ctx context.Context, name string) (service.CartUpdate, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(service.CartUpdate), args.Error(1)
}

func (m *MockPointOfSale) RemoveProduct(ctx context.Context, name string) (service.CartUpdate, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(service.CartUpdate), args.Error(1)
}

func (m *MockPointOfSale) DecrementProduct(ctx context.Context, name string) (service.CartUpdate, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(service.CartUpdate), args.Error(1)
}

func (m *MockPointOfSale) EditCell(ctx context.Context, row int, column cartview.Column, input string) (service.CartUpdate, error) {
	args := m.Called(ctx, row, column, input)
	return args.Get(0).(service.CartUpdate), args.Error(1)
}

func (m *MockPointOfSale) ClearCart(ctx context.Context) (service.CartUpdate, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.CartUpdate), args.Error(1)
}

func (m *MockPointOfSale) Cart() service.CartView {
	args := m.Called()
	return args.Get(0).(service.CartView)
}

func (m *MockPointOfSale) OpenCheckout(ctx context.Context) (service.CheckoutView, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.CheckoutView), args.Error(1)
}

func (m *MockPointOfSale) Checkout() (service.CheckoutView, error) {
	args := m.Called()
	return args.Get(0).(service.CheckoutView), args.Error(1)
}

func (m *MockPointOfSale) ConfirmCheckout(ctx context.Context) (service.CheckoutView, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.CheckoutView), args.Error(1)
}

func (m *MockPointOfSale) AcknowledgeCheckout(ctx context.Context) (service.CheckoutView, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.CheckoutView), args.Error(1)
}

func (m *MockPointOfSale) CloseCheckout(ctx context.Context) (service.CheckoutView, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.CheckoutView), args.Error(1)
}
