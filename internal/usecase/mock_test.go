//go:build !integration

package usecase_test

import (
	"context"

	"github.com/rs/zerolog"

	"marketmind-payments/internal/domain/model"
)

// MockPaymentGateway implements adapter.PaymentGateway for tests.
type MockPaymentGateway struct {
	CreateOrderFunc      func(ctx context.Context, order model.OrderRequest) (string, error)
	FetchOrderStatusFunc func(ctx context.Context, orderID string) (string, error)

	CreateCalls []model.OrderRequest
	FetchCalls  []string
}

func (m *MockPaymentGateway) Name() string { return "mock" }

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, order model.OrderRequest) (string, error) {
	m.CreateCalls = append(m.CreateCalls, order)
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, order)
	}
	return "https://pay.example/session", nil
}

func (m *MockPaymentGateway) FetchOrderStatus(ctx context.Context, orderID string) (string, error) {
	m.FetchCalls = append(m.FetchCalls, orderID)
	if m.FetchOrderStatusFunc != nil {
		return m.FetchOrderStatusFunc(ctx, orderID)
	}
	return "ACTIVE", nil
}

func newTestLogger() *zerolog.Logger { l := zerolog.Nop(); return &l }
