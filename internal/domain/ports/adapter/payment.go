package adapter

import (
	"context"

	"marketmind-payments/internal/domain/model"
)

// PaymentGateway is the hex port for the payment provider.
type PaymentGateway interface {
	Name() string

	// CreateOrder registers an order with the provider and returns the
	// hosted payment link the customer should be sent to.
	CreateOrder(ctx context.Context, order model.OrderRequest) (payURL string, err error)

	// FetchOrderStatus looks up an order by the provider-assigned id and
	// returns its raw status string (e.g. ACTIVE, PAID, EXPIRED).
	FetchOrderStatus(ctx context.Context, orderID string) (status string, err error)
}
