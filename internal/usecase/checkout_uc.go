// File: internal/usecase/checkout_uc.go
package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"marketmind-payments/internal/domain"
	"marketmind-payments/internal/domain/model"
	"marketmind-payments/internal/domain/ports/adapter"
)

// Compile-time check
var _ CheckoutUseCase = (*checkoutUC)(nil)

// CheckoutInput is the purchase intent as the storefront sends it.
type CheckoutInput struct {
	Name      string
	Email     string
	Phone     string
	Amount    float64
	Purpose   string
	ProductID string
}

type CheckoutUseCase interface {
	// Initiate creates a gateway order for the purchase intent and returns
	// the hosted payment link.
	Initiate(ctx context.Context, in CheckoutInput) (payURL string, err error)
	// Verify looks up an order's settlement status and reduces it to a
	// binary outcome. It never fails: every error degrades to FAILED.
	Verify(ctx context.Context, orderID, productID string) model.Verification
}

type checkoutUC struct {
	gateway   adapter.PaymentGateway
	publicURL string // base URL this service is reachable on
	log       *zerolog.Logger
}

func NewCheckoutUseCase(gateway adapter.PaymentGateway, publicURL string, logger *zerolog.Logger) *checkoutUC {
	return &checkoutUC{
		gateway:   gateway,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       logger,
	}
}

func (u *checkoutUC) Initiate(ctx context.Context, in CheckoutInput) (string, error) {
	if in.Amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	}

	note := in.Purpose
	if note == "" {
		note = "MarketMind Hub Order"
	}

	order := model.OrderRequest{
		Amount:        in.Amount,
		Currency:      "INR",
		Note:          note,
		CustomerID:    newCustomerID(in.Phone),
		CustomerEmail: in.Email,
		CustomerPhone: in.Phone,
		ProductID:     in.ProductID,
		ReturnURL:     u.returnURL(in.ProductID),
	}

	payURL, err := u.gateway.CreateOrder(ctx, order)
	if err != nil {
		return "", err
	}

	u.log.Info().
		Str("customer_id", order.CustomerID).
		Str("product_id", in.ProductID).
		Float64("amount", in.Amount).
		Msg("payment order created")
	return payURL, nil
}

func (u *checkoutUC) Verify(ctx context.Context, orderID, productID string) model.Verification {
	v := model.Verification{Outcome: model.OutcomeFailed, OrderID: orderID, ProductID: productID}
	if orderID == "" {
		u.log.Warn().Msg("verify called without order id")
		return v
	}

	status, err := u.gateway.FetchOrderStatus(ctx, orderID)
	if err != nil {
		u.log.Warn().Err(err).Str("order_id", orderID).Msg("order lookup failed")
		return v
	}

	v.Outcome = model.OutcomeFromOrderStatus(status)
	u.log.Info().
		Str("order_id", orderID).
		Str("order_status", status).
		Str("outcome", string(v.Outcome)).
		Msg("payment order verified")
	return v
}

// newCustomerID builds a per-call unique customer id from the phone (or a
// placeholder) and a ULID, whose leading bits are a high-resolution timestamp.
func newCustomerID(phone string) string {
	if phone == "" {
		phone = "CUST"
	}
	return phone + "_" + ulid.Make().String()
}

// returnURL points the gateway back at the verifier endpoint. The {order_id}
// token is substituted by the gateway on redirect and must stay unescaped.
func (u *checkoutUC) returnURL(productID string) string {
	return fmt.Sprintf("%s/verify-cashfree?product_id=%s&order_id={order_id}",
		u.publicURL, url.QueryEscape(productID))
}
