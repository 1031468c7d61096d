package model

import (
	"net/url"
	"strings"
)

// OrderRequest is the normalized payload sent to the gateway's order-creation
// endpoint. It lives only for the duration of the outbound call; nothing is
// persisted.
type OrderRequest struct {
	Amount        float64
	Currency      string
	Note          string
	CustomerID    string
	CustomerEmail string
	CustomerPhone string
	ProductID     string
	ReturnURL     string
}

// Outcome is the binary verification result carried back to the storefront.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailed  Outcome = "FAILED"
)

// OutcomeFromOrderStatus maps a gateway order-status string to an Outcome.
// Only PAID and COMPLETED count as success; anything else (pending, expired,
// partial refunds, empty) is FAILED.
func OutcomeFromOrderStatus(status string) Outcome {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "PAID", "COMPLETED":
		return OutcomeSuccess
	default:
		return OutcomeFailed
	}
}

// Verification is the ephemeral result of an order lookup, used only to build
// the redirect back to the storefront confirmation page.
type Verification struct {
	Outcome   Outcome
	OrderID   string
	ProductID string
}

// ConfirmationURL builds the storefront confirmation page URL for this
// verification result.
func (v Verification) ConfirmationURL(frontendBase string) string {
	q := url.Values{}
	q.Set("product_id", v.ProductID)
	q.Set("order_status", string(v.Outcome))
	q.Set("order_id", v.OrderID)
	return strings.TrimRight(frontendBase, "/") + "/success.html?" + q.Encode()
}
