// File: internal/infra/adapters/cashfree/gateway.go
package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"marketmind-payments/internal/config"
	"marketmind-payments/internal/domain"
	"marketmind-payments/internal/domain/model"
	"marketmind-payments/internal/domain/ports/adapter"
)

var _ adapter.PaymentGateway = (*Gateway)(nil)

// Gateway implements adapter.PaymentGateway against the Cashfree PG REST API.
type Gateway struct {
	appID      string
	secretKey  string
	baseURL    string
	apiVersion string
	client     *http.Client
	log        *zerolog.Logger
}

func NewGateway(cfg config.CashfreeConfig, logger *zerolog.Logger) *Gateway {
	return &Gateway{
		appID:      cfg.AppID,
		secretKey:  cfg.SecretKey,
		baseURL:    strings.TrimRight(cfg.APIBase, "/"),
		apiVersion: cfg.APIVersion,
		client:     &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

func (g *Gateway) Name() string { return "cashfree" }

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url"`
}

type createOrderRequest struct {
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	OrderNote       string          `json:"order_note,omitempty"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

// CreateOrder calls POST /pg/orders and extracts the hosted payment link from
// the loosely-shaped response.
func (g *Gateway) CreateOrder(ctx context.Context, order model.OrderRequest) (string, error) {
	if g.appID == "" || g.secretKey == "" {
		return "", domain.ErrNotConfigured
	}

	payload := createOrderRequest{
		OrderAmount:   order.Amount,
		OrderCurrency: order.Currency,
		OrderNote:     order.Note,
		CustomerDetails: customerDetails{
			CustomerID:    order.CustomerID,
			CustomerEmail: order.CustomerEmail,
			CustomerPhone: order.CustomerPhone,
		},
		OrderMeta: orderMeta{ReturnURL: order.ReturnURL},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	doc, err := g.do(ctx, http.MethodPost, g.baseURL+"/pg/orders", bytes.NewReader(b))
	if err != nil {
		return "", err
	}

	link := firstString(doc, paymentLinkFields)
	if link == "" {
		return "", domain.ErrNoPaymentLink
	}
	return link, nil
}

// FetchOrderStatus calls GET /pg/orders/{id} and extracts the order status.
func (g *Gateway) FetchOrderStatus(ctx context.Context, orderID string) (string, error) {
	if g.appID == "" || g.secretKey == "" {
		return "", domain.ErrNotConfigured
	}

	doc, err := g.do(ctx, http.MethodGet, g.baseURL+"/pg/orders/"+orderID, nil)
	if err != nil {
		return "", err
	}

	status := firstString(doc, orderStatusFields)
	if status == "" {
		return "", fmt.Errorf("no order_status in gateway response")
	}
	return status, nil
}

// do sends one request with the Cashfree credential headers and decodes the
// response into a generic document. Non-2xx responses surface the gateway's
// own body in the error.
func (g *Gateway) do(ctx context.Context, method, url string, body io.Reader) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-client-id", g.appID)
	req.Header.Set("x-client-secret", g.secretKey)
	req.Header.Set("x-api-version", g.apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cashfree request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}

	g.log.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Str("body", truncate(string(raw), 1000)).
		Msg("cashfree response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cashfree: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	return doc, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
