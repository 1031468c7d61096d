// File: internal/infra/web/handlers.go
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"marketmind-payments/internal/domain"
	"marketmind-payments/internal/domain/model"
	"marketmind-payments/internal/infra/logging"
	"marketmind-payments/internal/infra/metrics"
	"marketmind-payments/internal/usecase"
)

// Query-parameter aliases: the gateway's redirect convention is inconsistent
// across environments, so the verifier accepts whichever name is present.
var (
	orderIDAliases   = []string{"order_id", "orderId", "cf_order_id"}
	productIDAliases = []string{"product_id", "productId"}
)

type createPaymentRequest struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Amount    json.RawMessage `json:"amount"`
	Purpose   string          `json:"purpose"`
	ProductID string          `json:"productId"`
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("✅ MarketMind Hub backend (Cashfree) is running"))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleDebug reports which config values are present. Booleans only; the
// credential values themselves are never exposed.
func (s *Server) handleDebug(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"cashfree_app_id_set":     s.cfg.Cashfree.AppID != "",
		"cashfree_secret_key_set": s.cfg.Cashfree.SecretKey != "",
		"api_base_set":            s.cfg.Cashfree.APIBase != "",
		"frontend_base_set":       s.cfg.Frontend.BaseURL != "",
	})
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	log := logging.With(r.Context(), s.log)

	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid amount")
		return
	}

	payURL, err := s.checkoutUC.Initiate(r.Context(), usecase.CheckoutInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Amount:    amount,
		Purpose:   req.Purpose,
		ProductID: req.ProductID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			writeError(w, http.StatusBadRequest, "missing or invalid amount")
		case errors.Is(err, domain.ErrNotConfigured):
			writeError(w, http.StatusInternalServerError, "server misconfigured (missing Cashfree keys)")
			metrics.IncPayment("failed")
		default:
			log.Error().Err(err).Msg("order creation failed")
			writeError(w, http.StatusInternalServerError, err.Error())
			metrics.IncPayment("failed")
		}
		return
	}

	metrics.IncPayment("initiated")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"payment_link": payURL,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	orderID := firstParam(q, orderIDAliases...)
	productID := firstParam(q, productIDAliases...)

	// The browser must always end up on the confirmation page, even if the
	// handler itself blows up.
	redirected := false
	defer func() {
		if rec := recover(); rec != nil || !redirected {
			logging.With(r.Context(), s.log).Error().Interface("panic", rec).Msg("verify handler failed")
			v := model.Verification{Outcome: model.OutcomeFailed, OrderID: orderID, ProductID: productID}
			http.Redirect(w, r, v.ConfirmationURL(s.cfg.Frontend.BaseURL), http.StatusFound)
		}
	}()

	v := s.checkoutUC.Verify(ctx, orderID, productID)

	result, reason := "ok", ""
	if v.Outcome != model.OutcomeSuccess {
		result = "fail"
		reason = "not_paid"
		if orderID == "" {
			reason = "missing_order_id"
		}
		metrics.IncPayment("failed")
	} else {
		metrics.IncPayment("succeeded")
	}
	metrics.PaymentVerifyRequests.WithLabelValues(result, reason).Inc()
	metrics.PaymentVerifyDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	redirected = true
	http.Redirect(w, r, v.ConfirmationURL(s.cfg.Frontend.BaseURL), http.StatusFound)
}

// parseAmount accepts a JSON number or a numeric string and coerces it the
// way the storefront expects.
func parseAmount(raw json.RawMessage) (float64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, domain.ErrInvalidArgument
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return n, nil
		}
	}
	return 0, domain.ErrInvalidArgument
}

// firstParam resolves the first present alias to one canonical value.
func firstParam(q url.Values, aliases ...string) string {
	for _, name := range aliases {
		if v := q.Get(name); v != "" {
			return v
		}
	}
	return ""
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"success": false, "error": msg})
}
