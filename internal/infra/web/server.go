// File: internal/infra/web/server.go
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"marketmind-payments/internal/config"
	"marketmind-payments/internal/infra/logging"
	"marketmind-payments/internal/usecase"
)

// Server wires the storefront-facing HTTP surface to the checkout use case.
type Server struct {
	checkoutUC usecase.CheckoutUseCase
	cfg        *config.Config
	log        *zerolog.Logger
}

func NewServer(checkoutUC usecase.CheckoutUseCase, cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{checkoutUC: checkoutUC, cfg: cfg, log: logger}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(cors)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleLiveness)
	r.Get("/health", s.handleHealth)
	r.Get("/debug", s.handleDebug)
	r.Post("/create-cashfree-payment", s.handleCreatePayment)
	r.Get("/verify-cashfree", s.handleVerify)
	r.Get("/verify", s.handleVerify)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// requestLogger tags every request with an id and logs method/path/status.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := logging.WithRequestID(r.Context(), reqID)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))

		s.log.Info().
			Str("request_id", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

// cors allows the storefront (any origin) to call the JSON endpoints.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
