package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/token"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/observability"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service

	// Credentials, Tokens and Guard are nil when auth is disabled; the
	// ledger routes are then open and unscoped.
	Credentials *auth.CredentialStore
	Tokens      *auth.TokenService
	Guard       *auth.Guard

	MetricsEnabled bool
}

// Handler builds the router: plain handlers for /status and /token, the
// huma API for the ledger routes with the guard attached when configured.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(corsMiddleware)
	router.Use(logging.Middleware(r.Logger))
	if r.MetricsEnabled {
		router.Use(observability.Middleware)
		router.Handle("/metrics", promhttp.Handler())
	}

	statusHandler := status.NewHandler()
	router.Method(http.MethodGet, "/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	if r.Credentials != nil && r.Tokens != nil {
		loginHandler := token.NewHandler(r.Credentials, r.Tokens)
		router.Method(http.MethodPost, "/token", logging.LoggingWrapper("Login", r.Logger, loginHandler.Handler))
	}

	humaAPI := humachi.New(router, huma.DefaultConfig("ledger-server", "1.0.0"))
	if r.Guard != nil {
		humaAPI.UseMiddleware(r.Guard.Middleware(humaAPI))
	}
	transaction.NewListTransactionsHandler(r.Service.Ledger).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service.Ledger).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Ledger).Register(humaAPI)

	return router
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, req)
	})
}
