package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	logger2 "github.com/vladislavprovich/marketplace-sdk/pkg/logger"
)

const defaultReceiptTimeout = 5 * time.Minute

func NewRouter(handler Handler, logger *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	receiptTimeout := cfg.ReceiptTimeout
	if receiptTimeout <= 0 {
		receiptTimeout = defaultReceiptTimeout
	}

	mux.Use(chiMiddleware.Recoverer)

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "authorization"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	wrappedLogger := &logger2.Logger{Logger: logger}
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  wrappedLogger,
		NoColor: true,
	}))

	mux.Get("/health", handler.Health)
	mux.Handle("/metrics", promhttp.Handler())

	routURL := fmt.Sprintf("/api/%s/marketplace", cfg.APIVersion)
	mux.Route(routURL, func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.Timeout(cfg.Timeout))

			r.Post("/inventory", handler.Inventory)
			r.Post("/inventory/clear", handler.ClearInventory)
			r.Post("/currencies", handler.Currencies)
			r.Post("/currencies/usd", handler.ConvertPrice)
			r.Post("/collectibles/listings", handler.Listings)
			r.Post("/collectibles/lowest-listing", handler.LowestListing)
		})

		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.Timeout(receiptTimeout))

			r.Post("/receipts/wait", handler.WaitReceipt)
		})
	})

	return mux
}
