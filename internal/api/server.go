package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/subsync/subsync/internal/api/handler"
	mw "github.com/subsync/subsync/internal/api/middleware"
	"github.com/subsync/subsync/internal/config"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/storage"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	services *core.Services
	pool     *pgxpool.Pool
	uploads  *storage.Uploads
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		services: core.NewServices(pool, cfg.JWTSecret, cfg.JWTIssuer),
		pool:     pool,
		uploads:  storage.NewUploads(cfg.UploadsDir),
		cfg:      cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
	s.router.Use(mw.CORS(s.cfg.CORSOrigins))
}

func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.Handler())

	// Health check endpoints
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	auth := handler.NewAuth(s.services.Auth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(s.services.Auth))

			// Customers
			customer := handler.NewCustomer(s.services.Customer, s.services.Subscription, s.uploads)
			r.Get("/customers", customer.List)
			r.Post("/customers", customer.Create)
			r.Get("/customers/{id}", customer.Get)
			r.Put("/customers/{id}", customer.Update)
			r.Delete("/customers/{id}", customer.Delete)
			r.Post("/customers/{id}/profile-picture", customer.UploadProfilePicture)

			// Vendors
			vendor := handler.NewVendor(s.services.Vendor)
			r.Get("/vendors", vendor.List)
			r.Post("/vendors", vendor.Create)
			r.Get("/vendors/{id}", vendor.Get)
			r.Put("/vendors/{id}", vendor.Update)
			r.Delete("/vendors/{id}", vendor.Delete)

			// Products
			product := handler.NewProduct(s.services.Product)
			r.Get("/products", product.List)
			r.Post("/products", product.Create)
			r.Get("/products/{id}", product.Get)
			r.Put("/products/{id}", product.Update)
			r.Delete("/products/{id}", product.Delete)

			// Subscriptions
			subscription := handler.NewSubscription(s.services.Subscription)
			r.Get("/subscriptions", subscription.List)
			r.Post("/subscriptions", subscription.Create)
			r.Get("/subscriptions/{id}", subscription.Get)

			// Domains
			domain := handler.NewDomain(s.services.Domain)
			r.Get("/domains", domain.List)
			r.Post("/domains", domain.Create)
			r.Get("/domains/{id}", domain.Get)
			r.Put("/domains/{id}", domain.Update)
			r.Delete("/domains/{id}", domain.Delete)

			// Service catalogue
			service := handler.NewService(s.services.Catalog)
			r.Get("/services", service.List)
			r.Post("/services", service.Create)
			r.Get("/services/{id}", service.Get)
			r.Put("/services/{id}", service.Update)
			r.Delete("/services/{id}", service.Delete)

			// Taxes
			tax := handler.NewTax(s.services.Tax)
			r.Get("/taxes", tax.ListRates)
			r.Post("/taxes", tax.AddRate)
			r.Get("/taxes/default-preference", tax.GetDefaultPreference)
			r.Put("/taxes/default-preference", tax.SetDefaultPreference)
			r.Put("/taxes/{id}", tax.UpdateRate)
			r.Delete("/taxes/{id}", tax.RemoveRate)
			r.Get("/gst-settings", tax.GetGSTSettings)
			r.Put("/gst-settings", tax.SetGSTSettings)

			// Payment terms
			paymentTerm := handler.NewPaymentTerm(s.services.PaymentTerm)
			r.Get("/payment-terms", paymentTerm.List)
			r.Post("/payment-terms", paymentTerm.Create)
			r.Put("/payment-terms/{id}", paymentTerm.Update)
			r.Delete("/payment-terms/{id}", paymentTerm.Delete)
			r.Put("/payment-terms/{id}/default", paymentTerm.SetDefault)

			// Item groups
			itemGroup := handler.NewItemGroup(s.services.ItemGroup)
			r.Get("/item-groups", itemGroup.List)
			r.Post("/item-groups", itemGroup.Create)
			r.Put("/item-groups/{id}", itemGroup.Update)
			r.Delete("/item-groups/{id}", itemGroup.Delete)

			// Cross-entity search
			search := handler.NewSearch(s.services.Search)
			r.Get("/search", search.Search)
		})
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.pool.Ping(ctx); err != nil {
		checks["db"] = err.Error()
		healthy = false
	} else {
		checks["db"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
