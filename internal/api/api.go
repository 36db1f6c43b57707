// Package api implements the REST surface over the storage layer:
// routing, JSON mapping, request validation, and the translation of
// domain errors into HTTP status codes. Repositories do none of this;
// the split keeps business validation above the storage boundary.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aimecol/cwsms/internal/middleware"
	"github.com/Aimecol/cwsms/internal/storage"
)

// Server holds the API dependencies. The store is injected at
// construction; handlers hold no other state.
type Server struct {
	store    storage.Store
	validate *validator.Validate
}

// NewServer creates a Server over the given store.
func NewServer(store storage.Store) *Server {
	return &Server{
		store:    store,
		validate: validator.New(),
	}
}

// Options configures the assembled handler.
type Options struct {
	// CORSOrigin is the allowed browser origin ("*" for any).
	CORSOrigin string

	// MetricsEnabled mounts /metrics and request instrumentation.
	MetricsEnabled bool
}

// Handler assembles the router with middleware and all routes.
func (s *Server) Handler(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(opts.CORSOrigin))
	if opts.MetricsEnabled {
		r.Use(middleware.Metrics)
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Welcome to Car Washing Sales Management System API"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/cars", func(r chi.Router) {
			r.Get("/", s.listCars)
			r.Post("/", s.createCar)
			r.Get("/{plateNumber}", s.getCar)
			r.Put("/{plateNumber}", s.updateCar)
			r.Delete("/{plateNumber}", s.deleteCar)
		})
		r.Route("/packages", func(r chi.Router) {
			r.Get("/", s.listPackages)
			r.Post("/", s.createPackage)
			r.Get("/{packageNumber}", s.getPackage)
			r.Put("/{packageNumber}", s.updatePackage)
			r.Delete("/{packageNumber}", s.deletePackage)
		})
		r.Route("/service-packages", func(r chi.Router) {
			r.Get("/", s.listServicePackages)
			r.Post("/", s.createServicePackage)
			r.Get("/{recordNumber}", s.getServicePackage)
			r.Put("/{recordNumber}", s.updateServicePackage)
			r.Delete("/{recordNumber}", s.deleteServicePackage)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", s.listPayments)
			r.Post("/", s.createPayment)
			r.Get("/{paymentNumber}", s.getPayment)
			r.Put("/{paymentNumber}", s.updatePayment)
			r.Delete("/{paymentNumber}", s.deletePayment)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", s.dailySalesReport)
			r.Get("/monthly", s.monthlyRevenueReport)
			r.Get("/package-popularity", s.packagePopularityReport)
			r.Get("/customer-frequency", s.customerFrequencyReport)
			r.Get("/revenue-by-car-type", s.revenueByCarTypeReport)
			r.Get("/unpaid-services", s.unpaidServicesReport)
		})
	})

	return r
}

// messageResponse is the body for non-entity responses. The lowercase
// key is what the browser UI expects.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// decodeBody parses the request body and runs struct validation.
// A false return means the 400 has already been written.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return false
	}
	return true
}

// storeErrMessages carries the per-entity wording for domain errors.
type storeErrMessages struct {
	notFound      string
	duplicate     string
	missingParent string
	inUse         string
}

// writeStoreError maps a repository error onto the REST contract:
// not-found 404, constraint failures 400 with a human-readable message,
// anything else 500.
func writeStoreError(w http.ResponseWriter, err error, m storeErrMessages) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeMessage(w, http.StatusNotFound, m.notFound)
	case errors.Is(err, storage.ErrDuplicateKey):
		writeMessage(w, http.StatusBadRequest, m.duplicate)
	case errors.Is(err, storage.ErrReferentialViolation):
		writeMessage(w, http.StatusBadRequest, m.missingParent)
	case errors.Is(err, storage.ErrReferentialInUse):
		writeMessage(w, http.StatusBadRequest, m.inUse)
	case errors.Is(err, storage.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "One or more values are invalid")
	default:
		slog.Error("Storage error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}
