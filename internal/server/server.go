// Package server exposes the pricer over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/contactkeval/option-pricing/internal/logger"
	"github.com/contactkeval/option-pricing/internal/pricing"
	"github.com/contactkeval/option-pricing/internal/report"
)

// RequestIDHeader carries the request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// PriceQuery is the query string accepted by GET /price.
type PriceQuery struct {
	Spot       float64 `schema:"spot,required"`
	Strike     float64 `schema:"strike,required"`
	Expiry     float64 `schema:"expiry,required"`
	Rate       float64 `schema:"rate"`
	Volatility float64 `schema:"vol,required"`
	Type       string  `schema:"type"`
}

func (q PriceQuery) Inputs() pricing.Inputs {
	return pricing.Inputs{
		Spot:       q.Spot,
		Strike:     q.Strike,
		Expiry:     q.Expiry,
		Rate:       q.Rate,
		Volatility: q.Volatility,
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Server routes pricing requests to a shared, immutable Pricer.
type Server struct {
	pricer  *pricing.Pricer
	decoder *schema.Decoder
	router  *mux.Router
}

func New(pricer *pricing.Pricer) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	s := &Server{
		pricer:  pricer,
		decoder: decoder,
		router:  mux.NewRouter(),
	}
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/price", s.handlePrice).Methods(http.MethodGet)
	return s
}

// Handler wraps the router so that every response, including 404 and 405,
// carries a request ID.
func (s *Server) Handler() http.Handler {
	return requestID(s.router)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("starting REST server on %s (strict=%t)", addr, s.pricer.Strict())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Infof("shutting down REST server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	log := logger.WithFields(logger.Fields{"request_id": RequestID(r.Context())})

	var q PriceQuery
	if err := s.decoder.Decode(&q, r.URL.Query()); err != nil {
		log.Debugf("bad query %q: %v", r.URL.RawQuery, err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	types, err := report.ParseTypes(q.Type)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	quote, err := s.pricer.Quote(q.Inputs())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pricing.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, r, status, err)
		return
	}

	doc, err := report.NewDocument(quote, types)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	log.WithFields(logger.Fields{
		"spot":   q.Spot,
		"strike": q.Strike,
		"expiry": q.Expiry,
		"rate":   q.Rate,
		"vol":    q.Volatility,
	}).Infof("priced %d option type(s)", len(types))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(doc)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := RequestID(r.Context())
	logger.WithFields(logger.Fields{"request_id": id, "status": status}).Errorf("request failed: %v", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), RequestID: id})
}

// requestID tags every request with an id, reusing the caller's when given.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
