// Package api serves the dashboard figures of the current snapshot as JSON.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	"github.com/etnz/ledgerdash/logger"
	"github.com/etnz/ledgerdash/store"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// DefaultPingInterval is the keep-alive period of event streams.
const DefaultPingInterval = 30 * time.Second

// Server answers dashboard requests from the snapshot held by a store.
type Server struct {
	store        *store.Store
	log          zerolog.Logger
	trendMonths  int
	now          func() date.Date
	pingInterval time.Duration

	mu    sync.Mutex
	cache map[cacheKey]*ledgerdash.Dashboard
}

// cacheKey identifies a dashboard. Dashboards of older snapshots are evicted
// on the first request for a newer one.
type cacheKey struct {
	snapshot string
	month    date.Date
	now      date.Date
}

// Option configures a Server.
type Option func(*Server)

// WithClock makes the server use now instead of date.Today.
func WithClock(now func() date.Date) Option { return func(s *Server) { s.now = now } }

// WithPingInterval sets the keep-alive period of event streams.
func WithPingInterval(d time.Duration) Option { return func(s *Server) { s.pingInterval = d } }

// New returns a server over st. trendMonths is the default trend length.
func New(st *store.Store, trendMonths int, log zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		store:        st,
		log:          log,
		trendMonths:  trendMonths,
		now:          date.Today,
		pingInterval: DefaultPingInterval,
		cache:        make(map[cacheKey]*ledgerdash.Dashboard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet)

	api.HandleFunc("/kpi", s.withSnapshot(s.handleKPI)).Methods(http.MethodGet)
	api.HandleFunc("/trend", s.withSnapshot(s.handleTrend)).Methods(http.MethodGet)
	api.HandleFunc("/daily", s.withSnapshot(s.handleDaily)).Methods(http.MethodGet)
	api.HandleFunc("/flow", s.withSnapshot(s.handleFlow)).Methods(http.MethodGet)
	api.HandleFunc("/treemap", s.withSnapshot(s.handleTreemap)).Methods(http.MethodGet)
	api.HandleFunc("/balances", s.withSnapshot(s.handleBalances)).Methods(http.MethodGet)
	api.HandleFunc("/transfers", s.withSnapshot(s.handleTransfers)).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", s.withSnapshot(s.handleDashboard)).Methods(http.MethodGet)
	api.HandleFunc("/errors", s.withSnapshot(s.handleErrors)).Methods(http.MethodGet)
	api.HandleFunc("/unreconciled", s.withSnapshot(s.handleUnreconciled)).Methods(http.MethodGet)
	return r
}

// logRequests logs every request and stores the logger in its context.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logger.WithContext(r.Context(), s.log)
		next.ServeHTTP(w, r.WithContext(ctx))
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

type snapshotHandler func(w http.ResponseWriter, r *http.Request, snap *ledgerdash.Snapshot)

// withSnapshot answers 503 until a snapshot has been published.
func (s *Server) withSnapshot(h snapshotHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.store.Current()
		if snap == nil {
			writeError(w, r, http.StatusServiceUnavailable, "no ledger loaded yet")
			return
		}
		h(w, r, snap)
	}
}

// dashboard returns the cached dashboard of month, computing it on a miss.
func (s *Server) dashboard(snap *ledgerdash.Snapshot, month date.Date) *ledgerdash.Dashboard {
	key := cacheKey{snapshot: snap.ID(), month: month.StartOf(date.Monthly), now: s.now()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.cache[key]; ok {
		return d
	}
	for k := range s.cache {
		if k.snapshot != key.snapshot || k.now != key.now {
			delete(s.cache, k)
		}
	}
	d := snap.Dashboard(month, key.now, s.trendMonths)
	s.cache[key] = d
	return d
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := logger.FromContext(r.Context())
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("could not write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
