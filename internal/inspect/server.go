package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/sift-dev/sift/pkg/query"
	"github.com/sift-dev/sift/pkg/sdom"
	"github.com/sift-dev/sift/pkg/snapshot"
	"github.com/sift-dev/sift/pkg/snapstore"
)

// Options configures the inspector server.
type Options struct {
	// Host is the interface to bind (default: "localhost").
	Host string

	// Port is the port to bind (default: 4680).
	Port int

	// Dir is the snapshot directory to serve and watch.
	Dir string

	// Logger receives server logs (default: slog.Default()).
	Logger *slog.Logger

	// Metrics receives server metrics. Nil disables recording but
	// keeps the /metrics endpoint.
	Metrics *Metrics

	// WatchIgnore are extra file patterns the watcher skips.
	WatchIgnore []string

	// WatchDebounce is the watcher polling interval.
	WatchDebounce time.Duration
}

// Server is the snapshot inspector server.
type Server struct {
	opts    Options
	log     *slog.Logger
	store   *snapstore.DirStore
	reload  *ReloadServer
	watcher *Watcher
	metrics *Metrics
	tracer  trace.Tracer
	httpSrv *http.Server
}

// NewServer creates an inspector server for the given snapshot
// directory, creating the directory if needed.
func NewServer(opts Options) (*Server, error) {
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	if opts.Port == 0 {
		opts.Port = 4680
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	store, err := snapstore.NewDirStore(opts.Dir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:    opts,
		log:     opts.Logger.With("component", "inspect"),
		store:   store,
		reload:  NewReloadServer(),
		metrics: opts.Metrics,
		tracer:  otel.Tracer(defaultTracerName),
	}

	s.reload.OnClientCount(s.metrics.SetReloadClients)

	s.watcher = NewWatcher(WatcherConfig{
		Dir:      store.Dir(),
		Ignore:   append(append([]string{}, DefaultIgnore...), opts.WatchIgnore...),
		Debounce: opts.WatchDebounce,
	})
	s.watcher.OnChange(s.handleChange)

	return s, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/snapshots", s.handleList)
	r.Get("/api/snapshots/{name}", s.handleGet)
	r.Post("/api/query", s.handleQuery)
	r.Get("/ws", s.reload.HandleWebSocket)

	return r
}

// Start runs the watcher and the HTTP server until the context is
// cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	go s.watcher.Start(ctx)

	addr := net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	s.log.Info("inspector listening", "addr", addr, "dir", s.store.Dir())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		return nil
	case err := <-errCh:
		s.Shutdown()
		return err
	}
}

// Shutdown stops the watcher, closes WebSocket clients, and shuts the
// HTTP server down.
func (s *Server) Shutdown() {
	s.watcher.Stop()
	s.reload.Close()

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpSrv.Shutdown(ctx)
	}
}

// handleChange reacts to a snapshot file change.
func (s *Server) handleChange(change Change) {
	s.metrics.RecordWatchEvent()

	if change.Removed {
		s.log.Info("snapshot removed", "name", change.Name)
		s.reload.NotifyRemoved(change.Name)
		return
	}
	s.log.Info("snapshot changed", "name", change.Name)
	s.reload.NotifyChanged(change.Name)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"clients": s.reload.ClientCount(),
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.log.Error("list snapshots", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("could not list snapshots"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": names})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	data, err := s.store.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, snapstore.ErrNotFound) || errors.Is(err, snapstore.ErrInvalidName) {
			writeJSON(w, http.StatusNotFound, errorBody("snapshot not found"))
			return
		}
		s.log.Error("read snapshot", "name", name, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("could not read snapshot"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// queryRequest is the body of POST /api/query.
type queryRequest struct {
	Snapshot string `json:"snapshot"`
	Selector string `json:"selector"`
}

// queryMatch is one matched node in a query response.
type queryMatch struct {
	Type    string `json:"type"`
	Outline string `json:"outline"`
}

// queryResponse is the body of a successful query.
type queryResponse struct {
	Snapshot string       `json:"snapshot"`
	Selector string       `json:"selector"`
	Count    int          `json:"count"`
	Matches  []queryMatch `json:"matches"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	if req.Snapshot == "" || req.Selector == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("snapshot and selector are required"))
		return
	}

	ctx, span := startQuerySpan(r.Context(), s.tracer, req.Snapshot, req.Selector)
	start := time.Now()

	matches, err := s.evaluate(ctx, req.Snapshot, req.Selector)

	endQuerySpan(span, len(matches), err)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		if errors.Is(err, snapstore.ErrNotFound) || errors.Is(err, snapstore.ErrInvalidName) {
			s.metrics.RecordQuery("not_found", elapsed, 0)
			writeJSON(w, http.StatusNotFound, errorBody("snapshot not found"))
			return
		}
		s.metrics.RecordQuery("error", elapsed, 0)
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	s.metrics.RecordQuery("ok", elapsed, len(matches))

	resp := queryResponse{
		Snapshot: req.Snapshot,
		Selector: req.Selector,
		Count:    len(matches),
		Matches:  make([]queryMatch, 0, len(matches)),
	}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, queryMatch{
			Type:    sdom.TypeName(m),
			Outline: sdom.Outline(m),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// evaluate loads a snapshot and runs a selector query against it.
func (s *Server) evaluate(ctx context.Context, name, selector string) ([]*sdom.Node, error) {
	data, err := s.store.Get(ctx, name)
	if err != nil {
		s.metrics.RecordSnapshotRead("miss")
		return nil, err
	}
	s.metrics.RecordSnapshotRead("hit")

	root, err := snapshot.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	return query.FindAll(root, selector)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorBody wraps an error message for a JSON response.
func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
