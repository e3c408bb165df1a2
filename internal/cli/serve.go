package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/biglinehq/bigline/pkg/cache"
	biglineerrors "github.com/biglinehq/bigline/pkg/errors"
	"github.com/biglinehq/bigline/pkg/layout"
	"github.com/biglinehq/bigline/pkg/lineage"
	"github.com/biglinehq/bigline/pkg/pipeline"
)

// serveCommand creates the serve command exposing layout and path search
// over HTTP for a rendering frontend.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		noCache    bool
		redisURL   string
	)

	cmd := &cobra.Command{
		Use:   "serve [roster.json]",
		Short: "Serve layout geometry and path search over HTTP",
		Long: `Serve layout geometry and path search over HTTP.

Endpoints:

  GET /healthz              liveness probe
  GET /api/layout           full chart geometry for the loaded roster
  GET /api/path?from=&to=   shortest relationship chain between two members

Endpoint names are resolved case-insensitively against member names and
nicknames. With --redis, computed layouts are shared across instances.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, configPath, noCache, redisURL)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML layout profile overriding the default spacing")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared layout cache (e.g. redis://localhost:6379/0)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input, addr, configPath string, noCache bool, redisURL string) error {
	cfg, err := loadLayoutConfig(configPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	roster, err := lineage.UnmarshalRoster(data)
	if err != nil {
		return biglineerrors.Wrap(biglineerrors.ErrCodeInvalidRoster, err, "parse roster %s", input)
	}

	runner, err := c.newServeRunner(ctx, noCache, redisURL)
	if err != nil {
		return err
	}
	defer runner.Close()

	s := &server{
		runner:     runner,
		rosterData: data,
		graph:      roster.Graph(),
		cfg:        cfg,
		cli:        c,
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving lineage API", "addr", addr, "members", s.graph.MemberCount())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeRunner builds the pipeline runner for the server, preferring a
// shared Redis cache when configured.
func (c *CLI) newServeRunner(ctx context.Context, noCache bool, redisURL string) (*pipeline.Runner, error) {
	if redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, err
		}
		return pipeline.NewRunner(rc, c.Logger), nil
	}
	return c.newRunner(noCache), nil
}

// server holds the immutable request state: the roster is loaded once at
// startup, so every layout request hits the same cache key.
type server struct {
	runner     *pipeline.Runner
	rosterData []byte
	graph      *lineage.Graph
	cfg        layout.Config
	cli        *CLI
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/path", s.handlePath)
	})
	return r
}

// requestID attaches a request ID header to every response.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// logRequests logs each request with method, path, and duration.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.cli.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).Round(time.Millisecond))
	})
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	res, _, err := s.runner.LayoutRoster(r.Context(), s.rosterData, s.cfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handlePath(w http.ResponseWriter, r *http.Request) {
	from, ok := s.resolveParam(w, r.URL.Query().Get("from"), "from")
	if !ok {
		return
	}
	to, ok := s.resolveParam(w, r.URL.Query().Get("to"), "to")
	if !ok {
		return
	}

	res, err := s.runner.FindPath(r.Context(), s.graph, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// resolveParam maps a query parameter to a canonical member name, writing
// a 400 or 404 response when resolution fails.
func (s *server) resolveParam(w http.ResponseWriter, value, param string) (string, bool) {
	if value == "" {
		writeError(w, http.StatusBadRequest,
			biglineerrors.New(biglineerrors.ErrCodeInvalidPath, "missing query parameter %q", param))
		return "", false
	}
	name, ok := s.graph.Resolve(value)
	if !ok {
		writeError(w, http.StatusNotFound,
			biglineerrors.New(biglineerrors.ErrCodeMemberNotFound, "no member matching %q", value))
		return "", false
	}
	return name, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := biglineerrors.GetCode(err)
	if code == "" {
		code = biglineerrors.ErrCodeInternal
	}
	writeJSON(w, status, map[string]string{
		"code":  string(code),
		"error": biglineerrors.UserMessage(err),
	})
}

