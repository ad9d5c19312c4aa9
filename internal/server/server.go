package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/colorlens/colorlens/internal/palette"
)

// Config holds the process configuration, read from the environment at
// startup.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MaxUploadBytes bounds the request body size. Oversized uploads are
	// rejected with 413.
	MaxUploadBytes int64

	// MaxPixels, when positive, downsamples uploads to at most this many
	// pixels before clustering. Zero disables downsampling so cluster
	// counts stay exact.
	MaxPixels int

	// SmoothRadius, when positive, applies a Gaussian blur of this radius
	// before clustering to suppress compression noise.
	SmoothRadius float64

	// LogLevel is an hclog level name ("trace", "debug", "info", ...).
	LogLevel string
}

// DefaultConfig returns the configuration used when no environment
// overrides are set.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		MaxUploadBytes: 10 << 20, // 10 MiB
		MaxPixels:      0,
		SmoothRadius:   0,
		LogLevel:       "info",
	}
}

// ConfigFromEnv builds a Config from COLORLENS_* environment variables,
// falling back to defaults for anything unset or unparseable.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("COLORLENS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("COLORLENS_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("COLORLENS_MAX_PIXELS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxPixels = n
		}
	}
	if v := os.Getenv("COLORLENS_SMOOTH_RADIUS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.SmoothRadius = f
		}
	}
	if v := os.Getenv("COLORLENS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Server handles HTTP requests for the color recognition service.
type Server struct {
	cfg    Config
	log    hclog.Logger
	table  *palette.Table
	router chi.Router
	http   *http.Server
}

// New creates a Server, building the named color table once and wiring the
// routes. The table is shared read-only across all requests.
func New(cfg Config) (*Server, error) {
	table, err := palette.NewCSS3Table()
	if err != nil {
		return nil, fmt.Errorf("building named color table: %w", err)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "colorlens",
		Output: os.Stderr,
		Level:  hclog.LevelFromString(cfg.LogLevel),
	})

	s := &Server{
		cfg:   cfg,
		log:   logger,
		table: table,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/health", s.handleHealth)
	r.Post("/api/color-recognition", s.handleRecognize)
	s.router = r

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts serving and blocks until the listener closes. It returns nil
// after a clean Shutdown.
func (s *Server) Run() error {
	s.log.Info("listening", "addr", s.cfg.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
