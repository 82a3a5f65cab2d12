package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danmuck/rowctl/internal/config"
	"github.com/danmuck/rowctl/internal/ingest"
	"github.com/danmuck/rowctl/internal/observability"
	"github.com/danmuck/rowctl/internal/protocol"
	"github.com/danmuck/rowctl/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the decoder over HTTP. The pipeline and store are optional;
// their routes answer 503 when absent.
type Server struct {
	Name       string
	Addr       string
	MaxPayload int
	Appeared   time.Time

	authToken string

	registry *protocol.Registry
	pipeline *ingest.Pipeline
	store    *store.Store
	router   *gin.Engine
}

type Option func(*Server)

func WithRegistry(r *protocol.Registry) Option {
	return func(s *Server) { s.registry = r }
}

func WithPipeline(p *ingest.Pipeline) Option {
	return func(s *Server) { s.pipeline = p }
}

func WithStore(st *store.Store) Option {
	return func(s *Server) { s.store = st }
}

func New(cfg config.ServerConfig, opts ...Option) (*Server, error) {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	s := &Server{
		Name:       cfg.Name,
		Addr:       cfg.Addr,
		MaxPayload: cfg.MaxPayload,
		Appeared:   time.Now(),
		authToken:  cfg.AuthToken,
		registry:   protocol.Default(),
		router:     r,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("name", s.Name).Str("addr", s.Addr).Msg("server.Run listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Str("name", s.Name).Msg("server.Run stopped")
	return nil
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
