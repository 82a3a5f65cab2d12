package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danmuck/rowctl/internal/config"
	"github.com/danmuck/rowctl/internal/ingest"
	"github.com/danmuck/rowctl/internal/observability"
	"github.com/danmuck/rowctl/internal/publish"
	"github.com/danmuck/rowctl/internal/server"
	"github.com/danmuck/rowctl/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const statsInterval = time.Minute

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP decode API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultServerConfig()
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				var err error
				if cfg, err = config.LoadServerConfig(path); err != nil {
					return err
				}
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
	cmd.Flags().String("config", "", "server config (toml)")
	cmd.Flags().String("addr", "", "override the listen address")
	return cmd
}

// serveStack is the storage, ingest and HTTP wiring behind `serve`.
type serveStack struct {
	logger    zerolog.Logger
	store     *store.Store
	sessions  *ingest.SessionSink
	publisher *publish.Publisher
	pipeline  *ingest.Pipeline
	server    *server.Server
}

func newServeStack(ctx context.Context, cfg config.ServerConfig, logger zerolog.Logger) (*serveStack, error) {
	st, err := store.Open(cfg.Storage.Root)
	if err != nil {
		return nil, err
	}
	stack := &serveStack{
		logger:   logger,
		store:    st,
		sessions: ingest.NewSessionSink(st, cfg.DefaultUser),
	}

	sinks := []ingest.Sink{&ingest.LogSink{Logger: logger}, stack.sessions}
	if cfg.MQTT.Enabled() {
		pub, err := publish.Connect(ctx, cfg.MQTT)
		if err != nil {
			return nil, multierr.Append(err, st.Close())
		}
		stack.publisher = pub
		sinks = append(sinks, pub)
	}
	stack.pipeline = ingest.NewPipeline(ingest.WithSinks(sinks...), ingest.WithLogger(logger))
	stack.server, err = server.New(cfg, server.WithPipeline(stack.pipeline), server.WithStore(st))
	if err != nil {
		return nil, multierr.Append(err, stack.Close())
	}
	return stack, nil
}

// Close saves open workouts before the store goes away.
func (s *serveStack) Close() error {
	err := s.sessions.Close()
	if s.publisher != nil {
		s.publisher.Close()
	}
	return multierr.Append(err, s.store.Close())
}

func runServe(ctx context.Context, cfg config.ServerConfig) (err error) {
	logger := observability.InitLogger(cfg.Name)
	stack, err := newServeStack(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, stack.Close())
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return stack.server.Run(gctx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(statsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				stats := stack.pipeline.Stats()
				logger.Info().
					Int("received", stats.Received).
					Int("decoded", stats.Decoded).
					Int("failed", stats.Failed).
					Int("sink_errors", stats.SinkErrors).
					Strs("active", stack.sessions.Active()).
					Msg("ingest stats")
			}
		}
	})
	return g.Wait()
}
