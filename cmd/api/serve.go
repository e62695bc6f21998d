package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pet-health/internal/adapters/notify"
	"pet-health/internal/adapters/notify/redis"
	"pet-health/internal/adapters/notify/webhook"
	"pet-health/internal/domain/sensors"
	"pet-health/internal/platform/config"
	"pet-health/internal/platform/logger"
	"pet-health/internal/router"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP, el WebSocket y los sensores",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, *cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "puerto HTTP")
	cmd.Flags().StringVar(&cfg.APIToken, "api-token", cfg.APIToken, "token Bearer requerido (vacío = sin auth)")
	cmd.Flags().StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "reenvía cambios a este Redis")
	cmd.Flags().StringVar(&cfg.WebhookURL, "webhook-url", cfg.WebhookURL, "reenvía cambios a esta URL")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	log := newLogger(cfg)
	defer logger.Sync(log)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a, err := bootstrap(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", map[string]any{"error": err.Error()})
		return err
	}
	defer a.Close()

	tracker := sensors.NewTracker(a.store, a.pets, sensors.TrackerOptions{
		Logger:   log,
		Observer: a.metrics,
		Location: loc,
	})
	tracker.RefreshAll(ctx)

	sinks, closeSinks, err := changeSinks(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSinks()
	forwarder := notify.NewForwarder(a.store.Bus(), log, sinks...)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Store:     a.store,
			Pets:      a.pets,
			HealthLog: a.health,
			Tracker:   tracker,
			Metrics:   a.metrics,
			Logger:    log,
			APIToken:  cfg.APIToken,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = tracker.Run(runCtx)
	}()
	go func() {
		defer wg.Done()
		_ = forwarder.Run(runCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": cfg.StorageDriver,
			"sinks":   forwarder.Len(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
			cancel()
			wg.Wait()
			return err
		}
	}

	log.Info("shutting down", nil)
	shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
	defer done()
	err = srv.Shutdown(shutdownCtx)

	cancel()
	wg.Wait()
	return err
}

// changeSinks arma los destinos configurados de reenvío de cambios.
func changeSinks(ctx context.Context, cfg config.Config) ([]notify.Sink, func(), error) {
	var (
		sinks   []notify.Sink
		closers []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	if addr := strings.TrimSpace(cfg.RedisAddr); addr != "" {
		p, err := redis.Dial(ctx, addr, cfg.RedisChannel)
		if err != nil {
			return nil, closeAll, err
		}
		sinks = append(sinks, p)
		closers = append(closers, p.Close)
	}
	if url := strings.TrimSpace(cfg.WebhookURL); url != "" {
		w, err := webhook.New(url, cfg.WebhookToken, 0)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		sinks = append(sinks, w)
	}
	return sinks, closeAll, nil
}
