package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/webstatus/internal/batch"
	"github.com/hamed0406/webstatus/internal/config"
	"github.com/hamed0406/webstatus/internal/httpapi"
	"github.com/hamed0406/webstatus/internal/logging"
	"github.com/hamed0406/webstatus/internal/probe"
)

func main() {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	checker := probe.NewHTTPChecker(cfg.CheckTimeout)
	runner := batch.NewRunner(logger, checker, cfg.MaxBatchSize, cfg.MaxConcurrent)
	api := httpapi.NewServer(logger, checker, runner)

	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     api.Router(cfg.AllowedOrigins),
		ReadTimeout: 30 * time.Second,
		// a full batch can legitimately take minutes: 100 domains over
		// 10 workers with a 10s timeout each
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("api_listen", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("api_stopped", zap.Error(err))
		return
	}
	logger.Info("api_stopped")
}
