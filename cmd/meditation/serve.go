package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taiwoajasa245/daily-meditation/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP viewer",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewServer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Warn("closing server", zap.Error(err))
		}
	}()

	httpServer := srv.HTTPServer()
	done := make(chan struct{})
	go gracefulShutdown(ctx, httpServer, done)

	logger.Info("server listening", zap.String("addr", httpServer.Addr), zap.String("env", cfg.AppEnv))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	<-done
	logger.Info("graceful shutdown complete")
	return nil
}

func gracefulShutdown(ctx context.Context, apiServer *http.Server, done chan<- struct{}) {
	defer close(done)
	<-ctx.Done()

	logger.Info("shutting down gracefully, press Ctrl+C again to force")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
