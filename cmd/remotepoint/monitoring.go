package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// monitoringHandler serves /healthz and /metrics.
func monitoringHandler(log *slog.Logger, reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, req *http.Request) {
		writer.WriteHeader(http.StatusOK)
		if _, err := writer.Write([]byte("OK")); err != nil {
			log.ErrorContext(req.Context(), "failed to write reply", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}

// startMonitoringServer serves the monitoring endpoints on addr until ctx is
// cancelled.
func startMonitoringServer(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, addr string) {
	server := &http.Server{
		Addr:         addr,
		Handler:      monitoringHandler(log, reg),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("monitoring server shutdown failed", "error", err)
		}
	}()

	log.InfoContext(ctx, "starting monitoring server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "monitoring server failed", "error", err)
	}
}
