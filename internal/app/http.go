package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/crumbs/restaurant-service/internal/observability"
)

// metricsServer serves /metrics on its own listener so scrapes bypass the API middleware.
type metricsServer struct {
	srv *http.Server
}

func newMetricsServer(addr string, metrics *observability.Metrics) *metricsServer {
	if addr == "" || metrics == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return &metricsServer{srv: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func (m *metricsServer) Run() error {
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (m *metricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
