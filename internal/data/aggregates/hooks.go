package aggregates

import (
	"strings"
	"time"

	"github.com/crumbs/restaurant-service/internal/observability"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

// Hooks captures aggregate-level observability events.
type Hooks interface {
	ObserveOperation(name, status string, dur time.Duration)
	IncConflict(name string)
	IncRetry(name string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}
func (noopHooks) IncRetry(string)                                {}

type metricsHooks struct {
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewMetricsHooks records aggregate outcomes in metrics and logs every failed write at debug.
func NewMetricsHooks(metrics *observability.Metrics, log *logger.Logger) Hooks {
	if metrics == nil && log == nil {
		return noopHooks{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &metricsHooks{metrics: metrics, log: log.With("component", "AggregateHooks")}
}

func (h *metricsHooks) ObserveOperation(name, status string, dur time.Duration) {
	name = strings.TrimSpace(name)
	status = strings.TrimSpace(status)
	h.metrics.ObserveAggregateOperation(name, status, dur)
	if status != "success" {
		h.log.Debug("aggregate write failed", "op", name, "status", status, "duration", dur)
	}
}

func (h *metricsHooks) IncConflict(name string) {
	h.metrics.IncAggregateConflict(strings.TrimSpace(name))
}

func (h *metricsHooks) IncRetry(name string) {
	h.metrics.IncAggregateRetry(strings.TrimSpace(name))
}
