package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storconn/storconn/pkg/types"
)

// Collector implements connection lifecycle metrics collection.
type Collector struct {
	config   *Config
	registry *prometheus.Registry

	connectsTotal     *prometheus.CounterVec
	handshakeFailures *prometheus.CounterVec
	disconnectsTotal  *prometheus.CounterVec
	openConnections   *prometheus.GaugeVec
	handshakeDuration *prometheus.HistogramVec

	server *http.Server
}

// Config represents metrics configuration.
type Config struct {
	Enabled   bool   `yaml:"enabled"`
	Port      int    `yaml:"port"`
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
}

// NewCollector creates a new metrics collector. A disabled collector is
// valid: every Record method is a no-op on it.
func NewCollector(config *Config) (*Collector, error) {
	if config == nil {
		config = &Config{
			Enabled:   true,
			Port:      8080,
			Path:      "/metrics",
			Namespace: "storconn",
		}
	}

	if !config.Enabled {
		return &Collector{config: config}, nil
	}

	c := &Collector{
		config:   config,
		registry: prometheus.NewRegistry(),
	}

	c.connectsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "connects_total",
		Help:      "Total successful connection establishments by backend.",
	}, []string{"backend"})

	c.handshakeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "handshake_failures_total",
		Help:      "Total failed connection attempts by backend.",
	}, []string{"backend"})

	c.disconnectsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "disconnects_total",
		Help:      "Total connection teardowns by backend.",
	}, []string{"backend"})

	c.openConnections = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: config.Namespace,
		Name:      "open_connections",
		Help:      "Currently established connections by backend.",
	}, []string{"backend"})

	c.handshakeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Name:      "handshake_duration_seconds",
		Help:      "Connection establishment latency by backend.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend"})

	for _, col := range []prometheus.Collector{
		c.connectsTotal,
		c.handshakeFailures,
		c.disconnectsTotal,
		c.openConnections,
		c.handshakeDuration,
	} {
		if err := c.registry.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	return c, nil
}

// Start serves the registry over HTTP. It is a no-op for disabled
// collectors.
func (c *Collector) Start(ctx context.Context) error {
	if !c.config.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(c.config.Path, promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	c.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", c.config.Port),
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Metrics server error: %v\n", err)
		}
	}()

	return nil
}

// Stop shuts down the metrics HTTP server.
func (c *Collector) Stop(ctx context.Context) error {
	if c.server != nil {
		return c.server.Shutdown(ctx)
	}
	return nil
}

// Registry exposes the underlying registry so applications can merge it into
// their own metrics surface instead of serving it here.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordConnect records a successful connection establishment.
func (c *Collector) RecordConnect(backend types.BackendKind, duration time.Duration) {
	if c == nil || c.registry == nil {
		return
	}
	c.connectsTotal.WithLabelValues(string(backend)).Inc()
	c.openConnections.WithLabelValues(string(backend)).Inc()
	c.handshakeDuration.WithLabelValues(string(backend)).Observe(duration.Seconds())
}

// RecordHandshakeFailure records a failed connection attempt.
func (c *Collector) RecordHandshakeFailure(backend types.BackendKind) {
	if c == nil || c.registry == nil {
		return
	}
	c.handshakeFailures.WithLabelValues(string(backend)).Inc()
}

// RecordDisconnect records a connection teardown.
func (c *Collector) RecordDisconnect(backend types.BackendKind) {
	if c == nil || c.registry == nil {
		return
	}
	c.disconnectsTotal.WithLabelValues(string(backend)).Inc()
	c.openConnections.WithLabelValues(string(backend)).Dec()
}
