package conn

import (
	"context"
	"log/slog"
	"sync"
	"time"

	errs "github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/metrics"
	"github.com/storconn/storconn/pkg/types"
)

// Manager owns one adapter, one config snapshot, and the lifecycle state of
// a single connection. It is safe for concurrent use; see the package
// documentation for the state machine.
type Manager struct {
	mu        sync.RWMutex
	adapter   types.Adapter
	cfg       types.Config
	state     types.ConnectionState
	handle    interface{}
	logger    *slog.Logger
	collector *metrics.Collector
}

// pinger is the optional reachability probe adapters may implement on top of
// the base capability set.
type pinger interface {
	Ping(ctx context.Context, handle interface{}) error
}

// New creates a manager around a caller-supplied adapter. The config is
// validated and snapshotted; eager backends are connected before New
// returns.
func New(adapter types.Adapter, cfg types.Config, opts ...Option) (*Manager, error) {
	if adapter == nil {
		return nil, errs.New(errs.KindStateViolation, "adapter cannot be nil")
	}
	if cfg == nil {
		return nil, errs.New(errs.KindConfigInvalid, "config cannot be nil")
	}
	return newManager(adapter, cfg.Clone(), applyOptions(opts))
}

func newManager(adapter types.Adapter, cfg types.Config, s settings) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		adapter:   adapter,
		cfg:       cfg,
		state:     types.StateUninitialized,
		logger:    s.logger,
		collector: s.collector,
	}

	if adapter.Eager() {
		start := time.Now()
		handle, err := adapter.Connect(context.Background())
		if err != nil {
			return nil, err
		}
		m.handle = handle
		m.state = types.StateConnected
		m.collector.RecordConnect(adapter.Kind(), time.Since(start))
		m.logger.Debug("connection established at construction",
			"backend", adapter.Kind())
	}

	return m, nil
}

// Connect establishes the connection. It is a no-op returning the existing
// handle when already connected, fails with AlreadyDisconnected on a
// torn-down manager, and may be retried after a failure. The mutex is held
// across the handshake so concurrent callers perform exactly one.
func (m *Manager) Connect(ctx context.Context) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case types.StateConnected:
		return m.handle, nil
	case types.StateDisconnected:
		return nil, errs.New(errs.KindAlreadyDisconnected, "manager has been torn down").
			WithBackend(m.adapter.Kind())
	}

	start := time.Now()
	handle, err := m.adapter.Connect(ctx)
	if err != nil {
		m.state = types.StateFailed
		m.collector.RecordHandshakeFailure(m.adapter.Kind())
		return nil, err
	}

	m.handle = handle
	m.state = types.StateConnected
	m.collector.RecordConnect(m.adapter.Kind(), time.Since(start))
	m.logger.Info("connection established",
		"backend", m.adapter.Kind(),
		"took", time.Since(start))

	return handle, nil
}

// Disconnect releases the connection. It is idempotent: a second call, or a
// call on a manager that never connected, is a no-op. After Disconnect the
// manager is terminal and cannot be reused.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == types.StateDisconnected {
		return nil
	}

	prev := m.state
	handle := m.handle
	m.handle = nil
	m.state = types.StateDisconnected

	if prev != types.StateConnected || handle == nil {
		return nil
	}

	err := m.adapter.Disconnect(ctx, handle)
	m.collector.RecordDisconnect(m.adapter.Kind())
	m.logger.Info("connection closed", "backend", m.adapter.Kind())
	return err
}

// Handle returns the native client handle. It fails with NotConnected
// unless the connection is established.
func (m *Manager) Handle() (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != types.StateConnected {
		return nil, errs.New(errs.KindNotConnected, "no established connection").
			WithBackend(m.adapter.Kind())
	}
	return m.handle, nil
}

// IsConnected reports whether the connection is established. Pure read.
func (m *Manager) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == types.StateConnected
}

// State returns the current lifecycle state. Pure read.
func (m *Manager) State() types.ConnectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Alive reports the adapter's local view of the held handle. No network
// probe is performed; use Ping for that.
func (m *Manager) Alive() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == types.StateConnected && m.adapter.Alive(m.handle)
}

// Kind returns the backend kind of the managed connection.
func (m *Manager) Kind() types.BackendKind {
	return m.adapter.Kind()
}

// Config returns an independent copy of the config snapshot.
func (m *Manager) Config() types.Config {
	return m.cfg.Clone()
}

// Ping actively verifies the endpoint is reachable over the established
// connection, for adapters that support a probe. It fails with NotConnected
// when no connection is established.
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.RLock()
	state, handle := m.state, m.handle
	m.mu.RUnlock()

	if state != types.StateConnected {
		return errs.New(errs.KindNotConnected, "no established connection").
			WithBackend(m.adapter.Kind())
	}
	if p, ok := m.adapter.(pinger); ok {
		return p.Ping(ctx, handle)
	}
	return nil
}
