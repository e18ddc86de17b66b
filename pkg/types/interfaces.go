package types

import "context"

// Config describes how to reach one endpoint. Implementations are immutable
// value objects; Clone returns an independent copy so callers can never
// mutate a manager's internal snapshot.
type Config interface {
	Kind() BackendKind
	Validate() error
	Clone() Config
}

// Adapter is the per-backend capability set. An adapter performs the actual
// handshake and teardown against one endpoint kind and hands back the
// driver's native client as an opaque handle.
//
// Eager reports whether Connect is pure local client construction with no
// network round-trip; eager backends are connected the moment the manager is
// built. Alive is a local check of the held handle only and never probes the
// network.
type Adapter interface {
	Kind() BackendKind
	Eager() bool
	Connect(ctx context.Context) (interface{}, error)
	Disconnect(ctx context.Context, handle interface{}) error
	Alive(handle interface{}) bool
}
