package types

// BackendKind identifies one remote storage endpoint kind.
type BackendKind string

const (
	BackendS3   BackendKind = "s3"
	BackendFTP  BackendKind = "ftp"
	BackendSFTP BackendKind = "sftp"
)

// ConnectionState represents the lifecycle state of a single managed
// connection.
type ConnectionState int

const (
	StateUninitialized ConnectionState = iota
	StateConnected
	StateDisconnected
	StateFailed
)

// String returns a human-readable state name.
func (s ConnectionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
