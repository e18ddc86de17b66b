// Package types defines the shared contracts of the storconn library: the
// backend kinds, the connection state machine, and the interfaces implemented
// by configuration values and backend adapters.
package types
