// Package metrics provides an opt-in Prometheus collector for connection
// lifecycle events: connects, handshake failures, disconnects, open
// connections, and handshake duration, labeled by backend kind. A collector
// can optionally serve its registry over HTTP via promhttp.
package metrics
