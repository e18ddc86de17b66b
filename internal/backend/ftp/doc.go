// Package ftp implements the FTP adapter. Connect dials the control
// connection, optionally upgrades it with explicit TLS, and performs the
// login exchange; it suspends the caller until the server answers or the
// configured timeout elapses.
package ftp
