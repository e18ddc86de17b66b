// Package sftp implements the SFTP adapter. Connect establishes the SSH
// transport, authenticates, and opens an SFTP subsystem session on top of
// it; the handle handed back is the native *sftp.Client while the SSH
// transport stays owned by the adapter so teardown can close both in order.
package sftp
