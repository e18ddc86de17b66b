/*
Package conn provides the connection manager: one generic lifecycle state
machine parameterized over a backend adapter.

# Lifecycle

Each Manager owns exactly one adapter, one immutable config snapshot, and at
most one native handle. States and transitions:

	              Connect ok
	Uninitialized ──────────────► Connected
	      │                           │
	      │ Connect failed            │ Disconnect
	      ▼                           ▼
	   Failed ◄──── retry ────► Disconnected (terminal)

Object-storage managers are Connected the moment they are constructed: their
adapter builds the native client locally and no network round-trip is
performed. FTP and SFTP managers stay Uninitialized until Connect performs
the handshake and authentication exchange against the remote server.

A Failed manager may retry Connect. A Disconnected manager is finished: any
further Connect attempt fails with AlreadyDisconnected, and a new Manager
must be constructed. Disconnect itself is idempotent and never fails when no
handle is held.

# Concurrency

A mutex inside the Manager serializes Connect and Disconnect. Two concurrent
Connect calls perform exactly one handshake: the second caller blocks, then
observes Connected and receives the already-established handle. Handle,
IsConnected, and State are read-only and never perform I/O.

There is no timeout or cancellation in the base contract. Connect forwards
its context to drivers that accept one; callers needing a bound must impose
an external deadline.

# Usage

	cfg := &config.SFTPConfig{Host: "sftp.example.com", Username: "ingest",
		PrivateKeyPath: "/etc/keys/ingest.pem"}
	m, err := conn.NewSFTP(cfg)
	if err != nil {
		return err
	}
	if _, err := m.Connect(ctx); err != nil {
		return err
	}
	defer m.Disconnect(ctx)

	handle, err := m.Handle()
	if err != nil {
		return err
	}
	client := handle.(*sftp.Client)

Managers are independent: nothing is shared between instances, and there are
no singletons. One manager per endpoint, constructed where it is used.
*/
package conn
