package sftp

import (
	"context"
	"log/slog"

	sftplib "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/storconn/storconn/pkg/config"
	errs "github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

// Adapter performs handshake and teardown against one SFTP endpoint. The SSH
// transport underneath the subsystem session is held here between Connect
// and Disconnect; the owning manager serializes access, so no extra locking
// is needed.
type Adapter struct {
	cfg    *config.SFTPConfig
	logger *slog.Logger

	sshConn *ssh.Client
}

// New creates an SFTP adapter for the given endpoint config.
func New(cfg *config.SFTPConfig, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{cfg: cfg, logger: logger}
}

// Kind returns the backend kind.
func (a *Adapter) Kind() types.BackendKind { return types.BackendSFTP }

// Eager reports that Connect performs a real network handshake.
func (a *Adapter) Eager() bool { return false }

// Connect dials the SSH transport, authenticates, and opens the SFTP
// subsystem. Refused connections, timeouts, and rejected authentication all
// surface as HandshakeFailed; credential material that cannot be assembled
// into an auth method is ConfigInvalid.
func (a *Adapter) Connect(ctx context.Context) (interface{}, error) {
	authMethods, err := a.authMethods()
	if err != nil {
		return nil, err
	}

	sshCfg := &ssh.ClientConfig{
		User: a.cfg.Username,
		Auth: authMethods,
		// TODO: add an optional known_hosts path to SFTPConfig and verify
		// host keys when it is set.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         a.cfg.Timeout(),
	}

	conn, err := ssh.Dial("tcp", a.cfg.Addr(), sshCfg)
	if err != nil {
		return nil, errs.New(errs.KindHandshakeFailed, "ssh dial failed").
			WithBackend(types.BackendSFTP).
			WithCause(err)
	}

	client, err := sftplib.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, errs.New(errs.KindHandshakeFailed, "sftp subsystem rejected").
			WithBackend(types.BackendSFTP).
			WithCause(err)
	}

	a.sshConn = conn
	a.logger.Debug("sftp session established", "addr", a.cfg.Addr(), "user", a.cfg.Username)
	return client, nil
}

// Disconnect closes the SFTP session and then the SSH transport underneath
// it. A nil handle is a no-op.
func (a *Adapter) Disconnect(ctx context.Context, handle interface{}) error {
	if handle == nil {
		return nil
	}
	client, ok := handle.(*sftplib.Client)
	if !ok {
		return errs.New(errs.KindStateViolation, "handle is not an sftp client").
			WithBackend(types.BackendSFTP)
	}

	err := client.Close()
	if a.sshConn != nil {
		if closeErr := a.sshConn.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		a.sshConn = nil
	}
	if err != nil {
		return errs.New(errs.KindStateViolation, "teardown failed").
			WithBackend(types.BackendSFTP).
			WithCause(err)
	}
	return nil
}

// Alive reports whether the handle is a usable client. Local check only; the
// server is not re-probed.
func (a *Adapter) Alive(handle interface{}) bool {
	client, ok := handle.(*sftplib.Client)
	return ok && client != nil
}

// Ping requests the remote working directory to verify the session is still
// served.
func (a *Adapter) Ping(ctx context.Context, handle interface{}) error {
	client, ok := handle.(*sftplib.Client)
	if !ok || client == nil {
		return errs.New(errs.KindNotConnected, "no session to ping").
			WithBackend(types.BackendSFTP)
	}
	if _, err := client.Getwd(); err != nil {
		return errs.New(errs.KindHandshakeFailed, "endpoint unreachable").
			WithBackend(types.BackendSFTP).
			WithCause(err)
	}
	return nil
}
