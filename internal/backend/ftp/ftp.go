package ftp

import (
	"context"
	"crypto/tls"
	"log/slog"

	ftplib "github.com/jlaffaye/ftp"

	"github.com/storconn/storconn/pkg/config"
	errs "github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

// Adapter performs handshake and teardown against one FTP endpoint.
type Adapter struct {
	cfg    *config.FTPConfig
	logger *slog.Logger
}

// New creates an FTP adapter for the given endpoint config.
func New(cfg *config.FTPConfig, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{cfg: cfg, logger: logger}
}

// Kind returns the backend kind.
func (a *Adapter) Kind() types.BackendKind { return types.BackendFTP }

// Eager reports that Connect performs a real network handshake.
func (a *Adapter) Eager() bool { return false }

// Connect dials the server and authenticates. A refused connection, timeout,
// or rejected login all surface as HandshakeFailed.
func (a *Adapter) Connect(ctx context.Context) (interface{}, error) {
	opts := []ftplib.DialOption{
		ftplib.DialWithContext(ctx),
		ftplib.DialWithTimeout(a.cfg.Timeout()),
	}
	if a.cfg.ExplicitTLS {
		serverName := a.cfg.TLSServerName
		if serverName == "" {
			serverName = a.cfg.Host
		}
		opts = append(opts, ftplib.DialWithExplicitTLS(&tls.Config{
			ServerName:         serverName,
			InsecureSkipVerify: a.cfg.TLSSkipVerify,
			MinVersion:         tls.VersionTLS12,
		}))
	}

	conn, err := ftplib.Dial(a.cfg.Addr(), opts...)
	if err != nil {
		return nil, errs.New(errs.KindHandshakeFailed, "dial failed").
			WithBackend(types.BackendFTP).
			WithCause(err)
	}

	user, password := a.cfg.Credentials()
	if err := conn.Login(user, password); err != nil {
		_ = conn.Quit()
		return nil, errs.New(errs.KindHandshakeFailed, "login rejected").
			WithBackend(types.BackendFTP).
			WithCause(err)
	}

	a.logger.Debug("ftp session established", "addr", a.cfg.Addr(), "user", user)
	return conn, nil
}

// Disconnect sends QUIT and closes the control connection. A nil handle is a
// no-op.
func (a *Adapter) Disconnect(ctx context.Context, handle interface{}) error {
	if handle == nil {
		return nil
	}
	conn, ok := handle.(*ftplib.ServerConn)
	if !ok {
		return errs.New(errs.KindStateViolation, "handle is not an ftp connection").
			WithBackend(types.BackendFTP)
	}
	if err := conn.Quit(); err != nil {
		return errs.New(errs.KindStateViolation, "teardown failed").
			WithBackend(types.BackendFTP).
			WithCause(err)
	}
	return nil
}

// Alive reports whether the handle is a usable connection. Local check only;
// the server is not re-probed.
func (a *Adapter) Alive(handle interface{}) bool {
	conn, ok := handle.(*ftplib.ServerConn)
	return ok && conn != nil
}

// Ping sends NOOP over the control connection to verify the session is
// still accepted by the server.
func (a *Adapter) Ping(ctx context.Context, handle interface{}) error {
	conn, ok := handle.(*ftplib.ServerConn)
	if !ok || conn == nil {
		return errs.New(errs.KindNotConnected, "no session to ping").
			WithBackend(types.BackendFTP)
	}
	if err := conn.NoOp(); err != nil {
		return errs.New(errs.KindHandshakeFailed, "endpoint unreachable").
			WithBackend(types.BackendFTP).
			WithCause(err)
	}
	return nil
}
