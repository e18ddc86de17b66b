package conn

import (
	"github.com/storconn/storconn/internal/backend/ftp"
	"github.com/storconn/storconn/internal/backend/s3"
	"github.com/storconn/storconn/internal/backend/sftp"
	"github.com/storconn/storconn/pkg/config"
	errs "github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

// NewS3 creates a manager for an object-storage endpoint. The native client
// is constructed locally at this point, so the returned manager is already
// connected; no network round-trip has been performed.
func NewS3(cfg *config.S3Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, errs.New(errs.KindConfigInvalid, "config cannot be nil").
			WithBackend(types.BackendS3)
	}
	s := applyOptions(opts)
	snapshot := cfg.Clone().(*config.S3Config)
	return newManager(s3.New(snapshot, s.logger), snapshot, s)
}

// NewFTP creates a manager for an FTP endpoint. The manager stays
// uninitialized until Connect performs the handshake.
func NewFTP(cfg *config.FTPConfig, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, errs.New(errs.KindConfigInvalid, "config cannot be nil").
			WithBackend(types.BackendFTP)
	}
	s := applyOptions(opts)
	snapshot := cfg.Clone().(*config.FTPConfig)
	return newManager(ftp.New(snapshot, s.logger), snapshot, s)
}

// NewSFTP creates a manager for an SFTP endpoint. The manager stays
// uninitialized until Connect performs the handshake.
func NewSFTP(cfg *config.SFTPConfig, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, errs.New(errs.KindConfigInvalid, "config cannot be nil").
			WithBackend(types.BackendSFTP)
	}
	s := applyOptions(opts)
	snapshot := cfg.Clone().(*config.SFTPConfig)
	return newManager(sftp.New(snapshot, s.logger), snapshot, s)
}

// NewFromEndpoint creates a manager from a named endpoint entry in a
// configuration catalog.
func NewFromEndpoint(ep *config.EndpointConfig, opts ...Option) (*Manager, error) {
	if ep == nil {
		return nil, errs.New(errs.KindConfigInvalid, "endpoint cannot be nil")
	}
	backend, err := ep.Backend()
	if err != nil {
		return nil, err
	}
	switch cfg := backend.(type) {
	case *config.S3Config:
		return NewS3(cfg, opts...)
	case *config.FTPConfig:
		return NewFTP(cfg, opts...)
	case *config.SFTPConfig:
		return NewSFTP(cfg, opts...)
	default:
		return nil, errs.New(errs.KindConfigInvalid, "unsupported backend config")
	}
}
