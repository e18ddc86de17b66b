package config

import (
	"net"
	"strconv"
	"time"

	"github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

// Default ports and timeouts applied when the optional fields are zero.
const (
	DefaultFTPPort  = 21
	DefaultSFTPPort = 22

	DefaultConnectTimeout = 10 * time.Second

	// AnonymousUser is the FTP login used when no credentials are given.
	AnonymousUser = "anonymous"
)

// S3Config represents an object-storage endpoint configuration.
type S3Config struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`
	ForcePathStyle  bool   `yaml:"force_path_style"`

	// Bucket is only consulted by the optional reachability probe; client
	// construction itself never touches the network.
	Bucket string `yaml:"bucket"`
}

// Kind returns the backend kind this config describes.
func (c *S3Config) Kind() types.BackendKind { return types.BackendS3 }

// Validate checks required fields. It performs no I/O.
func (c *S3Config) Validate() error {
	if c.Region == "" {
		return errors.New(errors.KindConfigInvalid, "region is required").
			WithBackend(types.BackendS3)
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return errors.New(errors.KindConfigInvalid, "access key ID and secret access key must be set together").
			WithBackend(types.BackendS3)
	}
	return nil
}

// Clone returns an independent copy.
func (c *S3Config) Clone() types.Config {
	cp := *c
	return &cp
}

// HasStaticCredentials reports whether an explicit credential pair was given.
func (c *S3Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// FTPConfig represents an FTP endpoint configuration.
type FTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// ExplicitTLS upgrades the control connection via AUTH TLS.
	ExplicitTLS   bool   `yaml:"explicit_tls"`
	TLSSkipVerify bool   `yaml:"tls_skip_verify"`
	TLSServerName string `yaml:"tls_server_name"`

	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// Kind returns the backend kind this config describes.
func (c *FTPConfig) Kind() types.BackendKind { return types.BackendFTP }

// Validate checks required fields. It performs no I/O.
func (c *FTPConfig) Validate() error {
	if c.Host == "" {
		return errors.New(errors.KindConfigInvalid, "host is required").
			WithBackend(types.BackendFTP)
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.New(errors.KindConfigInvalid, "port out of range").
			WithBackend(types.BackendFTP)
	}
	return nil
}

// Clone returns an independent copy.
func (c *FTPConfig) Clone() types.Config {
	cp := *c
	return &cp
}

// Addr returns the dial address with the default port applied.
func (c *FTPConfig) Addr() string {
	port := c.Port
	if port == 0 {
		port = DefaultFTPPort
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// Credentials returns the login pair, defaulting to anonymous access.
func (c *FTPConfig) Credentials() (user, password string) {
	user, password = c.User, c.Password
	if user == "" {
		user = AnonymousUser
		if password == "" {
			password = AnonymousUser
		}
	}
	return user, password
}

// Timeout returns the connect timeout with the default applied.
func (c *FTPConfig) Timeout() time.Duration {
	if c.ConnectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return c.ConnectTimeout
}

// SFTPConfig represents an SFTP endpoint configuration.
type SFTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	PrivateKeyPath string `yaml:"private_key_path"`
	Passphrase     string `yaml:"passphrase"`

	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// Kind returns the backend kind this config describes.
func (c *SFTPConfig) Kind() types.BackendKind { return types.BackendSFTP }

// Validate checks required fields. It performs no I/O.
func (c *SFTPConfig) Validate() error {
	if c.Host == "" {
		return errors.New(errors.KindConfigInvalid, "host is required").
			WithBackend(types.BackendSFTP)
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.New(errors.KindConfigInvalid, "port out of range").
			WithBackend(types.BackendSFTP)
	}
	if c.Passphrase != "" && c.PrivateKeyPath == "" {
		return errors.New(errors.KindConfigInvalid, "passphrase given without a private key").
			WithBackend(types.BackendSFTP)
	}
	return nil
}

// Clone returns an independent copy.
func (c *SFTPConfig) Clone() types.Config {
	cp := *c
	return &cp
}

// Addr returns the dial address with the default port applied.
func (c *SFTPConfig) Addr() string {
	port := c.Port
	if port == 0 {
		port = DefaultSFTPPort
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// Timeout returns the connect timeout with the default applied.
func (c *SFTPConfig) Timeout() time.Duration {
	if c.ConnectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return c.ConnectTimeout
}
