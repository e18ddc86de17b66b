package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

// Configuration represents a complete endpoint catalog: global settings plus
// any number of named endpoints.
type Configuration struct {
	Global    GlobalConfig     `yaml:"global"`
	Endpoints []EndpointConfig `yaml:"endpoints"`
}

// GlobalConfig represents settings shared across all endpoints.
type GlobalConfig struct {
	LogLevel       string        `yaml:"log_level"`
	MetricsEnabled bool          `yaml:"metrics_enabled"`
	MetricsPort    int           `yaml:"metrics_port"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// EndpointConfig names one endpoint and carries exactly one backend section
// matching its kind.
type EndpointConfig struct {
	Name string      `yaml:"name"`
	Kind string      `yaml:"kind"`
	S3   *S3Config   `yaml:"s3,omitempty"`
	FTP  *FTPConfig  `yaml:"ftp,omitempty"`
	SFTP *SFTPConfig `yaml:"sftp,omitempty"`
}

// NewDefault returns a configuration with sensible defaults and no endpoints.
func NewDefault() *Configuration {
	return &Configuration{
		Global: GlobalConfig{
			LogLevel:       "INFO",
			MetricsEnabled: false,
			MetricsPort:    8080,
			ConnectTimeout: DefaultConnectTimeout,
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func (c *Configuration) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// LoadFromEnv loads global settings from environment variables.
func (c *Configuration) LoadFromEnv() error {
	if val := os.Getenv("STORCONN_LOG_LEVEL"); val != "" {
		c.Global.LogLevel = val
	}
	if val := os.Getenv("STORCONN_METRICS_ENABLED"); val != "" {
		c.Global.MetricsEnabled = val == "true" || val == "1"
	}
	if val := os.Getenv("STORCONN_METRICS_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Global.MetricsPort = port
		}
	}
	if val := os.Getenv("STORCONN_CONNECT_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.Global.ConnectTimeout = d
		}
	}
	return nil
}

// SaveToFile saves the configuration to a YAML file.
func (c *Configuration) SaveToFile(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the whole catalog: global settings plus every endpoint.
func (c *Configuration) Validate() error {
	if c.Global.MetricsPort < 0 || c.Global.MetricsPort > 65535 {
		return errors.New(errors.KindConfigInvalid, "metrics port out of range")
	}

	seen := make(map[string]struct{}, len(c.Endpoints))
	for i := range c.Endpoints {
		ep := &c.Endpoints[i]
		if err := ep.Validate(); err != nil {
			return fmt.Errorf("endpoint %q: %w", ep.Name, err)
		}
		if _, dup := seen[ep.Name]; dup {
			return errors.New(errors.KindConfigInvalid,
				fmt.Sprintf("duplicate endpoint name %q", ep.Name))
		}
		seen[ep.Name] = struct{}{}
	}
	return nil
}

// Endpoint looks up a named endpoint.
func (c *Configuration) Endpoint(name string) (*EndpointConfig, bool) {
	for i := range c.Endpoints {
		if c.Endpoints[i].Name == name {
			return &c.Endpoints[i], true
		}
	}
	return nil, false
}

// Validate checks that the endpoint names a backend kind and carries exactly
// the matching section, then validates that section.
func (e *EndpointConfig) Validate() error {
	if e.Name == "" {
		return errors.New(errors.KindConfigInvalid, "endpoint name is required")
	}

	sections := 0
	if e.S3 != nil {
		sections++
	}
	if e.FTP != nil {
		sections++
	}
	if e.SFTP != nil {
		sections++
	}
	if sections != 1 {
		return errors.New(errors.KindConfigInvalid, "endpoint must carry exactly one backend section")
	}

	backend, err := e.backendSection()
	if err != nil {
		return err
	}
	return backend.Validate()
}

// Backend returns an independent copy of the populated backend section.
func (e *EndpointConfig) Backend() (types.Config, error) {
	backend, err := e.backendSection()
	if err != nil {
		return nil, err
	}
	return backend.Clone(), nil
}

func (e *EndpointConfig) backendSection() (types.Config, error) {
	switch types.BackendKind(e.Kind) {
	case types.BackendS3:
		if e.S3 == nil {
			return nil, errors.New(errors.KindConfigInvalid, "kind is s3 but no s3 section given")
		}
		return e.S3, nil
	case types.BackendFTP:
		if e.FTP == nil {
			return nil, errors.New(errors.KindConfigInvalid, "kind is ftp but no ftp section given")
		}
		return e.FTP, nil
	case types.BackendSFTP:
		if e.SFTP == nil {
			return nil, errors.New(errors.KindConfigInvalid, "kind is sftp but no sftp section given")
		}
		return e.SFTP, nil
	default:
		return nil, errors.New(errors.KindConfigInvalid,
			fmt.Sprintf("unsupported backend kind %q", e.Kind))
	}
}
