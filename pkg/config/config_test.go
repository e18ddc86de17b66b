package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	if cfg.Global.LogLevel != "INFO" {
		t.Errorf("Expected LogLevel to be INFO, got %s", cfg.Global.LogLevel)
	}
	if cfg.Global.MetricsPort != 8080 {
		t.Errorf("Expected MetricsPort to be 8080, got %d", cfg.Global.MetricsPort)
	}
	if cfg.Global.ConnectTimeout != DefaultConnectTimeout {
		t.Errorf("Expected ConnectTimeout to be %v, got %v", DefaultConnectTimeout, cfg.Global.ConnectTimeout)
	}
	if len(cfg.Endpoints) != 0 {
		t.Errorf("Expected no default endpoints, got %d", len(cfg.Endpoints))
	}
}

func TestConfigurationValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  func() *Configuration
		wantErr bool
	}{
		{
			name:   "empty catalog",
			config: NewDefault,
		},
		{
			name: "valid endpoints",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Endpoints = []EndpointConfig{
					{Name: "archive", Kind: "s3", S3: &S3Config{Region: "us-east-1"}},
					{Name: "drop", Kind: "ftp", FTP: &FTPConfig{Host: "ftp.example.com"}},
				}
				return cfg
			},
		},
		{
			name: "duplicate endpoint names",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Endpoints = []EndpointConfig{
					{Name: "a", Kind: "s3", S3: &S3Config{Region: "us-east-1"}},
					{Name: "a", Kind: "ftp", FTP: &FTPConfig{Host: "ftp.example.com"}},
				}
				return cfg
			},
			wantErr: true,
		},
		{
			name: "metrics port out of range",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Global.MetricsPort = 70000
				return cfg
			},
			wantErr: true,
		},
		{
			name: "kind section mismatch",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Endpoints = []EndpointConfig{
					{Name: "a", Kind: "s3", FTP: &FTPConfig{Host: "ftp.example.com"}},
				}
				return cfg
			},
			wantErr: true,
		},
		{
			name: "two sections on one endpoint",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Endpoints = []EndpointConfig{
					{
						Name: "a", Kind: "s3",
						S3:  &S3Config{Region: "us-east-1"},
						FTP: &FTPConfig{Host: "ftp.example.com"},
					},
				}
				return cfg
			},
			wantErr: true,
		},
		{
			name: "unsupported kind",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Endpoints = []EndpointConfig{
					{Name: "a", Kind: "webdav", S3: &S3Config{Region: "us-east-1"}},
				}
				return cfg
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storconn.yaml")

	cfg := NewDefault()
	cfg.Global.LogLevel = "DEBUG"
	cfg.Endpoints = []EndpointConfig{
		{Name: "ingest", Kind: "sftp", SFTP: &SFTPConfig{Host: "sftp.example.com", Username: "ingest"}},
	}

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded := NewDefault()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Global.LogLevel != "DEBUG" {
		t.Errorf("Expected LogLevel DEBUG, got %s", loaded.Global.LogLevel)
	}
	ep, ok := loaded.Endpoint("ingest")
	if !ok {
		t.Fatal("Expected endpoint ingest to survive the round trip")
	}
	if ep.SFTP == nil || ep.SFTP.Host != "sftp.example.com" {
		t.Errorf("Endpoint lost its sftp section: %+v", ep)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg := NewDefault()
	if err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("STORCONN_LOG_LEVEL", "WARN")
	os.Setenv("STORCONN_METRICS_PORT", "9091")
	os.Setenv("STORCONN_CONNECT_TIMEOUT", "3s")
	defer func() {
		os.Unsetenv("STORCONN_LOG_LEVEL")
		os.Unsetenv("STORCONN_METRICS_PORT")
		os.Unsetenv("STORCONN_CONNECT_TIMEOUT")
	}()

	cfg := NewDefault()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Global.LogLevel != "WARN" {
		t.Errorf("Expected LogLevel WARN, got %s", cfg.Global.LogLevel)
	}
	if cfg.Global.MetricsPort != 9091 {
		t.Errorf("Expected MetricsPort 9091, got %d", cfg.Global.MetricsPort)
	}
	if cfg.Global.ConnectTimeout != 3*time.Second {
		t.Errorf("Expected ConnectTimeout 3s, got %v", cfg.Global.ConnectTimeout)
	}
}

func TestEndpointBackend_ReturnsCopy(t *testing.T) {
	ep := EndpointConfig{Name: "a", Kind: "s3", S3: &S3Config{Region: "us-east-1"}}

	backend, err := ep.Backend()
	if err != nil {
		t.Fatalf("Backend() failed: %v", err)
	}

	s3cfg, ok := backend.(*S3Config)
	if !ok {
		t.Fatalf("Backend() returned %T, want *S3Config", backend)
	}
	s3cfg.Region = "eu-west-1"

	if ep.S3.Region != "us-east-1" {
		t.Error("mutating the returned backend config leaked into the endpoint")
	}
}

func TestEndpointBackend_KindMismatch(t *testing.T) {
	ep := EndpointConfig{Name: "a", Kind: "ftp", S3: &S3Config{Region: "us-east-1"}}

	if _, err := ep.Backend(); !errors.IsKind(err, errors.KindConfigInvalid) {
		t.Errorf("Expected ConfigInvalid, got %v", err)
	}
}

func TestEndpointBackend_KindValues(t *testing.T) {
	var _ types.Config = (*S3Config)(nil)
	var _ types.Config = (*FTPConfig)(nil)
	var _ types.Config = (*SFTPConfig)(nil)

	if (&S3Config{}).Kind() != types.BackendS3 {
		t.Error("S3Config reports the wrong kind")
	}
	if (&FTPConfig{}).Kind() != types.BackendFTP {
		t.Error("FTPConfig reports the wrong kind")
	}
	if (&SFTPConfig{}).Kind() != types.BackendSFTP {
		t.Error("SFTPConfig reports the wrong kind")
	}
}
