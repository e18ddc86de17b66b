package sftp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/storconn/storconn/pkg/config"
	errs "github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

func TestAdapter_KindAndEager(t *testing.T) {
	adapter := New(&config.SFTPConfig{Host: "sftp.example.com"}, nil)

	assert.Equal(t, types.BackendSFTP, adapter.Kind())
	assert.False(t, adapter.Eager())
}

func TestConnect_UnreachableHost(t *testing.T) {
	adapter := New(&config.SFTPConfig{
		Host:           "127.0.0.1",
		Port:           1,
		Username:       "nobody",
		Password:       "secret",
		ConnectTimeout: 2 * time.Second,
	}, nil)

	handle, err := adapter.Connect(context.Background())
	assert.Nil(t, handle)
	assert.True(t, errs.IsKind(err, errs.KindHandshakeFailed))
}

func TestConnect_NoAuthMethod(t *testing.T) {
	adapter := New(&config.SFTPConfig{Host: "sftp.example.com", Username: "nobody"}, nil)

	handle, err := adapter.Connect(context.Background())
	assert.Nil(t, handle)
	assert.True(t, errs.IsKind(err, errs.KindConfigInvalid))
}

func TestDisconnect_NilHandleIsNoOp(t *testing.T) {
	adapter := New(&config.SFTPConfig{Host: "sftp.example.com"}, nil)

	assert.NoError(t, adapter.Disconnect(context.Background(), nil))
}

func TestDisconnect_ForeignHandle(t *testing.T) {
	adapter := New(&config.SFTPConfig{Host: "sftp.example.com"}, nil)

	err := adapter.Disconnect(context.Background(), struct{}{})
	assert.True(t, errs.IsKind(err, errs.KindStateViolation))
}

func TestAlive_RejectsForeignHandle(t *testing.T) {
	adapter := New(&config.SFTPConfig{Host: "sftp.example.com"}, nil)

	assert.False(t, adapter.Alive(nil))
	assert.False(t, adapter.Alive("not a client"))
}

func TestPing_WithoutSession(t *testing.T) {
	adapter := New(&config.SFTPConfig{Host: "sftp.example.com"}, nil)

	err := adapter.Ping(context.Background(), nil)
	assert.True(t, errs.IsKind(err, errs.KindNotConnected))
}
