package s3

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/storconn/storconn/pkg/config"
	errs "github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

// Adapter builds native S3 clients for one object-storage endpoint.
type Adapter struct {
	cfg    *config.S3Config
	logger *slog.Logger
}

// New creates an object-storage adapter for the given endpoint config.
func New(cfg *config.S3Config, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{cfg: cfg, logger: logger}
}

// Kind returns the backend kind.
func (a *Adapter) Kind() types.BackendKind { return types.BackendS3 }

// Eager reports that Connect performs no network I/O.
func (a *Adapter) Eager() bool { return true }

// Connect constructs the native S3 client. It succeeds unless the config
// itself cannot be turned into a client; reachability of the endpoint is not
// verified here.
func (a *Adapter) Connect(ctx context.Context) (interface{}, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(a.cfg.Region),
	}
	if a.cfg.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				a.cfg.AccessKeyID, a.cfg.SecretAccessKey, a.cfg.SessionToken)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.New(errs.KindConfigInvalid, "failed to load AWS config").
			WithBackend(types.BackendS3).
			WithCause(err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if a.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.cfg.Endpoint)
		}
		if a.cfg.ForcePathStyle {
			o.UsePathStyle = true
		}
	})

	a.logger.Debug("object storage client constructed",
		"region", a.cfg.Region,
		"endpoint", a.cfg.Endpoint)

	return client, nil
}

// Disconnect releases the handle. The S3 client holds no session with the
// remote side, so there is nothing to close; a nil handle is a no-op.
func (a *Adapter) Disconnect(ctx context.Context, handle interface{}) error {
	return nil
}

// Alive reports whether the handle is a usable client. Local check only.
func (a *Adapter) Alive(handle interface{}) bool {
	client, ok := handle.(*s3.Client)
	return ok && client != nil
}

// Ping verifies the endpoint is reachable: HeadBucket when a bucket is
// configured, ListBuckets otherwise. This is the only place the adapter
// touches the network outside of caller-driven operations.
func (a *Adapter) Ping(ctx context.Context, handle interface{}) error {
	client, ok := handle.(*s3.Client)
	if !ok || client == nil {
		return errs.New(errs.KindNotConnected, "no client to ping").
			WithBackend(types.BackendS3)
	}

	var err error
	if a.cfg.Bucket != "" {
		_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(a.cfg.Bucket),
		})
	} else {
		_, err = client.ListBuckets(ctx, &s3.ListBucketsInput{})
	}
	if err != nil {
		return errs.New(errs.KindHandshakeFailed, "endpoint unreachable").
			WithBackend(types.BackendS3).
			WithCause(err)
	}
	return nil
}
