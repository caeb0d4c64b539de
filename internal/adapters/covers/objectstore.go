package covers

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"audioshelf/internal/config"
	"audioshelf/internal/ports"
)

// ObjectStore is the subset of the minio client the loader needs
type ObjectStore interface {
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// ObjectLoader implements ports.CoverLoader over an S3-compatible bucket.
//
// Stat does not touch the network: it always reports the cover as readable
// with an unknown size, and the size limit is enforced by Load, which runs
// off the UI loop.
type ObjectLoader struct {
	client       ObjectStore
	bucket       string
	maxImageSize int64
}

var _ ports.CoverLoader = (*ObjectLoader)(nil)

// NewObjectLoader wraps an object store client
func NewObjectLoader(client ObjectStore, bucket string, maxImageSize int64) *ObjectLoader {
	return &ObjectLoader{
		client:       client,
		bucket:       bucket,
		maxImageSize: maxImageSize,
	}
}

// NewMinioClient creates a minio client from the covers configuration
func NewMinioClient(cfg config.CoversConfig) (ObjectStore, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := 10 * time.Second
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &minioClient{Client: client}, nil
}

type minioClient struct {
	*minio.Client
}

func (c *minioClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

// Stat reports every well-formed key as readable; see ObjectLoader
func (l *ObjectLoader) Stat(ctx context.Context, key string) (ports.CoverInfo, error) {
	if key == "" {
		return ports.CoverInfo{}, nil
	}
	return ports.CoverInfo{Readable: true}, nil
}

// Load fetches the object, refusing covers at or above the size limit
func (l *ObjectLoader) Load(ctx context.Context, key string) ([]byte, error) {
	info, err := l.client.StatObject(ctx, l.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("stat cover %s: %w", key, err)
	}
	if l.maxImageSize > 0 && info.Size >= l.maxImageSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, key, info.Size)
	}

	obj, err := l.client.GetObject(ctx, l.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get cover %s: %w", key, err)
	}
	defer obj.Close()

	limit := info.Size + 1
	if l.maxImageSize > 0 {
		limit = l.maxImageSize
	}
	data, err := io.ReadAll(io.LimitReader(obj, limit))
	if err != nil {
		return nil, fmt.Errorf("read cover %s: %w", key, err)
	}
	if l.maxImageSize > 0 && int64(len(data)) >= l.maxImageSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, key)
	}
	return data, nil
}
