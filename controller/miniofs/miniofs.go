// Package miniofs implements a controller over a MinIO/S3-compatible
// object store. Objects have no handles, cursors, or partial writes, so
// the controller exposes exactly two primitives: whole-object reads and
// object stats. File resources bound to it read atomically, latch
// end-of-stream after the first transfer, and reject writes, seeks
// forwarded to the backend, and device control.
package miniofs

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/resource"
)

// Controller serves file primitives from a single bucket.
type Controller struct {
	client *minio.Client
	bucket string
	prefix string
	ctx    context.Context
}

// New creates a MinIO-backed controller. Returns an error if the
// configuration is invalid or the client cannot be constructed.
func New(cfg Config) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "invalid config")
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "creating minio client")
		}
	}

	return &Controller{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		ctx:    context.Background(),
	}, nil
}

// key maps a resource path to an object key under the configured prefix.
func (c *Controller) key(p string) string {
	p = strings.TrimPrefix(path.Clean(p), "/")
	if c.prefix == "" {
		return p
	}
	return c.prefix + "/" + p
}

// translate converts MinIO errors to coded errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return errors.Wrap(err, errors.CodeNotFound, "object not found")
	case "AccessDenied":
		return errors.Wrap(err, errors.CodeInvalidInput, "access denied")
	}
	return errors.Wrap(err, errors.CodeNetwork, "minio request failed")
}

// isNoSuchKey reports whether err is the store's absent-object response.
func isNoSuchKey(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchBucket"
}

// ReadWholeFile fetches the entire object at path in one transfer.
func (c *Controller) ReadWholeFile(p string) ([]byte, error) {
	obj, err := c.client.GetObject(c.ctx, c.bucket, c.key(p), minio.GetObjectOptions{})
	if err != nil {
		return nil, translate(err)
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

// StatFile returns object metadata, or (nil, nil) when no object exists at
// path.
func (c *Controller) StatFile(p string) (*resource.FileInfo, error) {
	info, err := c.client.StatObject(c.ctx, c.bucket, c.key(p), minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil
		}
		return nil, translate(err)
	}
	return &resource.FileInfo{
		Path:    p,
		Size:    info.Size,
		Mode:    0644,
		ModTime: info.LastModified,
	}, nil
}
