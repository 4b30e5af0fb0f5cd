// Package storage holds profile pictures. The default backend writes to local disk;
// an S3-compatible backend (MinIO, AWS S3, ...) is available for shared deployments.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"time"
)

var (
	// ErrPresignUnsupported is returned by backends that cannot hand out signed URLs.
	// Callers stream the object through Get instead.
	ErrPresignUnsupported = errors.New("presigned urls are not supported by this backend")
	// ErrObjectNotFound is returned by Get when nothing is stored under the key.
	ErrObjectNotFound = errors.New("object not found")
)

// KeyFromLocation recovers the object key from a Location recorded on a résumé.
// Keys never contain a separator, so it is the last path element for both backends.
func KeyFromLocation(location string) string {
	return path.Base(filepath.ToSlash(location))
}

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 if unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key string
	// Location is what gets recorded on the résumé: a file path for local storage,
	// bucket/key for object storage.
	Location     string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is implemented by every picture backend. Methods stream; nothing is
// buffered fully in memory.
type Storage interface {
	// Put writes an object under key, replacing any existing object.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	// The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
