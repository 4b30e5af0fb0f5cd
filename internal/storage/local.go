package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// localStorage writes objects as files under baseDir.
type localStorage struct {
	fs      afero.Fs
	baseDir string
}

// NewLocal returns a Storage rooted at baseDir on fs. Pass afero.NewOsFs() for the
// real disk.
func NewLocal(fs afero.Fs, baseDir string) Storage {
	return &localStorage{fs: fs, baseDir: baseDir}
}

func (l *localStorage) path(key string) string {
	return filepath.Join(l.baseDir, key)
}

// Put creates baseDir if needed and overwrites any existing file with the same key.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	if err := l.fs.MkdirAll(l.baseDir, 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("mkdir: %w", err)
	}

	p := l.path(key)
	f, err := l.fs.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("open file: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Never leave a truncated picture behind.
		_ = l.fs.Remove(p)
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}

	return ObjectInfo{
		Key:          key,
		Location:     p,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}, nil
}

// Get opens the file for streaming. The content type is guessed from the extension.
func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	p := l.path(key)
	f, err := l.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ObjectInfo{}, fmt.Errorf("%s: %w", key, ErrObjectNotFound)
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{
		Key:          key,
		Location:     p,
		Size:         st.Size(),
		ContentType:  mime.TypeByExtension(filepath.Ext(key)),
		LastModified: st.ModTime(),
	}, nil
}

// Delete is a no-op for files that do not exist.
func (l *localStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := l.fs.Remove(l.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PresignGet always fails: files on local disk are only reachable through Get.
func (l *localStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "", ErrPresignUnsupported
}
