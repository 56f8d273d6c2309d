// Package filestore is the file-object store collaborator: named buckets
// holding uploaded assets, addressable by a durable public URL.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store abstracts the object store. Paths are bucket-relative.
type Store interface {
	Upload(ctx context.Context, bucket, objectPath string, r io.Reader) (int64, error)
	PublicURL(bucket, objectPath string) string
	Remove(ctx context.Context, bucket, objectPath string) error
}

// NewObjectName builds a collision-resistant object name from a random
// token, the current timestamp and the original file extension.
func NewObjectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%d%s", token, time.Now().Unix(), ext)
}

// Disk is a Store backed by a local directory, serving objects through a
// public base URL (e.g. a static file route or a CDN origin).
type Disk struct {
	root          string
	publicBaseURL string
}

func NewDisk(root, publicBaseURL string) *Disk {
	return &Disk{
		root:          root,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (d *Disk) Upload(ctx context.Context, bucket, objectPath string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	dst := filepath.Join(d.root, bucket, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("create bucket dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create object: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(dst)
		return 0, fmt.Errorf("write object: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(dst)
		return 0, fmt.Errorf("close object: %w", err)
	}

	return n, nil
}

func (d *Disk) PublicURL(bucket, objectPath string) string {
	return d.publicBaseURL + "/" + path.Join(bucket, objectPath)
}

func (d *Disk) Remove(ctx context.Context, bucket, objectPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dst := filepath.Join(d.root, bucket, filepath.FromSlash(objectPath))
	if err := os.Remove(dst); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove object: %w", err)
	}

	return nil
}
