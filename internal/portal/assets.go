package portal

import (
	"context"
	"fmt"
	"io"

	"github.com/stvmedia/media-portal/internal/filestore"
)

// Asset is the result of a successful upload. The owning record should be
// created or updated only after the upload succeeds; the upload itself
// never creates records.
type Asset struct {
	Path      string
	PublicURL string
	Size      int64
}

func (m *Manager) uploadAsset(ctx context.Context, bucket, originalName string, r io.Reader) (*Asset, error) {
	objectPath := filestore.NewObjectName(originalName)

	size, err := m.files.Upload(ctx, bucket, objectPath, r)
	if err != nil {
		return nil, &AssetUploadError{Path: objectPath, Err: err}
	}

	return &Asset{
		Path:      objectPath,
		PublicURL: m.files.PublicURL(bucket, objectPath),
		Size:      size,
	}, nil
}

// UploadNewsImage stores a news cover image under a collision-resistant name.
func (m *Manager) UploadNewsImage(ctx context.Context, originalName string, r io.Reader) (*Asset, error) {
	return m.uploadAsset(ctx, BucketImages, originalName, r)
}

// UploadPDFFile stores a document file under a collision-resistant name.
func (m *Manager) UploadPDFFile(ctx context.Context, originalName string, r io.Reader) (*Asset, error) {
	return m.uploadAsset(ctx, BucketPDFs, originalName, r)
}

// UploadSupporterLogo stores a supporter logo under a collision-resistant
// name.
func (m *Manager) UploadSupporterLogo(ctx context.Context, originalName string, r io.Reader) (*Asset, error) {
	return m.uploadAsset(ctx, BucketLogos, originalName, r)
}

// RemoveAsset deletes a stored object. Interrupted upload-then-create
// sequences can leave orphaned assets; this is the cleanup path for
// callers that care.
func (m *Manager) RemoveAsset(ctx context.Context, bucket, objectPath string) error {
	if err := m.files.Remove(ctx, bucket, objectPath); err != nil {
		return fmt.Errorf("remove asset %s/%s: %w", bucket, objectPath, err)
	}

	return nil
}
