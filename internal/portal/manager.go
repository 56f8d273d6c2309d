package portal

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/stvmedia/media-portal/internal/db"
	"github.com/stvmedia/media-portal/internal/filestore"
)

// Storage buckets, one per file-bearing entity.
const (
	BucketImages = "images"
	BucketPDFs   = "pdfs"
	BucketLogos  = "supporters-logos"
)

// Manager is the content-resolution layer: it fetches records through the
// query layer, localizes them and assembles view models. Reads that find
// nothing return (nil, nil); writes against a missing record return
// ErrNotFound.
type Manager struct {
	db       *db.Repository
	files    filestore.Store
	validate *validator.Validate
	now      func() time.Time
}

func NewManager(repo *db.Repository, files filestore.Store) *Manager {
	return &Manager{
		db:       repo,
		files:    files,
		validate: validator.New(),
		now:      time.Now,
	}
}

// firstValidationError converts a validator result into the portal error
// taxonomy, keeping only the first offending field.
func (m *Manager) checkStruct(payload any) error {
	err := m.validate.Struct(payload)
	if err == nil {
		return nil
	}

	if fields, ok := err.(validator.ValidationErrors); ok && len(fields) > 0 {
		return newValidationError(fields[0].Field(), "failed rule "+fields[0].Tag())
	}

	return newValidationError("", err.Error())
}
