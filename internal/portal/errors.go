package portal

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a lookup by id or slug matched nothing.
var ErrNotFound = errors.New("not found")

// ValidationError is a rejected write: the payload never reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// AssetUploadError reports a file store failure. The owning record is never
// written when the upload fails.
type AssetUploadError struct {
	Path string
	Err  error
}

func (e *AssetUploadError) Error() string {
	return fmt.Sprintf("asset upload failed for %s: %v", e.Path, e.Err)
}

func (e *AssetUploadError) Unwrap() error { return e.Err }
