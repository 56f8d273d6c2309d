package rest

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stvmedia/media-portal/internal/portal"
)

type uploadFunc func(ctx context.Context, originalName string, r io.Reader) (*portal.Asset, error)

// upload stores a multipart file and returns the asset descriptor. The
// caller then submits the returned path or URL with the owning record;
// the record is never created before the file is stored.
func (h *Handler) upload(c echo.Context, store uploadFunc) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	asset, err := store(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewAsset(*asset))
}

// UploadNewsImage handles POST /api/v1/admin/uploads/images
func (h *Handler) UploadNewsImage(c echo.Context) error {
	return h.upload(c, h.m.UploadNewsImage)
}

// UploadPDFFile handles POST /api/v1/admin/uploads/pdfs
func (h *Handler) UploadPDFFile(c echo.Context) error {
	return h.upload(c, h.m.UploadPDFFile)
}

// UploadSupporterLogo handles POST /api/v1/admin/uploads/logos
func (h *Handler) UploadSupporterLogo(c echo.Context) error {
	return h.upload(c, h.m.UploadSupporterLogo)
}

var buckets = map[string]string{
	"images": portal.BucketImages,
	"pdfs":   portal.BucketPDFs,
	"logos":  portal.BucketLogos,
}

// RemoveAsset handles DELETE /api/v1/admin/uploads/:bucket/:path. It
// cleans up assets orphaned by an interrupted upload-then-create
// sequence or left behind after a record delete.
func (h *Handler) RemoveAsset(c echo.Context) error {
	bucket, ok := buckets[c.Param("bucket")]
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "unknown bucket")
	}

	objectPath := c.Param("path")
	if objectPath == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "missing path")
	}

	if err := h.m.RemoveAsset(c.Request().Context(), bucket, objectPath); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
