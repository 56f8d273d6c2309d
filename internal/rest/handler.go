package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/stvmedia/media-portal/internal/offline"
	"github.com/stvmedia/media-portal/internal/portal"
)

// Handler serves the public content API and the admin API.
type Handler struct {
	m       *portal.Manager
	fetcher *offline.Fetcher
	log     *slog.Logger
	now     func() time.Time
}

func NewHandler(m *portal.Manager, fetcher *offline.Fetcher, log *slog.Logger) *Handler {
	return &Handler{
		m:       m,
		fetcher: fetcher,
		log:     log,
		now:     time.Now,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// writeError maps the portal error taxonomy to HTTP statuses. Unknown
// errors stay opaque to the client.
func (h *Handler) writeError(c echo.Context, err error) error {
	var validationErr *portal.ValidationError
	var uploadErr *portal.AssetUploadError

	switch {
	case errors.As(err, &validationErr):
		return h.handleError(c, err, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, portal.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "not found")
	case errors.As(err, &uploadErr):
		return h.handleError(c, err, http.StatusBadGateway, "asset upload failed")
	}
	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

// bindQuery decodes list-filter params (category_id, is_featured, limit,
// lang and friends) into the given struct.
func (h *Handler) bindQuery(c echo.Context, filter any) error {
	return urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), filter)
}

func langOf(c echo.Context) portal.Lang {
	return portal.ParseLang(c.QueryParam("lang"))
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
