package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stvmedia/media-portal/internal/portal"
)

type VideosRequest struct {
	CategoryID *int
	SubjectID  *int
	IsFeatured *bool
	Limit      int
}

type NewsListRequest struct {
	IsFeatured *bool
	Category   *string
	Limit      int
}

type PDFsRequest struct {
	SubjectID *int
	Limit     int
}

// Videos handles GET /api/v1/videos
func (h *Handler) Videos(c echo.Context) error {
	var req VideosRequest
	if err := h.bindQuery(c, &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	videos, err := h.m.Videos(c.Request().Context(), portal.VideoFilter{
		CategoryID: req.CategoryID,
		SubjectID:  req.SubjectID,
		Featured:   req.IsFeatured,
		Limit:      req.Limit,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewVideos(videos, langOf(c), h.now()))
}

// LatestVideo handles GET /api/v1/videos/latest. An active live broadcast
// takes precedence over the most recent video.
func (h *Handler) LatestVideo(c echo.Context) error {
	video, err := h.m.LatestVideo(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	if video == nil {
		return c.String(http.StatusNotFound, "no videos published")
	}

	return c.JSON(http.StatusOK, NewVideo(*video, langOf(c), h.now()))
}

// VideoByID handles GET /api/v1/videos/:id
func (h *Handler) VideoByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	video, err := h.m.VideoByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	if video == nil {
		return c.String(http.StatusNotFound, "video not found")
	}

	return c.JSON(http.StatusOK, NewVideo(*video, langOf(c), h.now()))
}

// VideoThumbnail handles GET /api/v1/videos/:id/thumbnail. The image is
// fetched through the offline cache, so the last successfully fetched
// rendition keeps serving when the upstream is unreachable. A broken
// high-resolution rendition falls back to the lower one.
func (h *Handler) VideoThumbnail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	video, err := h.m.VideoByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	if video == nil {
		return c.String(http.StatusNotFound, "video not found")
	}

	ctx := c.Request().Context()
	resp, err := h.fetcher.Get(ctx, video.ThumbnailURL())
	if err == nil && resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		resp, err = h.fetcher.Get(ctx, video.FallbackThumbnailURL())
	}
	if err != nil {
		return h.handleError(c, err, http.StatusBadGateway, "thumbnail unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.String(http.StatusNotFound, "thumbnail not found")
	}

	return c.Stream(http.StatusOK, resp.Header.Get("Content-Type"), resp.Body)
}

// News handles GET /api/v1/news
func (h *Handler) News(c echo.Context) error {
	var req NewsListRequest
	if err := h.bindQuery(c, &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	news, err := h.m.News(c.Request().Context(), portal.NewsFilter{
		Featured: req.IsFeatured,
		Category: req.Category,
		Limit:    req.Limit,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsList(news, langOf(c)))
}

// NewsByID handles GET /api/v1/news/:id
func (h *Handler) NewsByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.m.NewsByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	if article == nil {
		return c.String(http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewNews(*article, langOf(c)))
}

// Categories handles GET /api/v1/categories
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.m.Categories(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories, langOf(c)))
}

// CategoryBySlug handles GET /api/v1/categories/:slug
func (h *Handler) CategoryBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid slug")
	}

	category, err := h.m.CategoryBySlug(c.Request().Context(), slug)
	if err != nil {
		return h.writeError(c, err)
	}
	if category == nil {
		return c.String(http.StatusNotFound, "category not found")
	}

	return c.JSON(http.StatusOK, NewCategory(*category, langOf(c)))
}

// Subjects handles GET /api/v1/subjects
func (h *Handler) Subjects(c echo.Context) error {
	subjects, err := h.m.Subjects(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewSubjects(subjects, langOf(c)))
}

// PDFs handles GET /api/v1/pdfs
func (h *Handler) PDFs(c echo.Context) error {
	var req PDFsRequest
	if err := h.bindQuery(c, &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	pdfs, err := h.m.PDFs(c.Request().Context(), portal.PDFFilter{
		SubjectID: req.SubjectID,
		Limit:     req.Limit,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewPDFs(pdfs, langOf(c)))
}

// PDFByID handles GET /api/v1/pdfs/:id
func (h *Handler) PDFByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	pdf, err := h.m.PDFByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	if pdf == nil {
		return c.String(http.StatusNotFound, "pdf not found")
	}

	return c.JSON(http.StatusOK, NewPDF(*pdf, langOf(c)))
}

// PDFDownload handles POST /api/v1/pdfs/:id/download. The counter has
// at-least-once semantics, a retried request may count twice.
func (h *Handler) PDFDownload(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.IncrementDownloads(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Supporters handles GET /api/v1/supporters. Only active supporters are
// exposed publicly.
func (h *Handler) Supporters(c echo.Context) error {
	supporters, err := h.m.Supporters(c.Request().Context(), true)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewSupporters(supporters))
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
