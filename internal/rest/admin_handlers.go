package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stvmedia/media-portal/internal/auth"
	"github.com/stvmedia/media-portal/internal/portal"
)

type VideoDraftRequest struct {
	TitlePT       string     `json:"titlePt"`
	TitleEN       string     `json:"titleEn"`
	TitleES       string     `json:"titleEs"`
	DescriptionPT string     `json:"descriptionPt"`
	DescriptionEN string     `json:"descriptionEn"`
	DescriptionES string     `json:"descriptionEs"`
	YoutubeURL    string     `json:"youtubeUrl"`
	CategoryID    *int       `json:"categoryId"`
	SubjectID     *int       `json:"subjectId"`
	IsFeatured    bool       `json:"isFeatured"`
	IsLive        bool       `json:"isLive"`
	LiveStartDate *time.Time `json:"liveStartDate"`
	LiveEndDate   *time.Time `json:"liveEndDate"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

func (r VideoDraftRequest) toDraft() portal.VideoDraft {
	return portal.VideoDraft{
		TitlePT:       r.TitlePT,
		TitleEN:       r.TitleEN,
		TitleES:       r.TitleES,
		DescriptionPT: r.DescriptionPT,
		DescriptionEN: r.DescriptionEN,
		DescriptionES: r.DescriptionES,
		YoutubeURL:    r.YoutubeURL,
		CategoryID:    r.CategoryID,
		SubjectID:     r.SubjectID,
		IsFeatured:    r.IsFeatured,
		IsLive:        r.IsLive,
		LiveStartDate: r.LiveStartDate,
		LiveEndDate:   r.LiveEndDate,
		PublishedAt:   r.PublishedAt,
	}
}

type NewsDraftRequest struct {
	TitlePT     string     `json:"titlePt"`
	TitleEN     string     `json:"titleEn"`
	TitleES     string     `json:"titleEs"`
	ContentPT   string     `json:"contentPt"`
	ContentEN   string     `json:"contentEn"`
	ContentES   string     `json:"contentEs"`
	ImageURL    *string    `json:"imageUrl"`
	Category    string     `json:"category"`
	IsFeatured  bool       `json:"isFeatured"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (r NewsDraftRequest) toDraft() portal.NewsDraft {
	return portal.NewsDraft{
		TitlePT:     r.TitlePT,
		TitleEN:     r.TitleEN,
		TitleES:     r.TitleES,
		ContentPT:   r.ContentPT,
		ContentEN:   r.ContentEN,
		ContentES:   r.ContentES,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		IsFeatured:  r.IsFeatured,
		PublishedAt: r.PublishedAt,
	}
}

type PDFDraftRequest struct {
	TitlePT       string     `json:"titlePt"`
	TitleEN       string     `json:"titleEn"`
	TitleES       string     `json:"titleEs"`
	DescriptionPT string     `json:"descriptionPt"`
	DescriptionEN string     `json:"descriptionEn"`
	DescriptionES string     `json:"descriptionEs"`
	FileURL       string     `json:"fileUrl"`
	FileName      string     `json:"fileName"`
	FileSize      int64      `json:"fileSize"`
	SubjectID     *int       `json:"subjectId"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

func (r PDFDraftRequest) toDraft() portal.PDFDraft {
	return portal.PDFDraft{
		TitlePT:       r.TitlePT,
		TitleEN:       r.TitleEN,
		TitleES:       r.TitleES,
		DescriptionPT: r.DescriptionPT,
		DescriptionEN: r.DescriptionEN,
		DescriptionES: r.DescriptionES,
		FileURL:       r.FileURL,
		FileName:      r.FileName,
		FileSize:      r.FileSize,
		SubjectID:     r.SubjectID,
		PublishedAt:   r.PublishedAt,
	}
}

type CategoryDraftRequest struct {
	NamePT string `json:"namePt"`
	NameEN string `json:"nameEn"`
	NameES string `json:"nameEs"`
	Slug   string `json:"slug"`
}

type SubjectDraftRequest struct {
	NamePT string `json:"namePt"`
	NameEN string `json:"nameEn"`
	NameES string `json:"nameEs"`
}

type SupporterDraftRequest struct {
	Name         string  `json:"name"`
	WebsiteURL   *string `json:"websiteUrl"`
	LogoPath     string  `json:"logoPath"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
}

func (r SupporterDraftRequest) toDraft() portal.SupporterDraft {
	return portal.SupporterDraft{
		Name:         r.Name,
		WebsiteURL:   r.WebsiteURL,
		LogoPath:     r.LogoPath,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

func createdBy(c echo.Context) string {
	if user := auth.UserFrom(c); user != nil {
		return user.ID
	}
	return ""
}

// CreateVideo handles POST /api/v1/admin/videos
func (h *Handler) CreateVideo(c echo.Context) error {
	var req VideoDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	video, err := h.m.CreateVideo(c.Request().Context(), req.toDraft(), createdBy(c))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewVideo(*video, portal.DefaultLang, h.now()))
}

// UpdateVideo handles PUT /api/v1/admin/videos/:id
func (h *Handler) UpdateVideo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req VideoDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	video, err := h.m.UpdateVideo(c.Request().Context(), id, req.toDraft())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewVideo(*video, portal.DefaultLang, h.now()))
}

// DeleteVideo handles DELETE /api/v1/admin/videos/:id
func (h *Handler) DeleteVideo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.DeleteVideo(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateNews handles POST /api/v1/admin/news
func (h *Handler) CreateNews(c echo.Context) error {
	var req NewsDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.m.CreateNews(c.Request().Context(), req.toDraft(), createdBy(c))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewNews(*article, portal.DefaultLang))
}

// UpdateNews handles PUT /api/v1/admin/news/:id
func (h *Handler) UpdateNews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req NewsDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.m.UpdateNews(c.Request().Context(), id, req.toDraft())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*article, portal.DefaultLang))
}

// DeleteNews handles DELETE /api/v1/admin/news/:id
func (h *Handler) DeleteNews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.DeleteNews(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreatePDF handles POST /api/v1/admin/pdfs. The file itself is uploaded
// first through UploadPDFFile; this call only records the metadata.
func (h *Handler) CreatePDF(c echo.Context) error {
	var req PDFDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	pdf, err := h.m.CreatePDF(c.Request().Context(), req.toDraft())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewPDF(*pdf, portal.DefaultLang))
}

// UpdatePDF handles PUT /api/v1/admin/pdfs/:id
func (h *Handler) UpdatePDF(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req PDFDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	pdf, err := h.m.UpdatePDF(c.Request().Context(), id, req.toDraft())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewPDF(*pdf, portal.DefaultLang))
}

// DeletePDF handles DELETE /api/v1/admin/pdfs/:id
func (h *Handler) DeletePDF(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.DeletePDF(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/admin/categories
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.m.CreateCategory(c.Request().Context(), portal.CategoryDraft{
		NamePT: req.NamePT,
		NameEN: req.NameEN,
		NameES: req.NameES,
		Slug:   req.Slug,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category, portal.DefaultLang))
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateSubject handles POST /api/v1/admin/subjects
func (h *Handler) CreateSubject(c echo.Context) error {
	var req SubjectDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	subject, err := h.m.CreateSubject(c.Request().Context(), portal.SubjectDraft{
		NamePT: req.NamePT,
		NameEN: req.NameEN,
		NameES: req.NameES,
	}, createdBy(c))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewSubject(*subject, portal.DefaultLang))
}

// DeleteSubject handles DELETE /api/v1/admin/subjects/:id
func (h *Handler) DeleteSubject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.DeleteSubject(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateSupporter handles POST /api/v1/admin/supporters
func (h *Handler) CreateSupporter(c echo.Context) error {
	var req SupporterDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	supporter, err := h.m.CreateSupporter(c.Request().Context(), req.toDraft())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewSupporter(*supporter))
}

// UpdateSupporter handles PUT /api/v1/admin/supporters/:id
func (h *Handler) UpdateSupporter(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req SupporterDraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	supporter, err := h.m.UpdateSupporter(c.Request().Context(), id, req.toDraft())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewSupporter(*supporter))
}

// DeleteSupporter handles DELETE /api/v1/admin/supporters/:id
func (h *Handler) DeleteSupporter(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.DeleteSupporter(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
