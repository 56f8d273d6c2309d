package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/stvmedia/media-portal/internal/auth"
)

// RegisterRoutes builds the echo instance with the public API, the admin
// API behind bearer auth, and the health check.
func (h *Handler) RegisterRoutes(verifier *auth.Verifier) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(h.requestLogger())

	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	api.GET("/videos", h.Videos)
	api.GET("/videos/latest", h.LatestVideo)
	api.GET("/videos/:id", h.VideoByID)
	api.GET("/videos/:id/thumbnail", h.VideoThumbnail)

	api.GET("/news", h.News)
	api.GET("/news/:id", h.NewsByID)

	api.GET("/categories", h.Categories)
	api.GET("/categories/:slug", h.CategoryBySlug)
	api.GET("/subjects", h.Subjects)

	api.GET("/pdfs", h.PDFs)
	api.GET("/pdfs/:id", h.PDFByID)
	api.POST("/pdfs/:id/download", h.PDFDownload)

	api.GET("/supporters", h.Supporters)

	admin := api.Group("/admin", verifier.Middleware())

	admin.POST("/videos", h.CreateVideo)
	admin.PUT("/videos/:id", h.UpdateVideo)
	admin.DELETE("/videos/:id", h.DeleteVideo)

	admin.POST("/news", h.CreateNews)
	admin.PUT("/news/:id", h.UpdateNews)
	admin.DELETE("/news/:id", h.DeleteNews)

	admin.POST("/pdfs", h.CreatePDF)
	admin.PUT("/pdfs/:id", h.UpdatePDF)
	admin.DELETE("/pdfs/:id", h.DeletePDF)

	admin.POST("/categories", h.CreateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	admin.POST("/subjects", h.CreateSubject)
	admin.DELETE("/subjects/:id", h.DeleteSubject)

	admin.POST("/supporters", h.CreateSupporter)
	admin.PUT("/supporters/:id", h.UpdateSupporter)
	admin.DELETE("/supporters/:id", h.DeleteSupporter)

	admin.POST("/uploads/images", h.UploadNewsImage)
	admin.POST("/uploads/pdfs", h.UploadPDFFile)
	admin.POST("/uploads/logos", h.UploadSupporterLogo)
	admin.DELETE("/uploads/:bucket/:path", h.RemoveAsset)

	return e
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Status >= http.StatusInternalServerError {
				h.log.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
				return nil
			}
			h.log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	})
}
