package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stvmedia/media-portal/internal/auth"
	"github.com/stvmedia/media-portal/internal/db"
	"github.com/stvmedia/media-portal/internal/filestore"
	"github.com/stvmedia/media-portal/internal/offline"
	"github.com/stvmedia/media-portal/internal/portal"
)

const testSecret = "rest-test-secret"

var (
	testDB   *pg.DB
	testEcho *echo.Echo
)

// stubTransport serves a canned image for every upstream request, so
// thumbnail proxying is exercised without touching the network.
type stubTransport struct {
	body []byte
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "image/jpeg")
	rec.WriteHeader(http.StatusOK)
	_, _ = rec.Write(t.body)
	return rec.Result(), nil
}

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "skipping rest integration tests, test database is not available:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(0)
	}

	testDB = database

	storageDir, err := os.MkdirTemp("", "rest-test-storage")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create storage dir: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := portal.NewManager(
		db.New(testDB),
		filestore.NewDisk(storageDir, "http://localhost:3000/storage"),
	)

	client := &http.Client{Transport: &stubTransport{body: []byte("jpeg-bytes")}}
	fetcher := offline.NewFetcher("v1", "i.ytimg.com", client, offline.NewRegistry(), logger)

	handler := NewHandler(manager, fetcher, logger)
	testEcho = handler.RegisterRoutes(auth.NewVerifier(testSecret))

	code := m.Run()

	_ = os.RemoveAll(storageDir)
	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func doRequest(t *testing.T, method, target string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rec := httptest.NewRecorder()
	testEcho.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func adminToken(t *testing.T) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func adminHeader(t *testing.T, contentType string) http.Header {
	t.Helper()

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer "+adminToken(t))
	if contentType != "" {
		header.Set(echo.HeaderContentType, contentType)
	}
	return header
}

func TestHandler_Videos(t *testing.T) {
	t.Run("ListAll", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/videos", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var videos []Video
		decodeJSON(t, rec, &videos)
		require.NotEmpty(t, videos)

		for _, v := range videos {
			assert.NotZero(t, v.ID)
			assert.NotEmpty(t, v.Title)
			assert.Len(t, v.YoutubeID, 11)
			assert.Contains(t, v.ThumbnailURL, "maxresdefault")
			assert.Contains(t, v.FallbackThumbnailURL, "hqdefault")
			assert.Contains(t, v.EmbedURL, "/embed/"+v.YoutubeID)
		}
	})

	t.Run("SortedByPublishedAtDesc", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/videos", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var videos []Video
		decodeJSON(t, rec, &videos)
		for i := 1; i < len(videos); i++ {
			assert.False(t, videos[i-1].PublishedAt.Before(videos[i].PublishedAt))
		}
	})

	t.Run("FeaturedFilter", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/videos?is_featured=true", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var videos []Video
		decodeJSON(t, rec, &videos)
		require.NotEmpty(t, videos)
		for _, v := range videos {
			assert.True(t, v.IsFeatured)
		}
	})

	t.Run("LangFallback", func(t *testing.T) {
		recPT := doRequest(t, http.MethodGet, "/api/v1/videos", nil, nil)
		recES := doRequest(t, http.MethodGet, "/api/v1/videos?lang=es", nil, nil)
		require.Equal(t, http.StatusOK, recPT.Code)
		require.Equal(t, http.StatusOK, recES.Code)

		var videosPT, videosES []Video
		decodeJSON(t, recPT, &videosPT)
		decodeJSON(t, recES, &videosES)
		require.Equal(t, len(videosPT), len(videosES))

		// every title resolves to something, missing translations fall
		// back to the default language
		for i := range videosES {
			assert.NotEmpty(t, videosES[i].Title)
		}
	})

	t.Run("ByID", func(t *testing.T) {
		var videos []Video
		rec := doRequest(t, http.MethodGet, "/api/v1/videos", nil, nil)
		decodeJSON(t, rec, &videos)
		require.NotEmpty(t, videos)

		rec = doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d", videos[0].ID), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var video Video
		decodeJSON(t, rec, &video)
		assert.Equal(t, videos[0].ID, video.ID)
	})

	t.Run("ByIDNotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/videos/999999", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ByIDInvalid", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/videos/abc", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Latest", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/videos/latest", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var video Video
		decodeJSON(t, rec, &video)
		assert.NotZero(t, video.ID)
	})

	t.Run("Thumbnail", func(t *testing.T) {
		var videos []Video
		rec := doRequest(t, http.MethodGet, "/api/v1/videos", nil, nil)
		decodeJSON(t, rec, &videos)
		require.NotEmpty(t, videos)

		rec = doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d/thumbnail", videos[0].ID), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})
}

func TestHandler_News(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/news", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var news []News
		decodeJSON(t, rec, &news)
		require.NotEmpty(t, news)
		for _, n := range news {
			assert.NotEmpty(t, n.Title)
			assert.NotEmpty(t, n.Content)
		}
	})

	t.Run("FeaturedFilter", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/news?is_featured=true", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var news []News
		decodeJSON(t, rec, &news)
		for _, n := range news {
			assert.True(t, n.IsFeatured)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/news/999999", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Taxonomy(t *testing.T) {
	t.Run("Categories", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/categories", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []Category
		decodeJSON(t, rec, &categories)
		require.NotEmpty(t, categories)
		for _, cat := range categories {
			assert.NotEmpty(t, cat.Name)
			assert.NotEmpty(t, cat.Slug)
		}
	})

	t.Run("CategoryBySlug", func(t *testing.T) {
		var categories []Category
		rec := doRequest(t, http.MethodGet, "/api/v1/categories", nil, nil)
		decodeJSON(t, rec, &categories)
		require.NotEmpty(t, categories)

		rec = doRequest(t, http.MethodGet, "/api/v1/categories/"+categories[0].Slug, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var category Category
		decodeJSON(t, rec, &category)
		assert.Equal(t, categories[0].ID, category.ID)
	})

	t.Run("CategoryBySlugNotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/categories/no-such-slug", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Subjects", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/subjects", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var subjects []Subject
		decodeJSON(t, rec, &subjects)
		require.NotEmpty(t, subjects)
	})
}

func TestHandler_PDFs(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/pdfs", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var pdfs []PDF
		decodeJSON(t, rec, &pdfs)
		require.NotEmpty(t, pdfs)
		for _, p := range pdfs {
			assert.NotEmpty(t, p.FileURL)
			assert.NotEmpty(t, p.FileName)
		}
	})

	t.Run("DownloadIncrementsCounter", func(t *testing.T) {
		var pdfs []PDF
		rec := doRequest(t, http.MethodGet, "/api/v1/pdfs", nil, nil)
		decodeJSON(t, rec, &pdfs)
		require.NotEmpty(t, pdfs)

		target := fmt.Sprintf("/api/v1/pdfs/%d", pdfs[0].ID)
		before := pdfs[0].DownloadsCount

		rec = doRequest(t, http.MethodPost, target+"/download", nil, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(t, http.MethodGet, target, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var pdf PDF
		decodeJSON(t, rec, &pdf)
		assert.Equal(t, before+1, pdf.DownloadsCount)
	})

	t.Run("DownloadNotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/pdfs/999999/download", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Supporters(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/supporters", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var supporters []Supporter
	decodeJSON(t, rec, &supporters)
	require.NotEmpty(t, supporters)

	for i, s := range supporters {
		assert.True(t, s.IsActive, "public list must contain only active supporters")
		if i > 0 {
			assert.GreaterOrEqual(t, s.DisplayOrder, supporters[i-1].DisplayOrder)
		}
	}
}

func TestHandler_AdminAuth(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/videos", strings.NewReader("{}"), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		header := http.Header{}
		header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/videos", strings.NewReader("{}"), header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_AdminVideos(t *testing.T) {
	t.Run("CreateUpdateDelete", func(t *testing.T) {
		body := `{
			"titlePt": "Aula de revisão",
			"youtubeUrl": "https://www.youtube.com/watch?v=M7lc1UVf-VE"
		}`
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/videos",
			strings.NewReader(body), adminHeader(t, echo.MIMEApplicationJSON))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created Video
		decodeJSON(t, rec, &created)
		assert.Equal(t, "M7lc1UVf-VE", created.YoutubeID)
		assert.Equal(t, "Aula de revisão", created.Title)

		update := `{
			"titlePt": "Aula de revisão final",
			"youtubeUrl": "https://youtu.be/M7lc1UVf-VE"
		}`
		rec = doRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/videos/%d", created.ID),
			strings.NewReader(update), adminHeader(t, echo.MIMEApplicationJSON))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated Video
		decodeJSON(t, rec, &updated)
		assert.Equal(t, "Aula de revisão final", updated.Title)

		rec = doRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/videos/%d", created.ID),
			nil, adminHeader(t, ""))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("RejectsBadYoutubeURL", func(t *testing.T) {
		body := `{"titlePt": "Sem vídeo", "youtubeUrl": "https://example.com/watch?v=short"}`
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/videos",
			strings.NewReader(body), adminHeader(t, echo.MIMEApplicationJSON))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("RejectsLiveWithoutWindow", func(t *testing.T) {
		body := `{
			"titlePt": "Transmissão",
			"youtubeUrl": "https://www.youtube.com/watch?v=M7lc1UVf-VE",
			"isLive": true
		}`
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/videos",
			strings.NewReader(body), adminHeader(t, echo.MIMEApplicationJSON))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodDelete, "/api/v1/admin/videos/999999", nil, adminHeader(t, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_AdminUploads(t *testing.T) {
	buildMultipart := func(t *testing.T, filename, content string) (io.Reader, string) {
		t.Helper()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		return &buf, w.FormDataContentType()
	}

	t.Run("UploadThenCreateSupporter", func(t *testing.T) {
		body, contentType := buildMultipart(t, "Logo Nova.PNG", "png-bytes")
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/uploads/logos", body, adminHeader(t, contentType))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var asset Asset
		decodeJSON(t, rec, &asset)
		assert.NotEmpty(t, asset.Path)
		assert.True(t, strings.HasSuffix(asset.Path, ".png"), "extension is normalized: %s", asset.Path)
		assert.NotEmpty(t, asset.PublicURL)
		assert.Equal(t, int64(len("png-bytes")), asset.Size)

		draft := fmt.Sprintf(`{"name": "Nova Parceira", "logoPath": %q, "isActive": true}`, asset.Path)
		rec = doRequest(t, http.MethodPost, "/api/v1/admin/supporters",
			strings.NewReader(draft), adminHeader(t, echo.MIMEApplicationJSON))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var supporter Supporter
		decodeJSON(t, rec, &supporter)
		assert.Equal(t, asset.PublicURL, supporter.LogoURL)

		rec = doRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/supporters/%d", supporter.ID),
			nil, adminHeader(t, ""))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("RemoveAsset", func(t *testing.T) {
		body, contentType := buildMultipart(t, "apostila.pdf", "pdf-bytes")
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/uploads/pdfs", body, adminHeader(t, contentType))
		require.Equal(t, http.StatusCreated, rec.Code)

		var asset Asset
		decodeJSON(t, rec, &asset)

		rec = doRequest(t, http.MethodDelete, "/api/v1/admin/uploads/pdfs/"+asset.Path, nil, adminHeader(t, ""))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(t, http.MethodDelete, "/api/v1/admin/uploads/tapes/"+asset.Path, nil, adminHeader(t, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingFile", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/uploads/pdfs",
			strings.NewReader(""), adminHeader(t, echo.MIMEMultipartForm))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_WriteError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(nil, nil, logger)
	e := echo.New()

	run := func(err error) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h.writeError(c, err))
		return rec
	}

	assert.Equal(t, http.StatusBadRequest, run(&portal.ValidationError{Field: "TitlePT", Reason: "failed rule required"}).Code)
	assert.Equal(t, http.StatusNotFound, run(portal.ErrNotFound).Code)
	assert.Equal(t, http.StatusNotFound, run(fmt.Errorf("db delete video: %w", portal.ErrNotFound)).Code)
	assert.Equal(t, http.StatusBadGateway, run(&portal.AssetUploadError{Path: "x.png", Err: errors.New("disk full")}).Code)
	assert.Equal(t, http.StatusInternalServerError, run(errors.New("boom")).Code)
}
