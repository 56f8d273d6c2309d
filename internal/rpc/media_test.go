package rpc

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/stvmedia/media-portal/internal/db"
	"github.com/stvmedia/media-portal/internal/filestore"
	"github.com/stvmedia/media-portal/internal/portal"
)

var (
	testDB      *pg.DB
	testService *MediaService
)

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "skipping rpc integration tests, test database is not available:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(0)
	}

	testDB = database

	manager := portal.NewManager(
		db.New(testDB),
		filestore.NewDisk(os.TempDir(), "http://localhost:3000/storage"),
	)
	testService = NewMediaService(manager)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestMediaService_Videos(t *testing.T) {
	ctx := context.Background()

	videos, err := testService.Videos(ctx, VideosFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, videos)

	for _, v := range videos {
		assert.NotZero(t, v.VideoID)
		assert.NotEmpty(t, v.Title)
		assert.Len(t, v.YoutubeID, 11)
	}
}

func TestMediaService_VideoByID(t *testing.T) {
	ctx := context.Background()

	videos, err := testService.Videos(ctx, VideosFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, videos)

	video, err := testService.VideoByID(ctx, ByIDRequest{ID: videos[0].VideoID})
	require.NoError(t, err)
	require.NotNil(t, video)
	assert.Equal(t, videos[0].VideoID, video.VideoID)

	_, err = testService.VideoByID(ctx, ByIDRequest{ID: 999999})
	var rpcErr *zenrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 404, rpcErr.Code)

	_, err = testService.VideoByID(ctx, ByIDRequest{ID: -1})
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 400, rpcErr.Code)
}

func TestMediaService_LatestVideo(t *testing.T) {
	video, err := testService.LatestVideo(context.Background(), LangRequest{})
	require.NoError(t, err)
	require.NotNil(t, video)
	assert.NotZero(t, video.VideoID)
}

func TestMediaService_Lists(t *testing.T) {
	ctx := context.Background()

	news, err := testService.News(ctx, NewsFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, news)

	categories, err := testService.Categories(ctx, LangRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	subjects, err := testService.Subjects(ctx, LangRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, subjects)

	pdfs, err := testService.PDFs(ctx, PDFsFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfs)

	supporters, err := testService.Supporters(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, supporters)
}
