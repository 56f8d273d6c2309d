package rpc

import (
	"context"
	"time"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/stvmedia/media-portal/internal/portal"
)

// MediaService provides read-only RPC access to the published content.
type MediaService struct {
	zenrpc.Service
	manager *portal.Manager
	now     func() time.Time
}

func NewMediaService(manager *portal.Manager) *MediaService {
	return &MediaService{
		manager: manager,
		now:     time.Now,
	}
}

// Videos retrieves videos with category and subject expanded, sorted by
// publishedAt DESC.
//
//zenrpc:filter optional filters and response language
//zenrpc:return list of videos
//zenrpc:500 internal server error
func (s *MediaService) Videos(ctx context.Context, filter VideosFilter) ([]Video, error) {
	videos, err := s.manager.Videos(ctx, filter.ToModel())
	if err != nil {
		return nil, err
	}

	return NewVideos(videos, langOf(filter.Lang), s.now()), nil
}

// LatestVideo returns the video for the home hero slot. An active live
// broadcast takes precedence over the most recent video.
//
//zenrpc:req response language
//zenrpc:return latest video, null when nothing is published
//zenrpc:500 internal server error
func (s *MediaService) LatestVideo(ctx context.Context, req LangRequest) (*Video, error) {
	video, err := s.manager.LatestVideo(ctx)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, nil
	}

	out := NewVideo(*video, langOf(req.Lang), s.now())
	return &out, nil
}

// VideoByID retrieves a single video by ID.
//
//zenrpc:req record id and response language
//zenrpc:return video
//zenrpc:400 id must be positive
//zenrpc:404 video not found
//zenrpc:500 internal server error
func (s *MediaService) VideoByID(ctx context.Context, req ByIDRequest) (*Video, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	video, err := s.manager.VideoByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, zenrpc.NewStringError(404, "video not found")
	}

	out := NewVideo(*video, langOf(req.Lang), s.now())
	return &out, nil
}

// News retrieves articles sorted by publishedAt DESC.
//
//zenrpc:filter optional filters and response language
//zenrpc:return list of news articles
//zenrpc:500 internal server error
func (s *MediaService) News(ctx context.Context, filter NewsFilter) ([]News, error) {
	news, err := s.manager.News(ctx, filter.ToModel())
	if err != nil {
		return nil, err
	}

	return NewNewsList(news, langOf(filter.Lang)), nil
}

// NewsByID retrieves a single article by ID.
//
//zenrpc:req record id and response language
//zenrpc:return news article
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *MediaService) NewsByID(ctx context.Context, req ByIDRequest) (*News, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	article, err := s.manager.NewsByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	out := NewNews(*article, langOf(req.Lang))
	return &out, nil
}

// Categories retrieves all categories sorted alphabetically.
//
//zenrpc:req response language
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *MediaService) Categories(ctx context.Context, req LangRequest) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories, langOf(req.Lang)), nil
}

// Subjects retrieves all subjects sorted alphabetically.
//
//zenrpc:req response language
//zenrpc:return list of subjects
//zenrpc:500 internal server error
func (s *MediaService) Subjects(ctx context.Context, req LangRequest) ([]Subject, error) {
	subjects, err := s.manager.Subjects(ctx)
	if err != nil {
		return nil, err
	}

	return NewSubjects(subjects, langOf(req.Lang)), nil
}

// PDFs retrieves documents with subject expanded, sorted by publishedAt
// DESC.
//
//zenrpc:filter optional filters and response language
//zenrpc:return list of documents
//zenrpc:500 internal server error
func (s *MediaService) PDFs(ctx context.Context, filter PDFsFilter) ([]PDF, error) {
	pdfs, err := s.manager.PDFs(ctx, filter.ToModel())
	if err != nil {
		return nil, err
	}

	return NewPDFs(pdfs, langOf(filter.Lang)), nil
}

// Supporters retrieves active supporters sorted by display order.
//
//zenrpc:return list of active supporters
//zenrpc:500 internal server error
func (s *MediaService) Supporters(ctx context.Context) ([]Supporter, error) {
	supporters, err := s.manager.Supporters(ctx, true)
	if err != nil {
		return nil, err
	}

	return NewSupporters(supporters), nil
}
