package portal

import (
	"context"
	"fmt"
	"time"

	"github.com/stvmedia/media-portal/internal/db"
)

// NewsFilter composes the optional predicates of the public news list.
type NewsFilter struct {
	Featured *bool
	Category *string
	Limit    int
}

// News retrieves articles sorted by published_at DESC.
func (m *Manager) News(ctx context.Context, filter NewsFilter) (NewsList, error) {
	dbNews, err := m.db.News(ctx, db.NewsFilter{
		Featured: filter.Featured,
		Category: filter.Category,
		Limit:    filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	return NewNewsList(dbNews), nil
}

func (m *Manager) NewsByID(ctx context.Context, newsID int) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	article := NewNews(dbNews)
	return &article, nil
}

type NewsDraft struct {
	TitlePT     string `validate:"required"`
	TitleEN     string
	TitleES     string
	ContentPT   string `validate:"required"`
	ContentEN   string
	ContentES   string
	ImageURL    *string
	Category    string
	IsFeatured  bool
	PublishedAt *time.Time
}

func (draft NewsDraft) apply(article *db.NewsArticle) {
	article.TitlePT = draft.TitlePT
	article.TitleEN = draft.TitleEN
	article.TitleES = draft.TitleES
	article.ContentPT = draft.ContentPT
	article.ContentEN = draft.ContentEN
	article.ContentES = draft.ContentES
	article.ImageURL = draft.ImageURL
	article.Category = draft.Category
	article.IsFeatured = draft.IsFeatured

	if draft.PublishedAt != nil {
		article.PublishedAt = *draft.PublishedAt
	}
}

func (m *Manager) CreateNews(ctx context.Context, draft NewsDraft, createdBy string) (*News, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	dbNews := &db.NewsArticle{
		PublishedAt: m.now(),
		CreatedBy:   createdBy,
	}
	draft.apply(dbNews)

	if err := m.db.CreateNews(ctx, dbNews); err != nil {
		return nil, fmt.Errorf("db create news: %w", err)
	}

	article := NewNews(dbNews)
	return &article, nil
}

func (m *Manager) UpdateNews(ctx context.Context, newsID int, draft NewsDraft) (*News, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	existing, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	draft.apply(existing)

	updated, err := m.db.UpdateNews(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("db update news: %w", err)
	} else if updated == nil {
		return nil, ErrNotFound
	}

	article := NewNews(updated)
	return &article, nil
}

func (m *Manager) DeleteNews(ctx context.Context, newsID int) error {
	found, err := m.db.DeleteNews(ctx, newsID)
	if err != nil {
		return fmt.Errorf("db delete news: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}
