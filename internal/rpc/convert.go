package rpc

import (
	"time"

	"github.com/stvmedia/media-portal/internal/portal"
)

func NewCategory(c portal.Category, lang portal.Lang) Category {
	return Category{
		CategoryID: c.ID,
		Name:       c.Name(lang),
		Slug:       c.Slug,
	}
}

func NewSubject(s portal.Subject, lang portal.Lang) Subject {
	return Subject{
		SubjectID: s.ID,
		Name:      s.Name(lang),
	}
}

func NewVideo(v portal.Video, lang portal.Lang, now time.Time) Video {
	video := Video{
		VideoID:              v.ID,
		Title:                v.Title(lang),
		Description:          v.Description(lang),
		YoutubeID:            v.YoutubeID,
		ThumbnailURL:         v.ThumbnailURL(),
		FallbackThumbnailURL: v.FallbackThumbnailURL(),
		EmbedURL:             v.EmbedURL(false),
		IsFeatured:           v.IsFeatured,
		IsLive:               v.IsLive,
		LiveState:            v.LiveStateAt(now).String(),
		LiveStartDate:        v.LiveStartDate,
		LiveEndDate:          v.LiveEndDate,
		PublishedAt:          v.PublishedAt,
	}

	if v.Category != nil {
		category := NewCategory(*v.Category, lang)
		video.Category = &category
	}

	if v.Subject != nil {
		subject := NewSubject(*v.Subject, lang)
		video.Subject = &subject
	}

	return video
}

func NewNews(n portal.News, lang portal.Lang) News {
	return News{
		NewsID:      n.ID,
		Title:       n.Title(lang),
		Content:     n.Content(lang),
		ImageURL:    n.ImageURL,
		Category:    n.NewsArticle.Category,
		IsFeatured:  n.IsFeatured,
		PublishedAt: n.PublishedAt,
	}
}

func NewPDF(p portal.PDF, lang portal.Lang) PDF {
	pdf := PDF{
		PDFID:          p.ID,
		Title:          p.Title(lang),
		Description:    p.Description(lang),
		FileURL:        p.FileURL,
		FileName:       p.FileName,
		FileSize:       p.FileSize,
		DownloadsCount: p.DownloadsCount,
		PublishedAt:    p.PublishedAt,
	}

	if p.Subject != nil {
		subject := NewSubject(*p.Subject, lang)
		pdf.Subject = &subject
	}

	return pdf
}

func NewSupporter(s portal.Supporter) Supporter {
	return Supporter{
		SupporterID:  s.ID,
		Name:         s.Supporter.Name,
		WebsiteURL:   s.WebsiteURL,
		LogoURL:      s.LogoPublicURL,
		DisplayOrder: s.DisplayOrder,
	}
}
