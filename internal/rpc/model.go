package rpc

import (
	"time"

	"github.com/stvmedia/media-portal/internal/portal"
)

type VideosFilter struct {
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//subjectId optional subject filter
	SubjectID *int `json:"subjectId,omitempty"`
	//isFeatured optional featured filter
	IsFeatured *bool `json:"isFeatured,omitempty"`
	//limit maximum number of items
	Limit *int `json:"limit,omitempty"`
	//lang=pt response language
	Lang *string `json:"lang,omitempty"`
}

func (f VideosFilter) ToModel() portal.VideoFilter {
	filter := portal.VideoFilter{
		CategoryID: f.CategoryID,
		SubjectID:  f.SubjectID,
		Featured:   f.IsFeatured,
	}
	if f.Limit != nil {
		filter.Limit = *f.Limit
	}
	return filter
}

type NewsFilter struct {
	//isFeatured optional featured filter
	IsFeatured *bool `json:"isFeatured,omitempty"`
	//category optional category label filter
	Category *string `json:"category,omitempty"`
	//limit maximum number of items
	Limit *int `json:"limit,omitempty"`
	//lang=pt response language
	Lang *string `json:"lang,omitempty"`
}

func (f NewsFilter) ToModel() portal.NewsFilter {
	filter := portal.NewsFilter{
		Featured: f.IsFeatured,
		Category: f.Category,
	}
	if f.Limit != nil {
		filter.Limit = *f.Limit
	}
	return filter
}

type PDFsFilter struct {
	//subjectId optional subject filter
	SubjectID *int `json:"subjectId,omitempty"`
	//limit maximum number of items
	Limit *int `json:"limit,omitempty"`
	//lang=pt response language
	Lang *string `json:"lang,omitempty"`
}

func (f PDFsFilter) ToModel() portal.PDFFilter {
	filter := portal.PDFFilter{
		SubjectID: f.SubjectID,
	}
	if f.Limit != nil {
		filter.Limit = *f.Limit
	}
	return filter
}

type ByIDRequest struct {
	//id numeric record ID
	ID int `json:"id"`
	//lang=pt response language
	Lang *string `json:"lang,omitempty"`
}

type LangRequest struct {
	//lang=pt response language
	Lang *string `json:"lang,omitempty"`
}

func langOf(lang *string) portal.Lang {
	if lang == nil {
		return portal.DefaultLang
	}
	return portal.ParseLang(*lang)
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

type Subject struct {
	SubjectID int    `json:"subjectId"`
	Name      string `json:"name"`
}

type Video struct {
	VideoID              int        `json:"videoId"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	YoutubeID            string     `json:"youtubeId"`
	ThumbnailURL         string     `json:"thumbnailUrl"`
	FallbackThumbnailURL string     `json:"fallbackThumbnailUrl"`
	EmbedURL             string     `json:"embedUrl"`
	Category             *Category  `json:"category,omitempty"`
	Subject              *Subject   `json:"subject,omitempty"`
	IsFeatured           bool       `json:"isFeatured"`
	IsLive               bool       `json:"isLive"`
	LiveState            string     `json:"liveState"`
	LiveStartDate        *time.Time `json:"liveStartDate,omitempty"`
	LiveEndDate          *time.Time `json:"liveEndDate,omitempty"`
	PublishedAt          time.Time  `json:"publishedAt"`
}

type News struct {
	NewsID      int       `json:"newsId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"isFeatured"`
	PublishedAt time.Time `json:"publishedAt"`
}

type PDF struct {
	PDFID          int       `json:"pdfId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FileURL        string    `json:"fileUrl"`
	FileName       string    `json:"fileName"`
	FileSize       int64     `json:"fileSize"`
	Subject        *Subject  `json:"subject,omitempty"`
	DownloadsCount int       `json:"downloadsCount"`
	PublishedAt    time.Time `json:"publishedAt"`
}

type Supporter struct {
	SupporterID  int     `json:"supporterId"`
	Name         string  `json:"name"`
	WebsiteURL   *string `json:"websiteUrl,omitempty"`
	LogoURL      string  `json:"logoUrl,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
}
