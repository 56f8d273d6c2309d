package portal

import (
	"github.com/stvmedia/media-portal/internal/db"
	"github.com/stvmedia/media-portal/internal/youtube"
)

type Category struct {
	db.Category
}

// Name resolves the localized category name.
func (c *Category) Name(lang Lang) string {
	return newText(c.NamePT, c.NameEN, c.NameES).In(lang)
}

type Subject struct {
	db.Subject
}

func (s *Subject) Name(lang Lang) string {
	return newText(s.NamePT, s.NameEN, s.NameES).In(lang)
}

type Video struct {
	db.Video
	Category *Category
	Subject  *Subject
}

func (v *Video) Title(lang Lang) string {
	return newText(v.TitlePT, v.TitleEN, v.TitleES).In(lang)
}

func (v *Video) Description(lang Lang) string {
	return newText(v.DescriptionPT, v.DescriptionEN, v.DescriptionES).In(lang)
}

// CategoryName resolves the related category name with the same fallback
// rule; empty when the video has no category.
func (v *Video) CategoryName(lang Lang) string {
	if v.Category == nil {
		return ""
	}
	return v.Category.Name(lang)
}

func (v *Video) SubjectName(lang Lang) string {
	if v.Subject == nil {
		return ""
	}
	return v.Subject.Name(lang)
}

// ThumbnailURL is the default high-resolution thumbnail.
func (v *Video) ThumbnailURL() string {
	return youtube.ThumbnailURL(youtube.VideoID(v.YoutubeID), youtube.QualityMaxRes)
}

// FallbackThumbnailURL is the lower-resolution rendition for callers that
// detect a broken default thumbnail.
func (v *Video) FallbackThumbnailURL() string {
	return youtube.ThumbnailURL(youtube.VideoID(v.YoutubeID), youtube.QualityHQ)
}

func (v *Video) EmbedURL(autoplay bool) string {
	return youtube.EmbedURL(youtube.VideoID(v.YoutubeID), autoplay)
}

type News struct {
	db.NewsArticle
}

func (n *News) Title(lang Lang) string {
	return newText(n.TitlePT, n.TitleEN, n.TitleES).In(lang)
}

func (n *News) Content(lang Lang) string {
	return newText(n.ContentPT, n.ContentEN, n.ContentES).In(lang)
}

type PDF struct {
	db.PDFDocument
	Subject *Subject
}

func (p *PDF) Title(lang Lang) string {
	return newText(p.TitlePT, p.TitleEN, p.TitleES).In(lang)
}

func (p *PDF) Description(lang Lang) string {
	return newText(p.DescriptionPT, p.DescriptionEN, p.DescriptionES).In(lang)
}

func (p *PDF) SubjectName(lang Lang) string {
	if p.Subject == nil {
		return ""
	}
	return p.Subject.Name(lang)
}

type Supporter struct {
	db.Supporter

	// LogoPublicURL is resolved from logo_path at read time.
	LogoPublicURL string
}
