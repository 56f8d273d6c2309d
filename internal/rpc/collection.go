package rpc

import (
	"time"

	"github.com/stvmedia/media-portal/internal/portal"
)

func NewVideos(in portal.VideoList, lang portal.Lang, now time.Time) []Video {
	out := make([]Video, len(in))
	for i := range in {
		out[i] = NewVideo(in[i], lang, now)
	}
	return out
}

func NewNewsList(in portal.NewsList, lang portal.Lang) []News {
	out := make([]News, len(in))
	for i := range in {
		out[i] = NewNews(in[i], lang)
	}
	return out
}

func NewPDFs(in portal.PDFList, lang portal.Lang) []PDF {
	out := make([]PDF, len(in))
	for i := range in {
		out[i] = NewPDF(in[i], lang)
	}
	return out
}

func NewCategories(in portal.Categories, lang portal.Lang) []Category {
	out := make([]Category, len(in))
	for i := range in {
		out[i] = NewCategory(in[i], lang)
	}
	return out
}

func NewSubjects(in portal.Subjects, lang portal.Lang) []Subject {
	out := make([]Subject, len(in))
	for i := range in {
		out[i] = NewSubject(in[i], lang)
	}
	return out
}

func NewSupporters(in portal.Supporters) []Supporter {
	out := make([]Supporter, len(in))
	for i := range in {
		out[i] = NewSupporter(in[i])
	}
	return out
}
