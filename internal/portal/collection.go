package portal

import "github.com/stvmedia/media-portal/internal/db"

type (
	VideoList  []Video
	NewsList   []News
	PDFList    []PDF
	Categories []Category
	Subjects   []Subject
	Supporters []Supporter
)

func NewVideoList(in []db.Video) VideoList {
	out := make(VideoList, len(in))
	for i := range in {
		out[i] = NewVideo(&in[i])
	}
	return out
}

func NewNewsList(in []db.NewsArticle) NewsList {
	out := make(NewsList, len(in))
	for i := range in {
		out[i] = NewNews(&in[i])
	}
	return out
}

func NewPDFList(in []db.PDFDocument) PDFList {
	out := make(PDFList, len(in))
	for i := range in {
		out[i] = NewPDF(&in[i])
	}
	return out
}

func NewCategories(in []db.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(&in[i])
	}
	return out
}

func NewSubjects(in []db.Subject) Subjects {
	out := make(Subjects, len(in))
	for i := range in {
		out[i] = NewSubject(&in[i])
	}
	return out
}
