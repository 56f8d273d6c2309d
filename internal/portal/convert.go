package portal

import "github.com/stvmedia/media-portal/internal/db"

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewSubject(s *db.Subject) Subject {
	return Subject{Subject: *s}
}

func NewVideo(v *db.Video) Video {
	video := Video{Video: *v}
	video.Video.Category = nil
	video.Video.Subject = nil

	if v.Category != nil {
		c := NewCategory(v.Category)
		video.Category = &c
	}

	if v.Subject != nil {
		s := NewSubject(v.Subject)
		video.Subject = &s
	}

	return video
}

func NewNews(n *db.NewsArticle) News {
	return News{NewsArticle: *n}
}

func NewPDF(p *db.PDFDocument) PDF {
	pdf := PDF{PDFDocument: *p}
	pdf.PDFDocument.Subject = nil

	if p.Subject != nil {
		s := NewSubject(p.Subject)
		pdf.Subject = &s
	}

	return pdf
}

func NewSupporter(s *db.Supporter, logoPublicURL string) Supporter {
	return Supporter{
		Supporter:     *s,
		LogoPublicURL: logoPublicURL,
	}
}
