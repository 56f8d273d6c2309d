package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stvmedia/media-portal/internal/db"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		input string
		want  Lang
	}{
		{"pt", LangPT},
		{"en", LangEN},
		{"es", LangES},
		{"EN", LangEN},
		{" es ", LangES},
		{"fr", DefaultLang},
		{"", DefaultLang},
		{"pt-BR", DefaultLang},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLang(tt.input), "input %q", tt.input)
	}
}

func TestTextIn(t *testing.T) {
	txt := newText("Olá", "", "Hola")

	// active language present and non-empty
	assert.Equal(t, "Hola", txt.In(LangES))
	assert.Equal(t, "Olá", txt.In(LangPT))
	// empty active-language value falls back to pt, never to es
	assert.Equal(t, "Olá", txt.In(LangEN))
	// unknown language behaves like a missing translation
	assert.Equal(t, "Olá", txt.In(Lang("de")))
}

func TestVideoLocalization(t *testing.T) {
	video := NewVideo(&db.Video{
		TitlePT:       "Introdução",
		TitleEN:       "Introduction",
		DescriptionPT: "Primeira aula",
		Category: &db.Category{
			NamePT: "Aulas",
			NameEN: "Classes",
		},
	})

	assert.Equal(t, "Introduction", video.Title(LangEN))
	assert.Equal(t, "Introdução", video.Title(LangES))
	assert.Equal(t, "Primeira aula", video.Description(LangEN))

	// nested relation resolves with the same rule
	assert.Equal(t, "Classes", video.CategoryName(LangEN))
	assert.Equal(t, "Aulas", video.CategoryName(LangES))
	assert.Equal(t, "", video.SubjectName(LangEN))
}

func TestVideoDerivedURLs(t *testing.T) {
	video := NewVideo(&db.Video{YoutubeID: "dQw4w9WgXcQ"})

	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", video.ThumbnailURL())
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", video.FallbackThumbnailURL())
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1", video.EmbedURL(false))
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&rel=0&modestbranding=1", video.EmbedURL(true))
}
