package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	const want = VideoID("dQw4w9WgXcQ")

	tests := []struct {
		name  string
		input string
	}{
		{"WatchURL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"WatchURLWithExtraParams", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123"},
		{"WatchURLParamBeforeV", "https://www.youtube.com/watch?feature=shared&v=dQw4w9WgXcQ"},
		{"ShortURL", "https://youtu.be/dQw4w9WgXcQ"},
		{"ShortURLWithTimestamp", "https://youtu.be/dQw4w9WgXcQ?t=10"},
		{"EmbedURL", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"LiveURL", "https://www.youtube.com/live/dQw4w9WgXcQ"},
		{"LiveURLWithQuery", "https://www.youtube.com/live/dQw4w9WgXcQ?feature=shared"},
		{"NoScheme", "youtube.com/watch?v=dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, want, id)
		})
	}
}

func TestResolveRejectsUnrecognizedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"NotAURL", "not a url"},
		{"ChannelURL", "https://www.youtube.com/@somechannel"},
		{"PlaylistURL", "https://www.youtube.com/playlist?list=PL0123456789a"},
		{"TooShortID", "https://youtu.be/short"},
		{"BareID", "dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.input)
			assert.ErrorIs(t, err, ErrNoVideoID)
			assert.False(t, IsValid(tt.input))
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	id := VideoID("dQw4w9WgXcQ")

	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		ThumbnailURL(id, QualityMaxRes))
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		ThumbnailURL(id, QualityHQ))
	// empty quality falls back to the default rendition
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		ThumbnailURL(id, ""))
}

func TestEmbedURL(t *testing.T) {
	id := VideoID("dQw4w9WgXcQ")

	assert.Equal(t,
		"https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1",
		EmbedURL(id, false))
	assert.Equal(t,
		"https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&rel=0&modestbranding=1",
		EmbedURL(id, true))
}
