// Package youtube resolves user-supplied YouTube references into canonical
// 11-character video identifiers and builds thumbnail/embed URLs from them.
package youtube

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNoVideoID is returned when the input does not carry a recognizable
// video identifier. Callers should treat it as a validation failure.
var ErrNoVideoID = errors.New("no youtube video id in input")

// VideoID is a canonical 11-character YouTube video identifier.
type VideoID string

func (id VideoID) String() string { return string(id) }

// ThumbnailQuality selects a thumbnail rendition on img.youtube.com.
type ThumbnailQuality string

const (
	// QualityMaxRes is the default rendition. It is not generated for
	// every video, so callers that detect a broken image load should
	// retry with QualityHQ.
	QualityMaxRes ThumbnailQuality = "maxresdefault"
	QualityHQ     ThumbnailQuality = "hqdefault"
)

// patterns are tried in order, first match wins. Each one captures the
// 11-character id and tolerates trailing query parameters or path segments.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([A-Za-z0-9_-]{11})`),
}

// Resolve extracts the video id from any accepted URL shape: standard
// watch URLs, youtu.be short URLs, embed URLs and live URLs.
func Resolve(input string) (VideoID, error) {
	if input == "" {
		return "", ErrNoVideoID
	}

	for _, re := range patterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return VideoID(m[1]), nil
		}
	}

	return "", ErrNoVideoID
}

// IsValid reports whether input resolves to a video id.
func IsValid(input string) bool {
	_, err := Resolve(input)
	return err == nil
}

// ThumbnailURL builds the thumbnail resource URL for the given rendition.
// An empty quality falls back to QualityMaxRes.
func ThumbnailURL(id VideoID, quality ThumbnailQuality) string {
	if quality == "" {
		quality = QualityMaxRes
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality)
}

// EmbedURL builds a player embed URL with minimal branding. The autoplay
// parameter, when requested, precedes the fixed parameters.
func EmbedURL(id VideoID, autoplay bool) string {
	params := "rel=0&modestbranding=1"
	if autoplay {
		params = "autoplay=1&" + params
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?%s", id, params)
}
