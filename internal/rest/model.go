package rest

import "time"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Video struct {
	ID                   int        `json:"id"`
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
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"isFeatured"`
	PublishedAt time.Time `json:"publishedAt"`
}

type PDF struct {
	ID             int       `json:"id"`
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
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	WebsiteURL   *string `json:"websiteUrl,omitempty"`
	LogoURL      string  `json:"logoUrl,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
}

type Asset struct {
	Path      string `json:"path"`
	PublicURL string `json:"publicUrl"`
	Size      int64  `json:"size"`
}
