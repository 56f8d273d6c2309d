// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, NamePT, NameEN, NameES, Slug string
	}
	NewsArticle struct {
		ID, TitlePT, TitleEN, TitleES, ContentPT, ContentEN, ContentES,
		ImageURL, Category, IsFeatured, PublishedAt, CreatedBy string
	}
	PDFDocument struct {
		ID, TitlePT, TitleEN, TitleES, DescriptionPT, DescriptionEN, DescriptionES,
		FileURL, FileName, FileSize, SubjectID, DownloadsCount, PublishedAt string

		Subject string
	}
	Subject struct {
		ID, NamePT, NameEN, NameES, CreatedBy string
	}
	Supporter struct {
		ID, Name, WebsiteURL, LogoPath, DisplayOrder, IsActive string
	}
	Video struct {
		ID, TitlePT, TitleEN, TitleES, DescriptionPT, DescriptionEN, DescriptionES,
		YoutubeID, CategoryID, SubjectID, IsFeatured, IsLive,
		LiveStartDate, LiveEndDate, PublishedAt, CreatedBy string

		Category, Subject string
	}
}{
	Category: struct {
		ID, NamePT, NameEN, NameES, Slug string
	}{
		ID:     "id",
		NamePT: "name_pt",
		NameEN: "name_en",
		NameES: "name_es",
		Slug:   "slug",
	},
	NewsArticle: struct {
		ID, TitlePT, TitleEN, TitleES, ContentPT, ContentEN, ContentES,
		ImageURL, Category, IsFeatured, PublishedAt, CreatedBy string
	}{
		ID:          "id",
		TitlePT:     "title_pt",
		TitleEN:     "title_en",
		TitleES:     "title_es",
		ContentPT:   "content_pt",
		ContentEN:   "content_en",
		ContentES:   "content_es",
		ImageURL:    "image_url",
		Category:    "category",
		IsFeatured:  "is_featured",
		PublishedAt: "published_at",
		CreatedBy:   "created_by",
	},
	PDFDocument: struct {
		ID, TitlePT, TitleEN, TitleES, DescriptionPT, DescriptionEN, DescriptionES,
		FileURL, FileName, FileSize, SubjectID, DownloadsCount, PublishedAt string

		Subject string
	}{
		ID:             "id",
		TitlePT:        "title_pt",
		TitleEN:        "title_en",
		TitleES:        "title_es",
		DescriptionPT:  "description_pt",
		DescriptionEN:  "description_en",
		DescriptionES:  "description_es",
		FileURL:        "file_url",
		FileName:       "file_name",
		FileSize:       "file_size",
		SubjectID:      "subject_id",
		DownloadsCount: "downloads_count",
		PublishedAt:    "published_at",

		Subject: "Subject",
	},
	Subject: struct {
		ID, NamePT, NameEN, NameES, CreatedBy string
	}{
		ID:        "id",
		NamePT:    "name_pt",
		NameEN:    "name_en",
		NameES:    "name_es",
		CreatedBy: "created_by",
	},
	Supporter: struct {
		ID, Name, WebsiteURL, LogoPath, DisplayOrder, IsActive string
	}{
		ID:           "id",
		Name:         "name",
		WebsiteURL:   "website_url",
		LogoPath:     "logo_path",
		DisplayOrder: "display_order",
		IsActive:     "is_active",
	},
	Video: struct {
		ID, TitlePT, TitleEN, TitleES, DescriptionPT, DescriptionEN, DescriptionES,
		YoutubeID, CategoryID, SubjectID, IsFeatured, IsLive,
		LiveStartDate, LiveEndDate, PublishedAt, CreatedBy string

		Category, Subject string
	}{
		ID:            "id",
		TitlePT:       "title_pt",
		TitleEN:       "title_en",
		TitleES:       "title_es",
		DescriptionPT: "description_pt",
		DescriptionEN: "description_en",
		DescriptionES: "description_es",
		YoutubeID:     "youtube_id",
		CategoryID:    "category_id",
		SubjectID:     "subject_id",
		IsFeatured:    "is_featured",
		IsLive:        "is_live",
		LiveStartDate: "live_start_date",
		LiveEndDate:   "live_end_date",
		PublishedAt:   "published_at",
		CreatedBy:     "created_by",

		Category: "Category",
		Subject:  "Subject",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	NewsArticle struct {
		Name, Alias string
	}
	PDFDocument struct {
		Name, Alias string
	}
	Subject struct {
		Name, Alias string
	}
	Supporter struct {
		Name, Alias string
	}
	Video struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	NewsArticle: struct {
		Name, Alias string
	}{
		Name:  "news_articles",
		Alias: "t",
	},
	PDFDocument: struct {
		Name, Alias string
	}{
		Name:  "pdfs",
		Alias: "t",
	},
	Subject: struct {
		Name, Alias string
	}{
		Name:  "subjects",
		Alias: "t",
	},
	Supporter: struct {
		Name, Alias string
	}{
		Name:  "supporters",
		Alias: "t",
	},
	Video: struct {
		Name, Alias string
	}{
		Name:  "videos",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID     int    `pg:"id,pk"`
	NamePT string `pg:"name_pt,use_zero"`
	NameEN string `pg:"name_en,use_zero"`
	NameES string `pg:"name_es,use_zero"`
	Slug   string `pg:"slug,use_zero"`
}

type NewsArticle struct {
	tableName struct{} `pg:"news_articles,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	TitlePT     string    `pg:"title_pt,use_zero"`
	TitleEN     string    `pg:"title_en,use_zero"`
	TitleES     string    `pg:"title_es,use_zero"`
	ContentPT   string    `pg:"content_pt,use_zero"`
	ContentEN   string    `pg:"content_en,use_zero"`
	ContentES   string    `pg:"content_es,use_zero"`
	ImageURL    *string   `pg:"image_url"`
	Category    string    `pg:"category,use_zero"`
	IsFeatured  bool      `pg:"is_featured,use_zero"`
	PublishedAt time.Time `pg:"published_at,use_zero"`
	CreatedBy   string    `pg:"created_by,use_zero"`
}

type PDFDocument struct {
	tableName struct{} `pg:"pdfs,alias:t,discard_unknown_columns"`

	ID             int       `pg:"id,pk"`
	TitlePT        string    `pg:"title_pt,use_zero"`
	TitleEN        string    `pg:"title_en,use_zero"`
	TitleES        string    `pg:"title_es,use_zero"`
	DescriptionPT  string    `pg:"description_pt,use_zero"`
	DescriptionEN  string    `pg:"description_en,use_zero"`
	DescriptionES  string    `pg:"description_es,use_zero"`
	FileURL        string    `pg:"file_url,use_zero"`
	FileName       string    `pg:"file_name,use_zero"`
	FileSize       int64     `pg:"file_size,use_zero"`
	SubjectID      *int      `pg:"subject_id"`
	DownloadsCount int       `pg:"downloads_count,use_zero"`
	PublishedAt    time.Time `pg:"published_at,use_zero"`

	Subject *Subject `pg:"fk:subject_id,rel:has-one"`
}

type Subject struct {
	tableName struct{} `pg:"subjects,alias:t,discard_unknown_columns"`

	ID        int    `pg:"id,pk"`
	NamePT    string `pg:"name_pt,use_zero"`
	NameEN    string `pg:"name_en,use_zero"`
	NameES    string `pg:"name_es,use_zero"`
	CreatedBy string `pg:"created_by,use_zero"`
}

type Supporter struct {
	tableName struct{} `pg:"supporters,alias:t,discard_unknown_columns"`

	ID           int     `pg:"id,pk"`
	Name         string  `pg:"name,use_zero"`
	WebsiteURL   *string `pg:"website_url"`
	LogoPath     string  `pg:"logo_path,use_zero"`
	DisplayOrder int     `pg:"display_order,use_zero"`
	IsActive     bool    `pg:"is_active,use_zero"`
}

type Video struct {
	tableName struct{} `pg:"videos,alias:t,discard_unknown_columns"`

	ID            int        `pg:"id,pk"`
	TitlePT       string     `pg:"title_pt,use_zero"`
	TitleEN       string     `pg:"title_en,use_zero"`
	TitleES       string     `pg:"title_es,use_zero"`
	DescriptionPT string     `pg:"description_pt,use_zero"`
	DescriptionEN string     `pg:"description_en,use_zero"`
	DescriptionES string     `pg:"description_es,use_zero"`
	YoutubeID     string     `pg:"youtube_id,use_zero"`
	CategoryID    *int       `pg:"category_id"`
	SubjectID     *int       `pg:"subject_id"`
	IsFeatured    bool       `pg:"is_featured,use_zero"`
	IsLive        bool       `pg:"is_live,use_zero"`
	LiveStartDate *time.Time `pg:"live_start_date"`
	LiveEndDate   *time.Time `pg:"live_end_date"`
	PublishedAt   time.Time  `pg:"published_at,use_zero"`
	CreatedBy     string     `pg:"created_by,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	Subject  *Subject  `pg:"fk:subject_id,rel:has-one"`
}
