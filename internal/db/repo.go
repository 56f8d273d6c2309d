package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// Repository is the typed query layer over the backing store. Lookups that
// find nothing return (nil, nil); callers decide whether that is an error.
type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
	}

	return nil
}

// VideoFilter composes optional server-side predicates for video queries.
type VideoFilter struct {
	CategoryID *int
	SubjectID  *int
	Featured   *bool
	Limit      int
}

// Videos retrieves videos with category and subject expanded,
// sorted by published_at DESC.
func (r *Repository) Videos(ctx context.Context, filter VideoFilter) ([]Video, error) {
	var videos []Video
	query := r.db.ModelContext(ctx, &videos).
		Relation("Category").
		Relation("Subject")

	if filter.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *filter.CategoryID)
	}

	if filter.SubjectID != nil {
		query = query.Where(`"t"."subject_id" = ?`, *filter.SubjectID)
	}

	if filter.Featured != nil {
		query = query.Where(`"t"."is_featured" = ?`, *filter.Featured)
	}

	query = query.OrderExpr(`"t"."published_at" DESC`)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}

	return videos, nil
}

func (r *Repository) VideoByID(ctx context.Context, videoID int) (*Video, error) {
	video := &Video{}
	err := r.db.ModelContext(ctx, video).
		Relation("Category").
		Relation("Subject").
		Where(`"t"."id" = ?`, videoID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}

	return video, nil
}

// LatestPublishedVideo returns the chronologically most recent video.
func (r *Repository) LatestPublishedVideo(ctx context.Context) (*Video, error) {
	video := &Video{}
	err := r.db.ModelContext(ctx, video).
		Relation("Category").
		OrderExpr(`"t"."published_at" DESC`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest video: %w", err)
	}

	return video, nil
}

// ActiveLiveVideos returns videos whose live window contains now,
// most recently started first.
func (r *Repository) ActiveLiveVideos(ctx context.Context, now time.Time) ([]Video, error) {
	var videos []Video
	err := r.db.ModelContext(ctx, &videos).
		Relation("Category").
		Where(`"t"."is_live" = TRUE`).
		Where(`"t"."live_start_date" <= ?`, now).
		Where(`"t"."live_end_date" >= ?`, now).
		OrderExpr(`"t"."live_start_date" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query active live videos: %w", err)
	}

	return videos, nil
}

func (r *Repository) CreateVideo(ctx context.Context, video *Video) error {
	if _, err := r.db.ModelContext(ctx, video).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}

	return nil
}

func (r *Repository) UpdateVideo(ctx context.Context, video *Video) (*Video, error) {
	res, err := r.db.ModelContext(ctx, video).WherePK().Returning("*").Update()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return video, nil
}

func (r *Repository) DeleteVideo(ctx context.Context, videoID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Video)(nil)).
		Where(`"t"."id" = ?`, videoID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete video: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// NewsFilter composes optional server-side predicates for news queries.
type NewsFilter struct {
	Featured *bool
	Category *string
	Limit    int
}

// News retrieves news articles sorted by published_at DESC.
func (r *Repository) News(ctx context.Context, filter NewsFilter) ([]NewsArticle, error) {
	var news []NewsArticle
	query := r.db.ModelContext(ctx, &news)

	if filter.Featured != nil {
		query = query.Where(`"t"."is_featured" = ?`, *filter.Featured)
	}

	if filter.Category != nil {
		query = query.Where(`"t"."category" = ?`, *filter.Category)
	}

	query = query.OrderExpr(`"t"."published_at" DESC`)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsByID(ctx context.Context, newsID int) (*NewsArticle, error) {
	article := &NewsArticle{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."id" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return article, nil
}

func (r *Repository) CreateNews(ctx context.Context, article *NewsArticle) error {
	if _, err := r.db.ModelContext(ctx, article).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

func (r *Repository) UpdateNews(ctx context.Context, article *NewsArticle) (*NewsArticle, error) {
	res, err := r.db.ModelContext(ctx, article).WherePK().Returning("*").Update()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}

	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return article, nil
}

func (r *Repository) DeleteNews(ctx context.Context, newsID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*NewsArticle)(nil)).
		Where(`"t"."id" = ?`, newsID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// PDFFilter composes optional server-side predicates for document queries.
type PDFFilter struct {
	SubjectID *int
	Limit     int
}

// PDFs retrieves documents with subject expanded, sorted by published_at DESC.
func (r *Repository) PDFs(ctx context.Context, filter PDFFilter) ([]PDFDocument, error) {
	var pdfs []PDFDocument
	query := r.db.ModelContext(ctx, &pdfs).
		Relation("Subject")

	if filter.SubjectID != nil {
		query = query.Where(`"t"."subject_id" = ?`, *filter.SubjectID)
	}

	query = query.OrderExpr(`"t"."published_at" DESC`)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query pdfs: %w", err)
	}

	return pdfs, nil
}

func (r *Repository) PDFByID(ctx context.Context, pdfID int) (*PDFDocument, error) {
	pdf := &PDFDocument{}
	err := r.db.ModelContext(ctx, pdf).
		Relation("Subject").
		Where(`"t"."id" = ?`, pdfID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get pdf by id: %w", err)
	}

	return pdf, nil
}

func (r *Repository) CreatePDF(ctx context.Context, pdf *PDFDocument) error {
	if _, err := r.db.ModelContext(ctx, pdf).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert pdf: %w", err)
	}

	return nil
}

func (r *Repository) UpdatePDF(ctx context.Context, pdf *PDFDocument) (*PDFDocument, error) {
	res, err := r.db.ModelContext(ctx, pdf).WherePK().Returning("*").Update()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to update pdf: %w", err)
	}

	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return pdf, nil
}

func (r *Repository) DeletePDF(ctx context.Context, pdfID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*PDFDocument)(nil)).
		Where(`"t"."id" = ?`, pdfID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete pdf: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementPDFDownloads bumps the download counter in place. Sequential
// calls never lose updates because the increment happens server-side.
func (r *Repository) IncrementPDFDownloads(ctx context.Context, pdfID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*PDFDocument)(nil)).
		Set(`"downloads_count" = "downloads_count" + 1`).
		Where(`"t"."id" = ?`, pdfID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to increment pdf downloads: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Categories retrieves all categories sorted alphabetically by name_pt.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"name_pt" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."id" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."id" = ?`, categoryID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Subjects retrieves all subjects sorted alphabetically by name_pt.
func (r *Repository) Subjects(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	err := r.db.ModelContext(ctx, &subjects).
		OrderExpr(`"name_pt" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}

	return subjects, nil
}

func (r *Repository) SubjectByID(ctx context.Context, subjectID int) (*Subject, error) {
	subject := &Subject{}
	err := r.db.ModelContext(ctx, subject).
		Where(`"t"."id" = ?`, subjectID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get subject by id: %w", err)
	}

	return subject, nil
}

func (r *Repository) CreateSubject(ctx context.Context, subject *Subject) error {
	if _, err := r.db.ModelContext(ctx, subject).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert subject: %w", err)
	}

	return nil
}

func (r *Repository) DeleteSubject(ctx context.Context, subjectID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Subject)(nil)).
		Where(`"t"."id" = ?`, subjectID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete subject: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// SupporterFilter narrows supporter queries to active rows only.
type SupporterFilter struct {
	ActiveOnly bool
}

// Supporters retrieves supporters sorted by display_order ASC,
// insertion order breaking ties.
func (r *Repository) Supporters(ctx context.Context, filter SupporterFilter) ([]Supporter, error) {
	var supporters []Supporter
	query := r.db.ModelContext(ctx, &supporters)

	if filter.ActiveOnly {
		query = query.Where(`"t"."is_active" = TRUE`)
	}

	err := query.
		OrderExpr(`"t"."display_order" ASC, "t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query supporters: %w", err)
	}

	return supporters, nil
}

func (r *Repository) SupporterByID(ctx context.Context, supporterID int) (*Supporter, error) {
	supporter := &Supporter{}
	err := r.db.ModelContext(ctx, supporter).
		Where(`"t"."id" = ?`, supporterID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get supporter by id: %w", err)
	}

	return supporter, nil
}

func (r *Repository) CreateSupporter(ctx context.Context, supporter *Supporter) error {
	if _, err := r.db.ModelContext(ctx, supporter).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert supporter: %w", err)
	}

	return nil
}

func (r *Repository) UpdateSupporter(ctx context.Context, supporter *Supporter) (*Supporter, error) {
	res, err := r.db.ModelContext(ctx, supporter).WherePK().Returning("*").Update()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to update supporter: %w", err)
	}

	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return supporter, nil
}

func (r *Repository) DeleteSupporter(ctx context.Context, supporterID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Supporter)(nil)).
		Where(`"t"."id" = ?`, supporterID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete supporter: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
