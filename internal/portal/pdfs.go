package portal

import (
	"context"
	"fmt"
	"time"

	"github.com/stvmedia/media-portal/internal/db"
)

// PDFFilter composes the optional predicates of the document library list.
type PDFFilter struct {
	SubjectID *int
	Limit     int
}

// PDFs retrieves documents with subject expanded, sorted by
// published_at DESC.
func (m *Manager) PDFs(ctx context.Context, filter PDFFilter) (PDFList, error) {
	dbPDFs, err := m.db.PDFs(ctx, db.PDFFilter{
		SubjectID: filter.SubjectID,
		Limit:     filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("db get pdfs: %w", err)
	}

	return NewPDFList(dbPDFs), nil
}

func (m *Manager) PDFByID(ctx context.Context, pdfID int) (*PDF, error) {
	dbPDF, err := m.db.PDFByID(ctx, pdfID)
	if err != nil {
		return nil, fmt.Errorf("db get pdf by id: %w", err)
	} else if dbPDF == nil {
		return nil, nil
	}

	pdf := NewPDF(dbPDF)
	return &pdf, nil
}

// IncrementDownloads bumps the download counter. At-least-once semantics:
// a double click may count twice, which is tolerated.
func (m *Manager) IncrementDownloads(ctx context.Context, pdfID int) error {
	found, err := m.db.IncrementPDFDownloads(ctx, pdfID)
	if err != nil {
		return fmt.Errorf("db increment pdf downloads: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}

type PDFDraft struct {
	TitlePT       string `validate:"required"`
	TitleEN       string
	TitleES       string
	DescriptionPT string
	DescriptionEN string
	DescriptionES string
	FileURL       string `validate:"required"`
	FileName      string `validate:"required"`
	FileSize      int64
	SubjectID     *int
	PublishedAt   *time.Time
}

func (draft PDFDraft) apply(pdf *db.PDFDocument) {
	pdf.TitlePT = draft.TitlePT
	pdf.TitleEN = draft.TitleEN
	pdf.TitleES = draft.TitleES
	pdf.DescriptionPT = draft.DescriptionPT
	pdf.DescriptionEN = draft.DescriptionEN
	pdf.DescriptionES = draft.DescriptionES
	pdf.FileURL = draft.FileURL
	pdf.FileName = draft.FileName
	pdf.FileSize = draft.FileSize
	pdf.SubjectID = draft.SubjectID

	if draft.PublishedAt != nil {
		pdf.PublishedAt = *draft.PublishedAt
	}
}

func (m *Manager) CreatePDF(ctx context.Context, draft PDFDraft) (*PDF, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	dbPDF := &db.PDFDocument{
		PublishedAt: m.now(),
	}
	draft.apply(dbPDF)

	if err := m.db.CreatePDF(ctx, dbPDF); err != nil {
		return nil, fmt.Errorf("db create pdf: %w", err)
	}

	pdf := NewPDF(dbPDF)
	return &pdf, nil
}

func (m *Manager) UpdatePDF(ctx context.Context, pdfID int, draft PDFDraft) (*PDF, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	existing, err := m.db.PDFByID(ctx, pdfID)
	if err != nil {
		return nil, fmt.Errorf("db get pdf by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	draft.apply(existing)

	updated, err := m.db.UpdatePDF(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("db update pdf: %w", err)
	} else if updated == nil {
		return nil, ErrNotFound
	}

	pdf := NewPDF(updated)
	return &pdf, nil
}

func (m *Manager) DeletePDF(ctx context.Context, pdfID int) error {
	found, err := m.db.DeletePDF(ctx, pdfID)
	if err != nil {
		return fmt.Errorf("db delete pdf: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}
