package portal

import (
	"context"
	"fmt"
	"regexp"

	"github.com/stvmedia/media-portal/internal/db"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Categories retrieves all categories sorted alphabetically by the
// default-language name.
func (m *Manager) Categories(ctx context.Context) (Categories, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	dbCategory, err := m.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if dbCategory == nil {
		return nil, nil
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	dbCategory, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if dbCategory == nil {
		return nil, nil
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

type CategoryDraft struct {
	NamePT string `validate:"required"`
	NameEN string
	NameES string
	Slug   string `validate:"required"`
}

func (m *Manager) CreateCategory(ctx context.Context, draft CategoryDraft) (*Category, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	if !slugRe.MatchString(draft.Slug) {
		return nil, newValidationError("Slug", "must be lowercase letters, digits and dashes")
	}

	dbCategory := &db.Category{
		NamePT: draft.NamePT,
		NameEN: draft.NameEN,
		NameES: draft.NameES,
		Slug:   draft.Slug,
	}

	if err := m.db.CreateCategory(ctx, dbCategory); err != nil {
		return nil, fmt.Errorf("db create category: %w", err)
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, categoryID int) error {
	found, err := m.db.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("db delete category: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}

// Subjects retrieves all subjects sorted alphabetically by the
// default-language name.
func (m *Manager) Subjects(ctx context.Context) (Subjects, error) {
	list, err := m.db.Subjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get subjects: %w", err)
	}

	return NewSubjects(list), nil
}

func (m *Manager) SubjectByID(ctx context.Context, subjectID int) (*Subject, error) {
	dbSubject, err := m.db.SubjectByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("db get subject by id: %w", err)
	} else if dbSubject == nil {
		return nil, nil
	}

	subject := NewSubject(dbSubject)
	return &subject, nil
}

type SubjectDraft struct {
	NamePT string `validate:"required"`
	NameEN string
	NameES string
}

func (m *Manager) CreateSubject(ctx context.Context, draft SubjectDraft, createdBy string) (*Subject, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	dbSubject := &db.Subject{
		NamePT:    draft.NamePT,
		NameEN:    draft.NameEN,
		NameES:    draft.NameES,
		CreatedBy: createdBy,
	}

	if err := m.db.CreateSubject(ctx, dbSubject); err != nil {
		return nil, fmt.Errorf("db create subject: %w", err)
	}

	subject := NewSubject(dbSubject)
	return &subject, nil
}

func (m *Manager) DeleteSubject(ctx context.Context, subjectID int) error {
	found, err := m.db.DeleteSubject(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("db delete subject: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}
