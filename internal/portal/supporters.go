package portal

import (
	"context"
	"fmt"

	"github.com/stvmedia/media-portal/internal/db"
)

// Supporters retrieves supporters sorted by display_order ASC, with
// logo_public_url resolved from the stored logo path.
func (m *Manager) Supporters(ctx context.Context, activeOnly bool) (Supporters, error) {
	list, err := m.db.Supporters(ctx, db.SupporterFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, fmt.Errorf("db get supporters: %w", err)
	}

	supporters := make(Supporters, len(list))
	for i := range list {
		supporters[i] = NewSupporter(&list[i], m.logoPublicURL(list[i].LogoPath))
	}

	return supporters, nil
}

func (m *Manager) SupporterByID(ctx context.Context, supporterID int) (*Supporter, error) {
	dbSupporter, err := m.db.SupporterByID(ctx, supporterID)
	if err != nil {
		return nil, fmt.Errorf("db get supporter by id: %w", err)
	} else if dbSupporter == nil {
		return nil, nil
	}

	supporter := NewSupporter(dbSupporter, m.logoPublicURL(dbSupporter.LogoPath))
	return &supporter, nil
}

func (m *Manager) logoPublicURL(logoPath string) string {
	if logoPath == "" {
		return ""
	}
	return m.files.PublicURL(BucketLogos, logoPath)
}

type SupporterDraft struct {
	Name         string `validate:"required"`
	WebsiteURL   *string
	LogoPath     string
	DisplayOrder int
	IsActive     bool
}

func (draft SupporterDraft) apply(supporter *db.Supporter) {
	supporter.Name = draft.Name
	supporter.WebsiteURL = draft.WebsiteURL
	supporter.LogoPath = draft.LogoPath
	supporter.DisplayOrder = draft.DisplayOrder
	supporter.IsActive = draft.IsActive
}

func (m *Manager) CreateSupporter(ctx context.Context, draft SupporterDraft) (*Supporter, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	dbSupporter := &db.Supporter{}
	draft.apply(dbSupporter)

	if err := m.db.CreateSupporter(ctx, dbSupporter); err != nil {
		return nil, fmt.Errorf("db create supporter: %w", err)
	}

	supporter := NewSupporter(dbSupporter, m.logoPublicURL(dbSupporter.LogoPath))
	return &supporter, nil
}

func (m *Manager) UpdateSupporter(ctx context.Context, supporterID int, draft SupporterDraft) (*Supporter, error) {
	if err := m.checkStruct(draft); err != nil {
		return nil, err
	}

	existing, err := m.db.SupporterByID(ctx, supporterID)
	if err != nil {
		return nil, fmt.Errorf("db get supporter by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	draft.apply(existing)

	updated, err := m.db.UpdateSupporter(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("db update supporter: %w", err)
	} else if updated == nil {
		return nil, ErrNotFound
	}

	supporter := NewSupporter(updated, m.logoPublicURL(updated.LogoPath))
	return &supporter, nil
}

func (m *Manager) DeleteSupporter(ctx context.Context, supporterID int) error {
	found, err := m.db.DeleteSupporter(ctx, supporterID)
	if err != nil {
		return fmt.Errorf("db delete supporter: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}
