package ports

import (
	"context"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

// ResumeRepository persists at most one resume document per owner.
type ResumeRepository interface {
	// FindByOwner returns the owner's resume with internal identifier
	// fields stripped, or domain.ErrResumeNotFound.
	FindByOwner(ctx context.Context, ownerID string) (domain.Document, error)
	// Replace atomically swaps the owner's resume for doc, inserting it
	// when none exists yet.
	Replace(ctx context.Context, ownerID string, doc domain.Document) error
}
