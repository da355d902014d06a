package ports

import (
	"context"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

type ResumeService interface {
	// Save replaces the resume of the user identified by email with doc.
	// The transient step field is stripped before storage.
	Save(ctx context.Context, email string, doc domain.Document) error
	// Get returns the stored resume of the user identified by email.
	Get(ctx context.Context, email string) (domain.Document, error)
}
