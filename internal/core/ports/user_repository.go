package ports

import (
	"context"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

// UserRepository defines the persistence contract for registered users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
