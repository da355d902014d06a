package ports

import (
	"context"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

type AuthService interface {
	// Signup verifies the credential, registers the user, and returns the
	// profile with a freshly minted session token.
	Signup(ctx context.Context, credential string) (*domain.User, error)
	// Login verifies the credential, re-derives the profile for a
	// registered user, and returns it with the stored resume (nil when the
	// user has not saved one yet).
	Login(ctx context.Context, credential string) (*domain.User, domain.Document, error)
}
