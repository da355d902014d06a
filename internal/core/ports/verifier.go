package ports

import (
	"context"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

// CredentialVerifier exchanges an opaque identity-provider credential for a
// verified profile. Implementations collapse every failure mode (malformed
// token, expiry, audience mismatch, provider unreachable) into
// domain.ErrInvalidCredential so callers cannot distinguish them.
type CredentialVerifier interface {
	Verify(ctx context.Context, credential string) (*domain.Profile, error)
}
