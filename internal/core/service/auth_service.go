package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/resumecraft/resume-builder-api/internal/api/metrics"
	"github.com/resumecraft/resume-builder-api/internal/core/domain"
	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

// AuthService implements signup and login on top of an external credential
// verifier. There is no password flow: identity is delegated entirely to the
// provider, and the session token is the only server-issued secret.
type AuthService struct {
	verifier  ports.CredentialVerifier
	users     ports.UserRepository
	resumes   ports.ResumeRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	verifier ports.CredentialVerifier,
	users ports.UserRepository,
	resumes ports.ResumeRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		verifier:  verifier,
		users:     users,
		resumes:   resumes,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, credential string) (*domain.User, error) {
	if credential == "" {
		return nil, domain.ErrMissingCredential
	}

	profile, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(profile.Email)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
		Picture:   profile.Picture,
		Email:     profile.Email,
		Token:     token,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	s.logger.Info().Str("email", created.Email).Msg("user registered")

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, credential string) (*domain.User, domain.Document, error) {
	if credential == "" {
		return nil, nil, domain.ErrMissingCredential
	}

	profile, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credential").Inc()
		return nil, nil, err
	}

	stored, err := s.users.FindByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("unregistered").Inc()
		}
		return nil, nil, err
	}

	token, err := s.issueToken(profile.Email)
	if err != nil {
		return nil, nil, err
	}

	// The stored profile may predate a name or picture change at the
	// provider, so the response is re-derived from the verified profile.
	user := &domain.User{
		ID:        stored.ID,
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
		Picture:   profile.Picture,
		Email:     profile.Email,
		Token:     token,
	}

	resume, err := s.resumes.FindByOwner(ctx, stored.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrResumeNotFound) {
			return nil, nil, err
		}
		resume = nil
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("email", user.Email).Bool("has_resume", resume != nil).Msg("user logged in")

	return user, resume, nil
}

// issueToken mints the 24h session token with the email as its subject
// claim. No refresh or revocation exists; expiry is the only lifecycle bound.
func (s *AuthService) issueToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
