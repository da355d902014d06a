package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/resumecraft/resume-builder-api/internal/api/metrics"
	"github.com/resumecraft/resume-builder-api/internal/core/domain"
	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

// ResumeService enforces the one-resume-per-user rule. Both operations look
// the user up by email on every call so a token issued on another device
// stays usable without reissuing.
type ResumeService struct {
	users   ports.UserRepository
	resumes ports.ResumeRepository
	logger  zerolog.Logger
}

func NewResumeService(users ports.UserRepository, resumes ports.ResumeRepository, logger zerolog.Logger) *ResumeService {
	return &ResumeService{users: users, resumes: resumes, logger: logger}
}

// Save replaces the user's resume with doc, stripping the transient step
// field first. After a successful call exactly one document exists for the
// user, containing exactly the submitted fields.
func (s *ResumeService) Save(ctx context.Context, email string, doc domain.Document) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.resumes.Replace(ctx, user.ID, doc.Sanitized()); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("resume replace failed")
		return fmt.Errorf("save resume: %w", err)
	}

	metrics.ResumeSavesTotal.Inc()
	s.logger.Info().Str("email", email).Msg("resume saved")

	return nil
}

func (s *ResumeService) Get(ctx context.Context, email string) (domain.Document, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.resumes.FindByOwner(ctx, user.ID)
}
