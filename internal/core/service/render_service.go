package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/resumecraft/resume-builder-api/internal/api/metrics"
	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

const defaultRenderTimeout = 300 * time.Second

// ArtifactStore abstracts the short-lived storage for rendered PDFs (Redis).
type ArtifactStore interface {
	Put(ctx context.Context, id string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
}

// RenderService renders resumes and keeps each artifact under a
// request-scoped id, so concurrent renders never overwrite one another.
type RenderService struct {
	renderer ports.Renderer
	store    ArtifactStore
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewRenderService(renderer ports.Renderer, store ArtifactStore, timeout time.Duration, logger zerolog.Logger) *RenderService {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &RenderService{renderer: renderer, store: store, timeout: timeout, logger: logger}
}

func (s *RenderService) CreatePDF(ctx context.Context, in ports.RenderInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	data, err := s.renderer.Render(ctx, in)
	if err != nil {
		metrics.RendersTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("resume render failed")
		return "", fmt.Errorf("render resume: %w", err)
	}
	metrics.RenderDuration.Observe(time.Since(start).Seconds())

	id := uuid.NewString()
	if err := s.store.Put(ctx, id, data); err != nil {
		metrics.RendersTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("store rendered resume: %w", err)
	}

	metrics.RendersTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("render_id", id).Int("bytes", len(data)).Msg("resume rendered")

	return id, nil
}

func (s *RenderService) FetchPDF(ctx context.Context, id string) ([]byte, error) {
	return s.store.Get(ctx, id)
}
