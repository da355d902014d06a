package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

const artifactTTL = time.Hour

// ArtifactStore keeps rendered PDF bytes in Redis, one key per render id.
// Keys expire after artifactTTL; a fetch past expiry behaves like an unknown
// id. Key format: render:<id>
type ArtifactStore struct {
	client *redis.Client
}

// NewArtifactStore creates an ArtifactStore wrapping the given Redis client.
func NewArtifactStore(client *redis.Client) *ArtifactStore {
	return &ArtifactStore{client: client}
}

func (s *ArtifactStore) Put(ctx context.Context, id string, data []byte) error {
	if err := s.client.Set(ctx, s.key(id), data, artifactTTL).Err(); err != nil {
		return fmt.Errorf("store artifact: %w", err)
	}
	return nil
}

func (s *ArtifactStore) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRenderNotFound
		}
		return nil, fmt.Errorf("fetch artifact: %w", err)
	}
	return data, nil
}

func (s *ArtifactStore) key(id string) string {
	return "render:" + id
}
