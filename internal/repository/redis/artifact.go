package redis

import (
	"context"
	"fmt"

	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

const artifactKeyPrefix = "artifact:"

// ArtifactStore persists uploaded image blobs in Redis. Each artifact is a
// hash holding the raw bytes and the content type. Blobs have no expiry; the
// pipeline never deletes what it uploads.
type ArtifactStore struct {
	client *Client
}

// NewArtifactStore creates a new artifact store
func NewArtifactStore(client *Client) *ArtifactStore {
	return &ArtifactStore{client: client}
}

// Put stores data under the given key
func (s *ArtifactStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	err := s.client.rdb.HSet(ctx, artifactKeyPrefix+key,
		"data", data,
		"content_type", contentType,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to store artifact: %w", err)
	}
	return nil
}

// Get returns the stored bytes and content type, or domain.ErrNotFound when
// the key is unknown
func (s *ArtifactStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	values, err := s.client.rdb.HMGet(ctx, artifactKeyPrefix+key, "data", "content_type").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to get artifact: %w", err)
	}

	if values[0] == nil {
		return nil, "", domain.ErrNotFound
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, "", fmt.Errorf("unexpected artifact payload type %T", values[0])
	}

	contentType := "image/jpeg"
	if ct, ok := values[1].(string); ok && ct != "" {
		contentType = ct
	}

	return []byte(data), contentType, nil
}
