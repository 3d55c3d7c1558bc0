package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"neuma/internal/model"
)

// DirectoryCache keeps a code-keyed view of classrooms so join lookups do
// not always hit the directory store. Mongo remains the source of truth; a
// cache miss falls through to the repository.
type DirectoryCache interface {
	Set(ctx context.Context, classroom *model.Classroom) error
	GetByCode(ctx context.Context, code string) (*model.Classroom, error)
	Delete(ctx context.Context, code string) error
}

type directoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDirectoryCache creates a new directory cache.
func NewDirectoryCache(client *redis.Client) DirectoryCache {
	return &directoryCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *directoryCache) key(code string) string {
	return fmt.Sprintf("classroom:code:%s", code)
}

func (c *directoryCache) Set(ctx context.Context, classroom *model.Classroom) error {
	data, err := json.Marshal(classroom)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(classroom.Code), data, c.ttl).Err()
}

func (c *directoryCache) GetByCode(ctx context.Context, code string) (*model.Classroom, error) {
	data, err := c.client.Get(ctx, c.key(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var classroom model.Classroom
	if err := json.Unmarshal([]byte(data), &classroom); err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (c *directoryCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, c.key(code)).Err()
}
