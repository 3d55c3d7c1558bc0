package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"neuma/internal/model"
)

// StyleStatsCache keeps a per-classroom tally of members' dominant learning
// styles as a Redis hash. Incremented when a member completes the inventory;
// read by the owning teacher's dashboard.
type StyleStatsCache interface {
	Incr(ctx context.Context, classroomID string, style model.LearningStyle) error
	Snapshot(ctx context.Context, classroomID string) (model.ScoreVector, error)
	Delete(ctx context.Context, classroomID string) error
}

type styleStatsCache struct {
	client *redis.Client
}

// NewStyleStatsCache creates a new style stats cache.
func NewStyleStatsCache(client *redis.Client) StyleStatsCache {
	return &styleStatsCache{
		client: client,
	}
}

func (c *styleStatsCache) key(classroomID string) string {
	return fmt.Sprintf("classroom:%s:styles", classroomID)
}

func (c *styleStatsCache) Incr(ctx context.Context, classroomID string, style model.LearningStyle) error {
	return c.client.HIncrBy(ctx, c.key(classroomID), string(style), 1).Err()
}

func (c *styleStatsCache) Snapshot(ctx context.Context, classroomID string) (model.ScoreVector, error) {
	fields, err := c.client.HGetAll(ctx, c.key(classroomID)).Result()
	if err != nil {
		return model.ScoreVector{}, err
	}

	var counts model.ScoreVector
	for field, raw := range fields {
		style, err := model.ParseLearningStyle(field)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		switch style {
		case model.StyleVisual:
			counts.Visual = n
		case model.StyleAuditory:
			counts.Auditory = n
		case model.StyleReading:
			counts.Reading = n
		case model.StyleKinesthetic:
			counts.Kinesthetic = n
		}
	}
	return counts, nil
}

func (c *styleStatsCache) Delete(ctx context.Context, classroomID string) error {
	return c.client.Del(ctx, c.key(classroomID)).Err()
}
