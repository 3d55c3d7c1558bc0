package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"neuma/internal/assessment"
)

// SessionStore keeps in-progress assessment sessions between requests, one
// per subject. Sessions are throwaway state and expire on their own; only
// the completed result is persisted durably.
type SessionStore interface {
	Set(ctx context.Context, session *assessment.Session) error
	Get(ctx context.Context, subjectID string) (*assessment.Session, error)
	Delete(ctx context.Context, subjectID string) error
}

type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new assessment session store.
func NewSessionStore(client *redis.Client) SessionStore {
	return &sessionStore{
		client: client,
		ttl:    2 * time.Hour,
	}
}

func (c *sessionStore) key(subjectID string) string {
	return fmt.Sprintf("assessment:%s", subjectID)
}

func (c *sessionStore) Set(ctx context.Context, session *assessment.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.SubjectID), data, c.ttl).Err()
}

func (c *sessionStore) Get(ctx context.Context, subjectID string) (*assessment.Session, error) {
	data, err := c.client.Get(ctx, c.key(subjectID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session assessment.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionStore) Delete(ctx context.Context, subjectID string) error {
	return c.client.Del(ctx, c.key(subjectID)).Err()
}
