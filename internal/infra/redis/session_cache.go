package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/metrics"
)

// SessionCache keeps hot session snapshots in Redis so chat turns do not
// round-trip to Postgres for every history read. Postgres stays the source
// of truth; a cache miss is not an error.
type SessionCache struct {
	client *redClient
	ttl    time.Duration
}

func NewSessionCache(client *redClient, ttl time.Duration) *SessionCache {
	return &SessionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SessionCache) Store(ctx context.Context, session *model.Session) error {
	key := "session:" + session.ID
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl)
}

func (c *SessionCache) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	key := "session:" + sessionID
	data, err := c.client.Get(ctx, key)
	if err != nil {
		metrics.IncCacheRequest("session", "miss")
		return nil, err
	}
	metrics.IncCacheRequest("session", "hit")

	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *SessionCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, "session:"+sessionID)
}

func (c *SessionCache) Extend(ctx context.Context, sessionID string) error {
	return c.client.Expire(ctx, "session:"+sessionID, c.ttl)
}
