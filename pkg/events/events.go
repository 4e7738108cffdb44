// Package events publishes user lifecycle notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"userregistry/pkg/user"
)

// Event types.
const (
	TypeUserAdded    = "user.added"
	TypeUserDeleted  = "user.deleted"
	TypeUsersCleared = "users.cleared"
)

// Event describes a completed change to the registry. Count is always the
// number of users registered after the change.
type Event struct {
	Type    string     `json:"type"`
	ID      *int       `json:"id,omitempty"`
	User    *user.User `json:"user,omitempty"`
	Removed *int       `json:"removed,omitempty"`
	Count   int        `json:"count"`
	At      time.Time  `json:"at"`
}

// UserAdded builds the event for a new user.
func UserAdded(u user.User, count int) Event {
	return Event{Type: TypeUserAdded, ID: &u.ID, User: &u, Count: count, At: time.Now().UTC()}
}

// UserDeleted builds the event for a removed user.
func UserDeleted(id, count int) Event {
	return Event{Type: TypeUserDeleted, ID: &id, Count: count, At: time.Now().UTC()}
}

// UsersCleared builds the event for an emptied registry. removed is the number
// of users that were dropped.
func UsersCleared(removed, count int) Event {
	return Event{Type: TypeUsersCleared, Removed: &removed, Count: count, At: time.Now().UTC()}
}

// Publisher delivers events. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop discards every event.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(context.Context, Event) error { return nil }

// RedisPublisher sends events over Redis pub/sub. Nothing is stored in Redis.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher writing to channel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Publish marshals e as JSON and publishes it.
func (p *RedisPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

// Ping checks that the Redis server is reachable.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
