package lock

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix       = "room_lock:"
	defaultRetry    = 50 * time.Millisecond
	releaseDeadline = 2 * time.Second
)

// releaseScript deletes the lock only if it still carries our token, so an
// expired lock taken over by another instance is never removed.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// Redis is a per-room lock shared by every instance using the same Redis.
// The TTL bounds how long a crashed holder blocks a room.
type Redis struct {
	client   redis.Cmdable
	ttl      time.Duration
	retry    time.Duration
	newToken func() string
}

func NewRedis(client redis.Cmdable, ttl time.Duration) *Redis {
	return &Redis{
		client:   client,
		ttl:      ttl,
		retry:    defaultRetry,
		newToken: uuid.NewString,
	}
}

func (l *Redis) Lock(ctx context.Context, roomID int64) (func(), error) {
	key := fmt.Sprintf("%s%d", keyPrefix, roomID)
	token := l.newToken()

	for {
		acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}

		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire %s: %w", key, ctx.Err())
		case <-time.After(l.retry):
		}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseDeadline)
		defer cancel()

		if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			log.Printf("Failed to release %s: %v", key, err)
		}
	}, nil
}
