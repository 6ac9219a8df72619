package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

const activeRoomsKey = "rooms:active"

// RedisRoomCache keeps the active room list between mutations.
type RedisRoomCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisRoomCache(client redis.Cmdable, ttl time.Duration) *RedisRoomCache {
	return &RedisRoomCache{client: client, ttl: ttl}
}

func (c *RedisRoomCache) Rooms(ctx context.Context) ([]domain.Room, bool, error) {
	data, err := c.client.Get(ctx, activeRoomsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("get cached rooms: %w", err)
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, false, fmt.Errorf("decode cached rooms: %w", err)
	}

	return rooms, true, nil
}

func (c *RedisRoomCache) SetRooms(ctx context.Context, rooms []domain.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("encode rooms: %w", err)
	}

	return c.client.Set(ctx, activeRoomsKey, data, c.ttl).Err()
}

func (c *RedisRoomCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeRoomsKey).Err()
}
