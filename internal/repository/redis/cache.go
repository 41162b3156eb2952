package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const ns = "voyago:v1"

func KeyFlight(id uuid.UUID) string        { return fmt.Sprintf("%s:flight:%s", ns, id) }
func KeyHotel(id uuid.UUID) string         { return fmt.Sprintf("%s:hotel:%s", ns, id) }
func KeyEntertainment(id uuid.UUID) string { return fmt.Sprintf("%s:ent:%s", ns, id) }
func KeyTourPackage(id uuid.UUID) string   { return fmt.Sprintf("%s:tour:%s", ns, id) }
func KeyLoyaltyStatus(id uuid.UUID) string { return fmt.Sprintf("%s:loyalty:%s:status", ns, id) }

type Cache struct {
	rdb *redis.Client
	sf  singleflight.Group
}

func New(client *redis.Client) *Cache {
	return &Cache{rdb: client}
}

func (c *Cache) GetString(ctx context.Context, key string) (string, bool, error) {
	s, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return s, true, nil
}

func (c *Cache) SetString(
	ctx context.Context,
	key string,
	val string,
	ttl time.Duration,
) error {
	return c.rdb.Set(ctx, key, val, ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return c.rdb.Del(ctx, keys...).Err()
}

func GetJSON[T any](ctx context.Context, c *Cache, key string) (T, bool, error) {
	var zero T

	s, ok, err := c.GetString(ctx, key)
	if err != nil || !ok {
		return zero, ok, err
	}

	var out T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return zero, false, err
	}

	return out, true, nil
}

func SetJSON(
	ctx context.Context,
	c *Cache,
	key string,
	val any,
	ttl time.Duration,
) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}

	return c.SetString(ctx, key, string(b), ttl)
}

// GetOrSetJSON reads key from the cache, falling back to loader on a miss.
// Concurrent misses for the same key collapse into a single loader call.
func GetOrSetJSON[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, error) {
	if v, ok, err := GetJSON[T](ctx, c, key); err != nil || ok {
		return v, err
	}

	vAny, err, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok2, err2 := GetJSON[T](ctx, c, key); err2 != nil || ok2 {
			return v2, err2
		}
		v3, err3 := loader(ctx)
		if err3 != nil {
			return nil, err3
		}
		_ = SetJSON(ctx, c, key, v3, ttl)
		return v3, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	v, ok := vAny.(T)
	if !ok {
		var zero T
		return zero, errors.New("type assertion failed")
	}

	return v, nil
}

// InvalidateReservation drops the cached entries for every resource a
// reservation touched, plus the owner's loyalty status.
func (c *Cache) InvalidateReservation(ctx context.Context, userID uuid.UUID, flights, hotels, ents []uuid.UUID, tourID *uuid.UUID) error {
	keys := []string{KeyLoyaltyStatus(userID)}
	for _, id := range flights {
		keys = append(keys, KeyFlight(id))
	}
	for _, id := range hotels {
		keys = append(keys, KeyHotel(id))
	}
	for _, id := range ents {
		keys = append(keys, KeyEntertainment(id))
	}
	if tourID != nil {
		keys = append(keys, KeyTourPackage(*tourID))
	}

	return c.Del(ctx, keys...)
}

func (c *Cache) InvalidateLoyalty(ctx context.Context, userID uuid.UUID) error {
	return c.Del(ctx, KeyLoyaltyStatus(userID))
}
