// Package cache holds the Redis-backed helpers used by the booking service:
// a short-lived contact lock per email/phone and a cached copy of the
// booking list.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/travelwave/booking/internal/domain"
)

// Contact kinds used in lock keys.
const (
	ContactEmail = "email"
	ContactPhone = "phone"
)

// releaseScript deletes a lock only while it still holds the caller's token,
// so a lock that expired and was re-claimed by another request survives.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisCache implements the service's ContactLocker and BookingCache on top
// of a single Redis client.
type RedisCache struct {
	client  *redis.Client
	listTTL time.Duration
	lockTTL time.Duration
}

// NewRedisCache wraps an already connected client. The caller owns the client.
func NewRedisCache(client *redis.Client, listTTL, lockTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, listTTL: listTTL, lockTTL: lockTTL}
}

// AcquireContactLock claims the lock for one contact value. It returns a
// release token and true when the claim succeeded, or false when another
// submission currently holds it.
func (c *RedisCache) AcquireContactLock(ctx context.Context, kind, value string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, contactLockKey(kind, value), token, c.lockTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("cache.RedisCache.AcquireContactLock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// ReleaseContactLock drops a lock previously claimed with token.
func (c *RedisCache) ReleaseContactLock(ctx context.Context, kind, value, token string) error {
	err := releaseScript.Run(ctx, c.client, []string{contactLockKey(kind, value)}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache.RedisCache.ReleaseContactLock: %w", err)
	}
	return nil
}

// storeListScript writes the cached list only while the version key still
// holds the value the reader saw before it queried the store. A reader that
// raced with an invalidation therefore cannot put its older snapshot back.
var storeListScript = redis.NewScript(`
local current = redis.call("GET", KEYS[2]) or "0"
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

// GetBookings returns the cached list together with the current list
// version. On a miss the bookings are nil and hit is false; the version is
// still returned so the caller can hand it back to SetBookings.
func (c *RedisCache) GetBookings(ctx context.Context) ([]domain.Booking, int64, bool, error) {
	vals, err := c.client.MGet(ctx, bookingsKey, bookingsVersionKey).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("cache.RedisCache.GetBookings: %w", err)
	}

	version, err := parseVersion(vals[1])
	if err != nil {
		return nil, 0, false, fmt.Errorf("cache.RedisCache.GetBookings: %w", err)
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false, nil
	}

	bookings := []domain.Booking{}
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, version, false, fmt.Errorf("cache.RedisCache.GetBookings: decode: %w", err)
	}
	return bookings, version, true, nil
}

// SetBookings stores the list for listTTL if the list version still equals
// version. It reports whether the list was written.
func (c *RedisCache) SetBookings(ctx context.Context, version int64, bookings []domain.Booking) (bool, error) {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return false, fmt.Errorf("cache.RedisCache.SetBookings: encode: %w", err)
	}

	stored, err := storeListScript.Run(ctx, c.client,
		[]string{bookingsKey, bookingsVersionKey},
		strconv.FormatInt(version, 10), payload, c.listTTL.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("cache.RedisCache.SetBookings: %w", err)
	}
	return stored == 1, nil
}

// InvalidateBookings drops the cached list and bumps the list version in
// one transaction.
func (c *RedisCache) InvalidateBookings(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, bookingsVersionKey)
		pipe.Del(ctx, bookingsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache.RedisCache.InvalidateBookings: %w", err)
	}
	return nil
}

func parseVersion(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse list version %q: %w", s, err)
	}
	return n, nil
}

const (
	bookingsKey        = "cache:bookings:all"
	bookingsVersionKey = "cache:bookings:version"
)

func contactLockKey(kind, value string) string {
	return fmt.Sprintf("lock:booking:%s:%s", kind, value)
}
