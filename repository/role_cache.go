package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoleCache is a best-effort Redis hint for the role lookup the auth
// middleware performs on every request. The users table stays the source of
// truth; cache errors are treated as misses.
type RoleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{Client: client, TTL: ttl}
}

func (c *RoleCache) key(userID uint) string {
	return "role:" + strconv.FormatUint(uint64(userID), 10)
}

func (c *RoleCache) Get(ctx context.Context, userID uint) (string, bool) {
	if c == nil || c.Client == nil {
		return "", false
	}
	role, err := c.Client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		return "", false
	}
	return role, true
}

func (c *RoleCache) Set(ctx context.Context, userID uint, role string) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Set(ctx, c.key(userID), role, c.TTL)
}

func (c *RoleCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Del(ctx, c.key(userID))
}
