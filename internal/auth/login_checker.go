package auth

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

const (
	localCacheSize      = 10 * 1024 * 1024
	localCacheExpireSec = 60
)

// LoginChecker resolves session tokens against redis, with a short lived
// in-process cache in front of it.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	localCache  *freecache.Cache
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		localCache:  freecache.NewCache(localCacheSize),
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (_ int, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.login_checker.is_logged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := []byte(token)
	sessionVal, err := c.localCache.Get(key)
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			return 0, false, err
		}

		cmd := c.redisClient.Get(ctx, sessionKey(token))
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				return 0, false, nil
			}
			return 0, false, err
		}
		sessionVal = []byte(cmd.Val())
		if err := c.localCache.Set(key, sessionVal, localCacheExpireSec); err != nil {
			return 0, false, err
		}
	}

	userID, createdAt, err := decodeSession(string(sessionVal))
	if err != nil {
		return 0, false, err
	}

	if time.Since(createdAt) > c.ttl {
		c.Forget(token)
		return 0, false, nil
	}

	return userID, true, nil
}

// Forget drops the token from the local cache, used on logout.
func (c *LoginChecker) Forget(token string) {
	c.localCache.Del([]byte(token))
}
