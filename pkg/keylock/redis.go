package keylock

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
)

const (
	lockKeyPrefix      = "lock:"
	DefaultLockTTL     = 10 * time.Second
	DefaultRetryPeriod = 50 * time.Millisecond
)

// Deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a Locker shared between processes. The TTL bounds how long a
// crashed holder can block the key.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	retry  time.Duration
}

type RedisOption func(*Redis)

func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithRetryPeriod(d time.Duration) RedisOption {
	return func(r *Redis) {
		if d > 0 {
			r.retry = d
		}
	}
}

func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		ttl:    DefaultLockTTL,
		retry:  DefaultRetryPeriod,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRedisClient builds a client from a redis:// URI with the pool settings
// used across our services.
func NewRedisClient(ctx context.Context, uri string) (*redis.Client, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, errors.New("parsing redis uri error: " + err.Error())
	}
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.MaxRetries = 3
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	return client, nil
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := lockKeyPrefix + key
	token := uuid.NewString()
	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, lockKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Join(errorvalues.ErrLockTimeout, ctx.Err())
			}
			return nil, errors.New("acquiring redis lock error: " + err.Error())
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(errorvalues.ErrLockTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be cancelled.
			relCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			err := releaseScript.Run(relCtx, r.client, []string{lockKey}, token).Err()
			if err != nil && !errors.Is(err, redis.Nil) {
				slog.Warn("releasing redis lock failed, key stays held until ttl",
					slog.String("key", lockKey), slog.String("error", err.Error()))
			}
		})
	}, nil
}
