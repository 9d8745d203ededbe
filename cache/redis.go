package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis"
	"github.com/rs/zerolog"
)

const scanCount = 100

type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis returns a Redis implementation of Cache. Every key is
// stored under prefix, and Clear only touches keys under it.
func NewRedis(addr string, timeout time.Duration, prefix string) Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		DialTimeout:  timeout / 2,
		PoolTimeout:  timeout / 2,
	})

	return redisCache{
		client: client,
		prefix: prefix,
	}
}

func (r redisCache) Get(ctx context.Context, key string) (string, error) {
	logger := zerolog.Ctx(ctx).
		With().
		Str("_function", "redisCache.Get").
		Logger()

	value, err := r.client.Get(r.prefix + key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}

	if err != nil {
		logger.Debug().Err(err).Msgf("reading from cache: %q", key)
		return "", err
	}

	return value, nil
}

func (r redisCache) Set(ctx context.Context, key string, value string) error {
	logger := zerolog.Ctx(ctx).
		With().
		Str("_function", "redisCache.Set").
		Logger()

	err := r.client.Set(r.prefix+key, value, 0).Err()
	if err != nil {
		logger.Debug().Err(err).Msgf("could not set key %q on cache", key)
		return err
	}

	return nil
}

func (r redisCache) Clear(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).
		With().
		Str("_function", "redisCache.Clear").
		Logger()

	var cursor uint64
	deleted := 0
	for {
		keys, next, err := r.client.Scan(cursor, r.prefix+"*", scanCount).Result()
		if err != nil {
			logger.Debug().Err(err).Msg("scanning cache keys")
			return err
		}

		if len(keys) > 0 {
			if err := r.client.Del(keys...).Err(); err != nil {
				logger.Debug().Err(err).Msgf("deleting %d keys", len(keys))
				return err
			}
			deleted += len(keys)
		}

		if next == 0 {
			break
		}
		cursor = next
	}

	logger.Debug().Msgf("cleared %d keys", deleted)
	return nil
}
