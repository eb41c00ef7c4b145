package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

func NewRedisSingular(client *redis.Client, key string) *RedisSingular {
	return &RedisSingular{
		client: client,
		key:    key,
	}
}

// RedisSingular persists a single msgpack-encoded value in redis. Used for
// snapshots that should survive a process restart.
type RedisSingular struct {
	client *redis.Client
	key    string
}

func (c *RedisSingular) Get(ctx context.Context, dest interface{}) error {
	resp, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", c.key).Msg("failed to get value from redis")
		}
		return err
	}
	if err := msgpack.Unmarshal(resp, dest); err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to unmarshal value from msgpack from redis")
		return err
	}
	return nil
}

func (c *RedisSingular) Set(ctx context.Context, value interface{}, expire time.Duration) error {
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to marshal value with msgpack")
		return err
	}
	if err := c.client.Set(ctx, c.key, b, expire).Err(); err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to set value to redis")
		return err
	}
	return nil
}

func (c *RedisSingular) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to delete value from redis")
		return err
	}
	return nil
}
