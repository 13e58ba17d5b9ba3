package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/gavelapp/goapi/base/ctx"
)

// Forever means the key is stored without expiration
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("key has no ttl")

	// ErrExpireNotExistOrTimeout is returned when EXPIRE fails to apply
	ErrExpireNotExistOrTimeout = errors.New("key not exist or timeout not set")
)

// Service is the subset of redis commands the api relies on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Expire(context ctx.Ctx, key string, ttl time.Duration) error
	TTL(context ctx.Ctx, key string) (int, error)
}
