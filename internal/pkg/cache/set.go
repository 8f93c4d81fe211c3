package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

func NewSet[T any](store Store, prefix string) *Set[T] {
	return &Set[T]{
		store:  store,
		prefix: prefix + ":",
	}
}

// Set is a typed, msgpack-encoded view over the keys of a Store sharing a prefix.
type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	store  Store
	prefix string
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(ctx context.Context, key string, dest *T) error {
	key = c.key(key)
	resp, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error().Err(err).Str("key", key).Msg("failed to get value from cache store")
		}
		return err
	}
	if err = msgpack.Unmarshal(resp, dest); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal value from msgpack from cache store")
		return err
	}
	return nil
}

func (c *Set[T]) Set(ctx context.Context, key string, value T, expire time.Duration) error {
	key = c.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("setting value to cache store")
	}
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}
	if err = c.store.Set(ctx, key, b, expire); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value to cache store")
		return err
	}
	return nil
}

// MutexGetSet gets value from cache and writes to dest, or if the key does not exists, it executes valueFunc
// to get cache value if the key still not exists when serially dispatched, sets value to cache and
// writes value to dest.
// The first return value means whether the value is got from cache or not. True means calculated; False means got from cache.
func (c *Set[T]) MutexGetSet(ctx context.Context, key string, dest *T, valueFunc func() (T, error), expire time.Duration) (bool, error) {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	return c.slowMutexGetSet(ctx, key, dest, valueFunc, expire)
}

func (c *Set[T]) slowMutexGetSet(ctx context.Context, key string, dest *T, valueFunc func() (T, error), expire time.Duration) (bool, error) {
	c.m.Lock()
	defer c.m.Unlock()

	err := c.Get(ctx, key, dest)
	if err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	value, err := valueFunc()
	if err != nil {
		return true, err
	}
	if err = c.Set(ctx, key, value, expire); err != nil {
		return true, err
	}

	*dest = value
	return true, nil
}

func (c *Set[T]) Delete(ctx context.Context, key string) error {
	key = c.key(key)
	if err := c.store.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete value from cache store")
		return err
	}
	return nil
}

// Flush deletes every key of the set.
func (c *Set[T]) Flush() error {
	if err := c.store.DeletePrefix(context.Background(), c.prefix); err != nil {
		log.Error().Err(err).Str("prefix", c.prefix).Msg("failed to flush cache set")
		return err
	}
	return nil
}
