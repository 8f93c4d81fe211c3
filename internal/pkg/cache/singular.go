package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

// Singular caches one value of T in process, such as the latest draw index.
type Singular[T any] struct {
	// m serializes recomputation in MutexGetSet.
	m   sync.Mutex
	key string
	c   *cache.Cache
}

func (c *Singular[T]) Get(dest *T) error {
	result, ok := c.c.Get(c.key)
	if !ok {
		return ErrNotFound
	}
	*dest = result.(T)
	return nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) {
	c.c.Set(c.key, value, expire)
}

// MutexGetSet writes the cached value to dest, or computes it with valueFunc
// exactly once among concurrent callers when absent.
func (c *Singular[T]) MutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	if err := c.Get(dest); err == nil {
		return nil
	}

	c.m.Lock()
	defer c.m.Unlock()

	if err := c.Get(dest); err == nil {
		return nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().
			Err(err).
			Str("evt.name", "cache.singular.compute").
			Str("key", c.key).
			Msg("failed to compute cached value")
		return err
	}
	c.Set(value, expire)

	*dest = value
	return nil
}

// Delete drops the cached value so the next MutexGetSet recomputes it.
func (c *Singular[T]) Delete() error {
	c.c.Flush()
	return nil
}
