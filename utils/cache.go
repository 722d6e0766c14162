package utils

import (
	"sync"

	"github.com/dolthub/swiss"
	"github.com/floatdrop/lru"
)

// Cache Concurrent-safe key value cache
type Cache[K comparable, T any] interface {
	Get(key K) (value T, ok bool)
	Set(key K, value T)
	Delete(key K)
	Clear()
	Len() int
}

type LRUCache[K comparable, T any] struct {
	lock   sync.Mutex
	size   int
	values *lru.LRU[K, T]
}

func NewLRUCache[K comparable, T any](size int) *LRUCache[K, T] {
	return &LRUCache[K, T]{
		size:   size,
		values: lru.New[K, T](size),
	}
}

func (c *LRUCache[K, T]) Get(key K) (value T, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if v := c.values.Get(key); v != nil {
		return *v, true
	}
	return value, false
}

func (c *LRUCache[K, T]) Set(key K, value T) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Set(key, value)
}

func (c *LRUCache[K, T]) Delete(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Remove(key)
}

func (c *LRUCache[K, T]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values = lru.New[K, T](c.size)
}

func (c *LRUCache[K, T]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.values.Len()
}

// MapCache unbounded cache, size is only the initial capacity
type MapCache[K comparable, T any] struct {
	lock   sync.RWMutex
	values *swiss.Map[K, T]
}

func NewMapCache[K comparable, T any](size int) *MapCache[K, T] {
	return &MapCache[K, T]{
		values: swiss.NewMap[K, T](uint32(size)),
	}
}

func (c *MapCache[K, T]) Get(key K) (value T, ok bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.values.Get(key)
}

func (c *MapCache[K, T]) Set(key K, value T) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Put(key, value)
}

func (c *MapCache[K, T]) Delete(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Delete(key)
}

func (c *MapCache[K, T]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Clear()
}

func (c *MapCache[K, T]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.values.Count()
}
