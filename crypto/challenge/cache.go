package challenge

import (
	"sync/atomic"

	"git.gammaspectra.live/P2Pool/challenge/types"
	"git.gammaspectra.live/P2Pool/challenge/utils"
)

// Cache memoizes challenge hashes, for verifiers that see the same signatures repeatedly
type Cache struct {
	values utils.Cache[Triad, types.Hash512]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLRUCache keeps at most size entries, evicting the least recently used
func NewLRUCache(size int) *Cache {
	return &Cache{
		values: utils.NewLRUCache[Triad, types.Hash512](size),
	}
}

// NewMapCache never evicts
func NewMapCache(size int) *Cache {
	return &Cache{
		values: utils.NewMapCache[Triad, types.Hash512](size),
	}
}

func (c *Cache) Hash(t Triad) types.Hash512 {
	if result, ok := c.values.Get(t); ok {
		c.hits.Add(1)
		return result
	}
	c.misses.Add(1)

	result := t.Hash()
	c.values.Set(t, result)
	return result
}

func (c *Cache) Len() int {
	return c.values.Len()
}

func (c *Cache) Clear() {
	c.values.Clear()
}

func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
