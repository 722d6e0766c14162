package challenge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func testChallengeCache(t *testing.T, c *Cache) {
	a := randomTriad(t)
	b := randomTriad(t)

	require.Equal(t, a.Hash(), c.Hash(a))
	require.Equal(t, a.Hash(), c.Hash(a))
	require.Equal(t, b.Hash(), c.Hash(b))

	hits, misses := c.Stats()
	require.Equal(t, uint64(1), hits)
	require.Equal(t, uint64(2), misses)
	require.Equal(t, 2, c.Len())

	c.Clear()
	require.Equal(t, 0, c.Len())
}

func TestCache_LRU(t *testing.T) {
	testChallengeCache(t, NewLRUCache(16))

	c := NewLRUCache(1)
	a := randomTriad(t)
	b := randomTriad(t)
	c.Hash(a)
	c.Hash(b)
	require.Equal(t, 1, c.Len())
	require.Equal(t, a.Hash(), c.Hash(a))
	_, misses := c.Stats()
	require.Equal(t, uint64(3), misses)
}

func TestCache_Map(t *testing.T) {
	testChallengeCache(t, NewMapCache(16))
}

func TestCache_Concurrent(t *testing.T) {
	c := NewMapCache(64)
	triads := make([]Triad, 32)
	for i := range triads {
		triads[i] = randomTriad(t)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range triads {
				if c.Hash(triads[i]) != triads[i].Hash() {
					t.Errorf("mismatch at %d", i)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(triads), c.Len())
	hits, misses := c.Stats()
	require.Equal(t, uint64(8*len(triads)), hits+misses)
}
