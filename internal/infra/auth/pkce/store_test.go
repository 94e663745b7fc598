package pkce

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func TestStore_ConsumeOnce(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewStore(10*time.Minute, 0, clock.Now)

	store.Put("attempt-1", "verifier-1")

	verifier, ok := store.Consume("attempt-1")
	assert.True(t, ok)
	assert.Equal(t, "verifier-1", verifier)

	_, ok = store.Consume("attempt-1")
	assert.False(t, ok, "verifier must not be usable twice")
}

func TestStore_UnknownAttempt(t *testing.T) {
	store := NewStore(time.Minute, 0, time.Now)

	verifier, ok := store.Consume("nope")
	assert.False(t, ok)
	assert.Empty(t, verifier)
}

func TestStore_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewStore(10*time.Minute, 0, clock.Now)

	store.Put("attempt-1", "verifier-1")
	clock.Advance(10 * time.Minute)

	_, ok := store.Consume("attempt-1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewStore(time.Minute, 0, clock.Now)

	store.Put("old", "v-old")
	clock.Advance(2 * time.Minute)
	store.Put("fresh", "v-fresh")

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	verifier, ok := store.Consume("fresh")
	assert.True(t, ok)
	assert.Equal(t, "v-fresh", verifier)
}

func TestStore_ConcurrentAttempts(t *testing.T) {
	store := NewStore(time.Minute, 0, time.Now)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			id := fmt.Sprintf("attempt-%d", i)
			store.Put(id, "v")
			_, ok := store.Consume(id)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, store.Len())
}

func TestStore_Capacity(t *testing.T) {
	t.Run("drops expired attempts first", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		store := NewStore(time.Minute, 2, clock.Now)

		store.Put("stale", "v-stale")
		clock.Advance(2 * time.Minute)
		store.Put("live", "v-live")
		store.Put("new", "v-new")

		assert.Equal(t, 2, store.Len())
		_, ok := store.Consume("live")
		assert.True(t, ok)
		_, ok = store.Consume("new")
		assert.True(t, ok)
	})

	t.Run("evicts the attempt closest to expiry", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		store := NewStore(time.Minute, 2, clock.Now)

		store.Put("first", "v-1")
		clock.Advance(time.Second)
		store.Put("second", "v-2")
		clock.Advance(time.Second)
		store.Put("third", "v-3")

		assert.Equal(t, 2, store.Len())
		_, ok := store.Consume("first")
		assert.False(t, ok)
		_, ok = store.Consume("second")
		assert.True(t, ok)
		_, ok = store.Consume("third")
		assert.True(t, ok)
	})

	t.Run("replacing an attempt does not evict", func(t *testing.T) {
		store := NewStore(time.Minute, 2, time.Now)

		store.Put("a", "v-a")
		store.Put("b", "v-b")
		store.Put("b", "v-b2")

		verifier, ok := store.Consume("a")
		assert.True(t, ok)
		assert.Equal(t, "v-a", verifier)
		verifier, ok = store.Consume("b")
		assert.True(t, ok)
		assert.Equal(t, "v-b2", verifier)
	})

	t.Run("stays bounded under a login flood", func(t *testing.T) {
		store := NewStore(time.Minute, 100, time.Now)

		for i := range 1000 {
			store.Put(fmt.Sprintf("attempt-%d", i), "v")
		}

		assert.Equal(t, 100, store.Len())
	})
}
