package vector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountCacheHitAndMiss(t *testing.T) {
	c := newCountCache(time.Minute)

	_, ok := c.Get("a1")
	assert.False(t, ok)

	c.Set("a1", 42)
	n, ok := c.Get("a1")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = c.Get("a2")
	assert.False(t, ok)
}

func TestCountCacheExpiry(t *testing.T) {
	c := newCountCache(10 * time.Millisecond)

	c.Set("a1", 7)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a1")
	assert.False(t, ok)
}

func TestCountCacheInvalidate(t *testing.T) {
	c := newCountCache(time.Minute)

	c.Set("a1", 1)
	c.Set("a2", 2)

	c.Invalidate("a1")
	_, ok := c.Get("a1")
	assert.False(t, ok)

	n, ok := c.Get("a2")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	c.Clear()
	_, ok = c.Get("a2")
	assert.False(t, ok)
}
