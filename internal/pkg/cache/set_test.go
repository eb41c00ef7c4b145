package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetExpiry(t *testing.T) {
	t.Parallel()

	c := NewSet[int]("test#expiry")
	assert.NoError(t, c.Set("k", 42, 20*time.Millisecond))

	var got int
	assert.NoError(t, c.Get("k", &got))
	assert.Equal(t, 42, got)

	// The janitor sweep runs on a much longer interval; the read path alone
	// must refuse the entry once it has expired.
	time.Sleep(40 * time.Millisecond)
	assert.ErrorIs(t, c.Get("k", &got), ErrNotFound)
}

func TestSetMutexGetSet(t *testing.T) {
	t.Parallel()

	c := NewSet[string]("test#mutexgetset")

	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	var got string
	calculated, err := c.MutexGetSet("k", &got, compute, time.Minute)
	assert.NoError(t, err)
	assert.True(t, calculated)
	assert.Equal(t, "value", got)

	calculated, err = c.MutexGetSet("k", &got, compute, time.Minute)
	assert.NoError(t, err)
	assert.False(t, calculated, "second read must come from cache")
	assert.Equal(t, 1, calls)
}

func TestSetDelete(t *testing.T) {
	t.Parallel()

	c := NewSet[int]("test#delete")
	assert.NoError(t, c.Set("k", 1, time.Minute))
	assert.NoError(t, c.Delete("k"))

	var got int
	assert.ErrorIs(t, c.Get("k", &got), ErrNotFound)
}
