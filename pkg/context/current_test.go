package context

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent_SetGet(t *testing.T) {
	current := NewCurrent()
	current.Set("request_id", "abc")
	current.Set("attempt", 2)

	id, ok := current.GetString("request_id")
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = current.GetString("attempt")
	assert.False(t, ok)
	assert.Len(t, current.All(), 2)
}

func TestCurrent_Context(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestID(ctx))
	assert.NotNil(t, GetCurrent(ctx))

	current := NewCurrent()
	current.Set("request_id", "abc")
	ctx = WithCurrent(ctx, current)

	assert.Equal(t, "abc", RequestID(ctx))
	assert.Same(t, current, GetCurrent(ctx))
}

func TestCurrent_ConcurrentAccess(t *testing.T) {
	current := NewCurrent()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			current.Set("key", i)
			_ = current.Get("key")
		}(i)
	}
	wg.Wait()

	assert.NotNil(t, current.Get("key"))
}
