package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCache(t *testing.T) {
	ctx := context.Background()
	var builds atomic.Int32
	build := func(context.Context) (*Plan, error) {
		builds.Add(1)
		return newPlan(), nil
	}

	t.Run("Memoizes Within TTL", func(t *testing.T) {
		builds.Store(0)
		c := NewPreviewCache(time.Minute)
		first, err := c.Get(ctx, "k", build)
		require.NoError(t, err)
		second, err := c.Get(ctx, "k", build)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, int32(1), builds.Load())

		c.Invalidate()
		_, err = c.Get(ctx, "k", build)
		require.NoError(t, err)
		assert.Equal(t, int32(2), builds.Load())
	})

	t.Run("Zero TTL Rebuilds", func(t *testing.T) {
		builds.Store(0)
		c := NewPreviewCache(0)
		for i := 0; i < 3; i++ {
			_, err := c.Get(ctx, "k", build)
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), builds.Load())
	})

	t.Run("Collapses Concurrent Builds", func(t *testing.T) {
		var calls atomic.Int32
		release := make(chan struct{})
		slow := func(context.Context) (*Plan, error) {
			calls.Add(1)
			<-release
			return newPlan(), nil
		}

		c := NewPreviewCache(0)
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := c.Get(ctx, "k", slow)
				assert.NoError(t, err)
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Errors Are Not Cached", func(t *testing.T) {
		c := NewPreviewCache(time.Minute)
		_, err := c.Get(ctx, "k", func(context.Context) (*Plan, error) { return nil, errors.New("boom") })
		assert.EqualError(t, err, "boom")

		plan, err := c.Get(ctx, "k", build)
		require.NoError(t, err)
		assert.NotNil(t, plan)
	})
}
