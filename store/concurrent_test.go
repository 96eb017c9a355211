package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestConcurrentlyOverlapsReads tests every read is in flight before any of them returns
func TestConcurrentlyOverlapsReads(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)

	allStarted := make(chan struct{})
	go func() {
		wg.Wait()
		close(allStarted)
	}()

	read := func(ctx context.Context) error {
		wg.Done()
		select {
		case <-allStarted:
			return nil
		case <-time.After(2 * time.Second):
			return fmt.Errorf("reads did not overlap")
		}
	}

	assert.NoError(t, concurrently(context.Background(), read, read))
}

func TestConcurrentlyCancelsOnFailure(t *testing.T) {
	failed := fmt.Errorf("count failed")

	fetch := func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
			return fmt.Errorf("fetch was not cancelled")
		}
	}
	count := func(ctx context.Context) error {
		return failed
	}

	assert.Equal(t, failed, concurrently(context.Background(), fetch, count))
}

func TestConcurrentlyKeepsCallerContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "request")

	err := concurrently(ctx, func(ctx context.Context) error {
		if ctx.Value(key{}) != "request" {
			return fmt.Errorf("caller context lost")
		}
		return nil
	})
	assert.NoError(t, err)
}
