package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rohmanhakim/crawlkit/internal/limiter"
)

func TestGovernor_Acquire_RespectsCrawlDelay(t *testing.T) {
	g := limiter.NewGovernor(time.Millisecond, 4)
	g.SetCrawlDelay("example.com", 50*time.Millisecond)

	ctx := context.Background()
	assert.NoError(t, g.Acquire(ctx, "example.com"))
	g.Release()

	start := time.Now()
	assert.NoError(t, g.Acquire(ctx, "example.com"))
	g.Release()

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestGovernor_Acquire_GlobalCapBlocksExtraFetch(t *testing.T) {
	g := limiter.NewGovernor(0, 1)

	ctx := context.Background()
	assert.NoError(t, g.Acquire(ctx, "a.example.com"))

	ctx2, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := g.Acquire(ctx2, "b.example.com")
	assert.Error(t, err)

	g.Release()
}

func TestGovernor_Backoff_DelaysSubsequentAcquire(t *testing.T) {
	g := limiter.NewGovernor(0, 4)
	g.Configure(0, 1)

	ctx := context.Background()
	assert.NoError(t, g.Acquire(ctx, "flaky.example.com"))
	g.Release()

	g.Backoff("flaky.example.com")

	start := time.Now()
	assert.NoError(t, g.Acquire(ctx, "flaky.example.com"))
	g.Release()

	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
}

func TestGovernor_ResetBackoff_ClearsDelay(t *testing.T) {
	g := limiter.NewGovernor(0, 4)
	g.Configure(0, 1)

	ctx := context.Background()
	assert.NoError(t, g.Acquire(ctx, "recovering.example.com"))
	g.Release()

	g.Backoff("recovering.example.com")
	g.ResetBackoff("recovering.example.com")

	start := time.Now()
	assert.NoError(t, g.Acquire(ctx, "recovering.example.com"))
	g.Release()

	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
