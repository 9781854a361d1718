package limiter

/*
Responsibilities

- Hold one token-bucket rate limiter per host, refreshed whenever
  robots.txt reports a Crawl-delay directive for that host
- Cap the number of fetches in flight across the whole process,
  independent of how many hosts the crawl is currently fanned out to
- Carry the crawl-wide exponential backoff state (429/5xx) a host
  accumulates across retries

The governor never decides whether a URL may be crawled; that is
robots.Decide and filter.Chain's job. It only decides when a URL that
has already been admitted is allowed to actually hit the network.
*/

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/rohmanhakim/crawlkit/pkg/limiter"
)

// Governor is the crawl-wide politeness authority. Safe for concurrent
// use: Acquire/Release are called from every fetch worker goroutine.
type Governor struct {
	mu        sync.Mutex
	perHost   map[string]*rate.Limiter
	baseDelay time.Duration

	global  *semaphore.Weighted
	backoff *limiter.ConcurrentRateLimiter
}

// NewGovernor builds a Governor whose default per-host rate is one
// fetch every baseDelay, capped globally at globalCap concurrent
// in-flight fetches. A non-positive globalCap falls back to four
// times runtime.NumCPU(), which keeps a wide host fan-out from starving the
// process of file descriptors.
func NewGovernor(baseDelay time.Duration, globalCap int) *Governor {
	if globalCap <= 0 {
		globalCap = runtime.NumCPU() * 4
	}
	return &Governor{
		perHost:   make(map[string]*rate.Limiter),
		baseDelay: baseDelay,
		global:    semaphore.NewWeighted(int64(globalCap)),
		backoff:   limiter.NewConcurrentRateLimiter(),
	}
}

// Configure wires jitter and the deterministic random seed into the
// backoff math, mirroring config.Config's politeness knobs.
func (g *Governor) Configure(jitter time.Duration, randomSeed int64) {
	g.backoff.SetBaseDelay(g.baseDelay)
	g.backoff.SetJitter(jitter)
	g.backoff.SetRandomSeed(randomSeed)
}

// SetCrawlDelay installs a per-host token bucket honoring a robots.txt
// Crawl-delay directive. A zero or negative delay is ignored; the host
// keeps whichever rate it already had (its default, or an earlier,
// stricter directive).
func (g *Governor) SetCrawlDelay(host string, delay time.Duration) {
	if delay <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.perHost[host] = rate.NewLimiter(rate.Every(delay), 1)
}

func (g *Governor) hostLimiter(host string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.perHost[host]
	if ok {
		return l
	}
	interval := g.baseDelay
	if interval <= 0 {
		interval = time.Millisecond
	}
	l = rate.NewLimiter(rate.Every(interval), 1)
	g.perHost[host] = l
	return l
}

// Acquire blocks until host's token bucket, any accumulated backoff
// delay, and the process-wide semaphore all admit one fetch. Release
// must be called exactly once per successful Acquire.
func (g *Governor) Acquire(ctx context.Context, host string) error {
	if err := g.global.Acquire(ctx, 1); err != nil {
		return err
	}

	if err := g.hostLimiter(host).Wait(ctx); err != nil {
		g.global.Release(1)
		return err
	}

	if delay := g.backoff.ResolveDelay(host); delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			g.global.Release(1)
			return ctx.Err()
		}
	}

	g.backoff.MarkLastFetchAsNow(host)
	return nil
}

// Release returns host's fetch slot to the global cap.
func (g *Governor) Release() {
	g.global.Release(1)
}

// Backoff escalates host's exponential backoff after a 429 or 5xx.
func (g *Governor) Backoff(host string) {
	g.backoff.Backoff(host)
}

// ResetBackoff clears host's backoff state after a successful fetch.
func (g *Governor) ResetBackoff(host string) {
	g.backoff.ResetBackoff(host)
}
