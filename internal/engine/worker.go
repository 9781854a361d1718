package engine

import (
	"context"
	"net/url"
	"time"

	"github.com/rohmanhakim/crawlkit/internal/bus"
	"github.com/rohmanhakim/crawlkit/internal/cache"
	"github.com/rohmanhakim/crawlkit/internal/extractor"
	"github.com/rohmanhakim/crawlkit/internal/frontier"
	"github.com/rohmanhakim/crawlkit/pkg/failure"
	"github.com/rohmanhakim/crawlkit/pkg/urlutil"
)

// processToken runs a single Frontier token through admission, politeness,
// fetch, extraction, and link re-admission. It never returns an error: a
// rejected or failed token is recorded and published, not propagated, so
// one bad URL never aborts the crawl.
func (e *Engine) processToken(ctx context.Context, token frontier.CrawlToken, retainPages bool) {
	select {
	case <-ctx.Done():
		return
	case <-e.handle.Done():
		return
	default:
	}
	e.handle.WaitIfPaused()

	targetURL := token.URL()

	// Discovered links already went through the filter chain (and reserved
	// their budget unit) in admitDiscoveredLinks; only the seed is filtered
	// here.
	if token.Depth() == 0 {
		decision := e.filterChain.Allow(targetURL)
		if !decision.Allowed {
			e.publishSkip(targetURL, token.Depth())
			return
		}
	}

	host := targetURL.Hostname()

	if e.cfg.RespectRobots() {
		robotsDecision, err := e.robot.Decide(targetURL)
		if err != nil {
			e.filterChain.Revert(targetURL)
			e.recordError()
			e.publishError(targetURL, err)
			return
		}
		if robotsDecision.CrawlDelay > 0 {
			e.governor.SetCrawlDelay(host, robotsDecision.CrawlDelay)
		}
		if !robotsDecision.Allowed {
			e.filterChain.Revert(targetURL)
			e.publishSkip(targetURL, token.Depth())
			return
		}
	}

	if err := e.governor.Acquire(ctx, host); err != nil {
		e.filterChain.Revert(targetURL)
		return
	}
	defer e.governor.Release()

	body, _, fetchErr := e.fetchBody(ctx, token)
	if fetchErr != nil {
		e.governor.Backoff(host)
		e.recordError()
		e.publishError(targetURL, fetchErr)
		return
	}
	e.governor.ResetBackoff(host)

	extraction, extractErr := e.domExtractor.Extract(targetURL, body)
	if extractErr != nil {
		e.recordError()
		e.publishError(targetURL, extractErr)
		return
	}

	e.admitDiscoveredLinks(targetURL, token.Depth(), extraction)

	if retainPages {
		e.mu.Lock()
		e.pages = append(e.pages, Page{
			URL:       targetURL,
			Depth:     token.Depth(),
			Text:      extractor.ExtractText(extraction.ContentNode),
			FetchedAt: time.Now(),
		})
		e.mu.Unlock()
	}

	e.bus.Publish(bus.Event{
		Kind:      bus.EventPageFetched,
		URL:       targetURL.String(),
		Depth:     token.Depth(),
		Timestamp: time.Now(),
	})
}

// fetchBody serves targetURL from the response cache when enabled and
// fresh, falling back to a live fetch and writing the result back to the
// cache on success.
func (e *Engine) fetchBody(ctx context.Context, token frontier.CrawlToken) ([]byte, string, failure.ClassifiedError) {
	targetURL := token.URL()
	canonical := urlutil.Canonicalize(targetURL).String()

	if e.cacheStore != nil {
		if entry, ok := e.cacheStore.Get(canonical); ok {
			return entry.Body, entry.ContentType, nil
		}
	}

	result, err := e.htmlFetcher.Fetch(ctx, token.Depth(), targetURL, e.retryParam())
	if err != nil {
		return nil, "", err
	}

	if e.cacheStore != nil {
		e.cacheStore.Put(cache.Entry{
			URL:         canonical,
			StatusCode:  result.Code(),
			ContentType: result.ContentType(),
			Headers:     result.Headers(),
			Body:        result.Body(),
			FetchedAt:   result.FetchedAt(),
		})
	}

	return result.Body(), result.ContentType(), nil
}

// admitDiscoveredLinks resolves every link the extractor found against the
// fetched page's own URL, runs each through the filter chain, and submits
// the survivors to the frontier at depth+1. A link the filter allowed but
// the frontier did not ultimately enqueue (already visited, over the page
// budget) has its filter budget reservation reverted, since Allow reserves
// speculatively.
func (e *Engine) admitDiscoveredLinks(sourceURL url.URL, depth int, extraction extractor.ExtractionResult) {
	links := extractor.DiscoverLinks(sourceURL, extraction.DocumentRoot)
	for _, link := range links {
		decision := e.filterChain.Allow(link)
		if !decision.Allowed {
			continue
		}

		candidate := frontier.NewCrawlAdmissionCandidate(
			link,
			frontier.SourceCrawl,
			frontier.NewDiscoveryMetadata(depth+1, nil),
		)
		if !e.frontier.Submit(candidate) {
			e.filterChain.Revert(link)
		}
	}
}

func (e *Engine) publishSkip(targetURL url.URL, depth int) {
	e.bus.Publish(bus.Event{
		Kind:      bus.EventPageSkipped,
		URL:       targetURL.String(),
		Depth:     depth,
		Timestamp: time.Now(),
	})
}

func (e *Engine) publishError(targetURL url.URL, err error) {
	e.bus.Publish(bus.Event{
		Kind:      bus.EventError,
		URL:       targetURL.String(),
		Err:       err,
		Timestamp: time.Now(),
	})
}
