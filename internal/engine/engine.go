package engine

/*
Engine is the concurrent seed -> fetch -> extract -> enqueue crawl loop.

Control flow, per URL token:
 1. Pull from the Frontier (BFS order).
 2. Filter Chain admits or rejects the seed on scope/blacklist/budget
    (discovered links were already filtered at step 6).
 3. Politeness Governor permits: robots.txt decision, then rate limit and
    global concurrency slot.
 4. HTTP Fetcher retrieves the page (optionally served from the response
    cache instead).
 5. Link Extractor isolates the main content and discovers outbound links.
 6. Discovered links are normalized and re-admitted through the same
    Filter Chain, then submitted to the Frontier.
 7. The result is published to the Subscription Bus and counted.

Every worker goroutine checks control.Handle at the top of its loop and
before every blocking step, so Pause/Resume/Shutdown take effect promptly
without tearing down in-flight work.
*/

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rohmanhakim/crawlkit/internal/bus"
	"github.com/rohmanhakim/crawlkit/internal/cache"
	"github.com/rohmanhakim/crawlkit/internal/config"
	"github.com/rohmanhakim/crawlkit/internal/control"
	"github.com/rohmanhakim/crawlkit/internal/extractor"
	"github.com/rohmanhakim/crawlkit/internal/fetcher"
	"github.com/rohmanhakim/crawlkit/internal/filter"
	"github.com/rohmanhakim/crawlkit/internal/frontier"
	"github.com/rohmanhakim/crawlkit/internal/limiter"
	"github.com/rohmanhakim/crawlkit/internal/metadata"
	"github.com/rohmanhakim/crawlkit/internal/robots"
	"github.com/rohmanhakim/crawlkit/pkg/retry"
	"github.com/rohmanhakim/crawlkit/pkg/timeutil"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Engine owns every component a crawl needs and the state that changes
// across its run: the frontier, the handful of counters Summary reports,
// and the pages Scrape accumulates.
type Engine struct {
	cfg    config.Config
	handle *control.Handle

	frontier    frontier.Frontier
	filterChain *filter.Chain
	robot       robots.CachedRobot
	governor    *limiter.Governor
	htmlFetcher fetcher.Fetcher
	domExtractor extractor.DomExtractor
	cacheStore  *cache.Store
	bus         *bus.Bus

	metadataSink metadata.MetadataSink
	log          zerolog.Logger

	mu          sync.Mutex
	pages       []Page
	totalErrors int64
}

// New builds an Engine for seed, applying opts to config.WithDefault's
// baseline before wiring every component together. It returns the Engine
// alongside the control.Handle a caller can use to Pause/Resume/Shutdown
// this crawl directly, without going through the package-level registry.
func New(seed string, opts ...config.Option) (*Engine, *control.Handle, error) {
	seedURL, err := parseSeed(seed)
	if err != nil {
		return nil, nil, err
	}

	cfgBuilder := config.WithDefault([]url.URL{seedURL})
	for _, opt := range opts {
		opt(cfgBuilder)
	}
	cfg, err := cfgBuilder.Build()
	if err != nil {
		return nil, nil, err
	}

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	crawlID := fmt.Sprintf("%s-%d", seedURL.Host, time.Now().UnixNano())
	metadataSink := metadata.NewRecorder(log, crawlID)

	handle := control.NewHandle(seed)
	control.Register(handle)

	e := &Engine{
		cfg:          cfg,
		handle:       handle,
		frontier:     frontier.NewCrawlFrontier(),
		filterChain:  filter.NewChain(cfg),
		robot:        robots.NewRobot(metadataSink),
		governor:     limiter.NewGovernor(cfg.BaseDelay(), cfg.Concurrency()),
		domExtractor: extractor.NewDomExtractor(metadataSink),
		bus:          bus.New(bus.ParsePolicy(cfg.SlowConsumerPolicy())),
		metadataSink: metadataSink,
		log:          log,
	}

	htmlFetcher := fetcher.NewHtmlFetcher(metadataSink)
	htmlFetcher.Init(&http.Client{Timeout: cfg.Timeout()}, cfg.UserAgent())
	e.htmlFetcher = &htmlFetcher

	e.frontier.Init(cfg)
	e.robot.Init(cfg.UserAgent())
	e.governor.Configure(cfg.Jitter(), cfg.RandomSeed())
	e.domExtractor.SetExtractParam(extractor.ExtractParam{
		BodySpecificityBias:  cfg.BodySpecificityBias(),
		LinkDensityThreshold: cfg.LinkDensityThreshold(),
		ScoreMultiplier: extractor.ContentScoreMultiplier{
			NonWhitespaceDivisor: cfg.ScoreMultiplierNonWhitespaceDivisor(),
			Paragraphs:           cfg.ScoreMultiplierParagraphs(),
			Headings:             cfg.ScoreMultiplierHeadings(),
			CodeBlocks:           cfg.ScoreMultiplierCodeBlocks(),
			ListItems:            cfg.ScoreMultiplierListItems(),
		},
		Threshold: extractor.MeaningfulThreshold{
			MinNonWhitespace:    cfg.ThresholdMinNonWhitespace(),
			MinHeadings:         cfg.ThresholdMinHeadings(),
			MinParagraphsOrCode: cfg.ThresholdMinParagraphsOrCode(),
			MaxLinkDensity:      cfg.ThresholdMaxLinkDensity(),
		},
	})

	if cfg.CacheEnabled() {
		e.cacheStore = cache.NewStore(metadataSink, cfg.CacheDir(), 0)
	}

	return e, handle, nil
}

// Crawl runs the seed to completion (frontier drained, max pages reached,
// or ctx/Shutdown cancellation) and returns a Summary. Every fetched page
// is published to the bus as it completes; Crawl itself does not retain
// page bodies, unlike Scrape.
func (e *Engine) Crawl(ctx context.Context) (Summary, error) {
	return e.run(ctx, false)
}

// Scrape runs the crawl the same way Crawl does, but additionally
// accumulates every fetched page's extracted text and returns them once
// the crawl completes. Intended for callers that want the content inline
// rather than subscribing to the bus.
func (e *Engine) Scrape(ctx context.Context) ([]Page, error) {
	if _, err := e.run(ctx, true); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	pages := make([]Page, len(e.pages))
	copy(pages, e.pages)
	return pages, nil
}

// Subscribe registers a new subscriber on the crawl's event bus.
func (e *Engine) Subscribe(buffer int) (*bus.Subscription, error) {
	return e.bus.Subscribe(buffer), nil
}

// Unsubscribe removes sub from the crawl's event bus.
func (e *Engine) Unsubscribe(sub *bus.Subscription) {
	e.bus.Unsubscribe(sub)
}

// Handle returns the control.Handle governing this crawl.
func (e *Engine) Handle() *control.Handle {
	return e.handle
}

func (e *Engine) run(parent context.Context, retainPages bool) (Summary, error) {
	startTime := time.Now()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	go func() {
		select {
		case <-e.handle.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	defer func() {
		e.handle.MarkTerminated()
		control.Unregister(e.handle.Seed())
		e.bus.Close()
	}()

	if len(e.cfg.SeedURLs()) == 0 {
		return Summary{}, fmt.Errorf("engine: no seed URLs configured")
	}

	seedCandidate := frontier.NewCrawlAdmissionCandidate(
		e.cfg.SeedURLs()[0],
		frontier.SourceSeed,
		frontier.NewDiscoveryMetadata(0, nil),
	)
	e.frontier.Submit(seedCandidate)
	e.handle.MarkRunning()

	concurrency := e.cfg.Concurrency()
	if concurrency <= 0 {
		concurrency = 1
	}

	workCh := make(chan frontier.CrawlToken)
	var inFlight int64

	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		group.Go(func() error {
			for token := range workCh {
				e.processToken(groupCtx, token, retainPages)
				atomic.AddInt64(&inFlight, -1)
			}
			return nil
		})
	}

dispatch:
	for {
		select {
		case <-ctx.Done():
			break dispatch
		case <-e.handle.Done():
			break dispatch
		default:
		}

		e.handle.WaitIfPaused()

		token, ok := e.frontier.Dequeue()
		if !ok {
			if atomic.LoadInt64(&inFlight) == 0 {
				break dispatch
			}
			select {
			case <-time.After(10 * time.Millisecond):
			case <-ctx.Done():
				break dispatch
			}
			continue
		}

		atomic.AddInt64(&inFlight, 1)
		select {
		case workCh <- token:
		case <-ctx.Done():
			atomic.AddInt64(&inFlight, -1)
			break dispatch
		}
	}

	close(workCh)
	group.Wait()

	duration := time.Since(startTime)
	totalPages := e.frontier.VisitedCount()
	totalErrors := int(atomic.LoadInt64(&e.totalErrors))

	if finalizer, ok := e.metadataSink.(metadata.CrawlFinalizer); ok {
		finalizer.RecordFinalCrawlStats(totalPages, totalErrors, 0, duration)
	}

	e.bus.Publish(bus.Event{
		Kind:      bus.EventCrawlFinished,
		Timestamp: time.Now(),
	})

	return Summary{
		TotalPages:  totalPages,
		TotalErrors: totalErrors,
		Duration:    duration,
	}, nil
}

func (e *Engine) retryParam() retry.RetryParam {
	return retry.NewRetryParam(
		e.cfg.BaseDelay(),
		e.cfg.Jitter(),
		e.cfg.RandomSeed(),
		e.cfg.MaxAttempt(),
		timeutil.NewBackoffParam(
			e.cfg.BackoffInitialDuration(),
			e.cfg.BackoffMultiplier(),
			e.cfg.BackoffMaxDuration(),
		),
	)
}

func (e *Engine) recordError() {
	atomic.AddInt64(&e.totalErrors, 1)
}

// parseSeed validates that seed is an absolute http(s) URL, the only kind
// a crawl can usefully start from.
func parseSeed(seed string) (url.URL, error) {
	u, err := url.Parse(seed)
	if err != nil {
		return url.URL{}, fmt.Errorf("engine: invalid seed URL %q: %w", seed, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return url.URL{}, fmt.Errorf("engine: seed URL %q must be http or https", seed)
	}
	if u.Host == "" {
		return url.URL{}, fmt.Errorf("engine: seed URL %q has no host", seed)
	}
	return *u, nil
}
