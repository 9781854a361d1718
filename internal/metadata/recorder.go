package metadata

/*
Metadata Collected
- Fetch timestamps
- HTTP status codes
- Content hashes
- Crawl depth

Logging Goals
- Debuggable crawl behavior
- Post-run auditability
- Failure diagnostics

Structured logging is preferred.

Allowed:
- Primitive values
- Timestamps
- URLs (as values, not objects with behavior)
- Hashes
- Status codes
- Durations
- Identifiers (page ID, crawl ID)
*/

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Recorder is the zerolog-backed implementation of MetadataSink and
// CrawlFinalizer. It never makes scheduling decisions; it only observes.
type Recorder struct {
	log         zerolog.Logger
	crawlID     string
	totalPages  int64
	totalErrors int64
	totalAssets int64
}

// NewRecorder builds a Recorder that writes structured events through log,
// tagging every event with crawlID for cross-run correlation.
func NewRecorder(log zerolog.Logger, crawlID string) *Recorder {
	return &Recorder{
		log:     log.With().Str("crawl_id", crawlID).Logger(),
		crawlID: crawlID,
	}
}

func (r *Recorder) RecordFetch(
	fetchURL string,
	httpStatus int,
	duration time.Duration,
	contentType string,
	retryCount int,
	crawlDepth int,
) {
	atomic.AddInt64(&r.totalPages, 1)
	r.log.Info().
		Str("event", "fetch").
		Str("url", fetchURL).
		Int("http_status", httpStatus).
		Dur("duration", duration).
		Str("content_type", contentType).
		Int("retry_count", retryCount).
		Int("crawl_depth", crawlDepth).
		Msg("fetched page")
}

func (r *Recorder) RecordAssetFetch(
	fetchURL string,
	httpStatus int,
	duration time.Duration,
	retryCount int,
) {
	atomic.AddInt64(&r.totalAssets, 1)
	r.log.Info().
		Str("event", "asset_fetch").
		Str("url", fetchURL).
		Int("http_status", httpStatus).
		Dur("duration", duration).
		Int("retry_count", retryCount).
		Msg("fetched asset")
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
	atomic.AddInt64(&r.totalErrors, 1)
	evt := r.log.Warn().
		Str("event", "error").
		Time("observed_at", observedAt).
		Str("package", packageName).
		Str("action", action).
		Int("cause", int(cause)).
		Str("error", errorString)
	for _, attr := range attrs {
		evt = evt.Str(string(attr.Key), attr.Value)
	}
	evt.Msg("recorded error")
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	evt := r.log.Debug().
		Str("event", "artifact").
		Str("kind", kind.String()).
		Str("path", path)
	for _, attr := range attrs {
		evt = evt.Str(string(attr.Key), attr.Value)
	}
	evt.Msg("recorded artifact")
}

// RecordFinalCrawlStats is invoked exactly once by the scheduler after
// termination is detected. The counts it is given are authoritative; the
// running totals tracked on Recorder are diagnostic only and are not
// consulted here.
func (r *Recorder) RecordFinalCrawlStats(
	totalPages int,
	totalErrors int,
	totalAssets int,
	duration time.Duration,
) {
	r.log.Info().
		Str("event", "crawl_finished").
		Int("total_pages", totalPages).
		Int("total_errors", totalErrors).
		Int("total_assets", totalAssets).
		Dur("duration", duration).
		Msg("crawl finished")
}
