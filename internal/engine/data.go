package engine

import (
	"net/url"
	"time"
)

// Page is a single crawled document handed back by Scrape. The Subscription
// Bus's EventPageFetched events carry only the page's URL and depth, not a
// Page.
type Page struct {
	URL       url.URL
	Depth     int
	Text      string
	FetchedAt time.Time
}

// Summary reports the outcome of a Crawl once the frontier drains or the
// engine is shut down, mirroring what metadata.CrawlFinalizer already
// records for observability but returned directly to the caller.
type Summary struct {
	TotalPages  int
	TotalErrors int
	Duration    time.Duration
}
