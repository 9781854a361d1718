package frontier

import (
	"sync"

	"github.com/rohmanhakim/crawlkit/internal/config"
	"github.com/rohmanhakim/crawlkit/pkg/urlutil"
)

/*
Frontier Responsibilities
- Maintain BFS ordering
- Deduplicate URLs
- Track crawl depth
- Prevent infinite traversal
- Knows nothing about:
	- fetching
	- extraction
	- robots
	- storage

It is a data structure + policy module, not a pipeline executor. Safe for
concurrent use: Submit and Dequeue are called from every crawl worker
goroutine simultaneously.
*/

// Frontier holds per-depth FIFO queues plus the crawl-wide visited set. The
// BFS guarantee (no depth-N+1 URL dequeued while a depth-N URL is pending)
// falls out of always dequeuing from the lowest depth with a non-empty
// queue, computed fresh on every call rather than cached.
type Frontier struct {
	mu            sync.Mutex
	maxDepth      int
	maxPages      int
	visited       Set[string]
	queuesByDepth map[int]*FIFOQueue[CrawlToken]
}

// NewCrawlFrontier returns a zero-value Frontier. Init must be called
// before Submit/Dequeue.
func NewCrawlFrontier() Frontier {
	return Frontier{}
}

// Init configures depth/page limits from cfg and allocates internal state.
// A zero MaxDepth/MaxPages in cfg means unlimited.
func (f *Frontier) Init(cfg config.Config) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.maxDepth = cfg.MaxDepth()
	f.maxPages = cfg.MaxPages()
	f.visited = NewSet[string]()
	f.queuesByDepth = make(map[int]*FIFOQueue[CrawlToken])
}

// Submit admits candidate into the frontier unless it is a duplicate, its
// depth exceeds the configured max depth, or the crawl's max page budget
// has already been reached. Admission and visited-set membership are the
// same operation: a rejected candidate is never recorded as visited.
// Submit reports whether the candidate was actually enqueued, so a caller
// that reserved a per-host filter budget ahead of submission (see
// filter.Chain.Allow/Revert) knows whether to release that reservation.
func (f *Frontier) Submit(candidate CrawlAdmissionCandidate) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	depth := candidate.DiscoveryMetadata().Depth()
	if f.maxDepth > 0 && depth > f.maxDepth {
		return false
	}
	if f.maxPages > 0 && f.visited.Size() >= f.maxPages {
		return false
	}

	canonical := urlutil.Canonicalize(candidate.TargetURL())
	key := canonical.String()
	if f.visited.Contains(key) {
		return false
	}
	f.visited.Add(key)

	queue, exists := f.queuesByDepth[depth]
	if !exists {
		queue = NewFIFOQueue[CrawlToken]()
		f.queuesByDepth[depth] = queue
	}
	queue.Enqueue(NewCrawlToken(candidate.TargetURL(), depth))
	return true
}

// Dequeue returns the next token in strict BFS order: the oldest token at
// the lowest depth that still has pending work. Returns false once every
// depth's queue is drained.
func (f *Frontier) Dequeue() (CrawlToken, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	depth := f.minNonEmptyDepthLocked()
	if depth == -1 {
		return CrawlToken{}, false
	}
	return f.queuesByDepth[depth].Dequeue()
}

// IsDepthExhausted reports whether depth has no pending tokens. Negative
// depths are always exhausted, since they cannot be submitted.
func (f *Frontier) IsDepthExhausted(depth int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if depth < 0 {
		return true
	}
	queue, exists := f.queuesByDepth[depth]
	return !exists || queue.Size() == 0
}

// CurrentMinDepth returns the lowest depth with pending tokens, or -1 if
// the frontier holds no pending work at any depth.
func (f *Frontier) CurrentMinDepth() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.minNonEmptyDepthLocked()
}

// VisitedCount returns the number of unique, admitted URLs. The visited set
// is append-only: it never shrinks as tokens are dequeued.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.visited.Size()
}

// minNonEmptyDepthLocked scans every known depth level for the smallest one
// with pending work. Caller must hold f.mu.
func (f *Frontier) minNonEmptyDepthLocked() int {
	min := -1
	for depth, queue := range f.queuesByDepth {
		if queue == nil || queue.Size() == 0 {
			continue
		}
		if min == -1 || depth < min {
			min = depth
		}
	}
	return min
}
