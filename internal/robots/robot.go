package robots

/*
Responsibilities

- Fetch robots.txt per host
- Cache rules for crawl duration
- Enforce allow/disallow rules before fetch

Robots checks occur after a URL leaves the frontier and before it is
fetched.
*/

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/rohmanhakim/crawlkit/internal/metadata"
	"github.com/rohmanhakim/crawlkit/internal/robots/cache"
	"golang.org/x/sync/singleflight"
)

// CachedRobot is the crawl-wide robots.txt authority. It fetches and parses
// robots.txt once per host, keeps the derived ruleSet for the lifetime of
// the crawl, and coalesces concurrent Decide calls for a host that has not
// been resolved yet so only one robots.txt request is ever in flight per
// host at a time.
//
// CachedRobot is a value type wrapping only comparable fields so that
// callers may keep it on the stack and copy it freely; Init/InitWithCache
// populate it in place.
type CachedRobot struct {
	metadataSink metadata.MetadataSink
	fetcher      *RobotsFetcher
	userAgent    string
	rules        *sync.Map
	group        *singleflight.Group
}

// NewRobot builds an uninitialized CachedRobot bound to sink. Init or
// InitWithCache must be called before Decide.
func NewRobot(sink metadata.MetadataSink) CachedRobot {
	return CachedRobot{metadataSink: sink}
}

// NewCachedRobot is an alias of NewRobot kept for call sites that spell out
// the concrete type name.
func NewCachedRobot(sink metadata.MetadataSink) CachedRobot {
	return NewRobot(sink)
}

// Init wires the robot with an in-memory robots.txt cache.
func (r *CachedRobot) Init(userAgent string) {
	r.InitWithCache(userAgent, cache.NewMemoryCache())
}

// InitWithCache wires the robot with the given robots.txt fetch cache,
// letting callers share or persist the cache across crawls.
func (r *CachedRobot) InitWithCache(userAgent string, robotsCache cache.Cache) {
	r.userAgent = userAgent
	r.fetcher = NewRobotsFetcher(r.metadataSink, userAgent, robotsCache)
	r.rules = &sync.Map{}
	r.group = &singleflight.Group{}
}

// Decide resolves whether targetURL may be crawled, fetching and caching
// robots.txt for its host on first use. Concurrent Decide calls for the
// same host share a single in-flight robots.txt fetch.
func (r *CachedRobot) Decide(targetURL url.URL) (Decision, error) {
	rs, err := r.ruleSetFor(targetURL)
	if err != nil {
		r.recordError("Decide", targetURL, err)
		return Decision{}, err
	}

	return evaluateDecision(targetURL, rs), nil
}

func (r *CachedRobot) ruleSetFor(targetURL url.URL) (ruleSet, *RobotsError) {
	host := targetURL.Host
	if cached, ok := r.rules.Load(host); ok {
		return cached.(ruleSet), nil
	}

	result, err, _ := r.group.Do(host, func() (any, error) {
		fetchResult, fetchErr := r.fetcher.Fetch(context.Background(), targetURL.Scheme, host)
		if fetchErr != nil {
			return nil, fetchErr
		}
		rs := MapResponseToRuleSet(fetchResult.Response, r.userAgent, fetchResult.FetchedAt)
		r.rules.Store(host, rs)
		return rs, nil
	})

	if err != nil {
		robotsErr, ok := err.(*RobotsError)
		if !ok {
			robotsErr = &RobotsError{Message: err.Error(), Retryable: false, Cause: ErrCausePreFetchFailure}
		}
		return ruleSet{}, robotsErr
	}

	return result.(ruleSet), nil
}

func (r *CachedRobot) recordError(action string, targetURL url.URL, err *RobotsError) {
	if r.metadataSink == nil {
		return
	}
	r.metadataSink.RecordError(
		time.Now(),
		"robots",
		action,
		mapRobotsErrorToMetadataCause(err),
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrURL, targetURL.String()),
			metadata.NewAttr(metadata.AttrHost, targetURL.Host),
		},
	)
}

// evaluateDecision applies the matched ruleSet's allow/disallow rules to
// targetURL's path. The longest matching rule wins; an allow rule of equal
// length to a disallow rule wins per the robots.txt de-facto standard.
func evaluateDecision(targetURL url.URL, rs ruleSet) Decision {
	decision := Decision{Url: targetURL}
	if rs.CrawlDelay() != nil {
		decision.CrawlDelay = *rs.CrawlDelay()
	}

	if !rs.hasGroups {
		decision.Allowed = true
		decision.Reason = EmptyRuleSet
		return decision
	}

	if !rs.matchedGroup {
		decision.Allowed = true
		decision.Reason = UserAgentNotMatched
		return decision
	}

	path := targetURL.Path
	if path == "" {
		path = "/"
	}

	allowLen := longestMatch(rs.allowRules, path)
	disallowLen := longestMatch(rs.disallowRules, path)

	switch {
	case disallowLen < 0:
		decision.Allowed = true
		decision.Reason = NoMatchingRules
	case allowLen >= disallowLen:
		decision.Allowed = true
		decision.Reason = AllowedByRobots
	default:
		decision.Allowed = false
		decision.Reason = DisallowedByRobots
	}

	return decision
}

func longestMatch(rules []pathRule, path string) int {
	best := -1
	for _, rule := range rules {
		if rule.prefix == "" {
			continue
		}
		if matchesRobotsPath(rule.prefix, path) && len(rule.prefix) > best {
			best = len(rule.prefix)
		}
	}
	return best
}

// matchesRobotsPath implements the robots.txt path-matching subset: a plain
// prefix match, with "*" treated as a wildcard and a trailing "$" anchoring
// the match to the end of the path.
func matchesRobotsPath(pattern, path string) bool {
	anchored := false
	if len(pattern) > 0 && pattern[len(pattern)-1] == '$' {
		anchored = true
		pattern = pattern[:len(pattern)-1]
	}

	segments := splitOnWildcard(pattern)
	rest := path
	for i, seg := range segments {
		idx := indexOf(rest, seg)
		if idx < 0 {
			return false
		}
		if i == 0 && idx != 0 {
			return false
		}
		rest = rest[idx+len(seg):]
	}
	if anchored && rest != "" {
		return false
	}
	return true
}

func splitOnWildcard(pattern string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '*' {
			segments = append(segments, pattern[start:i])
			start = i + 1
		}
	}
	segments = append(segments, pattern[start:])
	return segments
}

func indexOf(s, substr string) int {
	if substr == "" {
		return 0
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
