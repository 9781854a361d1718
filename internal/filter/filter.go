package filter

/*
Responsibilities

- Apply scope rules (allowed hosts, subdomains, TLD, path prefixes)
- Apply blacklist/whitelist glob rules
- Enforce per-host crawl budgets

The filter chain runs before frontier admission and, for a dequeued seed,
before robots. It never
fetches or parses; it only decides whether a URL is allowed to proceed.
*/

import (
	"net/url"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/rohmanhakim/crawlkit/internal/config"
)

// Decision reports the filter chain's verdict for a single URL.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Reason names which predicate produced a Decision, for observability.
type Reason int

const (
	ReasonAllowed Reason = iota
	ReasonHostNotAllowed
	ReasonPathPrefixNotAllowed
	ReasonBlacklisted
	ReasonNotWhitelisted
	ReasonBudgetExhausted
	ReasonStaticAsset
)

// Predicate is a single scope/filter check. A chain runs every predicate in
// order and rejects on the first failure.
type Predicate func(targetURL url.URL) (bool, Reason)

// Chain is an ordered sequence of predicates plus a per-host budget ledger.
// Safe for concurrent use: Allow may be called from every crawl worker
// goroutine simultaneously.
type Chain struct {
	predicates []Predicate

	mu       sync.Mutex
	budget   map[string]int
	consumed map[string]int
}

// NewChain builds the filter chain's predicates from cfg: host/subdomain/TLD
// scope, allowed path prefixes, and glob-compiled blacklist/whitelist
// patterns. Malformed glob patterns are skipped rather than rejected, since
// a bad pattern should not abort startup.
func NewChain(cfg config.Config) *Chain {
	c := &Chain{
		budget:   cfg.Budget(),
		consumed: make(map[string]int),
	}

	allowedHosts := cfg.AllowedHosts()
	externalDomains := cfg.ExternalDomains()
	subdomains := cfg.Subdomains()
	tld := cfg.TLD()
	c.predicates = append(c.predicates, func(targetURL url.URL) (bool, Reason) {
		if hostInScope(targetURL.Hostname(), allowedHosts, externalDomains, subdomains, tld) {
			return true, ReasonAllowed
		}
		return false, ReasonHostNotAllowed
	})

	if prefixes := cfg.AllowedPathPrefix(); len(prefixes) > 0 {
		c.predicates = append(c.predicates, func(targetURL url.URL) (bool, Reason) {
			for _, prefix := range prefixes {
				if strings.HasPrefix(targetURL.Path, prefix) {
					return true, ReasonAllowed
				}
			}
			return false, ReasonPathPrefixNotAllowed
		})
	}

	if suffixes := cfg.StaticsIgnore(); len(suffixes) > 0 {
		c.predicates = append(c.predicates, func(targetURL url.URL) (bool, Reason) {
			if hasStaticSuffix(targetURL.Path, suffixes) {
				return false, ReasonStaticAsset
			}
			return true, ReasonAllowed
		})
	}

	if globs := compileGlobs(cfg.Blacklist()); len(globs) > 0 {
		c.predicates = append(c.predicates, func(targetURL url.URL) (bool, Reason) {
			for _, g := range globs {
				if g.Match(targetURL.String()) {
					return false, ReasonBlacklisted
				}
			}
			return true, ReasonAllowed
		})
	}

	if globs := compileGlobs(cfg.Whitelist()); len(globs) > 0 {
		c.predicates = append(c.predicates, func(targetURL url.URL) (bool, Reason) {
			for _, g := range globs {
				if g.Match(targetURL.String()) {
					return true, ReasonAllowed
				}
			}
			return false, ReasonNotWhitelisted
		})
	}

	return c
}

// Allow runs targetURL through every predicate in order, then checks and
// speculatively reserves one unit of the host's page budget. Call Revert if
// the candidate is ultimately rejected downstream (e.g. by the frontier's
// dedup check) so the budget reservation does not leak.
func (c *Chain) Allow(targetURL url.URL) Decision {
	for _, predicate := range c.predicates {
		if ok, reason := predicate(targetURL); !ok {
			return Decision{Allowed: false, Reason: reason}
		}
	}

	if !c.reserveBudget(targetURL.Hostname()) {
		return Decision{Allowed: false, Reason: ReasonBudgetExhausted}
	}

	return Decision{Allowed: true, Reason: ReasonAllowed}
}

// Revert releases a budget reservation made by Allow for a candidate that
// was rejected after filtering (e.g. a frontier duplicate).
func (c *Chain) Revert(targetURL url.URL) {
	c.mu.Lock()
	defer c.mu.Unlock()

	host := targetURL.Hostname()
	if _, tracked := c.budget[host]; !tracked {
		return
	}
	if c.consumed[host] > 0 {
		c.consumed[host]--
	}
}

func (c *Chain) reserveBudget(host string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	limit, tracked := c.budget[host]
	if !tracked {
		return true
	}
	if c.consumed[host] >= limit {
		return false
	}
	c.consumed[host]++
	return true
}

func compileGlobs(patterns []string) []glob.Glob {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// hasStaticSuffix reports whether path ends with one of suffixes, a
// case-insensitive comparison since a filesystem-backed web server's URLs
// commonly preserve the asset's original casing.
func hasStaticSuffix(path string, suffixes []string) bool {
	lowered := strings.ToLower(path)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lowered, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

func hostInScope(host string, allowedHosts map[string]struct{}, externalDomains map[string]struct{}, subdomains bool, tld string) bool {
	if _, ok := allowedHosts[host]; ok {
		return true
	}
	if _, ok := externalDomains[host]; ok {
		return true
	}
	if subdomains {
		for allowed := range allowedHosts {
			if strings.HasSuffix(host, "."+allowed) {
				return true
			}
		}
	}
	if tld != "" && strings.HasSuffix(host, "."+tld) {
		for allowed := range allowedHosts {
			if strings.HasSuffix(allowed, "."+tld) || allowed == tld {
				return true
			}
		}
	}
	return false
}
