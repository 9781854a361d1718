package filter_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohmanhakim/crawlkit/internal/config"
	"github.com/rohmanhakim/crawlkit/internal/filter"
)

func mustURL(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	assert.NoError(t, err)
	return *u
}

func TestChain_HostNotAllowed(t *testing.T) {
	cfg, err := config.WithDefault([]url.URL{{Scheme: "https", Host: "docs.example.com"}}).Build()
	assert.NoError(t, err)

	chain := filter.NewChain(cfg)
	decision := chain.Allow(mustURL(t, "https://evil.example.org/page"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, filter.ReasonHostNotAllowed, decision.Reason)
}

func TestChain_SubdomainsAllowed(t *testing.T) {
	cfg, err := config.WithDefault([]url.URL{{Scheme: "https", Host: "example.com"}}).
		WithSubdomains(true).Build()
	assert.NoError(t, err)

	chain := filter.NewChain(cfg)
	decision := chain.Allow(mustURL(t, "https://docs.example.com/page"))

	assert.True(t, decision.Allowed)
}

func TestChain_Blacklist(t *testing.T) {
	cfg, err := config.WithDefault([]url.URL{{Scheme: "https", Host: "example.com"}}).
		WithBlacklist([]string{"*/private/*"}).Build()
	assert.NoError(t, err)

	chain := filter.NewChain(cfg)
	decision := chain.Allow(mustURL(t, "https://example.com/private/secret"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, filter.ReasonBlacklisted, decision.Reason)
}

func TestChain_Whitelist(t *testing.T) {
	cfg, err := config.WithDefault([]url.URL{{Scheme: "https", Host: "example.com"}}).
		WithWhitelist([]string{"*/docs/*"}).Build()
	assert.NoError(t, err)

	chain := filter.NewChain(cfg)

	assert.False(t, chain.Allow(mustURL(t, "https://example.com/blog/post")).Allowed)
	assert.True(t, chain.Allow(mustURL(t, "https://example.com/docs/intro")).Allowed)
}

func TestChain_BudgetExhausted(t *testing.T) {
	cfg, err := config.WithDefault([]url.URL{{Scheme: "https", Host: "example.com"}}).
		WithBudget(map[string]int{"example.com": 1}).Build()
	assert.NoError(t, err)

	chain := filter.NewChain(cfg)
	first := chain.Allow(mustURL(t, "https://example.com/a"))
	second := chain.Allow(mustURL(t, "https://example.com/b"))

	assert.True(t, first.Allowed)
	assert.False(t, second.Allowed)
	assert.Equal(t, filter.ReasonBudgetExhausted, second.Reason)
}

func TestChain_StaticAssetIgnored(t *testing.T) {
	cfg, err := config.WithDefault([]url.URL{{Scheme: "https", Host: "example.com"}}).Build()
	assert.NoError(t, err)

	chain := filter.NewChain(cfg)
	decision := chain.Allow(mustURL(t, "https://example.com/assets/app.JS"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, filter.ReasonStaticAsset, decision.Reason)
}

func TestChain_RevertReleasesBudget(t *testing.T) {
	cfg, err := config.WithDefault([]url.URL{{Scheme: "https", Host: "example.com"}}).
		WithBudget(map[string]int{"example.com": 1}).Build()
	assert.NoError(t, err)

	chain := filter.NewChain(cfg)
	target := mustURL(t, "https://example.com/a")

	first := chain.Allow(target)
	assert.True(t, first.Allowed)

	chain.Revert(target)

	second := chain.Allow(mustURL(t, "https://example.com/b"))
	assert.True(t, second.Allowed)
}
