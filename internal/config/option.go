package config

import "time"

// Option mutates a Config under construction. engine.New applies every
// Option, in order, to the Config WithDefault produced from the seed URL,
// then calls Build. Options compose: later options win over earlier ones
// touching the same field.
type Option func(*Config)

func WithAllowedHosts(hosts map[string]struct{}) Option {
	return func(c *Config) { c.WithAllowedHosts(hosts) }
}

func WithAllowedPathPrefix(prefixes []string) Option {
	return func(c *Config) { c.WithAllowedPathPrefix(prefixes) }
}

func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.WithMaxDepth(depth) }
}

func WithMaxPages(pages int) Option {
	return func(c *Config) { c.WithMaxPages(pages) }
}

func WithConcurrency(concurrency int) Option {
	return func(c *Config) { c.WithConcurrency(concurrency) }
}

func WithBaseDelay(delay time.Duration) Option {
	return func(c *Config) { c.WithBaseDelay(delay) }
}

func WithJitter(jitter time.Duration) Option {
	return func(c *Config) { c.WithJitter(jitter) }
}

func WithRandomSeed(seed int64) Option {
	return func(c *Config) { c.WithRandomSeed(seed) }
}

func WithMaxAttempt(attempts int) Option {
	return func(c *Config) { c.WithMaxAttempt(attempts) }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) { c.WithTimeout(timeout) }
}

func WithUserAgent(agent string) Option {
	return func(c *Config) { c.WithUserAgent(agent) }
}

func WithOutputDir(dir string) Option {
	return func(c *Config) { c.WithOutputDir(dir) }
}

func WithDryRun(dryRun bool) Option {
	return func(c *Config) { c.WithDryRun(dryRun) }
}

func WithSubdomains(allow bool) Option {
	return func(c *Config) { c.WithSubdomains(allow) }
}

func WithTLD(tld string) Option {
	return func(c *Config) { c.WithTLD(tld) }
}

func WithExternalDomains(domains map[string]struct{}) Option {
	return func(c *Config) { c.WithExternalDomains(domains) }
}

func WithRespectRobots(respect bool) Option {
	return func(c *Config) { c.WithRespectRobots(respect) }
}

func WithBlacklist(patterns []string) Option {
	return func(c *Config) { c.WithBlacklist(patterns) }
}

func WithWhitelist(patterns []string) Option {
	return func(c *Config) { c.WithWhitelist(patterns) }
}

func WithBudget(budget map[string]int) Option {
	return func(c *Config) { c.WithBudget(budget) }
}

func WithRedirectLimit(limit int) Option {
	return func(c *Config) { c.WithRedirectLimit(limit) }
}

func WithProxyURLs(urls []string) Option {
	return func(c *Config) { c.WithProxyURLs(urls) }
}

func WithMaxBodyBytes(max int64) Option {
	return func(c *Config) { c.WithMaxBodyBytes(max) }
}

func WithCustomHeaders(headers map[string]string) Option {
	return func(c *Config) { c.WithCustomHeaders(headers) }
}

func WithFullResources(enabled bool) Option {
	return func(c *Config) { c.WithFullResources(enabled) }
}

func WithStaticsIgnore(suffixes []string) Option {
	return func(c *Config) { c.WithStaticsIgnore(suffixes) }
}

func WithCacheEnabled(enabled bool) Option {
	return func(c *Config) { c.WithCacheEnabled(enabled) }
}

func WithCacheDir(dir string) Option {
	return func(c *Config) { c.WithCacheDir(dir) }
}

func WithCron(expr string) Option {
	return func(c *Config) { c.WithCron(expr) }
}

func WithBroadcastChannelSize(size int) Option {
	return func(c *Config) { c.WithBroadcastChannelSize(size) }
}

func WithSlowConsumerPolicy(policy string) Option {
	return func(c *Config) { c.WithSlowConsumerPolicy(policy) }
}
