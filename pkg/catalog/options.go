package catalog

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	indexName     string
	keyPrefix     string
	maxCandidates int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithAddrs sets multiple database addresses for cluster topologies.
func WithAddrs(addrs ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
	})
}

// WithAuth sets database credentials (ACL username and password).
func WithAuth(username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.password = password
	})
}

// WithDB selects a logical database number. Default: 0.
func WithDB(db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.db = db
	})
}

// WithIndex overrides the search index name and key prefix.
// Defaults: "catalog:idx" over "catalog:resource:".
func WithIndex(name, keyPrefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.indexName = name
		c.keyPrefix = keyPrefix
	})
}

// WithMaxCandidates caps the number of index hits fetched per search
// before consolidation. Default: 1000.
func WithMaxCandidates(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxCandidates = n
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
