// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance.
// The connection is lazy; the first command dials.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a Redis client from a redis:// URL, the form
// operators pass via REDIS_URL. Pool options override the URL's defaults
// when set.
func NewClientFromURL(rawURL string, opts *Options) (Client, error) {
	if rawURL == "" {
		return nil, errors.New("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	if opts != nil {
		if opts.PoolSize > 0 {
			redisOpts.PoolSize = opts.PoolSize
		}
		if opts.MinIdleConns > 0 {
			redisOpts.MinIdleConns = opts.MinIdleConns
		}
		if opts.ConnMaxIdleTime > 0 {
			redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
		}
		if opts.MaxRetries > 0 {
			redisOpts.MaxRetries = opts.MaxRetries
		}
	}

	return redis.NewClient(redisOpts), nil
}
