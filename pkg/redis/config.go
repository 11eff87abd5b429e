package redis

import (
	"fmt"
	"time"
)

// Config holds the Redis connection settings.
type Config struct {
	Host         string
	Port         int
	Password     string
	Database     int
	MinIdleConns int
	MaxIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// DefaultCacheTTL applies to caches without an entry in CacheTTLs.
	DefaultCacheTTL time.Duration
	// CacheTTLs maps a cache name to its TTL.
	CacheTTLs map[string]time.Duration
}

// DefaultConfig returns a local development configuration.
func DefaultConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		DefaultCacheTTL: time.Hour,
	}
}

// Validate checks the configuration for obviously broken values.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("redis host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", c.Port)
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid redis database: %d", c.Database)
	}
	return nil
}
