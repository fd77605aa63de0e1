package assets

import "time"

// Config holds asset retrieval and URL settings.
type Config struct {
	// BaseURL is the public CDN root prepended to icon paths.
	BaseURL string `mapstructure:"base_url" default:"https://steamcdn-a.akamaihd.net/apps/730/"`
	// Prefix is prepended to resource paths to form object names in the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	// CacheSize is the number of asset payloads kept in memory.
	CacheSize int `mapstructure:"cache_size" default:"4096"`
	// CacheTTLSeconds is how long a cached payload stays valid.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"3600"`
	// FetchTimeoutSeconds bounds a single object read.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"10"`
}

func (c Config) cacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c Config) fetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
