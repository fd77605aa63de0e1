package catalog

import "time"

// Config holds the object names and refresh policy of the catalog sources.
type Config struct {
	// ItemsGameObject is the JSON encoded items catalog in the bucket.
	ItemsGameObject string `mapstructure:"items_game_object" default:"catalog/items_game.json"`
	// LocalizationObject is the JSON encoded localization tree in the bucket.
	LocalizationObject string `mapstructure:"localization_object" default:"catalog/csgo_english.json"`
	// ManifestObject is the items_game_cdn.txt manifest in the bucket.
	ManifestObject string `mapstructure:"manifest_object" default:"catalog/items_game_cdn.txt"`
	// RefreshIntervalSeconds is the delay between update checks, -1 disables them.
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds" default:"600"`
	// TimeoutSeconds bounds a single load of all sources.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// RefreshInterval returns the periodic refresh interval, zero when disabled.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshIntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// Timeout returns the load timeout, defaulting to 60 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Objects returns the object names of all sources.
func (c Config) Objects() []string {
	return []string{c.ItemsGameObject, c.LocalizationObject, c.ManifestObject}
}
