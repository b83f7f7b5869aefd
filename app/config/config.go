// Package config loads the geocoder service's runtime configuration:
// a config file (config/app.yaml) layered with environment overrides,
// the way the teacher's root main.go wires viper, generalized here into
// its own package so cmd/api and cmd/worker share one loader.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// SearchDefaults mirrors geocoder.Config's field set (all but
// TargetArea, which is not configurable here) so it can be
// loaded from YAML/env without importing internal/geocoder from this
// package; app/services converts it at wiring time.
type SearchDefaults struct {
	BestOnly           bool   `mapstructure:"best_only"`
	AzaSkip            string `mapstructure:"aza_skip"` // "auto" | "true" | "false"
	RequireCoordinates bool   `mapstructure:"require_coordinates"`
	AutoRedirect       bool   `mapstructure:"auto_redirect"`
}

// CacheConfig configures the Redis-backed result cache (SPEC_FULL §5).
type CacheConfig struct {
	RedisURL   string `mapstructure:"redis_url"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	Enabled    bool   `mapstructure:"enabled"`
}

// MongoConfig configures the offline admin/review collaborator.
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// DictionaryConfig selects which dictionary.Source to open.
type DictionaryConfig struct {
	// Source names the dictionary source kind. "embedded" is the only
	// one wired today; a future on-disk/remote source would add a kind
	// here without changing the shape of this struct.
	Source string `mapstructure:"source"`
	// ReloadInterval is how often cmd/worker re-opens the source to
	// check for a new signature. Zero disables periodic reload.
	ReloadInterval time.Duration `mapstructure:"reload_interval"`
}

// GeocoderConfig is the root configuration struct, generalized from the
// teacher's ParserCfg shape to this service's domain.
type GeocoderConfig struct {
	AppPort    string           `mapstructure:"app_port"`
	AppEnv     string           `mapstructure:"app_env"`
	Search     SearchDefaults   `mapstructure:"search"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
}

// Load reads config/app.yaml (if present) layered with JAGEOCODER_-prefixed
// environment variables, the way the teacher's main.go loadConfig does,
// generalized into a reusable function rather than a package-level
// side-effecting call.
func Load() (*GeocoderConfig, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("app_port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("search.best_only", true)
	v.SetDefault("search.aza_skip", "auto")
	v.SetDefault("search.require_coordinates", true)
	v.SetDefault("search.auto_redirect", true)
	v.SetDefault("cache.redis_url", "redis://localhost:6379")
	v.SetDefault("cache.ttl_seconds", 86400)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("mongo.url", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "jageocoder")
	v.SetDefault("dictionary.source", "embedded")
	v.SetDefault("dictionary.reload_interval", "10m")

	v.SetEnvPrefix("JAGEOCODER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg GeocoderConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
