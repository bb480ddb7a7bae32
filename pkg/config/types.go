package config

import "time"

type cacheCfg struct {
	DefaultTTLSeconds int `toml:"defaultTTLSeconds"`
	MaxSize           int `toml:"maxSize"`
	CleanupIntervalMs int `toml:"cleanupIntervalMs"`
}

// CleanupInterval returns the sweep interval as a duration. Zero disables
// the periodic sweep.
func (c cacheCfg) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalMs) * time.Millisecond
}

type loggingCfg struct {
	Enabled bool `toml:"enabled"`
}

type SystemCfg struct {
	Cache   cacheCfg   `toml:"cache"`
	Logging loggingCfg `toml:"logging"`
}
