package config

import (
	"flag"

	"github.com/BurntSushi/toml"
)

var defaultSystemCfg = &SystemCfg{
	Cache: cacheCfg{
		DefaultTTLSeconds: 300,
		MaxSize:           1000,
		CleanupIntervalMs: 600000,
	},
	Logging: loggingCfg{
		Enabled: true,
	},
}

// LoadConfig reads the TOML file named by the -config flag, applying the
// package defaults for anything the file leaves unset.
func LoadConfig() (*SystemCfg, error) {
	configFile := flag.String("config", "config.toml", "location of config file")
	flag.Parse()
	return Load(*configFile)
}

// Load decodes the TOML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*SystemCfg, error) {
	cfg := *defaultSystemCfg
	if path == "" {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
