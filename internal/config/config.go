// Package config loads application settings with viper. Values resolve
// in the usual order: explicit config file in the home directory, then
// DISTRIB_* environment variables, then defaults.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the application.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// SessionSecret signs session tokens. The default is fine for a
	// single-user desktop install; override it when the home directory
	// is shared.
	SessionSecret string

	// SessionTTL is how long a login stays valid.
	SessionTTL time.Duration
}

// Load reads the configuration for the given home directory. A missing
// config file is not an error; defaults and environment cover it.
func Load(home string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)

	v.SetEnvPrefix("DISTRIB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.path", filepath.Join(home, "distribution.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("session.secret", "distrib-local-session-secret")
	v.SetDefault("session.ttl", "24h")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	ttl, err := time.ParseDuration(v.GetString("session.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid session.ttl: %w", err)
	}

	return Config{
		DBPath:        v.GetString("database.path"),
		LogLevel:      v.GetString("log.level"),
		SessionSecret: v.GetString("session.secret"),
		SessionTTL:    ttl,
	}, nil
}
