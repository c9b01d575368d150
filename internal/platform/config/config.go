// Package config handles application configuration via environment variables
package config

import (
	"os"
	"strconv"
	"strings"

	"intervalparser/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "INTERVAL_")
// Use New() for global access, or Prefix("INTERVAL_") for module scopes.
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("INTERVAL_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// Lookup returns the raw value and whether the variable is set at all.
// Unlike the May* helpers it does not trim, so separators like " " survive
func (c Conf) Lookup(key string) (string, bool) {
	return os.LookupEnv(c.key(key))
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	if v == "" {
		return def
	}
	return v
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := strings.TrimSpace(os.Getenv(c.key(key)))
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}
