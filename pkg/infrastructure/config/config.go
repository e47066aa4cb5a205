// Package config provides runtime configuration values for the procurement engine.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Unknown-part policies
const (
	PolicyStrict  = "strict"
	PolicyLenient = "lenient"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the knobs shared by the CLI commands.
type Config struct {
	CatalogPath    string
	Policy         string
	Seed           uint64
	LogLevel       string
	LogFormat      string
	Output         string
	WatchlistLimit int
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) (int, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an integer", key, v)
	}
	return n, nil
}

func uintenv(key string, def uint64) (uint64, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a non-negative integer", key, v)
	}
	return n, nil
}

// Load reads an optional .env file and then the PROCURE_* environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Policy:         PolicyStrict,
		LogLevel:       "info",
		LogFormat:      OutputText,
		Output:         OutputText,
		WatchlistLimit: 5,
	}
}

// FromEnv collects configuration from the process environment with defaults.
func FromEnv() (Config, error) {
	def := Default()
	seed, err := uintenv("PROCURE_SEED", def.Seed)
	if err != nil {
		return Config{}, err
	}
	limit, err := atoienv("PROCURE_WATCHLIST_LIMIT", def.WatchlistLimit)
	if err != nil {
		return Config{}, err
	}
	c := Config{
		CatalogPath:    getenv("PROCURE_CATALOG", def.CatalogPath),
		Policy:         strings.ToLower(getenv("PROCURE_POLICY", def.Policy)),
		Seed:           seed,
		LogLevel:       strings.ToLower(getenv("PROCURE_LOG_LEVEL", def.LogLevel)),
		LogFormat:      strings.ToLower(getenv("PROCURE_LOG_FORMAT", def.LogFormat)),
		Output:         strings.ToLower(getenv("PROCURE_OUTPUT", def.Output)),
		WatchlistLimit: limit,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated values
func (c Config) Validate() error {
	switch c.Policy {
	case PolicyStrict, PolicyLenient:
	default:
		return fmt.Errorf("invalid policy %q: expected %s or %s", c.Policy, PolicyStrict, PolicyLenient)
	}
	switch c.LogFormat {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q", c.Output)
	}
	if c.WatchlistLimit <= 0 {
		return fmt.Errorf("watchlist limit must be positive, got %d", c.WatchlistLimit)
	}
	return nil
}
