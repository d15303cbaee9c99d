package sdtmap

import (
	"errors"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Config contains all configuration options for the sdtmap engine. Ceilings
// are explicit construction-time settings rather than hidden constants so
// behavior stays reproducible and testable across engine instances.
type Config struct {
	// MaxTreeDepth is the maximum element nesting depth accepted in the
	// main document part. Deeper documents fail with DepthExceededError.
	MaxTreeDepth int
	// MaxSectionRows is the maximum number of rows accepted for a single
	// repeating section. Larger row sequences fail with MappingError.
	MaxSectionRows int
	// Logger receives structured debug output. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxTreeDepth:   128,
		MaxSectionRows: 4096,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// SDTMAP_MAX_TREE_DEPTH
	if val := os.Getenv("SDTMAP_MAX_TREE_DEPTH"); val != "" {
		if depth, err := strconv.Atoi(val); err == nil {
			config.MaxTreeDepth = depth
		}
	}

	// SDTMAP_MAX_SECTION_ROWS
	if val := os.Getenv("SDTMAP_MAX_SECTION_ROWS"); val != "" {
		if rows, err := strconv.Atoi(val); err == nil {
			config.MaxSectionRows = rows
		}
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MaxTreeDepth <= 0 {
		return errors.New("max tree depth must be positive")
	}
	if c.MaxSectionRows < 0 {
		return errors.New("max section rows cannot be negative")
	}
	return nil
}

// logger returns the configured logger, or a no-op logger when none is set.
func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
