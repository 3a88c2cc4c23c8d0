package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks the configuration for values that would break the
// collection or resolution pipeline.
func (c *Config) Validate() error {
	if c.Project.Root == "" {
		return fmt.Errorf("project root must not be empty")
	}
	if info, err := os.Stat(c.Project.Root); err != nil {
		return fmt.Errorf("project root %q: %w", c.Project.Root, err)
	} else if !info.IsDir() {
		return fmt.Errorf("project root %q is not a directory", c.Project.Root)
	}

	for _, pat := range append(append([]string{}, c.Sources.Include...), c.Sources.Exclude...) {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("invalid glob pattern %q", pat)
		}
	}

	if c.Collector.Workers < 0 {
		return fmt.Errorf("collector workers must be >= 0, got %d", c.Collector.Workers)
	}
	if c.Collector.MaxFileSize <= 0 {
		return fmt.Errorf("collector max_file_size must be positive, got %d", c.Collector.MaxFileSize)
	}
	if c.Resolver.MaxDepth <= 0 {
		return fmt.Errorf("resolver max_depth must be positive, got %d", c.Resolver.MaxDepth)
	}
	if c.Suggest.Threshold < 0 || c.Suggest.Threshold > 1 {
		return fmt.Errorf("suggest threshold must be within [0, 1], got %g", c.Suggest.Threshold)
	}
	if c.Suggest.MaxResults < 0 {
		return fmt.Errorf("suggest max_results must be >= 0, got %d", c.Suggest.MaxResults)
	}
	return nil
}
