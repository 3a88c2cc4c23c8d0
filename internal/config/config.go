// Package config loads and validates jsem's analyzer configuration from
// a .jsem.kdl file, falling back to defaults when none exists.
package config

import (
	"os"
)

type Config struct {
	Project   Project
	Sources   Sources
	Collector Collector
	Resolver  Resolver
	Suggest   Suggest
}

type Project struct {
	Root string
	Name string
}

type Sources struct {
	Include []string
	Exclude []string
}

type Collector struct {
	Workers     int   // 0 = auto-detect (NumCPU)
	MaxFileSize int64 // Files larger than this are skipped
}

type Resolver struct {
	MaxDepth int // Cap on hierarchy/lexical recursion depth
}

type Suggest struct {
	Enabled    bool
	Threshold  float64 // Minimum Jaro-Winkler similarity for a suggestion
	MaxResults int
}

// Default returns the configuration used when no .jsem.kdl exists.
func Default() *Config {
	root, _ := os.Getwd()
	if root == "" {
		root = "."
	}
	return &Config{
		Project: Project{Root: root},
		Sources: Sources{
			Include: []string{"**/*.java"},
			Exclude: []string{"**/target/**", "**/build/**", "**/.git/**"},
		},
		Collector: Collector{
			Workers:     0,
			MaxFileSize: 10 * 1024 * 1024,
		},
		Resolver: Resolver{
			MaxDepth: 128,
		},
		Suggest: Suggest{
			Enabled:    true,
			Threshold:  0.80,
			MaxResults: 3,
		},
	}
}
