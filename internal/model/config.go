package model

import "time"

// Config is the complete beatmap configuration tree. Values are resolved in
// priority order: CLI flags, BEATMAP_* environment variables, config file,
// then these defaults.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Render      RenderConfig      `yaml:"render" mapstructure:"render"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// AnalysisConfig controls segmentation and spike detection.
type AnalysisConfig struct {
	SegmentCount   int     `yaml:"segment_count" mapstructure:"segment_count"`     // Timeline segments per document
	SpikeThreshold float64 `yaml:"spike_threshold" mapstructure:"spike_threshold"` // Adjacent-delta spike threshold
}

// RenderConfig controls presentation output.
type RenderConfig struct {
	Width    int  `yaml:"width" mapstructure:"width"`         // Interior width of the ASCII report
	UseColor bool `yaml:"use_color" mapstructure:"use_color"` // ANSI colors in terminal output
}

// CacheConfig controls the in-memory analysis result cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // Concurrent file analyses in batch mode
}

// OutputConfig controls CLI chatter.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			SegmentCount:   20,
			SpikeThreshold: 20.0,
		},
		Render: RenderConfig{
			Width:    60,
			UseColor: true,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
