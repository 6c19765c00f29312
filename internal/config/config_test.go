package config

import (
	"errors"
	"testing"

	"github.com/contentscan/contentscan/internal/analyzer"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("default values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()

		if cfg.MaxRelated != DefaultMaxRelated {
			t.Errorf("MaxRelated = %d, want %d", cfg.MaxRelated, DefaultMaxRelated)
		}
		if cfg.TagBonus != DefaultTagBonus {
			t.Errorf("TagBonus = %f, want %f", cfg.TagBonus, DefaultTagBonus)
		}
		if cfg.MinRelevance != DefaultMinRelevance {
			t.Errorf("MinRelevance = %f, want %f", cfg.MinRelevance, DefaultMinRelevance)
		}
		if cfg.BatchSize != DefaultBatchSize {
			t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, DefaultBatchSize)
		}
		if cfg.Verbose {
			t.Error("Verbose should default to false")
		}
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("report format flags should default to false")
		}
	})

	t.Run("scoring defaults match the analyzer", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		opts := analyzer.DefaultOptions()

		if cfg.TagBonus != opts.TagBonus {
			t.Errorf("TagBonus = %f, analyzer default = %f", cfg.TagBonus, opts.TagBonus)
		}
		if cfg.MinRelevance != opts.MinRelevance {
			t.Errorf("MinRelevance = %f, analyzer default = %f", cfg.MinRelevance, opts.MinRelevance)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.SiteRoots = []string{"testdata/site"}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "no site root",
			mutate:  func(c *Config) { c.SiteRoots = nil },
			wantErr: ErrNoSiteRoot,
		},
		{
			name:    "zero max related",
			mutate:  func(c *Config) { c.MaxRelated = 0 },
			wantErr: ErrInvalidMaxRelated,
		},
		{
			name:    "negative max related",
			mutate:  func(c *Config) { c.MaxRelated = -1 },
			wantErr: ErrInvalidMaxRelated,
		},
		{
			name:    "negative tag bonus",
			mutate:  func(c *Config) { c.TagBonus = -0.1 },
			wantErr: ErrInvalidTagBonus,
		},
		{
			name:    "tag bonus above one",
			mutate:  func(c *Config) { c.TagBonus = 1.5 },
			wantErr: ErrInvalidTagBonus,
		},
		{
			name:    "zero tag bonus is valid",
			mutate:  func(c *Config) { c.TagBonus = 0 },
			wantErr: nil,
		},
		{
			name:    "negative min relevance",
			mutate:  func(c *Config) { c.MinRelevance = -0.5 },
			wantErr: ErrInvalidMinRelevance,
		},
		{
			name:    "min relevance of one",
			mutate:  func(c *Config) { c.MinRelevance = 1.0 },
			wantErr: ErrInvalidMinRelevance,
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "conflicting report formats",
			mutate:  func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "json report alone is valid",
			mutate:  func(c *Config) { c.JSONReport = true },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestXDGDirs(t *testing.T) {
	t.Parallel()

	t.Run("data dir ends with app name", func(t *testing.T) {
		t.Parallel()

		dir := XDGDataDir()
		if dir == "" {
			t.Fatal("XDGDataDir() returned empty string")
		}
	})

	t.Run("config dir is non-empty", func(t *testing.T) {
		t.Parallel()

		if XDGConfigDir() == "" {
			t.Fatal("XDGConfigDir() returned empty string")
		}
	})

	t.Run("cache dir is non-empty", func(t *testing.T) {
		t.Parallel()

		if XDGCacheDir() == "" {
			t.Fatal("XDGCacheDir() returned empty string")
		}
	})
}
