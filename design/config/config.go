package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config adjusts the formatter built by the designfmt CLI on startup.  Every
// section is optional; zero values keep the library defaults.
type Config struct {
	Date     *Date             `yaml:"date,omitempty" json:"date,omitempty"`
	Resource *Resource         `yaml:"resource,omitempty" json:"resource,omitempty"`
	Aliases  map[string]string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Date overrides the timestamp converter layouts, expressed as Go reference
// layouts.  Output is used when formatting, Layouts when parsing.
type Date struct {
	Output  string   `yaml:"output,omitempty" json:"output,omitempty"`
	Layouts []string `yaml:"layouts,omitempty" json:"layouts,omitempty"`
}

// Resource overrides the schemes the resource converter accepts.
type Resource struct {
	Schemes []string `yaml:"schemes,omitempty" json:"schemes,omitempty"`
}

// Load reads a configuration document from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", URL, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values the CLI cannot act on.
func (c *Config) Validate() error {
	for alias, target := range c.Aliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(target) == "" {
			return fmt.Errorf("alias %q -> %q: names must not be empty", alias, target)
		}
	}
	if c.Resource != nil {
		for _, scheme := range c.Resource.Schemes {
			if strings.TrimSpace(scheme) == "" {
				return fmt.Errorf("resource schemes must not be empty")
			}
		}
	}
	return nil
}
