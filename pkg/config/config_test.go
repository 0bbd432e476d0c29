package config

import (
	"testing"

	"github.com/arthur-debert/sketchlink/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Scan: ScanConfig{Marker: "*.pde"},
			Link: LinkConfig{Resources: []string{"code", "Shared.src"}, BrokenLinks: BrokenLinksKeep},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"replace policy", func(c *Config) { c.Link.BrokenLinks = BrokenLinksReplace }, true},
		{"single resource", func(c *Config) { c.Link.Resources = []string{"code"} }, true},
		{"empty marker", func(c *Config) { c.Scan.Marker = "" }, false},
		{"marker with separator", func(c *Config) { c.Scan.Marker = "src/*.pde" }, false},
		{"bad pattern", func(c *Config) { c.Scan.Marker = "[" }, false},
		{"no resources", func(c *Config) { c.Link.Resources = nil }, false},
		{"empty resource", func(c *Config) { c.Link.Resources = []string{""} }, false},
		{"dot dot resource", func(c *Config) { c.Link.Resources = []string{".."} }, false},
		{"nested resource", func(c *Config) { c.Link.Resources = []string{"lib/code"} }, false},
		{"duplicate resource", func(c *Config) { c.Link.Resources = []string{"code", "code"} }, false},
		{"unknown policy", func(c *Config) { c.Link.BrokenLinks = "delete" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}
