package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sketchlink/pkg/errors"
)

// Broken link policies
const (
	BrokenLinksKeep    = "keep"
	BrokenLinksReplace = "replace"
)

// Config is the effective sketchlink configuration
type Config struct {
	Scan ScanConfig `koanf:"scan" toml:"scan"`
	Link LinkConfig `koanf:"link" toml:"link"`
}

// ScanConfig controls sketch discovery
type ScanConfig struct {
	// Marker is a glob matched against file names one level below the root
	Marker string `koanf:"marker" toml:"marker"`
}

// LinkConfig controls which resources are linked and how
type LinkConfig struct {
	Resources   []string `koanf:"resources" toml:"resources"`
	Relative    bool     `koanf:"relative" toml:"relative"`
	BrokenLinks string   `koanf:"broken_links" toml:"broken_links"`
}

// Validate checks the configuration for values the linker cannot work with
func (c *Config) Validate() error {
	marker := c.Scan.Marker
	if marker == "" {
		return errors.New(errors.ErrConfigValid, "scan.marker must not be empty")
	}
	if strings.ContainsRune(marker, '/') || strings.ContainsRune(marker, filepath.Separator) {
		return errors.Newf(errors.ErrConfigValid, "scan.marker %q must not contain a path separator", marker)
	}
	if _, err := filepath.Match(marker, ""); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "scan.marker %q is not a valid pattern", marker)
	}

	if len(c.Link.Resources) == 0 {
		return errors.New(errors.ErrConfigValid, "link.resources must name at least one resource")
	}
	seen := make(map[string]bool, len(c.Link.Resources))
	for _, name := range c.Link.Resources {
		switch {
		case name == "" || name == "." || name == "..":
			return errors.Newf(errors.ErrConfigValid, "link.resources entry %q is not a valid name", name)
		case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
			return errors.Newf(errors.ErrConfigValid, "link.resources entry %q must not contain a path separator", name)
		case seen[name]:
			return errors.Newf(errors.ErrConfigValid, "link.resources entry %q is listed twice", name)
		}
		seen[name] = true
	}

	switch c.Link.BrokenLinks {
	case BrokenLinksKeep, BrokenLinksReplace:
	default:
		return errors.Newf(errors.ErrConfigValid, "link.broken_links must be %q or %q, got %q",
			BrokenLinksKeep, BrokenLinksReplace, c.Link.BrokenLinks).
			WithDetail("value", c.Link.BrokenLinks)
	}

	return nil
}
