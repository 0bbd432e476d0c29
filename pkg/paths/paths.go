// Package paths resolves the filesystem locations sketchlink works with:
// the project root that holds the canonical shared resources, and the
// XDG state location used for the log file.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sketchlink/pkg/errors"
)

const (
	// EnvRoot overrides the project root when no explicit root is given
	EnvRoot = "SKETCHLINK_ROOT"

	// AppDirName is the directory name used under XDG base directories
	AppDirName = "sketchlink"

	// LogFileName is the name of the log file
	LogFileName = "sketchlink.log"
)

// ResolveRoot returns the absolute project root.
// Precedence: explicit value, then $SKETCHLINK_ROOT, then the current
// working directory. A leading ~ is expanded to the home directory.
// The directory itself is not checked for existence.
func ResolveRoot(explicit string) (string, error) {
	root := explicit
	if root == "" {
		root = os.Getenv(EnvRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrRootAccess, "cannot determine working directory")
		}
		root = cwd
	}

	expanded, err := ExpandHome(root)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRootAccess, "cannot make root absolute").
			WithDetail("path", root)
	}
	return filepath.Clean(abs), nil
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "cannot determine home directory")
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// LogFilePath returns $XDG_STATE_HOME/sketchlink/sketchlink.log
func LogFilePath() string {
	// xdg caches the environment at init
	xdg.Reload()
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}
