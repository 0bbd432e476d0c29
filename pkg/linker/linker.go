package linker

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arthur-debert/sketchlink/pkg/config"
	"github.com/arthur-debert/sketchlink/pkg/errors"
	"github.com/arthur-debert/sketchlink/pkg/filesystem"
	"github.com/arthur-debert/sketchlink/pkg/logging"
	"github.com/rs/zerolog"
)

// Options configures a single run
type Options struct {
	// Root holds the canonical resources and the sketch directories
	Root string
	// Marker is a glob matched one level below Root, e.g. "*.pde"
	Marker string
	// Resources are the names linked into each sketch
	Resources []string
	// Relative makes link targets relative to the sketch directory
	Relative bool
	// BrokenLinks is config.BrokenLinksKeep or config.BrokenLinksReplace
	BrokenLinks string
	DryRun      bool
}

// OptionsFromConfig builds run options for root from a loaded configuration
func OptionsFromConfig(root string, cfg *config.Config, dryRun bool) Options {
	return Options{
		Root:        root,
		Marker:      cfg.Scan.Marker,
		Resources:   cfg.Link.Resources,
		Relative:    cfg.Link.Relative,
		BrokenLinks: cfg.Link.BrokenLinks,
		DryRun:      dryRun,
	}
}

// Reporter receives each decision as soon as it is made, so progress is
// visible even when a later step fails
type Reporter interface {
	MarkerFound(sketch SketchResult)
	LinkDecided(sketch SketchResult, link LinkResult)
}

type nopReporter struct{}

func (nopReporter) MarkerFound(SketchResult)             {}
func (nopReporter) LinkDecided(SketchResult, LinkResult) {}

// Linker creates the resource symlinks for every sketch under a root
type Linker struct {
	fs       filesystem.FS
	reporter Reporter
	logger   zerolog.Logger
}

// New creates a Linker. A nil reporter discards progress.
func New(fsys filesystem.FS, reporter Reporter) *Linker {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Linker{
		fs:       fsys,
		reporter: reporter,
		logger:   logging.GetLogger("linker"),
	}
}

// run holds per-run state
type run struct {
	*Linker
	opts Options
	// planned tracks links a dry run would have created
	planned map[string]bool
}

// Run links resources into every sketch directory under opts.Root.
// A relative root is resolved against the working directory.
// The returned Result is never nil; on error it covers the work done
// before the failure.
func (l *Linker) Run(opts Options) (*Result, error) {
	done := logging.LogOperationStart(l.logger, "link")
	defer done()

	result := &Result{Root: opts.Root, DryRun: opts.DryRun}
	defer result.tally()

	// Link targets must name root/<name> independently of the sketch directory
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return result, errors.Wrap(err, errors.ErrRootAccess, "cannot make root absolute").
			WithDetail("path", opts.Root)
	}
	opts.Root = root
	result.Root = root

	r := &run{Linker: l, opts: opts, planned: make(map[string]bool)}

	markers, err := r.findMarkers()
	if err != nil {
		return result, err
	}

	l.logger.Info().
		Str("root", opts.Root).
		Int("markers", len(markers)).
		Bool("dryRun", opts.DryRun).
		Msg("Found marker files")

	for _, marker := range markers {
		sketchDir := filepath.Dir(marker)
		sketch := SketchResult{
			Marker: r.relative(marker),
			Dir:    r.relative(sketchDir),
		}
		l.reporter.MarkerFound(sketch)

		for _, name := range opts.Resources {
			link, err := r.linkResource(sketchDir, name)
			if err != nil {
				result.Sketches = append(result.Sketches, sketch)
				return result, err
			}
			sketch.Links = append(sketch.Links, link)
			l.reporter.LinkDecided(sketch, link)
		}

		result.Sketches = append(result.Sketches, sketch)
	}

	return result, nil
}

// findMarkers returns root/*/<marker> matches in lexical order
func (r *run) findMarkers() ([]string, error) {
	info, err := r.fs.Stat(r.opts.Root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRootAccess, "cannot access root").
			WithDetail("path", r.opts.Root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrRootAccess, "root is not a directory").
			WithDetail("path", r.opts.Root)
	}

	pattern := filepath.Join(escapeGlob(r.opts.Root), "*", r.opts.Marker)
	matches, err := r.fs.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMarkerScan, "cannot scan for %s", r.opts.Marker).
			WithDetail("pattern", pattern)
	}
	return matches, nil
}

func (r *run) linkResource(sketchDir, name string) (LinkResult, error) {
	linkPath := filepath.Join(sketchDir, name)
	canonical := filepath.Join(r.opts.Root, name)

	link := LinkResult{
		Resource: name,
		Path:     r.relative(linkPath),
		Target:   canonical,
	}
	if r.opts.Relative {
		rel, err := filepath.Rel(sketchDir, canonical)
		if err != nil {
			return link, errors.Wrap(err, errors.ErrInternal, "cannot compute relative link target").
				WithDetail("path", linkPath)
		}
		link.Target = rel
	}

	logger := r.logger.With().Str("link", linkPath).Str("target", link.Target).Logger()

	if r.planned[linkPath] {
		link.Status = StatusExists
		return link, nil
	}

	state, err := r.entryState(linkPath)
	if err != nil {
		return link, err
	}

	switch state {
	case entryPresent:
		logger.Debug().Msg("Entry already exists")
		link.Status = StatusExists
		return link, nil

	case entryDangling:
		if r.opts.BrokenLinks != config.BrokenLinksReplace {
			logger.Warn().Msg("Keeping dangling symlink")
			link.Status = StatusBroken
			return link, nil
		}
		if r.opts.DryRun {
			r.planned[linkPath] = true
			link.Status = StatusWouldReplace
			return link, nil
		}
		if err := r.fs.Remove(linkPath); err != nil {
			return link, errors.Wrap(err, errors.ErrSymlinkRemove, "cannot remove dangling symlink").
				WithDetail("path", linkPath)
		}
		if err := r.createLink(link.Target, linkPath, canonical); err != nil {
			return link, err
		}
		logger.Info().Msg("Replaced dangling symlink")
		link.Status = StatusReplaced
		return link, nil
	}

	if r.opts.DryRun {
		r.planned[linkPath] = true
		link.Status = StatusWouldCreate
		return link, nil
	}

	if err := r.createLink(link.Target, linkPath, canonical); err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			// Something appeared between the check and the link call
			logger.Debug().Msg("Entry appeared before link creation")
			link.Status = StatusExists
			return link, nil
		}
		return link, err
	}
	logger.Info().Msg("Symlink created")
	link.Status = StatusCreated
	return link, nil
}

func (r *run) createLink(target, linkPath, canonical string) error {
	if _, err := r.fs.Lstat(canonical); err != nil {
		r.logger.Warn().Str("resource", canonical).Msg("Canonical resource is missing, link will dangle")
	}
	if err := r.fs.Symlink(target, linkPath); err != nil {
		return errors.Wrap(err, errors.ErrSymlinkCreate, "cannot create symlink").
			WithDetail("path", linkPath).
			WithDetail("target", target)
	}
	return nil
}

type entryState int

const (
	entryAbsent entryState = iota
	entryPresent
	entryDangling
)

// entryState checks path following symlinks, then falls back to Lstat to
// tell a missing entry from a symlink whose target is gone
func (r *run) entryState(path string) (entryState, error) {
	_, statErr := r.fs.Stat(path)
	if statErr == nil {
		return entryPresent, nil
	}

	info, err := r.fs.Lstat(path)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		return entryDangling, nil
	case err == nil:
		return entryAbsent, errors.Wrap(statErr, errors.ErrFileAccess, "cannot access entry").
			WithDetail("path", path)
	case stderrors.Is(err, fs.ErrNotExist):
		return entryAbsent, nil
	default:
		return entryAbsent, errors.Wrap(err, errors.ErrFileAccess, "cannot access entry").
			WithDetail("path", path)
	}
}

func (r *run) relative(path string) string {
	rel, err := filepath.Rel(r.opts.Root, path)
	if err != nil {
		return path
	}
	return rel
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)

// escapeGlob quotes pattern metacharacters in a literal path. Windows
// patterns have no escape character.
func escapeGlob(path string) string {
	if runtime.GOOS == "windows" {
		return path
	}
	return globEscaper.Replace(path)
}
