// Package collector enumerates the text files of a skill tree that the
// matcher should inspect.
package collector

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/arthur-debert/skillguard/pkg/filesystem"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
)

// ManifestFile is the skill manifest, always collected
const ManifestFile = "SKILL.md"

// prunedDirs are never descended into
var prunedDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	".svn":         {},
	"__pycache__":  {},
	"dist":         {},
	"build":        {},
}

// textExtensions are the file extensions treated as scannable text
var textExtensions = map[string]struct{}{
	".md":   {},
	".py":   {},
	".js":   {},
	".ts":   {},
	".sh":   {},
	".bash": {},
	".zsh":  {},
	".yml":  {},
	".yaml": {},
	".json": {},
	".txt":  {},
	".jsx":  {},
	".tsx":  {},
}

// IsPruned reports whether a directory name is skipped during collection
func IsPruned(name string) bool {
	_, ok := prunedDirs[name]
	return ok
}

// IsScannable reports whether a file name would be collected
func IsScannable(name string) bool {
	if name == ManifestFile {
		return true
	}
	_, ok := textExtensions[strings.ToLower(path.Ext(name))]
	return ok
}

// Collector walks a directory tree and returns candidate files
type Collector struct {
	fs       filesystem.FS
	excludes *ignore.GitIgnore
	logger   zerolog.Logger
}

// Option configures a Collector
type Option func(*Collector)

// WithExcludes adds gitignore-style patterns, matched against slash-separated
// paths relative to the root, that prune files and directories on top of the
// built-in rules.
func WithExcludes(patterns []string) Option {
	return func(c *Collector) {
		if len(patterns) > 0 {
			c.excludes = ignore.CompileIgnoreLines(patterns...)
		}
	}
}

// New creates a collector reading through fsys
func New(fsys filesystem.FS, opts ...Option) *Collector {
	c := &Collector{
		fs:     fsys,
		logger: logging.GetLogger("collector"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect is a convenience wrapper around New(fsys).Collect(root)
func Collect(fsys filesystem.FS, root string) ([]string, error) {
	return New(fsys).Collect(root)
}

// Collect returns the scannable files under root as slash-separated paths
// relative to root, depth first in lexical order. It fails only when root is
// missing, is not a directory, or cannot be listed; unreadable subdirectories
// are skipped.
func (c *Collector) Collect(root string) ([]string, error) {
	info, err := c.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "directory not found: %s", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrDirectoryNotFound, "not a directory: %s", root).
			WithDetail("path", root)
	}

	entries, err := c.fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "cannot list directory: %s", root).
			WithDetail("path", root)
	}

	files := make([]string, 0)
	c.walk(root, "", entries, &files)

	c.logger.Debug().
		Str("root", root).
		Int("fileCount", len(files)).
		Msg("Collected files")

	return files, nil
}

func (c *Collector) walk(root, rel string, entries []fs.DirEntry, files *[]string) {
	for _, entry := range entries {
		name := entry.Name()
		relPath := path.Join(rel, name)

		if entry.Type()&fs.ModeSymlink != 0 {
			c.logger.Debug().Str("path", relPath).Msg("Skipping symlink")
			continue
		}

		if entry.IsDir() {
			if IsPruned(name) || c.excluded(relPath+"/") || c.excluded(relPath) {
				c.logger.Trace().Str("path", relPath).Msg("Pruned directory")
				continue
			}
			children, err := c.fs.ReadDir(filepath.Join(root, filepath.FromSlash(relPath)))
			if err != nil {
				c.logger.Debug().Err(err).Str("path", relPath).Msg("Skipping unreadable directory")
				continue
			}
			c.walk(root, relPath, children, files)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}
		if !IsScannable(name) || c.excluded(relPath) {
			continue
		}
		*files = append(*files, relPath)
	}
}

func (c *Collector) excluded(relPath string) bool {
	return c.excludes != nil && c.excludes.MatchesPath(relPath)
}
