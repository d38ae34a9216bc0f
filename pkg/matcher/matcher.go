// Package matcher tests every corpus rule against every line of the collected
// files and produces the ordered match list of a scan.
package matcher

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/arthur-debert/skillguard/pkg/filesystem"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Match is one (rule, file, line) hit. It only lives for the duration of a scan.
type Match struct {
	Rule *rules.Rule
	// File is the slash-separated path relative to the scanned root, or the
	// label given to MatchContent.
	File string
	// Line is 1-based
	Line int
	// Snippet is the matched line with surrounding whitespace removed
	Snippet string
}

// Matcher runs a corpus over files read through a filesystem.FS.
type Matcher struct {
	fs          filesystem.FS
	corpus      *rules.Corpus
	workers     int
	maxFileSize int64
	logger      zerolog.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithWorkers bounds the number of files matched concurrently. Values below 1
// select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithMaxFileSize skips files larger than n bytes. Zero means no limit.
func WithMaxFileSize(n int64) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxFileSize = n
		}
	}
}

// New creates a matcher for corpus reading through fsys
func New(fsys filesystem.FS, corpus *rules.Corpus, opts ...Option) *Matcher {
	m := &Matcher{
		fs:      fsys,
		corpus:  corpus,
		workers: runtime.NumCPU(),
		logger:  logging.GetLogger("matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type fileResult struct {
	matches []Match
	scanned bool
}

// Match reads each file (relative to root) and returns every match ordered by
// file, then line, then rule declaration order, together with the files that
// were actually scanned. Unreadable, oversized and NUL-containing files are
// logged and left out of both results.
func (m *Matcher) Match(root string, files []string) ([]Match, []string) {
	results := make([]fileResult, len(files))

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			text, err := m.readText(root, rel)
			if err != nil {
				m.logger.Warn().
					Err(err).
					Str("code", string(errors.GetErrorCode(err))).
					Str("file", rel).
					Msg("Skipping file")
				return nil
			}
			results[i] = fileResult{
				matches: MatchLines(m.corpus, text, rel),
				scanned: true,
			}
			return nil
		})
	}
	_ = g.Wait()

	matches := make([]Match, 0)
	scanned := make([]string, 0, len(files))
	for i, res := range results {
		if !res.scanned {
			continue
		}
		scanned = append(scanned, files[i])
		matches = append(matches, res.matches...)
	}

	m.logger.Debug().
		Int("files", len(scanned)).
		Int("skipped", len(files)-len(scanned)).
		Int("matches", len(matches)).
		Msg("Matching complete")

	return matches, scanned
}

// MatchContent matches an in-memory blob labelled as label
func (m *Matcher) MatchContent(text, label string) []Match {
	return MatchLines(m.corpus, text, label)
}

func (m *Matcher) readText(root, rel string) (string, error) {
	full := filepath.Join(root, filepath.FromSlash(rel))

	if m.maxFileSize > 0 {
		info, err := m.fs.Stat(full)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", rel)
		}
		if info.Size() > m.maxFileSize {
			return "", errors.Newf(errors.ErrFileRead, "file exceeds %d bytes", m.maxFileSize).
				WithDetail("size", info.Size())
		}
	}

	data, err := m.fs.ReadFile(full)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", rel)
	}
	if IsBinary(data) {
		return "", errors.New(errors.ErrFileRead, "binary content")
	}
	return DecodeText(data), nil
}

// IsBinary reports whether data holds a NUL byte. Text in other encodings, or
// with stray invalid bytes, is still matched.
func IsBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0
}

// DecodeText converts data to a string, replacing each run of invalid UTF-8
// with U+FFFD
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD")
}

// MatchLines tests every rule of corpus against every line of text. Lines are
// split on "\n" with a trailing "\r" removed.
func MatchLines(corpus *rules.Corpus, text, file string) []Match {
	matches := make([]Match, 0)
	all := corpus.All()
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		for _, rule := range all {
			if rule.Pattern.MatchString(line) {
				matches = append(matches, Match{
					Rule:    rule,
					File:    file,
					Line:    i + 1,
					Snippet: strings.TrimSpace(line),
				})
			}
		}
	}
	return matches
}
