// Package scanner is the entry point of the engine. It wires collection,
// matching, scoring, the hard-trigger veto and recommendations into a single
// Report per call.
package scanner

import (
	"runtime"

	"github.com/arthur-debert/skillguard/pkg/collector"
	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/arthur-debert/skillguard/pkg/filesystem"
	"github.com/arthur-debert/skillguard/pkg/internal/hashutil"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/arthur-debert/skillguard/pkg/matcher"
	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/rs/zerolog"
)

// Scanner runs a fixed corpus over skill directories. It holds no mutable
// state after construction and is safe for concurrent use.
type Scanner struct {
	corpus      *rules.Corpus
	fs          filesystem.FS
	workers     int
	excludes    []string
	maxFileSize int64
	logger      zerolog.Logger
}

// Option configures a Scanner
type Option func(*Scanner)

// WithFS reads skill trees through fsys instead of the OS filesystem
func WithFS(fsys filesystem.FS) Option {
	return func(s *Scanner) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithWorkers bounds how many files of one skill are matched concurrently
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithExcludes adds gitignore-style patterns pruned during collection
func WithExcludes(patterns []string) Option {
	return func(s *Scanner) {
		s.excludes = append([]string(nil), patterns...)
	}
}

// WithMaxFileSize skips files larger than n bytes. Zero disables the limit.
func WithMaxFileSize(n int64) Option {
	return func(s *Scanner) {
		s.maxFileSize = n
	}
}

// New creates a scanner using corpus. A nil corpus selects rules.Default().
func New(corpus *rules.Corpus, opts ...Option) *Scanner {
	if corpus == nil {
		corpus = rules.Default()
	}
	s := &Scanner{
		corpus:  corpus,
		fs:      filesystem.NewOS(),
		workers: runtime.NumCPU(),
		logger:  logging.GetLogger("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Corpus returns the rules this scanner applies
func (s *Scanner) Corpus() *rules.Corpus {
	return s.corpus
}

// Scan collects and matches every scannable file under root and returns the
// assembled report. The only error is DIRECTORY_NOT_FOUND for a root that is
// missing, is not a directory or cannot be listed.
func (s *Scanner) Scan(root, skillID string) (*report.Report, error) {
	done := logging.LogOperationStart(s.logger, "scan")
	defer done()

	files, err := collector.New(s.fs, collector.WithExcludes(s.excludes)).Collect(root)
	if err != nil {
		return nil, err
	}

	m := matcher.New(s.fs, s.corpus,
		matcher.WithWorkers(s.workers),
		matcher.WithMaxFileSize(s.maxFileSize),
	)
	matches, scanned := m.Match(root, files)
	rep := report.Assemble(skillID, matches, scanned)

	s.logger.Info().
		Str("skill", skillID).
		Str("root", root).
		Int("score", rep.Score).
		Str("level", rep.Level.String()).
		Bool("blocked", rep.Blocked).
		Int("issues", len(rep.Issues)).
		Msg("Scan complete")

	return rep, nil
}

// ScanContent scans one in-memory blob. The label stands in for both the
// skill id and the single scanned file.
func (s *Scanner) ScanContent(text, label string) *report.Report {
	matches := matcher.MatchLines(s.corpus, text, label)
	return report.Assemble(label, matches, []string{label})
}

// Checksum returns the lowercase hex SHA-256 digest of data
func Checksum(data []byte) string {
	return hashutil.Sum(data)
}

// ChecksumFile returns the lowercase hex SHA-256 digest of a file's content
func ChecksumFile(path string) (string, error) {
	sum, err := hashutil.SumFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).WithDetail("path", path)
	}
	return sum, nil
}
