package scanner

import (
	"context"

	"github.com/arthur-debert/skillguard/pkg/report"
	"golang.org/x/sync/errgroup"
)

// Target names one skill directory of a batch. The manifest fields are
// optional and only travel with the result.
type Target struct {
	ID   string
	Root string

	Name        string
	Description string
	Author      string
	Version     string
}

// Label is the display name of the target: its id, followed by the manifest
// name when that differs
func (t Target) Label() string {
	if t.Name == "" || t.Name == t.ID {
		return t.ID
	}
	return t.ID + " (" + t.Name + ")"
}

// BatchResult pairs a target with its report or the error that prevented it
type BatchResult struct {
	Target Target
	Report *report.Report
	Err    error
}

// ScanAll scans targets concurrently, at most workers at a time, and returns
// one result per target in input order. A failing target never stops the
// others; once ctx is done the remaining targets report ctx.Err().
func (s *Scanner) ScanAll(ctx context.Context, targets []Target, workers int) []BatchResult {
	results := make([]BatchResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			results[i].Target = target
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			rep, err := s.Scan(target.Root, target.ID)
			if err != nil {
				s.logger.Warn().Err(err).Str("skill", target.ID).Msg("Scan failed")
			}
			results[i].Report = rep
			results[i].Err = err
			return nil
		})
	}
	_ = g.Wait()

	return results
}
