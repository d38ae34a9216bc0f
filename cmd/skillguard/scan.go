package skillguard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/skillguard/pkg/discovery"
	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/arthur-debert/skillguard/pkg/filesystem"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/arthur-debert/skillguard/pkg/scanner"
	"github.com/spf13/cobra"
)

// reportFlags are shared by the single-report commands
type reportFlags struct {
	format    string
	failUnder int
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().IntVar(&f.failUnder, "fail-under", -1, MsgFlagFailUnder)
}

// checkPolicy turns a blocked report or a score under the threshold into a
// POLICY_VIOLATION error. A negative flag value defers to the config.
func (o *globalOptions) checkPolicy(rep *report.Report, failUnder int) error {
	if failUnder < 0 {
		failUnder = o.cfg.Policy.FailUnder
	}
	if rep.Blocked {
		return errors.Newf(errors.ErrPolicyViolation, MsgErrBlocked, rep.SkillID, len(rep.HardTriggerIssues)).
			WithDetail("skill", rep.SkillID)
	}
	if failUnder > 0 && rep.Score < failUnder {
		return errors.Newf(errors.ErrPolicyViolation, MsgErrBelowScore, rep.SkillID, rep.Score, failUnder).
			WithDetail("skill", rep.SkillID).
			WithDetail("score", rep.Score)
	}
	return nil
}

func newScanCmd(opts *globalOptions) *cobra.Command {
	var (
		id    string
		flags reportFlags
	)

	cmd := &cobra.Command{
		Use:     "scan <dir>",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		GroupID: "scan",
		Args:    cobra.ExactArgs(1),
		Example: `  skillguard scan ./skills/pdf-tools
  skillguard scan ./candidate --id acme/pdf --format json --fail-under 70`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			if id == "" {
				id = filepath.Base(filepath.Clean(root))
			}

			s, err := opts.newScanner()
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd, flags.format)
			if err != nil {
				return err
			}

			rep, err := s.Scan(root, id)
			if err != nil {
				return err
			}
			if err := r.Render(rep); err != nil {
				return err
			}
			return opts.checkPolicy(rep, flags.failUnder)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", MsgFlagID)
	flags.register(cmd)
	return cmd
}

func newScanContentCmd(opts *globalOptions) *cobra.Command {
	var (
		label string
		flags reportFlags
	)

	cmd := &cobra.Command{
		Use:     "scan-content [file|-]",
		Short:   MsgScanContentShort,
		GroupID: "scan",
		Args:    cobra.MaximumNArgs(1),
		Example: `  skillguard scan-content install.sh
  curl -s https://example.com/setup.sh | skillguard scan-content - --label setup.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}

			var (
				data []byte
				err  error
			)
			if src == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
				if label == "" {
					label = "stdin"
				}
			} else {
				data, err = os.ReadFile(src)
				if label == "" {
					label = src
				}
			}
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", src).WithDetail("path", src)
			}

			s, err := opts.newScanner()
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd, flags.format)
			if err != nil {
				return err
			}

			rep := s.ScanContent(string(data), label)
			if err := r.Render(rep); err != nil {
				return err
			}
			return opts.checkPolicy(rep, flags.failUnder)
		},
	}

	cmd.Flags().StringVar(&label, "label", "", MsgFlagLabel)
	flags.register(cmd)
	return cmd
}

func newScanAllCmd(opts *globalOptions) *cobra.Command {
	var (
		format   string
		parallel int
	)

	cmd := &cobra.Command{
		Use:     "scan-all <dir>",
		Short:   MsgScanAllShort,
		Long:    MsgScanAllLong,
		GroupID: "scan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.scan-all")
			root := args[0]

			skills, err := discovery.Discover(filesystem.NewOS(), root)
			if err != nil {
				return err
			}
			if len(skills) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), MsgNoSkillsFound, root)
				return nil
			}

			s, err := opts.newScanner()
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd, format)
			if err != nil {
				return err
			}

			targets := make([]scanner.Target, len(skills))
			for i, skill := range skills {
				targets[i] = scanner.Target{
					ID:          skill.ID,
					Root:        skill.Path,
					Name:        skill.Name,
					Description: skill.Description,
					Author:      skill.Author,
					Version:     skill.Version,
				}
			}
			logger.Info().Int("skills", len(targets)).Int("parallel", parallel).Msg("Starting batch scan")

			results := s.ScanAll(cmd.Context(), targets, parallel)
			if err := r.RenderBatch(results); err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				if res.Err != nil || res.Report.Blocked {
					failed++
				}
			}
			if failed > 0 {
				return errors.Newf(errors.ErrPolicyViolation, MsgErrBatchBlocked, failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, MsgFlagParallel)
	return cmd
}
