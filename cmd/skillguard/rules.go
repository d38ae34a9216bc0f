package skillguard

import (
	"github.com/arthur-debert/skillguard/pkg/output"
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newRulesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "misc",
	}
	cmd.AddCommand(newRulesListCmd(opts))
	cmd.AddCommand(newRulesExportCmd(opts))
	return cmd
}

func newRulesListCmd(opts *globalOptions) *cobra.Command {
	var hardOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgRulesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.corpus()
			if err != nil {
				return err
			}

			list := c.All()
			if hardOnly {
				list = c.HardTriggers()
			}
			if !output.ResolveColor(opts.cfg.Output.Color, cmd.OutOrStdout()) {
				pterm.DisableStyling()
			}
			return output.RenderRules(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().BoolVar(&hardOnly, "hard-triggers", false, MsgFlagHardTriggers)
	return cmd
}

func newRulesExportCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgRulesExportShort,
		Args:  cobra.NoArgs,
		Example: `  skillguard rules export > rules.toml
  skillguard rules export --format yaml > rules.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rules.ParseFormat(format)
			if err != nil {
				return err
			}
			c, err := opts.corpus()
			if err != nil {
				return err
			}
			data, err := rules.Export(c, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagExportFormat)
	return cmd
}
