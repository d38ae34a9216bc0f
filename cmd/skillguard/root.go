package skillguard

import (
	"fmt"

	"github.com/arthur-debert/skillguard/internal/version"
	"github.com/arthur-debert/skillguard/pkg/config"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/arthur-debert/skillguard/pkg/output"
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/arthur-debert/skillguard/pkg/scanner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions carries persistent flags and the configuration resolved from them
type globalOptions struct {
	verbosity  int
	configPath string
	rulesPath  string
	noColor    bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "skillguard",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return opts.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.rulesPath, "rules", "", MsgFlagRules)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "scan", Title: "SCAN:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newScanContentCmd(opts))
	rootCmd.AddCommand(newScanAllCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newChecksumCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func (o *globalOptions) loadConfig() error {
	overrides := map[string]interface{}{}
	if o.rulesPath != "" {
		overrides["rules.path"] = o.rulesPath
	}
	if o.noColor {
		overrides["output.color"] = config.ColorNever
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: o.configPath,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// corpus returns the configured rule corpus, falling back to the built-in one
func (o *globalOptions) corpus() (*rules.Corpus, error) {
	if o.cfg.Rules.Path == "" {
		return rules.Default(), nil
	}
	return rules.LoadFile(o.cfg.Rules.Path)
}

func (o *globalOptions) newScanner() (*scanner.Scanner, error) {
	c, err := o.corpus()
	if err != nil {
		return nil, err
	}
	return scanner.New(c,
		scanner.WithWorkers(o.cfg.Scan.Workers),
		scanner.WithExcludes(o.cfg.Scan.Exclude),
		scanner.WithMaxFileSize(o.cfg.Scan.MaxFileSize),
	), nil
}

// renderer builds a renderer for cmd's output. An empty format selects the
// configured one.
func (o *globalOptions) renderer(cmd *cobra.Command, format string) (*output.Renderer, error) {
	if format == "" {
		format = o.cfg.Output.Format
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	w := cmd.OutOrStdout()
	return output.NewRenderer(w, f, output.ResolveColor(o.cfg.Output.Color, w)), nil
}
