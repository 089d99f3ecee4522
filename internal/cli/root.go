package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmurley/rugby-stats/internal/cache"
	"github.com/pmurley/rugby-stats/internal/config"
	"github.com/pmurley/rugby-stats/internal/storage"
	"github.com/pmurley/rugby-stats/internal/teamsheets"
	"github.com/pmurley/rugby-stats/pkg/logger"
)

// RootOptions holds global flags and the services commands share
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
	Sets    string // comma separated, overrides config

	config  *config.Config
	logger  *logger.Logger
	loader  *teamsheets.Loader
	storage *storage.RetentionStorage
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rugby-stats CLI.
func NewRootCommand(cfg *config.Config, log *logger.Logger) *cobra.Command {
	opts := &RootOptions{config: cfg, logger: log}

	cmd := &cobra.Command{
		Use:           "rugby-stats",
		Short:         "Squad retention for the club statistics site",
		Long:          "Computes how many players each squad keeps from one match to the next, per season.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Verbose {
				opts.logger.SetLevel("debug")
			}

			rs, err := storage.NewRetentionStorage(cfg.DataDir)
			if err != nil {
				return err
			}
			opts.storage = rs
			opts.loader = teamsheets.NewLoader(cache.New(cfg.CacheDuration), log)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Sets, "sets", "", "comma separated player sets (default from RETENTION_SETS)")

	cmd.AddCommand(NewRetentionCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// setNames returns the --sets flag if given, else the configured sets
func (o *RootOptions) setNames() []string {
	if o.Sets != "" {
		return config.SplitList(o.Sets)
	}
	return o.config.SetNames
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
