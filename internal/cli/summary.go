package cli

import (
	"github.com/spf13/cobra"

	"github.com/pmurley/rugby-stats/internal/retention"
)

// NewSummaryCommand prints average retention per squad and season.
func NewSummaryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <teamsheet.csv>",
		Short: "Average retention per squad and season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setNames := opts.setNames()

			records, err := opts.compute(args[0], setNames)
			if err != nil {
				return err
			}

			return writeSummaries(cmd.OutOrStdout(), opts.Format, retention.Summarize(records, setNames), setNames)
		},
	}
}
