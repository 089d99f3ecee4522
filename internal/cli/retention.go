package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmurley/rugby-stats/internal/models"
	"github.com/pmurley/rugby-stats/internal/retention"
)

// NewRetentionCommand prints per-match retention and saves it to the data directory.
func NewRetentionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "retention <teamsheet.csv>",
		Short: "Compute retention for every match in a team sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setNames := opts.setNames()

			records, err := opts.compute(args[0], setNames)
			if err != nil {
				return err
			}

			if err := opts.storage.Save(records, setNames); err != nil {
				return err
			}
			opts.logger.Infof("Saved %d retention records to %s", len(records), opts.storage.Path())

			return writeRecords(cmd.OutOrStdout(), opts.Format, records, setNames)
		},
	}
}

// compute loads a team sheet and runs the retention calculation on it
func (o *RootOptions) compute(path string, setNames []string) ([]models.RetentionRecord, error) {
	matches, err := o.loader.Load(path)
	if err != nil {
		return nil, err
	}

	records, err := retention.Compute(matches, setNames)
	if err != nil {
		return nil, fmt.Errorf("failed to compute retention: %w", err)
	}
	o.logger.Debugf("Computed %d retention records for sets %v", len(records), setNames)

	return records, nil
}
