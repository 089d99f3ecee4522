package cli

import (
	"context"
	"reflect"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmurley/rugby-stats/internal/models"
	"github.com/pmurley/rugby-stats/internal/retention"
)

// NewWatchCommand recomputes retention whenever the team sheet changes.
func NewWatchCommand(opts *RootOptions) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <teamsheet.csv>",
		Short: "Recompute retention when the team sheet changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				interval = opts.config.WatchInterval
			}
			return opts.watch(cmd.Context(), args[0], interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "how often to check the team sheet (default from WATCH_INTERVAL_SECONDS)")

	return cmd
}

// watch runs until ctx is cancelled. Failed checks are logged and retried on
// the next tick.
func (o *RootOptions) watch(ctx context.Context, path string, interval time.Duration) error {
	o.logger.Infof("Watching %s every %s", path, interval)

	var last []models.RetentionRecord

	// Initial check on startup
	last = o.checkTeamSheet(path, last)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			last = o.checkTeamSheet(path, last)
		case <-ctx.Done():
			o.logger.Info("Stopping team sheet watch")
			return nil
		}
	}
}

// checkTeamSheet recomputes retention and, if it changed, saves and logs it.
// Returns the records to compare against next time.
func (o *RootOptions) checkTeamSheet(path string, last []models.RetentionRecord) []models.RetentionRecord {
	o.logger.Debug("Checking team sheet", path)

	setNames := o.setNames()
	records, err := o.compute(path, setNames)
	if err != nil {
		o.logger.Error("Failed to compute retention:", err)
		return last
	}

	if last != nil && reflect.DeepEqual(records, last) {
		return last
	}

	if err := o.storage.Save(records, setNames); err != nil {
		o.logger.Error("Failed to save retention:", err)
		return last
	}

	for _, s := range retention.Summarize(records, setNames) {
		o.logger.Infof("%s %s: %s", s.Squad, s.Season, summaryLine(&s, setNames))
	}

	return records
}
