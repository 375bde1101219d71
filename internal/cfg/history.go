package cfg

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"audionorm/internal/domain/keys"
	"audionorm/internal/domain/logger"
	"audionorm/internal/parsing"
	"audionorm/internal/repo"
	"audionorm/internal/ui"
	"audionorm/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyCmd lists recorded normalization runs.
func historyCmd(v *viper.Viper) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List past normalization runs",
		Long:  "Lists recorded runs, newest first. --since takes a duration (36h), a day count (7d) or a date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := v.GetString(keys.HistoryStatus)
			if err := validation.ValidateRunStatus(status); err != nil {
				return err
			}
			since, err := parsing.ParseSince(v.GetString(keys.HistorySince), time.Now())
			if err != nil {
				return err
			}

			filter := repo.RunFilter{
				Since:  since,
				Status: status,
				Limit:  uint64(max(v.GetInt(keys.HistoryLimit), 0)),
			}
			if f := v.GetString(keys.FilePath); f != "" {
				if filter.FilePath, err = filepath.Abs(f); err != nil {
					return err
				}
			}

			db, err := openDatabase(v)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Pl.E("Failed to close database: %v", err)
				}
			}()

			runs, err := repo.NewRunStore(db.DB).List(filter)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				ui.WarnMsg("No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				finished := "-"
				if r.FinishedAt.Valid {
					finished = parsing.FormatTime(r.FinishedAt.Time)
				}
				rows = append(rows, []string{
					strconv.FormatInt(r.ID, 10),
					parsing.FormatTime(r.StartedAt),
					finished,
					ui.StatusStyle(r.Status),
					r.Stage,
					r.FilePath,
					r.Error,
				})
			}
			ui.Table([]string{"id", "started", "finished", "status", "stage", "file", "error"}, rows)
			ui.Detail(fmt.Sprintf("%d run(s)", len(runs)))
			return nil
		},
	}

	historyCmd.Flags().String(keys.HistorySince, "", "Only runs started after this time")
	historyCmd.Flags().String(keys.HistoryStatus, "", "Only runs with this status (running, success, failed)")
	historyCmd.Flags().Int(keys.HistoryLimit, 50, "Maximum number of runs to list (0 for all)")
	historyCmd.Flags().String(keys.FilePath, "", "Only runs for this file")
	return historyCmd
}
