package cfg

import (
	"fmt"
	"path/filepath"

	"audionorm/internal/command"
	"audionorm/internal/database"
	"audionorm/internal/domain/keys"
	"audionorm/internal/domain/logger"
	"audionorm/internal/domain/paths"
	"audionorm/internal/postprocess"
	"audionorm/internal/repo"
	"audionorm/internal/ui"
	"audionorm/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd normalizes one downloaded item in place.
func runCmd(v *viper.Viper) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Normalize a downloaded file in place",
		Long: "Resolves the parameters for one downloaded item, runs ffmpeg-normalize on it and\n" +
			"replaces the file with the normalized output. Meant to be called from yt-dlp's --exec.",
		Example: `  yt-dlp --exec 'audionorm run --file {} --kwargs "target_level=-16"' URL
  audionorm run --info-json video.info.json --ppa "-t -14 -c:a aac"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := mediaInfo(v)
			if err != nil {
				return err
			}
			opts, err := processorOptions(v)
			if err != nil {
				return err
			}

			rec, closeDB := openRecorder(v)
			defer closeDB()

			ffn := command.NewFFmpegNormalize(v.GetString(keys.FFmpegNormalizeBin))
			p, err := postprocess.New(opts, ffn, rec)
			if err != nil {
				return err
			}
			logger.Pl.D(1, "Running at stage %q", p.Stage())

			if _, info, err = p.Run(cmd.Context(), info); err != nil {
				return err
			}

			if path := info.FilePath(); path != "" {
				ui.SuccessMsg(fmt.Sprintf("Normalized %s", path))
			} else {
				ui.WarnMsg("No file path given, nothing to normalize")
			}
			return nil
		},
	}

	addInvocationFlags(runCmd.Flags())
	return runCmd
}

// openRecorder opens the run ledger if history is enabled.
//
// A ledger that can't be opened is logged and skipped; it never blocks normalization.
func openRecorder(v *viper.Viper) (postprocess.Recorder, func()) {
	if !v.GetBool(keys.History) {
		return nil, func() {}
	}

	db, err := openDatabase(v)
	if err != nil {
		logger.Pl.W("Run history disabled: %v", err)
		return nil, func() {}
	}
	return repo.NewRunStore(db.DB), func() {
		if err := db.Close(); err != nil {
			logger.Pl.E("Failed to close database: %v", err)
		}
	}
}

// openDatabase opens the ledger database at --db-path or the program default.
func openDatabase(v *viper.Viper) (*database.Database, error) {
	path := v.GetString(keys.DBPath)
	if path == "" {
		path = paths.DBFilePath
	}
	if path == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	if _, err := validation.ValidateDirectory(filepath.Dir(path), true); err != nil {
		return nil, err
	}
	return database.InitDB(path)
}
