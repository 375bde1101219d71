// Package cfg holds the cobra commands and their viper-backed configuration.
package cfg

import (
	"context"
	"fmt"
	"strings"

	"audionorm/internal/domain/consts"
	"audionorm/internal/domain/keys"
	"audionorm/internal/domain/logger"
	"audionorm/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flags whose name differs from their viper key.
var flagKeys = map[string]string{
	"kwargs": keys.KwargsFlag,
}

// NewRootCmd builds the command tree on top of v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   consts.ProgramName,
		Short: "audionorm normalizes the loudness of downloaded media in place",
		Long: "audionorm is a post-processor for yt-dlp. It resolves ffmpeg-normalize parameters\n" +
			"from kwargs, a raw flag string and the file's metadata, then normalizes the file in place.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if err := loadConfig(v); err != nil {
				return err
			}
			if logFile := v.GetString(keys.LogFile); logFile != "" {
				if err := logger.Pl.SetLogFile(logFile); err != nil {
					return err
				}
			}
			logger.Pl.SetDebugLevel(validation.ValidateDebugLevel(v.GetInt(keys.Debug)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("please specify a subcommand. Use --help to see available subcommands")
		},
	}

	// Set up root-level flags
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Config file (default ~/.audionorm/config.yaml)")
	rootCmd.PersistentFlags().Int(keys.Debug, 0, "Debug level (0-5)")
	rootCmd.PersistentFlags().String(keys.LogFile, "", "Log file (default ~/.audionorm/audionorm.log)")
	rootCmd.PersistentFlags().String(keys.DBPath, "", "Run history database (default ~/.audionorm/audionorm.db)")
	rootCmd.PersistentFlags().Bool(keys.History, true, "Record runs in the history database")
	rootCmd.PersistentFlags().String(keys.FFmpegNormalizeBin, consts.DefaultFFmpegNormalizeBin, "ffmpeg-normalize executable")

	rootCmd.AddCommand(runCmd(v))
	rootCmd.AddCommand(resolveCmd(v))
	rootCmd.AddCommand(paramsCmd())
	rootCmd.AddCommand(historyCmd(v))

	return rootCmd
}

// Execute runs the command tree against the global viper instance.
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCmd(viper.GetViper())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// bindFlags binds the executing command's flags (its own and inherited) to v.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(strings.ToUpper(consts.ProgramName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errOrNil error
	fs.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := flagKeys[key]; ok {
			key = k
		}
		if err := v.BindPFlag(key, f); err != nil {
			errOrNil = err
		}
	})
	return errOrNil
}
