package cfg

import (
	"fmt"
	"strings"

	"audionorm/internal/command"
	"audionorm/internal/domain/keys"
	"audionorm/internal/normalize"
	"audionorm/internal/postprocess"
	"audionorm/internal/ui"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resolveCmd prints the resolved parameters and the command that would run.
func resolveCmd(v *viper.Viper) *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the resolved parameters without running anything",
		Long:  "Resolves the parameters exactly as run would and prints them with the ffmpeg-normalize command line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := mediaInfo(v)
			if err != nil {
				return err
			}
			opts, err := processorOptions(v)
			if err != nil {
				return err
			}

			ffn := command.NewFFmpegNormalize(v.GetString(keys.FFmpegNormalizeBin))
			p, err := postprocess.New(opts, ffn, nil)
			if err != nil {
				return err
			}
			params, err := p.Resolve(info)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(params))
			for _, name := range params.Names() {
				rows = append(rows, []string{name, normalize.LongFlag(name), params[name].String()})
			}
			ui.Heading(fmt.Sprintf("Stage: %s", p.Stage()))
			ui.Table([]string{"parameter", "flag", "value"}, rows)

			input := info.FilePath()
			if input == "" {
				input = "<input>"
			}
			argv := append([]string{ffn.Binary}, ffn.BuildArgs(input, "<output>", params)...)
			ui.Detail(quoteArgs(argv))
			return nil
		},
	}

	addInvocationFlags(resolveCmd.Flags())
	return resolveCmd
}

// quoteArgs renders argv so it splits back into the same words.
func quoteArgs(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		if words, err := shellwords.Parse(a); err == nil && len(words) == 1 && words[0] == a {
			quoted[i] = a
			continue
		}
		quoted[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}
