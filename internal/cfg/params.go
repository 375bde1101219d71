package cfg

import (
	"strings"

	"audionorm/internal/normalize"
	"audionorm/internal/ui"

	"github.com/spf13/cobra"
)

// paramsCmd lists every parameter audionorm knows.
func paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the ffmpeg-normalize parameters",
		Long:  "Lists every parameter with its long flag, short alias, type and default. Any of the three names works as a kwarg key.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(normalize.Params))
			for _, p := range normalize.Params {
				kind := p.Kind.String()
				if len(p.Enum) > 0 {
					kind += " (" + strings.Join(p.Enum, "|") + ")"
				}
				rows = append(rows, []string{
					p.Name,
					normalize.LongFlag(p.Name),
					normalize.ShortFlagFor(p.Name),
					kind,
					p.Default,
					p.Usage,
				})
			}
			ui.Table([]string{"name", "flag", "alias", "type", "default", "description"}, rows)
			return nil
		},
	}
}
