package cfg

import (
	"fmt"
	"os"

	"audionorm/internal/domain/errconsts"
	"audionorm/internal/domain/keys"
	"audionorm/internal/domain/logger"
	"audionorm/internal/domain/paths"
	"audionorm/internal/file"
	"audionorm/internal/media"
	"audionorm/internal/normalize"
	"audionorm/internal/parsing"
	"audionorm/internal/postprocess"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// loadConfig reads the config file named by --config, or the default one when present.
func loadConfig(v *viper.Viper) error {
	cfgFile := v.GetString(keys.ConfigFile)
	if cfgFile == "" {
		if paths.DefaultConfigFile == "" {
			return nil
		}
		if _, err := os.Stat(paths.DefaultConfigFile); err != nil {
			return nil
		}
		cfgFile = paths.DefaultConfigFile
	}

	if err := file.LoadConfigFile(v, cfgFile); err != nil {
		return fmt.Errorf(errconsts.ConfigFileLoadFail, cfgFile, err)
	}
	logger.Pl.D(1, "Loaded config file %q", cfgFile)
	return nil
}

// processorOptions collects kwargs, raw flags and stage from config and flags.
//
// Kwargs given on the command line replace config-file kwargs for the same parameter.
func processorOptions(v *viper.Viper) (postprocess.Options, error) {
	base, ok := parsing.GetConfigValue[map[string]any](v, keys.Kwargs)
	if !ok && v.IsSet(keys.Kwargs) {
		return postprocess.Options{}, &normalize.ConfigError{
			Key: keys.Kwargs,
			Err: fmt.Errorf("%w: must be a map of parameter names to values", normalize.ErrInvalidValue),
		}
	}

	cli, err := parsing.ParseKwargString(v.GetString(keys.KwargsFlag))
	if err != nil {
		return postprocess.Options{}, &normalize.ConfigError{Key: keys.Kwargs, Err: err}
	}

	return postprocess.Options{
		Kwargs: parsing.MergeKwargs(base, cli, normalize.CanonicalKey),
		PPA:    v.GetString(keys.PPA),
		Stage:  v.GetString(keys.When),
	}, nil
}

// mediaInfo loads the item metadata from --info-json, then applies explicit fact flags over it.
func mediaInfo(v *viper.Viper) (media.Info, error) {
	info := media.Info{}
	if path := v.GetString(keys.InfoJSON); path != "" {
		loaded, err := media.LoadInfoJSON(path)
		if err != nil {
			return nil, err
		}
		info = loaded
	}

	if path := v.GetString(keys.FilePath); path != "" {
		info.SetFilePath(path)
	}
	for _, k := range []string{keys.FactExt, keys.FactACodec, keys.FactASR, keys.FactABR} {
		if val := v.GetString(k); val != "" {
			info[k] = val
		}
	}
	return info, nil
}

// addInvocationFlags registers the flags shared by run and resolve.
func addInvocationFlags(fs *pflag.FlagSet) {
	fs.String(keys.InfoJSON, "", "yt-dlp info JSON of the item (\"-\" reads stdin)")
	fs.String(keys.FilePath, "", "Media file to normalize (overrides the info JSON)")
	fs.String(keys.FactExt, "", "File extension")
	fs.String(keys.FactACodec, "", "Audio codec as reported by yt-dlp")
	fs.String(keys.FactASR, "", "Audio sample rate in Hz")
	fs.String(keys.FactABR, "", "Audio bitrate in kbit/s")
	fs.String("kwargs", "", "Declarative parameters, \"key=value;key=value\"")
	fs.String(keys.PPA, "", "Raw ffmpeg-normalize flags, e.g. \"-t -16 -c:a aac\"")
	fs.String(keys.When, "", "yt-dlp post-processing stage")
}
