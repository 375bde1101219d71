// Package keys holds the internal Viper keys shared by the commands.
package keys

// Program.
const (
	ConfigFile         string = "config"
	Debug              string = "debug"
	LogFile            string = "log-file"
	DBPath             string = "db-path"
	History            string = "history"
	FFmpegNormalizeBin string = "ffmpeg-normalize-bin"
)

// Post-processor invocation.
const (
	Kwargs     string = "kwargs"
	KwargsFlag string = "kwargs-string"
	PPA        string = "ppa"
	When       string = "when"
	InfoJSON   string = "info-json"
	FilePath   string = "file"
)

// Media facts passed in from the download host's output template.
const (
	FactExt    string = "ext"
	FactACodec string = "acodec"
	FactASR    string = "asr"
	FactABR    string = "abr"
)

// History filters.
const (
	HistorySince  string = "since"
	HistoryStatus string = "status"
	HistoryLimit  string = "limit"
)
