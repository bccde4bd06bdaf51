package config

import (
	"errors"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Output renderings supported by periodctl.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputCSV   = "csv"
	OutputTable = "table"
)

type Config struct {
	Env string

	Log     LogConfig
	Output  OutputConfig
	Export  ExportConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// OutputConfig controls how decoded weeks are rendered.
type OutputConfig struct {
	Format       string
	CSVDelimiter rune
}

// ExportConfig drives batch exports.
type ExportConfig struct {
	Dir     string
	Workers int
}

// MetricsConfig points at the textfile collector target. Empty disables it.
type MetricsConfig struct {
	TextfilePath string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Output = OutputConfig{
		Format:       normaliseOutput(v.GetString("PERIODCTL_OUTPUT")),
		CSVDelimiter: parseDelimiter(v.GetString("PERIODCTL_CSV_DELIMITER"), ','),
	}

	cfg.Export = ExportConfig{
		Dir:     v.GetString("PERIODCTL_EXPORT_DIR"),
		Workers: v.GetInt("PERIODCTL_WORKERS"),
	}
	if cfg.Export.Workers <= 0 {
		cfg.Export.Workers = 1
	}

	cfg.Metrics = MetricsConfig{
		TextfilePath: strings.TrimSpace(v.GetString("PERIODCTL_METRICS_FILE")),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("PERIODCTL_OUTPUT", OutputTable)
	v.SetDefault("PERIODCTL_CSV_DELIMITER", ",")
	v.SetDefault("PERIODCTL_METRICS_FILE", "")

	v.SetDefault("PERIODCTL_EXPORT_DIR", "./exports")
	v.SetDefault("PERIODCTL_WORKERS", 4)
}

// ValidOutput reports whether format names a supported rendering.
func ValidOutput(format string) bool {
	switch format {
	case OutputJSON, OutputYAML, OutputCSV, OutputTable:
		return true
	}
	return false
}

func normaliseOutput(raw string) string {
	format := strings.ToLower(strings.TrimSpace(raw))
	if !ValidOutput(format) {
		return OutputTable
	}
	return format
}

func parseDelimiter(raw string, fallback rune) rune {
	if raw == `\t` || raw == "tab" {
		return '\t'
	}
	runes := []rune(raw)
	if len(runes) != 1 || !validDelimiter(runes[0]) {
		return fallback
	}
	return runes[0]
}

// validDelimiter mirrors the delimiters encoding/csv accepts.
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
