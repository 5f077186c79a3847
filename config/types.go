package config

// File names resolved against the base directory
const (
	DefaultInputName  = "stations.json"
	DefaultOutputName = "stations_with_indexes.json"
	FileName          = "metro-indexer.yml"
	EnvFileName       = ".env"
)

// Environment variable overrides
const (
	EnvInput           = "METRO_INDEXER_INPUT"
	EnvOutput          = "METRO_INDEXER_OUTPUT"
	EnvLogLevel        = "METRO_INDEXER_LOG_LEVEL"
	EnvReportUnmatched = "METRO_INDEXER_REPORT_UNMATCHED"
)

// AppConfig is the root configuration structure.
// Output may equal Input, in which case the dataset is rewritten in place.
type AppConfig struct {
	Input           string `yaml:"input" validate:"required"`
	Output          string `yaml:"output" validate:"required"`
	Indent          int    `yaml:"indent" validate:"min=1,max=8"`
	LogLevel        string `yaml:"logLevel" validate:"oneof=debug info warn error"`
	ReportUnmatched bool   `yaml:"reportUnmatched"`
}

// fileConfig mirrors AppConfig with optional fields so unset keys keep defaults
type fileConfig struct {
	Input           *string `yaml:"input"`
	Output          *string `yaml:"output"`
	Indent          *int    `yaml:"indent"`
	LogLevel        *string `yaml:"logLevel"`
	ReportUnmatched *bool   `yaml:"reportUnmatched"`
}
