package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "people-api/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 and 503 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// DirectoryConfig holds settings for querying the people directory index.
type DirectoryConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the _search endpoint of the people index.
	URL string `json:"url" yaml:"url"`

	// Size is the page size requested per query (default 60).
	Size int `json:"size" yaml:"size"`

	// Token is an optional bearer token for a protected index.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// OutputFormat selects the sheet writer.
type OutputFormat string

const (
	FormatTSV    OutputFormat = "tsv"
	FormatCSV    OutputFormat = "csv"
	FormatJSON   OutputFormat = "json"
	FormatYAML   OutputFormat = "yaml"
	FormatSQLite OutputFormat = "sqlite"
)

// OutputConfig holds settings for writing the extracted rows.
type OutputConfig struct {
	// Format selects the writer: tsv, csv, json, yaml, or sqlite.
	Format OutputFormat `json:"format" yaml:"format"`

	// Path is the output file. Empty means stdout, except for sqlite
	// which defaults to people.db.
	Path string `json:"path" yaml:"path"`

	// NoHeader omits the header row from delimited output.
	NoHeader bool `json:"no_header" yaml:"no_header"`
}

// Config groups all stage configurations.
type Config struct {
	Directory DirectoryConfig `json:"directory" yaml:"directory"`
	Output    OutputConfig    `json:"output" yaml:"output"`
}
