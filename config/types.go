package config

// Config represents the complete configuration structure
type Config struct {
	Folio   FolioConfig   `mapstructure:"folio"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FolioConfig holds FOLIO/Okapi connection details
type FolioConfig struct {
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Tenant   string `mapstructure:"tenant"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	JSON         bool `mapstructure:"json"`
	ShowRequests bool `mapstructure:"show_requests"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
