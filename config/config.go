package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("FOLIOCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about, and Unmarshal
	// walks those known keys. The folio.* keys carry no defaults, so without
	// an explicit binding their FOLIOCTL_* variables would be ignored
	// whenever no config file mentions them.
	for _, key := range []string{"folio.url", "folio.username", "folio.password", "folio.tenant"} {
		v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".folioctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/folioctl/")
	}

	// Read config file. A missing file is fine when no explicit path was
	// given: the records command accepts all connection details as
	// positional arguments.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.json", false)
	v.SetDefault("output.show_requests", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks if the configuration is valid. Connection details are not
// required here; commands that need them check ValidateConnection after
// merging positional arguments.
func Validate(cfg *Config) error {
	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ValidateConnection checks that everything needed to reach Okapi is set.
func ValidateConnection(cfg *Config) error {
	if cfg.Folio.URL == "" {
		return fmt.Errorf("folio.url is required")
	}
	if cfg.Folio.Tenant == "" {
		return fmt.Errorf("folio.tenant is required")
	}
	if cfg.Folio.Username == "" {
		return fmt.Errorf("folio.username is required")
	}
	return nil
}
