package spell

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for a spelling checker.
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig holds dictionary source configuration
type DictionaryConfig struct {
	Path          string `mapstructure:"path"`
	Encoding      string `mapstructure:"encoding"`
	MaxLineLength int    `mapstructure:"max_line_length"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LoadConfig loads configuration from an optional file and SPELL_* environment
// variables, e.g. SPELL_DICTIONARY_PATH.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SPELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "dictionary.txt")
	v.SetDefault("dictionary.encoding", EncodingAuto)
	v.SetDefault("dictionary.max_line_length", DefaultMaxLineLength)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", LogFormatConsole)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary path is required")
	}
	if c.Dictionary.MaxLineLength <= 0 {
		return fmt.Errorf("invalid max line length: %d", c.Dictionary.MaxLineLength)
	}
	if c.Dictionary.Encoding != EncodingAuto {
		if _, _, err := lookupEncoding(c.Dictionary.Encoding); err != nil {
			return err
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}
	return nil
}
