// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"cloudeng.io/errors"
	"github.com/iwvelando/zemenbar/internal/settings"
	"github.com/iwvelando/zemenbar/pkg/constants"
	"github.com/iwvelando/zemenbar/pkg/locale"
	"github.com/iwvelando/zemenbar/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the zemenbar command.
type Configuration struct {
	Logging LoggingConfig     `yaml:"logging,omitempty"`
	Output  OutputConfig      `yaml:"output,omitempty"`
	Display settings.Settings `yaml:"display,omitempty"`
	// SettingsFile, when set, replaces Display with the stored preferences.
	SettingsFile string `yaml:"settingsFile,omitempty"`
	// Timezone names the IANA location used to resolve today's date.
	Timezone string `yaml:"timezone,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	Language string `yaml:"language,omitempty"` // am, en; overrides display.useAmharic
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
		Display: settings.Default(),
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	configuration := Default()
	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return configuration, nil
}

// Language resolves the name table: Output.Language when set, otherwise
// Display.UseAmharic.
func (c *Configuration) Language() (locale.Language, error) {
	if c.Output.Language == "" {
		return c.Display.Language(), nil
	}
	return locale.ParseLanguage(c.Output.Language)
}

// Validate reports every invalid setting at once.
func (c *Configuration) Validate() error {
	errs := errors.M{}
	if c.Logging.Level != "" {
		errs.Append(validation.ValidateLogLevel(c.Logging.Level))
	}
	if c.Logging.Format != "" {
		errs.Append(validation.ValidateLogFormat(c.Logging.Format))
	}
	if c.Output.Format != "" {
		errs.Append(validation.ValidateOutputFormat(c.Output.Format))
	}
	if _, err := c.Language(); err != nil {
		errs.Append(err)
	}
	if c.Timezone != "" {
		errs.Append(validation.ValidateTimezone(c.Timezone))
	}
	return errs.Err()
}

// ValidateConfiguration returns warnings about settings that are accepted
// but have no effect.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if c.Output.Language != "" {
		if lang, err := c.Language(); err == nil && lang != c.Display.Language() {
			warnings = append(warnings, fmt.Sprintf("output.language %q overrides display.useAmharic", c.Output.Language))
		}
	}
	if !c.Display.ShowDateInTray {
		warnings = append(warnings, "display.showDateInTray is false; the command line output always shows the date")
	}
	if c.Output.Format == constants.OutputFormatCSV && c.Display.UseGeezNumbers {
		warnings = append(warnings, "display.useGeezNumbers is ignored for csv output, which carries both renderings")
	}
	return warnings
}
