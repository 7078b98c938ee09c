// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"time"

	"github.com/iwvelando/zemenbar/pkg/constants"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV && format != constants.OutputFormatICS {
		return fmt.Errorf("expected output format of %s, %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatICS, format)
	}
	return nil
}

// ValidateLogLevel checks the logging level name.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks the logging encoder name.
func ValidateLogFormat(format string) error {
	if format != "json" && format != "console" {
		return fmt.Errorf("invalid log format: %s", format)
	}
	return nil
}

// ValidateTimezone checks that name is a loadable IANA location.
func ValidateTimezone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return nil
}

// ValidateEthiopianMonth checks a year and month requested for a month view.
func ValidateEthiopianMonth(year, month int) error {
	if year < 1 {
		return fmt.Errorf("expected a positive year, got %d", year)
	}
	if month < 1 || month > ethiopic.Pagume {
		return fmt.Errorf("expected month between 1 and %d, got %d", ethiopic.Pagume, month)
	}
	return nil
}
