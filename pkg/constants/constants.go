// Package constants provides shared constants for the zemenbar application.
package constants

// DateTimeLayout is the Gregorian date layout accepted on the command line
// and used in log output.
const DateTimeLayout = "2006-01-02"

// Calendar constants
const (
	// MonthsPerYear is the number of months in an Ethiopian year, Pagume included
	MonthsPerYear = 13

	// DaysPerWeek is the number of columns in a month grid
	DaysPerWeek = 7

	// UnknownName is returned for localization lookups outside the table range
	UnknownName = "Unknown"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatICS is the iCalendar output format
	OutputFormatICS = "ics"

	// ICSProductID identifies generated iCalendar documents
	ICSProductID = "-//zemenbar//Ethiopian Calendar//EN"
)

// Language constants
const (
	// LanguageAmharic is the configuration value selecting Amharic names
	LanguageAmharic = "am"

	// LanguageEnglish is the configuration value selecting English names
	LanguageEnglish = "en"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "zemenbar.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultSettingsFile is the default display-preference document
	DefaultSettingsFile = "settings.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for settings updates (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
