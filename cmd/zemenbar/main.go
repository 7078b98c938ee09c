package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/iwvelando/zemenbar/internal/calendar"
	"github.com/iwvelando/zemenbar/internal/config"
	"github.com/iwvelando/zemenbar/internal/server"
	"github.com/iwvelando/zemenbar/internal/settings"
	"github.com/iwvelando/zemenbar/pkg/constants"
	"github.com/iwvelando/zemenbar/pkg/datetime"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
	"github.com/iwvelando/zemenbar/pkg/locale"
	"github.com/iwvelando/zemenbar/pkg/output"
	"github.com/iwvelando/zemenbar/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

const usage = `usage: zemenbar [flags] <command>

commands:
  today                    print today's Ethiopian date (default)
  month [year month]       print an Ethiopian month grid
  convert year month day   convert a Gregorian date (or YYYY-MM-DD)
  gregorian YYYY-MM-DD     convert an Ethiopian date to Gregorian
  serve                    run the HTTP API

flags:
`

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Command output goes to stdout, so logs default to stderr.
	zapConfig.OutputPaths = []string{"stderr"}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// loadConfiguration reads the config file. A missing file at the default
// location is not an error.
func loadConfiguration(path string) (*config.Configuration, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && path == constants.DefaultConfigFile {
		return config.Default(), nil
	}
	return config.LoadConfiguration(path)
}

// parseInts converts positional arguments, naming the first bad one.
func parseInts(args []string, names ...string) ([]int, error) {
	if len(args) != len(names) {
		return nil, fmt.Errorf("expected %d arguments (%v), got %d", len(names), names, len(args))
	}
	values := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", names[i], arg)
		}
		values[i] = n
	}
	return values, nil
}

// parseConvertArgs accepts either a single YYYY-MM-DD argument or separate
// year, month and day arguments. Day-of-month is not checked here.
func parseConvertArgs(args []string) (ethiopic.GregorianDate, error) {
	if len(args) == 1 {
		year, month, day, err := datetime.SplitDate(args[0])
		if err != nil {
			return ethiopic.GregorianDate{}, err
		}
		return ethiopic.GregorianDate{Year: year, Month: month, Day: day}, nil
	}
	values, err := parseInts(args, "year", "month", "day")
	if err != nil {
		return ethiopic.GregorianDate{}, err
	}
	return ethiopic.GregorianDate{Year: values[0], Month: values[1], Day: values[2]}, nil
}

// resolveDisplay settles the display preferences: stored settings replace
// the display section when a settings file is configured, then command line
// overrides apply on top of them.
func resolveDisplay(conf *config.Configuration, geez bool) (locale.Language, error) {
	if conf.SettingsFile != "" {
		stored, err := settings.NewStore(conf.SettingsFile).Load()
		if err != nil {
			return locale.Amharic, fmt.Errorf("failed to load settings from %s: %w", conf.SettingsFile, err)
		}
		conf.Display = stored
	}
	if geez {
		conf.Display.UseGeezNumbers = true
	}

	lang, err := conf.Language()
	if err != nil {
		return locale.Amharic, err
	}
	conf.Display.UseAmharic = lang == locale.Amharic
	return lang, nil
}

// clockFor resolves the configured timezone into a clock.
func clockFor(timezone string) (ethiopic.Clock, error) {
	if timezone == "" {
		return ethiopic.SystemClock{}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return ethiopic.SystemClock{Location: loc}, nil
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, ics")
	languageFlag := flag.String("language", "", "language override (am, en)")
	geezFlag := flag.Bool("geez", false, "render numbers in Geez numerals")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	listenAddress := flag.String("listen", "", "serve: listen address override")
	maxBodySize := flag.String("max-body-size", "", "serve: settings request size limit override (e.g. 64K)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	conf, err := loadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}
	if *languageFlag != "" {
		conf.Output.Language = *languageFlag
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	lang, err := resolveDisplay(conf, *geezFlag)
	if err != nil {
		logger.Fatal("failed to resolve display settings",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	clock, err := clockFor(conf.Timezone)
	if err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}
	svc := calendar.NewService(logger, clock)

	command := flag.Arg(0)
	if command == "" {
		command = "today"
	}
	args := flag.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	switch command {
	case "today":
		today := svc.GetCurrentDate()
		printDate(conf, svc, today)

	case "month":
		var year, month int
		if len(args) == 0 {
			today := svc.GetCurrentDate()
			year, month = today.Year, today.Month
		} else {
			values, err := parseInts(args, "year", "month")
			if err != nil {
				logger.Fatal(err.Error(), zap.String("op", "main.month"))
			}
			year, month = values[0], values[1]
		}
		if err := validation.ValidateEthiopianMonth(year, month); err != nil {
			logger.Fatal(err.Error(), zap.String("op", "main.month"))
		}

		view := svc.GetMonthView(year, month)
		switch conf.Output.Format {
		case constants.OutputFormatPretty:
			output.PrettyFormat(view, output.Options{Language: lang, Geez: conf.Display.UseGeezNumbers})
		case constants.OutputFormatCSV:
			output.CsvFormat(view)
		case constants.OutputFormatICS:
			output.IcsFormat(view, output.Options{Language: lang, Geez: conf.Display.UseGeezNumbers})
		}

	case "convert":
		date, err := parseConvertArgs(args)
		if err != nil {
			logger.Fatal(err.Error(), zap.String("op", "main.convert"))
		}
		ethiopian, ok := svc.ConvertGregorianToEthiopian(date.Year, date.Month, date.Day)
		if !ok {
			logger.Fatal("not a Gregorian date",
				zap.String("op", "main.convert"),
				zap.Stringer("date", date),
			)
		}
		printDate(conf, svc, ethiopian)

	case "gregorian":
		if len(args) != 1 {
			logger.Fatal("expected one Ethiopian date argument (YYYY-MM-DD)", zap.String("op", "main.gregorian"))
		}
		ethiopian, err := datetime.ParseEthiopian(args[0])
		if err != nil {
			logger.Fatal(err.Error(), zap.String("op", "main.gregorian"))
		}
		printDate(conf, svc, ethiopian)

	case "serve":
		overrides := serveOverrides{address: *listenAddress, maxBodySize: *maxBodySize, logLevel: *logLevel}
		if err := serve(logger, *serverConfigLocation, overrides); err != nil {
			logger.Fatal("server failed",
				zap.String("op", "main.serve"),
				zap.Error(err),
			)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printDate(conf *config.Configuration, svc *calendar.Service, date ethiopic.EthiopianDate) {
	switch conf.Output.Format {
	case constants.OutputFormatPretty:
		output.PrettyDate(date, svc.FormatDate(date, conf.Display))
	case constants.OutputFormatCSV:
		output.CsvDate(date)
	case constants.OutputFormatICS:
		output.IcsDate(date, svc.FormatDate(date, conf.Display), conf.Display.Language())
	}
}

type serveOverrides struct {
	address     string
	maxBodySize string
	logLevel    string
}

// loadServerConfig reads the server config and applies command line
// overrides.
func loadServerConfig(path string, overrides serveOverrides) (*server.Config, error) {
	cfg, err := server.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if overrides.address != "" {
		cfg.Address = overrides.address
	}
	if overrides.maxBodySize != "" {
		size, err := server.ParseSize(overrides.maxBodySize)
		if err != nil {
			return nil, err
		}
		cfg.SetBodySizeBytes(size)
	}
	return cfg, nil
}

func serve(logger *zap.Logger, configPath string, overrides serveOverrides) error {
	cfg, err := loadServerConfig(configPath, overrides)
	if err != nil {
		return err
	}

	// The server config may carry its own logging section.
	if cfg.Logging != (config.LoggingConfig{}) {
		serverLogger, err := initializeLogger(cfg.Logging, overrides.logLevel)
		if err != nil {
			return err
		}
		defer func() {
			_ = serverLogger.Sync()
		}()
		logger = serverLogger
	}

	svc := calendar.NewService(logger, ethiopic.SystemClock{Location: cfg.Location()})
	store := settings.NewStore(cfg.SettingsFile)
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, svc, store, cfg.BodySizeBytes(), version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main.serve"),
			zap.String("address", cfg.Address),
			zap.String("settings", cfg.SettingsFile),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "main.serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
