package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/flowdefgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("flowdef", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
flowdef - Load and inspect versioned workflow definitions from a database.

Usage:
  flowdef [options] [GRAPH_NAME]

Arguments:
  GRAPH_NAME
    Name of the workflow graph to load. The latest version is used unless
    -version is given.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Name of the workflow graph to load.")
	gFlag := flagSet.String("g", "", "Name of the workflow graph to load (shorthand).")
	versionFlag := flagSet.Int("version", -1, "Exact graph version to load. Negative loads the latest.")
	dbFlag := flagSet.String("db", "", "DSN of the workflow database.")
	driverFlag := flagSet.String("driver", "", "database/sql driver name. Defaults to 'sqlite'.")
	profileFlag := flagSet.String("config", "", "Path to an HCL profile file.")
	versionsFlag := flagSet.Bool("versions", false, "List the stored versions of the graph and exit.")
	lintFlag := flagSet.Bool("lint-guards", false, "Check every guard expression after loading.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	name := ""
	if *graphFlag != "" {
		name = *graphFlag
	} else if *gFlag != "" {
		name = *gFlag
	} else if flagSet.NArg() > 0 {
		name = flagSet.Arg(0)
	}
	slog.Debug("Graph name determined.", "name", name)

	if name == "" && *profileFlag == "" {
		slog.Debug("No graph name or profile provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProfilePath:  *profileFlag,
		Driver:       *driverFlag,
		DSN:          *dbFlag,
		GraphName:    name,
		Version:      *versionFlag,
		ListVersions: *versionsFlag,
		LintGuards:   *lintFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
