package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
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

// Config is the fully-validated set of parameters planctl needs to run the
// transformation pipeline once: load a manifest, instantiate a root
// composition, reduce, and deploy.
type Config struct {
	ManifestPath   string
	Composition    string
	LogFormat      string
	LogLevel       string
	TraceSinkURL   string
	TraceNamespace string
}

// Parse processes command-line arguments into a Config. It returns a
// populated Config, a boolean indicating if the program should exit
// cleanly (help text was printed, or no manifest path was given), or an
// ExitError carrying a specific process exit code.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("planctl", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
planctl - runs the network transformation pipeline over a manifest.

Usage:
  planctl [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	compositionFlag := flagSet.String("composition", "", "Name of the root composition model to instantiate and deploy.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	traceSinkFlag := flagSet.String("trace-sink-url", "", "socket.io URL to stream the merge/deploy trace to. Empty disables tracing.")
	traceNamespaceFlag := flagSet.String("trace-namespace", "/", "socket.io namespace for the trace sink.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Manifest path determined.", "path", path)

	if path == "" {
		slog.Debug("No manifest path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if *compositionFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "missing required -composition flag"}
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

	config := &Config{
		ManifestPath:   path,
		Composition:    *compositionFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		TraceSinkURL:   *traceSinkFlag,
		TraceNamespace: *traceNamespaceFlag,
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
