package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"groovy/frontend-go/pkg/driver"
)

const cliToolVersion = "groovy-lower 0.0.0-dev"

type cliOptions struct {
	configPath string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(remaining) == 0 {
		printUsage()
		return 1
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "lower":
		return runLower(remaining[1:], opts)
	case "parse":
		return runParse(remaining[1:], opts)
	case "fixtures":
		return runFixtures(remaining[1:], opts)
	default:
		fmt.Fprintf(os.Stderr, "groovy-lower: unknown command %q\n", remaining[0])
		printUsage()
		return 1
	}
}

func parseGlobalFlags(args []string) (cliOptions, []string, error) {
	var opts cliOptions
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}
		switch {
		case arg == "--config":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
			opts.configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
			if opts.configPath == "" {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
		case arg == "--verbose" || arg == "-v":
			opts.verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return opts, remaining, nil
}

// newLogger writes progress to stderr. Without --verbose only warnings show.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadCLIConfig(opts cliOptions, logger *slog.Logger) (*driver.Config, error) {
	path := opts.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		found, ok := driver.DiscoverConfig(wd)
		if !ok {
			logger.Debug("no config file found, using defaults", "dir", wd)
			return driver.DefaultConfig(), nil
		}
		path = found
	}
	cfg, err := driver.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", cfg.Path, "max_depth", cfg.MaxDepth, "grammar_nodes", len(cfg.Grammar.Kinds))
	return cfg, nil
}

// takeValue reads the value of --name either from --name=value or from the
// next argument.
func takeValue(args []string, i int, name string) (string, int, bool, error) {
	arg := args[i]
	flag := "--" + name
	if arg == flag {
		if i+1 >= len(args) {
			return "", i, true, fmt.Errorf("%s expects a value", flag)
		}
		return args[i+1], i + 1, true, nil
	}
	if strings.HasPrefix(arg, flag+"=") {
		value := strings.TrimPrefix(arg, flag+"=")
		if value == "" {
			return "", i, true, fmt.Errorf("%s expects a value", flag)
		}
		return value, i, true, nil
	}
	return "", i, false, nil
}
