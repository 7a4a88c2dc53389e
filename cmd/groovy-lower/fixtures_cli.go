package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"groovy/frontend-go/pkg/driver"
	"groovy/frontend-go/pkg/lowering"
)

func runFixtures(args []string, cli cliOptions) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "groovy-lower fixtures: expected run or fetch")
		return 1
	}
	switch args[0] {
	case "run":
		return runFixturesRun(args[1:], cli)
	case "fetch":
		return runFixturesFetch(args[1:], cli)
	default:
		fmt.Fprintf(os.Stderr, "groovy-lower fixtures: unknown subcommand %q\n", args[0])
		return 1
	}
}

func runFixturesRun(args []string, cli cliOptions) int {
	logger := newLogger(cli.verbose)
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "groovy-lower fixtures run: expects at most one directory")
		return 1
	}
	cfg, err := loadCLIConfig(cli, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower fixtures run: %v\n", err)
		return 1
	}
	dir := cfg.Fixtures.Dir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		fmt.Fprintln(os.Stderr, "groovy-lower fixtures run: no fixture directory (pass one or set fixtures.dir)")
		return 1
	}

	fixtures, err := driver.LoadFixtures(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower fixtures run: %v\n", err)
		return 1
	}
	logger.Debug("loaded fixtures", "dir", dir, "count", len(fixtures))

	results := driver.RunFixtures(lowering.New(cfg.LowererOptions()...), fixtures)
	failed := 0
	for _, result := range results {
		name := displayPath(dir, result.Fixture.Path)
		if result.Passed {
			fmt.Fprintf(os.Stdout, "PASS %s\n", name)
			continue
		}
		failed++
		fmt.Fprintf(os.Stdout, "FAIL %s\n", name)
		for _, line := range strings.Split(result.Reason, "\n") {
			fmt.Fprintf(os.Stdout, "  %s\n", line)
		}
	}
	fmt.Fprintf(os.Stdout, "%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func displayPath(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

func runFixturesFetch(args []string, cli cliOptions) int {
	logger := newLogger(cli.verbose)
	cfg, err := loadCLIConfig(cli, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower fixtures fetch: %v\n", err)
		return 1
	}
	src := cfg.Fixtures.Git
	cache := cfg.Fixtures.Cache
	for i := 0; i < len(args); i++ {
		matched := false
		for _, target := range []struct {
			name string
			dest *string
		}{
			{"url", &src.URL},
			{"rev", &src.Rev},
			{"tag", &src.Tag},
			{"branch", &src.Branch},
			{"cache", &cache},
		} {
			value, next, ok, err := takeValue(args, i, target.name)
			if !ok {
				continue
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "groovy-lower fixtures fetch: %v\n", err)
				return 1
			}
			*target.dest = value
			i = next
			matched = true
			break
		}
		if !matched {
			fmt.Fprintf(os.Stderr, "groovy-lower fixtures fetch: unexpected argument %s\n", args[i])
			return 1
		}
	}
	if cache == "" {
		home, err := os.UserCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "groovy-lower fixtures fetch: no cache directory: %v\n", err)
			return 1
		}
		cache = filepath.Join(home, "groovy-lower")
	}

	logger.Info("fetching fixtures", "url", src.URL, "cache", cache)
	corpus, err := driver.FetchFixtures(cache, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower fixtures fetch: %v\n", err)
		return 1
	}
	logger.Debug("fixtures ready", "version", corpus.Version, "commit", corpus.Commit)
	fmt.Fprintln(os.Stdout, corpus.Dir)
	return 0
}
