package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"groovy/frontend-go/pkg/cst"
	"groovy/frontend-go/pkg/lowering"
)

// ConfigNames are the file names DiscoverConfig looks for, in order.
var ConfigNames = []string{"groovy-lower.yml", "groovy-lower.yaml", "groovy-lower.toml"}

// Config models groovy-lower.yml (or its TOML twin).
type Config struct {
	Path     string         `yaml:"-" toml:"-"`
	MaxDepth int            `yaml:"max_depth" toml:"max_depth"`
	Grammar  GrammarConfig  `yaml:"grammar" toml:"grammar"`
	Fixtures FixturesConfig `yaml:"fixtures" toml:"fixtures"`
}

// GrammarConfig maps tree-sitter node names onto CST kinds.
type GrammarConfig struct {
	Name  string            `yaml:"name" toml:"name"`
	Kinds map[string]string `yaml:"kinds" toml:"kinds"`
}

type FixturesConfig struct {
	Dir   string    `yaml:"dir" toml:"dir"`
	Cache string    `yaml:"cache" toml:"cache"`
	Git   GitSource `yaml:"git" toml:"git"`
}

// GitSource pins a fixture corpus in a git repository. Exactly one of Rev,
// Tag or Branch is consulted, in that order.
type GitSource struct {
	URL    string `yaml:"url" toml:"url"`
	Rev    string `yaml:"rev" toml:"rev"`
	Tag    string `yaml:"tag" toml:"tag"`
	Branch string `yaml:"branch" toml:"branch"`
}

// DefaultConfig is used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{MaxDepth: lowering.DefaultMaxDepth}
}

// DiscoverConfig returns the first config file present in dir.
func DiscoverConfig(dir string) (string, bool) {
	for _, name := range ConfigNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// LoadConfig parses a YAML or TOML config, chosen by extension. Unknown keys
// are rejected. Relative fixture paths resolve against the config directory.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".yml", ".yaml":
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", abs, err)
		}
	case ".toml":
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", abs, err)
		}
	default:
		return nil, fmt.Errorf("config: %s: unsupported format (want .yml, .yaml or .toml)", abs)
	}
	cfg.Path = abs
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", abs, err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative")
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = lowering.DefaultMaxDepth
	}
	for node, kind := range c.Grammar.Kinds {
		if !cst.Kind(kind).Known() {
			return fmt.Errorf("grammar kind %q for %q is not a CST kind", kind, node)
		}
	}
	base := filepath.Dir(c.Path)
	c.Fixtures.Dir = resolveRelative(base, c.Fixtures.Dir)
	c.Fixtures.Cache = resolveRelative(base, c.Fixtures.Cache)
	c.Fixtures.Git.URL = strings.TrimSpace(c.Fixtures.Git.URL)
	return nil
}

func resolveRelative(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

// LowererOptions turns the config into lowering options.
func (c *Config) LowererOptions() []lowering.Option {
	if c == nil {
		return nil
	}
	return []lowering.Option{lowering.WithMaxDepth(c.MaxDepth)}
}

// CSTGrammar builds the tree-sitter kind table.
func (c *Config) CSTGrammar() cst.Grammar {
	grammar := cst.Grammar{Kinds: make(map[string]cst.Kind)}
	if c == nil {
		return grammar
	}
	grammar.Name = c.Grammar.Name
	for node, kind := range c.Grammar.Kinds {
		grammar.Kinds[node] = cst.Kind(kind)
	}
	return grammar
}

// GrammarNodes lists the mapped grammar node names, sorted.
func (c *Config) GrammarNodes() []string {
	if c == nil {
		return nil
	}
	nodes := make([]string, 0, len(c.Grammar.Kinds))
	for node := range c.Grammar.Kinds {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}
