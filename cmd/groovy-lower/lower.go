package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
	"groovy/frontend-go/pkg/driver"
	"groovy/frontend-go/pkg/lowering"
)

// javaKinds is the grammar table used for .java input when the config maps
// no grammar nodes of its own.
var javaKinds = map[string]cst.Kind{
	"block":                    cst.KindBlock,
	"return_statement":         cst.KindReturn,
	"parenthesized_expression": cst.KindParen,
	"binary_expression":        cst.KindBinary,
	"ternary_expression":       cst.KindTernary,
	"identifier":               cst.KindVariable,
	"decimal_integer_literal":  cst.KindInteger,
	"true":                     cst.KindBool,
	"false":                    cst.KindBool,
	"null_literal":             cst.KindNull,
}

type lowerOptions struct {
	mode   driver.Mode
	format string
	node   cst.Kind
	path   string
}

func parseLowerArgs(args []string) (lowerOptions, error) {
	opts := lowerOptions{mode: driver.ModeStatement, format: "tree"}
	for i := 0; i < len(args); i++ {
		if value, next, ok, err := takeValue(args, i, "mode"); ok {
			if err != nil {
				return opts, err
			}
			mode, err := driver.ParseMode(value)
			if err != nil {
				return opts, err
			}
			opts.mode = mode
			i = next
			continue
		}
		if value, next, ok, err := takeValue(args, i, "format"); ok {
			if err != nil {
				return opts, err
			}
			switch value {
			case "tree", "json":
				opts.format = value
			default:
				return opts, fmt.Errorf("unknown --format value '%s' (expected tree or json)", value)
			}
			i = next
			continue
		}
		if value, next, ok, err := takeValue(args, i, "node"); ok {
			if err != nil {
				return opts, err
			}
			kind := cst.Kind(value)
			if !kind.Known() {
				return opts, fmt.Errorf("unknown --node kind '%s'", value)
			}
			opts.node = kind
			i = next
			continue
		}
		if strings.HasPrefix(args[i], "--") {
			return opts, fmt.Errorf("unknown flag %s", args[i])
		}
		if opts.path != "" {
			return opts, fmt.Errorf("lower expects a single input file")
		}
		opts.path = args[i]
	}
	if opts.path == "" {
		return opts, fmt.Errorf("lower expects an input file")
	}
	return opts, nil
}

func runLower(args []string, cli cliOptions) int {
	logger := newLogger(cli.verbose)
	opts, err := parseLowerArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower lower: %v\n", err)
		return 1
	}
	cfg, err := loadCLIConfig(cli, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower lower: %v\n", err)
		return 1
	}

	root, err := readCST(opts.path, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.DescribeDiagnostic(driver.DiagnosticFromError(opts.path, err)))
		return 1
	}
	target := root
	if opts.node != "" {
		target = cst.Find(root, func(n *cst.Node) bool { return n.Kind == opts.node })
		if target == nil {
			fmt.Fprintf(os.Stderr, "groovy-lower lower: no %s node in %s\n", opts.node, opts.path)
			return 1
		}
	}

	logger.Debug("lowering", "path", opts.path, "mode", string(opts.mode), "kind", string(target.Kind))
	node, err := driver.Lower(lowering.New(cfg.LowererOptions()...), opts.mode, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.DescribeDiagnostic(driver.DiagnosticFromError(opts.path, err)))
		return 1
	}

	switch opts.format {
	case "json":
		encoded, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "groovy-lower lower: encode %s: %v\n", opts.path, err)
			return 1
		}
		fmt.Fprintln(os.Stdout, string(encoded))
	default:
		fmt.Fprintln(os.Stdout, ast.Sprint(node))
	}
	return 0
}

func runParse(args []string, cli cliOptions) int {
	logger := newLogger(cli.verbose)
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "groovy-lower parse: expects a single .java file")
		return 1
	}
	path := args[0]
	if strings.ToLower(filepath.Ext(path)) != ".java" {
		fmt.Fprintf(os.Stderr, "groovy-lower parse: %s is not a .java file\n", path)
		return 1
	}
	cfg, err := loadCLIConfig(cli, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower parse: %v\n", err)
		return 1
	}
	root, err := readCST(path, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.DescribeDiagnostic(driver.DiagnosticFromError(path, err)))
		return 1
	}
	if err := cst.EncodeYAML(os.Stdout, root); err != nil {
		fmt.Fprintf(os.Stderr, "groovy-lower parse: %v\n", err)
		return 1
	}
	return 0
}

// readCST loads a YAML-encoded CST or parses Java source with tree-sitter.
func readCST(path string, cfg *driver.Config, logger *slog.Logger) (*cst.Node, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return cst.DecodeYAML(file)
	case ".java":
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		grammar := javaGrammar(cfg)
		logger.Debug("parsing with tree-sitter", "path", path, "grammar", grammar.Name, "mapped_nodes", len(grammar.Kinds))
		parser, err := cst.NewParser(sitter.NewLanguage(java.Language()), grammar)
		if err != nil {
			return nil, err
		}
		defer parser.Close()
		return parser.Parse(source)
	default:
		return nil, fmt.Errorf("input: %s: unsupported file type (want .yml, .yaml or .java)", path)
	}
}

func javaGrammar(cfg *driver.Config) cst.Grammar {
	grammar := cfg.CSTGrammar()
	if grammar.Name == "" {
		grammar.Name = "java"
	}
	if len(grammar.Kinds) == 0 {
		for node, kind := range javaKinds {
			grammar.Kinds[node] = kind
		}
	}
	return grammar
}
