package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
	"groovy/frontend-go/pkg/lowering"
)

// Mode selects the lowering entry point for a CST document.
type Mode string

const (
	ModeExpression Mode = "expression"
	ModeStatement  Mode = "statement"
	ModeAnnotation Mode = "annotation"
)

// ParseMode validates a mode name; the empty string selects statements.
func ParseMode(text string) (Mode, error) {
	switch mode := Mode(strings.TrimSpace(text)); mode {
	case "":
		return ModeStatement, nil
	case ModeExpression, ModeStatement, ModeAnnotation:
		return mode, nil
	default:
		return "", fmt.Errorf("driver: unknown mode %q (want expression, statement or annotation)", text)
	}
}

// Lower runs the entry point mode names.
func Lower(l *lowering.Lowerer, mode Mode, node *cst.Node) (ast.Node, error) {
	switch mode {
	case ModeExpression:
		return l.LowerExpression(node)
	case ModeAnnotation:
		return l.LowerAnnotationValue(node)
	case ModeStatement, "":
		return l.LowerStatement(node)
	}
	return nil, fmt.Errorf("driver: unknown mode %q", mode)
}

// Fixture is one lowering case: a CST plus either the expected tree in
// ast.Sprint form or the expected error code.
type Fixture struct {
	Path   string    `yaml:"-"`
	Name   string    `yaml:"name"`
	Mode   Mode      `yaml:"mode"`
	Expect string    `yaml:"expect"`
	Error  string    `yaml:"error"`
	CST    *cst.Node `yaml:"cst"`
}

// FixtureResult records the outcome of RunFixture.
type FixtureResult struct {
	Fixture *Fixture
	Got     string
	Err     error
	Passed  bool
	Reason  string
}

// LoadFixture reads a single fixture file.
func LoadFixture(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeFixture(path, file)
}

// DecodeFixture parses a fixture document; path is used for naming and
// error messages only.
func DecodeFixture(path string, r io.Reader) (*Fixture, error) {
	var fixture Fixture
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("fixture %s: empty document", path)
		}
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	if fixture.CST == nil {
		return nil, fmt.Errorf("fixture %s: missing cst", path)
	}
	mode, err := ParseMode(string(fixture.Mode))
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	if (fixture.Expect == "") == (fixture.Error == "") {
		return nil, fmt.Errorf("fixture %s: exactly one of expect or error is required", path)
	}
	fixture.Mode = mode
	fixture.Path = path
	if fixture.Name == "" {
		fixture.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	cst.Layout(fixture.CST)
	return &fixture, nil
}

// LoadFixtures reads every .yml/.yaml file under dir in lexical order.
func LoadFixtures(dir string) ([]*Fixture, error) {
	var fixtures []*Fixture
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
		default:
			return nil
		}
		fixture, err := LoadFixture(path)
		if err != nil {
			return err
		}
		fixtures = append(fixtures, fixture)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fixtures, nil
}

// RunFixture lowers fixture and compares the outcome with its expectation.
func RunFixture(l *lowering.Lowerer, fixture *Fixture) FixtureResult {
	result := FixtureResult{Fixture: fixture}
	node, err := Lower(l, fixture.Mode, fixture.CST)
	result.Err = err
	if err == nil {
		result.Got = ast.Sprint(node)
		if spanErr := ast.CheckSpans(node); spanErr != nil {
			result.Reason = spanErr.Error()
			return result
		}
	}
	switch {
	case fixture.Error != "":
		var lowerErr *lowering.Error
		if !errors.As(err, &lowerErr) {
			result.Reason = fmt.Sprintf("expected error %s, got %s", fixture.Error, describeOutcome(result))
			return result
		}
		if code := ErrorCode(lowerErr); code != fixture.Error && string(lowerErr.Category) != fixture.Error {
			result.Reason = fmt.Sprintf("expected error %s, got %s", fixture.Error, code)
			return result
		}
	case err != nil:
		result.Reason = fmt.Sprintf("unexpected error: %v", err)
		return result
	case result.Got != strings.TrimSpace(fixture.Expect):
		result.Reason = fmt.Sprintf("tree mismatch:\n  got  %s\n  want %s", result.Got, strings.TrimSpace(fixture.Expect))
		return result
	}
	result.Passed = true
	return result
}

// RunFixtures runs every fixture and returns the results in order.
func RunFixtures(l *lowering.Lowerer, fixtures []*Fixture) []FixtureResult {
	results := make([]FixtureResult, 0, len(fixtures))
	for _, fixture := range fixtures {
		results = append(results, RunFixture(l, fixture))
	}
	return results
}

func describeOutcome(result FixtureResult) string {
	if result.Err != nil {
		return result.Err.Error()
	}
	return result.Got
}
