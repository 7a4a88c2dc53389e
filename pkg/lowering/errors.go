package lowering

import (
	"errors"
	"fmt"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

// Category groups lowering failures by who is at fault.
type Category string

const (
	// CategoryUnsupportedNode: the dispatcher has no rule for the node kind.
	CategoryUnsupportedNode Category = "unsupported-node"
	// CategoryMalformedConstruct: the input is well-formed CST but not valid
	// for the construct it appears in.
	CategoryMalformedConstruct Category = "malformed-construct"
	// CategoryFatalInvariant: the CST violates a shape the grammar guarantees.
	CategoryFatalInvariant Category = "fatal-invariant"
)

// Error is the single failure type returned by the lowering engines.
type Error struct {
	Category Category
	Reason   string
	Message  string
	Kind     cst.Kind
	Span     ast.Span
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// HasLocation reports whether the failure carries a source span.
func (e *Error) HasLocation() bool {
	return e != nil && e.Span != (ast.Span{})
}

// Is matches category sentinels and reason sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	if t.Reason != "" {
		return t.Reason == e.Reason
	}
	return t.Category == e.Category
}

var (
	ErrUnsupportedNode    = &Error{Category: CategoryUnsupportedNode, Message: "lowering: unsupported node"}
	ErrMalformedConstruct = &Error{Category: CategoryMalformedConstruct, Message: "lowering: malformed construct"}
	ErrFatalInvariant     = &Error{Category: CategoryFatalInvariant, Message: "lowering: fatal invariant violation"}

	ErrUnsupportedInAnnotation = &Error{Category: CategoryMalformedConstruct, Reason: "unsupported-in-annotation", Message: "lowering: unsupported expression in annotation"}
	ErrMissingType             = &Error{Category: CategoryMalformedConstruct, Reason: "missing-type", Message: "lowering: missing type"}
	ErrEmptyCommand            = &Error{Category: CategoryMalformedConstruct, Reason: "empty-command", Message: "lowering: empty command"}
	ErrTooDeep                 = &Error{Category: CategoryMalformedConstruct, Reason: "too-deep", Message: "lowering: nesting too deep"}
	ErrInvalidLiteral          = &Error{Category: CategoryMalformedConstruct, Reason: "invalid-literal", Message: "lowering: invalid literal"}
	ErrUnknownOperator         = &Error{Category: CategoryMalformedConstruct, Reason: "unknown-operator", Message: "lowering: unknown operator"}
)

func newError(sentinel *Error, node *cst.Node, format string, args ...interface{}) *Error {
	err := &Error{
		Category: sentinel.Category,
		Reason:   sentinel.Reason,
		Message:  "lowering: " + fmt.Sprintf(format, args...),
	}
	if node != nil {
		err.Kind = node.Kind
		err.Span = node.Span
	}
	return err
}

func unsupported(node *cst.Node, engine string) *Error {
	if node == nil {
		return newError(ErrUnsupportedNode, nil, "%s: nil node", engine)
	}
	return newError(ErrUnsupportedNode, node, "%s: unsupported node kind %s", engine, node.Kind)
}

func malformed(sentinel *Error, node *cst.Node, format string, args ...interface{}) *Error {
	return newError(sentinel, node, format, args...)
}

func fatal(node *cst.Node, format string, args ...interface{}) *Error {
	return newError(ErrFatalInvariant, node, format, args...)
}

// locate attaches node's location to errors that lack one, such as literal
// decoding failures raised before the node was known.
func locate(node *cst.Node, err error) error {
	if err == nil || node == nil {
		return err
	}
	var lowerErr *Error
	if errors.As(err, &lowerErr) {
		if !lowerErr.HasLocation() {
			lowerErr.Span = node.Span
			lowerErr.Kind = node.Kind
		}
		return err
	}
	return &Error{
		Category: CategoryMalformedConstruct,
		Message:  err.Error(),
		Kind:     node.Kind,
		Span:     node.Span,
	}
}
