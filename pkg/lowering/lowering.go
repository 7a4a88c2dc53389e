// Package lowering turns concrete syntax trees into the Groovy AST.
//
// A Lowerer is immutable once built and may be shared between goroutines.
// Each Lower* call runs a single bottom-up pass with its own state; it
// returns the finished node or an *Error, never a partial tree.
package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

// DefaultMaxDepth bounds recursion through nested expressions and statements.
const DefaultMaxDepth = 1000

// Stamper attaches a source span to a freshly built node.
type Stamper func(node ast.Node, span ast.Span)

type Lowerer struct {
	registry *Registry
	helpers  Helpers
	stamp    Stamper
	maxDepth int
}

type Option func(*Lowerer)

// WithRegistry supplies a prebuilt dispatch table.
func WithRegistry(registry *Registry) Option {
	return func(l *Lowerer) { l.registry = registry }
}

func WithHelpers(helpers Helpers) Option {
	return func(l *Lowerer) { l.helpers = helpers }
}

func WithStamper(stamp Stamper) Option {
	return func(l *Lowerer) { l.stamp = stamp }
}

// WithMaxDepth overrides DefaultMaxDepth; values below 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(l *Lowerer) {
		if depth > 0 {
			l.maxDepth = depth
		}
	}
}

func New(opts ...Option) *Lowerer {
	l := &Lowerer{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = NewRegistry()
	}
	if l.helpers == nil {
		l.helpers = DefaultHelpers{}
	}
	if l.stamp == nil {
		l.stamp = ast.SetSpan
	}
	return l
}

func (l *Lowerer) LowerExpression(node *cst.Node) (ast.Expression, error) {
	return l.newSession().Expression(node)
}

func (l *Lowerer) LowerStatement(node *cst.Node) (ast.Statement, error) {
	return l.newSession().Statement(node)
}

// LowerAnnotationValue lowers the value of an annotation member. Only
// constant-like shapes are accepted; anything else fails with
// ErrUnsupportedInAnnotation.
func (l *Lowerer) LowerAnnotationValue(node *cst.Node) (ast.Expression, error) {
	return l.newSession().annotationValue(node)
}

func (l *Lowerer) newSession() *session {
	return &session{Lowerer: l}
}

// Engine is the view of an in-progress lowering call that collaborator
// helpers use to lower the sub-trees they own.
type Engine interface {
	Expression(node *cst.Node) (ast.Expression, error)
	Statement(node *cst.Node) (ast.Statement, error)
	ClassType(node *cst.Node) (*ast.ClassType, error)
	TypeDeclaration(node *cst.Node) (*ast.ClassType, error)
	Stamp(node ast.Node, span ast.Span)
}

// session holds per-call state.
type session struct {
	*Lowerer
	depth int
}

func (s *session) Stamp(node ast.Node, span ast.Span) {
	s.stamp(node, span)
}

func stamped[T ast.Node](s *session, node T, span ast.Span) T {
	s.stamp(node, span)
	return node
}

func (s *session) enter(node *cst.Node) error {
	s.depth++
	if s.depth > s.maxDepth {
		return malformed(ErrTooDeep, node, "nesting exceeds %d levels", s.maxDepth)
	}
	return nil
}

func (s *session) leave() {
	s.depth--
}

func (s *session) Expression(node *cst.Node) (ast.Expression, error) {
	if node == nil {
		return nil, unsupported(nil, "expression")
	}
	rule, ok := s.registry.expressionRule(node.Kind)
	if !ok {
		return nil, unsupported(node, "expression")
	}
	if err := s.enter(node); err != nil {
		s.leave()
		return nil, err
	}
	defer s.leave()
	return rule(s, node)
}

func (s *session) Statement(node *cst.Node) (ast.Statement, error) {
	if node == nil {
		return nil, unsupported(nil, "statement")
	}
	rule, ok := s.registry.statementRule(node.Kind)
	if !ok {
		return nil, unsupported(node, "statement")
	}
	if err := s.enter(node); err != nil {
		s.leave()
		return nil, err
	}
	defer s.leave()
	return rule(s, node)
}

func (s *session) TypeDeclaration(node *cst.Node) (*ast.ClassType, error) {
	return s.helpers.TypeDeclaration(s, node)
}

func (s *session) arguments(node *cst.Node, owner *cst.Node) (*ast.ArgumentListExpression, error) {
	if node == nil {
		return stamped(s, ast.NewArgumentListExpression(nil), owner.Span), nil
	}
	return s.helpers.ArgumentList(s, node)
}
