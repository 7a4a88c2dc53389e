package lowering

import (
	"sort"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

type expressionRule func(s *session, node *cst.Node) (ast.Expression, error)

type statementRule func(s *session, node *cst.Node) (ast.Statement, error)

// Registry maps CST kinds to lowering rules. Build it once with NewRegistry
// and share it; it is read-only afterwards.
type Registry struct {
	expressions map[cst.Kind]expressionRule
	statements  map[cst.Kind]statementRule
}

func NewRegistry() *Registry {
	return &Registry{
		expressions: map[cst.Kind]expressionRule{
			cst.KindParen:            lowerParen,
			cst.KindListConstructor:  lowerList,
			cst.KindMapConstructor:   lowerMap,
			cst.KindMapEntry:         lowerMapEntryExpression,
			cst.KindClosure:          lowerClosureExpression,
			cst.KindBinary:           lowerBinary,
			cst.KindAssignment:       lowerAssignment,
			cst.KindTernary:          lowerTernary,
			cst.KindElvis:            lowerElvis,
			cst.KindUnary:            lowerUnary,
			cst.KindPrefix:           lowerPrefix,
			cst.KindPostfix:          lowerPostfix,
			cst.KindVariable:         lowerVariable,
			cst.KindPath:             lowerPath,
			cst.KindCall:             lowerCall,
			cst.KindMethodCall:       lowerMethodCall,
			cst.KindFieldAccess:      lowerFieldAccess,
			cst.KindInteger:          lowerInteger,
			cst.KindDecimal:          lowerDecimal,
			cst.KindString:           lowerString,
			cst.KindBool:             lowerBool,
			cst.KindNull:             lowerNull,
			cst.KindGString:          lowerGString,
			cst.KindGStringPath:      lowerGStringPath,
			cst.KindClassName:        lowerClassExpression,
			cst.KindGenericClassName: lowerClassExpression,
			cst.KindDeclaration:      lowerDeclaration,
			cst.KindNewInstance:      lowerNewInstance,
			cst.KindNewArray:         lowerNewArray,
		},
		statements: map[cst.Kind]statementRule{
			cst.KindBlock:               lowerBlockStatement,
			cst.KindStatementBlock:      lowerStatementBlock,
			cst.KindExpressionStatement: lowerExpressionStatement,
			cst.KindIf:                  lowerIf,
			cst.KindWhile:               lowerWhile,
			cst.KindClassicFor:          lowerClassicFor,
			cst.KindForIn:               lowerForIn,
			cst.KindForColon:            lowerForColon,
			cst.KindSwitch:              lowerSwitch,
			cst.KindTry:                 lowerTry,
			cst.KindReturn:              lowerReturn,
			cst.KindThrow:               lowerThrow,
			cst.KindBreak:               lowerBreak,
			cst.KindContinue:            lowerContinue,
			cst.KindCommand:             lowerCommand,
			cst.KindDeclaration:         lowerExpressionAsStatement,
			cst.KindNewInstance:         lowerExpressionAsStatement,
			cst.KindNewArray:            lowerExpressionAsStatement,
		},
	}
}

func (r *Registry) expressionRule(kind cst.Kind) (expressionRule, bool) {
	if r == nil {
		return nil, false
	}
	rule, ok := r.expressions[kind]
	return rule, ok
}

func (r *Registry) statementRule(kind cst.Kind) (statementRule, bool) {
	if r == nil {
		return nil, false
	}
	rule, ok := r.statements[kind]
	return rule, ok
}

// ExpressionKinds lists the kinds with an expression rule, sorted.
func (r *Registry) ExpressionKinds() []cst.Kind {
	kinds := make([]cst.Kind, 0, len(r.expressions))
	for kind := range r.expressions {
		kinds = append(kinds, kind)
	}
	sortKinds(kinds)
	return kinds
}

// StatementKinds lists the kinds with a statement rule, sorted.
func (r *Registry) StatementKinds() []cst.Kind {
	kinds := make([]cst.Kind, 0, len(r.statements))
	for kind := range r.statements {
		kinds = append(kinds, kind)
	}
	sortKinds(kinds)
	return kinds
}

func sortKinds(kinds []cst.Kind) {
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
}
