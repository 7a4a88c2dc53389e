package ast

import "math/big"

type NodeType string

const (
	NodeNullLiteral           NodeType = "NullLiteral"
	NodeBooleanLiteral        NodeType = "BooleanLiteral"
	NodeIntegerLiteral        NodeType = "IntegerLiteral"
	NodeDecimalLiteral        NodeType = "DecimalLiteral"
	NodeStringLiteral         NodeType = "StringLiteral"
	NodeEmptyExpression       NodeType = "EmptyExpression"
	NodeVariableExpression    NodeType = "VariableExpression"
	NodePropertyExpression    NodeType = "PropertyExpression"
	NodeAttributeExpression   NodeType = "AttributeExpression"
	NodeMethodCallExpression  NodeType = "MethodCallExpression"
	NodeBinaryExpression      NodeType = "BinaryExpression"
	NodeUnaryExpression       NodeType = "UnaryExpression"
	NodePrefixExpression      NodeType = "PrefixExpression"
	NodePostfixExpression     NodeType = "PostfixExpression"
	NodeRangeExpression       NodeType = "RangeExpression"
	NodeTernaryExpression     NodeType = "TernaryExpression"
	NodeElvisExpression       NodeType = "ElvisExpression"
	NodeBooleanExpression     NodeType = "BooleanExpression"
	NodeCastExpression        NodeType = "CastExpression"
	NodeClassExpression       NodeType = "ClassExpression"
	NodeListExpression        NodeType = "ListExpression"
	NodeMapExpression         NodeType = "MapExpression"
	NodeMapEntryExpression    NodeType = "MapEntryExpression"
	NodeGStringExpression     NodeType = "GStringExpression"
	NodeClosureExpression     NodeType = "ClosureExpression"
	NodeClosureListExpression NodeType = "ClosureListExpression"
	NodeArgumentList          NodeType = "ArgumentListExpression"
	NodeDeclarationExpression NodeType = "DeclarationExpression"
	NodeConstructorCall       NodeType = "ConstructorCallExpression"
	NodeArrayExpression       NodeType = "ArrayExpression"
	NodeClassType             NodeType = "ClassType"
	NodeGenericsType          NodeType = "GenericsType"
	NodeParameter             NodeType = "Parameter"
	NodeParameterList         NodeType = "ParameterList"
	NodeBlockStatement        NodeType = "BlockStatement"
	NodeExpressionStatement   NodeType = "ExpressionStatement"
	NodeIfStatement           NodeType = "IfStatement"
	NodeWhileStatement        NodeType = "WhileStatement"
	NodeForStatement          NodeType = "ForStatement"
	NodeSwitchStatement       NodeType = "SwitchStatement"
	NodeCaseStatement         NodeType = "CaseStatement"
	NodeTryCatchStatement     NodeType = "TryCatchStatement"
	NodeCatchStatement        NodeType = "CatchStatement"
	NodeReturnStatement       NodeType = "ReturnStatement"
	NodeThrowStatement        NodeType = "ThrowStatement"
	NodeBreakStatement        NodeType = "BreakStatement"
	NodeContinueStatement     NodeType = "ContinueStatement"
	NodeEmptyStatement        NodeType = "EmptyStatement"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Operator tokens

type OperatorKind string

const (
	OperatorRange      OperatorKind = "range"
	OperatorCast       OperatorKind = "as"
	OperatorInstanceof OperatorKind = "instanceof"
	OperatorIn         OperatorKind = "in"
	OperatorAssign     OperatorKind = "assign"
	OperatorCompare    OperatorKind = "compare"
	OperatorMatch      OperatorKind = "match"
	OperatorLogical    OperatorKind = "logical"
	OperatorArithmetic OperatorKind = "arithmetic"
	OperatorBitwise    OperatorKind = "bitwise"
	OperatorShift      OperatorKind = "shift"
	OperatorIncrement  OperatorKind = "increment"
	OperatorDecrement  OperatorKind = "decrement"
	OperatorUnary      OperatorKind = "unary"
)

// Token is a resolved operator symbol. It is not a Node; its span is the
// extent of the source symbols it was built from.
type Token struct {
	Kind OperatorKind `json:"kind"`
	Text string       `json:"text"`
	Span Span         `json:"span"`
}

// Literals

type NumberType string

const (
	NumberInt        NumberType = "int"
	NumberLong       NumberType = "long"
	NumberBigInteger NumberType = "BigInteger"
	NumberFloat      NumberType = "float"
	NumberDouble     NumberType = "double"
	NumberBigDecimal NumberType = "BigDecimal"
)

type NullLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker
}

func NewNullLiteral() *NullLiteral {
	return &NullLiteral{nodeImpl: newNodeImpl(NodeNullLiteral)}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// IntegerLiteral holds an integral constant. Boxed is false only for literals
// written with a leading minus sign.
type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value *big.Int   `json:"value"`
	Type  NumberType `json:"numberType"`
	Boxed bool       `json:"boxed"`
}

func NewIntegerLiteral(value *big.Int, numberType NumberType, boxed bool) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value, Type: numberType, Boxed: boxed}
}

type DecimalLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value *big.Float `json:"value"`
	Type  NumberType `json:"numberType"`
	Boxed bool       `json:"boxed"`
}

func NewDecimalLiteral(value *big.Float, numberType NumberType, boxed bool) *DecimalLiteral {
	return &DecimalLiteral{nodeImpl: newNodeImpl(NodeDecimalLiteral), Value: value, Type: numberType, Boxed: boxed}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

// EmptyExpression marks an omitted expression slot (a missing for-loop
// segment, a bare return).
type EmptyExpression struct {
	nodeImpl
	expressionMarker
}

func NewEmptyExpression() *EmptyExpression {
	return &EmptyExpression{nodeImpl: newNodeImpl(NodeEmptyExpression)}
}

// References and member access

type VariableExpression struct {
	nodeImpl
	expressionMarker

	Name string     `json:"name"`
	Type *ClassType `json:"variableType,omitempty"`
}

func NewVariableExpression(name string) *VariableExpression {
	return &VariableExpression{nodeImpl: newNodeImpl(NodeVariableExpression), Name: name}
}

func NewTypedVariableExpression(name string, typ *ClassType) *VariableExpression {
	return &VariableExpression{nodeImpl: newNodeImpl(NodeVariableExpression), Name: name, Type: typ}
}

// IsThis reports whether the variable is the implicit receiver.
func (v *VariableExpression) IsThis() bool {
	return v != nil && v.Name == ThisName
}

type PropertyExpression struct {
	nodeImpl
	expressionMarker

	Object     Expression     `json:"object"`
	Property   *StringLiteral `json:"property"`
	Safe       bool           `json:"safe"`
	SpreadSafe bool           `json:"spreadSafe"`
}

func NewPropertyExpression(object Expression, property *StringLiteral, safe, spreadSafe bool) *PropertyExpression {
	return &PropertyExpression{nodeImpl: newNodeImpl(NodePropertyExpression), Object: object, Property: property, Safe: safe, SpreadSafe: spreadSafe}
}

// AttributeExpression is direct field access (`obj.@field`).
type AttributeExpression struct {
	nodeImpl
	expressionMarker

	Object    Expression     `json:"object"`
	Attribute *StringLiteral `json:"attribute"`
}

func NewAttributeExpression(object Expression, attribute *StringLiteral) *AttributeExpression {
	return &AttributeExpression{nodeImpl: newNodeImpl(NodeAttributeExpression), Object: object, Attribute: attribute}
}

type MethodCallExpression struct {
	nodeImpl
	expressionMarker

	Object       Expression              `json:"object"`
	Method       string                  `json:"method"`
	Arguments    *ArgumentListExpression `json:"arguments"`
	ImplicitThis bool                    `json:"implicitThis"`
	Safe         bool                    `json:"safe"`
	SpreadSafe   bool                    `json:"spreadSafe"`
}

func NewMethodCallExpression(object Expression, method string, arguments *ArgumentListExpression, implicitThis bool) *MethodCallExpression {
	return &MethodCallExpression{
		nodeImpl:     newNodeImpl(NodeMethodCallExpression),
		Object:       object,
		Method:       method,
		Arguments:    arguments,
		ImplicitThis: implicitThis,
	}
}

// Operators

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Left     Expression `json:"left"`
	Operator Token      `json:"operator"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(left Expression, operator Token, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Left: left, Operator: operator, Right: right}
}

type UnaryOperator string

const (
	UnaryMinus      UnaryOperator = "-"
	UnaryPlus       UnaryOperator = "+"
	UnaryNot        UnaryOperator = "!"
	UnaryBitwiseNot UnaryOperator = "~"
)

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type PrefixExpression struct {
	nodeImpl
	expressionMarker

	Operator Token      `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewPrefixExpression(operator Token, operand Expression) *PrefixExpression {
	return &PrefixExpression{nodeImpl: newNodeImpl(NodePrefixExpression), Operator: operator, Operand: operand}
}

type PostfixExpression struct {
	nodeImpl
	expressionMarker

	Operand  Expression `json:"operand"`
	Operator Token      `json:"operator"`
}

func NewPostfixExpression(operand Expression, operator Token) *PostfixExpression {
	return &PostfixExpression{nodeImpl: newNodeImpl(NodePostfixExpression), Operand: operand, Operator: operator}
}

type RangeExpression struct {
	nodeImpl
	expressionMarker

	From      Expression `json:"from"`
	To        Expression `json:"to"`
	Inclusive bool       `json:"inclusive"`
}

func NewRangeExpression(from, to Expression, inclusive bool) *RangeExpression {
	return &RangeExpression{nodeImpl: newNodeImpl(NodeRangeExpression), From: from, To: to, Inclusive: inclusive}
}

// BooleanExpression wraps an expression evaluated for its truth value.
type BooleanExpression struct {
	nodeImpl
	expressionMarker

	Expression Expression `json:"expression"`
}

func NewBooleanExpression(expr Expression) *BooleanExpression {
	return &BooleanExpression{nodeImpl: newNodeImpl(NodeBooleanExpression), Expression: expr}
}

type TernaryExpression struct {
	nodeImpl
	expressionMarker

	Condition       *BooleanExpression `json:"condition"`
	TrueExpression  Expression         `json:"trueExpression"`
	FalseExpression Expression         `json:"falseExpression"`
}

func NewTernaryExpression(condition *BooleanExpression, whenTrue, whenFalse Expression) *TernaryExpression {
	return &TernaryExpression{nodeImpl: newNodeImpl(NodeTernaryExpression), Condition: condition, TrueExpression: whenTrue, FalseExpression: whenFalse}
}

// ElvisExpression is `value ?: fallback`; the value doubles as the true branch.
type ElvisExpression struct {
	nodeImpl
	expressionMarker

	Value    Expression `json:"value"`
	Fallback Expression `json:"fallback"`
}

func NewElvisExpression(value, fallback Expression) *ElvisExpression {
	return &ElvisExpression{nodeImpl: newNodeImpl(NodeElvisExpression), Value: value, Fallback: fallback}
}

type CastExpression struct {
	nodeImpl
	expressionMarker

	Type       *ClassType `json:"targetType"`
	Expression Expression `json:"expression"`
	Coerce     bool       `json:"coerce"`
}

func NewCastExpression(typ *ClassType, expr Expression, coerce bool) *CastExpression {
	return &CastExpression{nodeImpl: newNodeImpl(NodeCastExpression), Type: typ, Expression: expr, Coerce: coerce}
}

type ClassExpression struct {
	nodeImpl
	expressionMarker

	Type *ClassType `json:"classType"`
}

func NewClassExpression(typ *ClassType) *ClassExpression {
	return &ClassExpression{nodeImpl: newNodeImpl(NodeClassExpression), Type: typ}
}

// Collections

type ListExpression struct {
	nodeImpl
	expressionMarker

	Elements []Expression `json:"elements"`
}

func NewListExpression(elements []Expression) *ListExpression {
	return &ListExpression{nodeImpl: newNodeImpl(NodeListExpression), Elements: elements}
}

type MapEntryExpression struct {
	nodeImpl
	expressionMarker

	Key   Expression `json:"key"`
	Value Expression `json:"value"`
}

func NewMapEntryExpression(key, value Expression) *MapEntryExpression {
	return &MapEntryExpression{nodeImpl: newNodeImpl(NodeMapEntryExpression), Key: key, Value: value}
}

type MapExpression struct {
	nodeImpl
	expressionMarker

	Entries []*MapEntryExpression `json:"entries"`
}

func NewMapExpression(entries []*MapEntryExpression) *MapExpression {
	return &MapExpression{nodeImpl: newNodeImpl(NodeMapExpression), Entries: entries}
}

// GStringExpression interleaves constant fragments with embedded values:
// Strings[0] Values[0] Strings[1] ... Values[n-1] Strings[n].
type GStringExpression struct {
	nodeImpl
	expressionMarker

	Verbatim string           `json:"verbatim"`
	Strings  []*StringLiteral `json:"strings"`
	Values   []Expression     `json:"values"`
}

func NewGStringExpression(verbatim string, strings []*StringLiteral, values []Expression) *GStringExpression {
	return &GStringExpression{nodeImpl: newNodeImpl(NodeGStringExpression), Verbatim: verbatim, Strings: strings, Values: values}
}

// ClosureExpression is a closure literal. A nil Parameters means no
// parameter section was written, so the closure takes the implicit `it`
// parameter; an empty list means an explicit zero-parameter closure.
type ClosureExpression struct {
	nodeImpl
	expressionMarker

	Parameters *ParameterList `json:"parameters,omitempty"`
	Code       Statement      `json:"code"`
}

func NewClosureExpression(parameters *ParameterList, code Statement) *ClosureExpression {
	return &ClosureExpression{nodeImpl: newNodeImpl(NodeClosureExpression), Parameters: parameters, Code: code}
}

// ClosureListExpression holds the init/condition/update segments of a
// classic for loop.
type ClosureListExpression struct {
	nodeImpl
	expressionMarker

	Expressions []Expression `json:"expressions"`
}

func NewClosureListExpression(expressions []Expression) *ClosureListExpression {
	return &ClosureListExpression{nodeImpl: newNodeImpl(NodeClosureListExpression), Expressions: expressions}
}

type ArgumentListExpression struct {
	nodeImpl
	expressionMarker

	Arguments []Expression `json:"arguments"`
}

func NewArgumentListExpression(arguments []Expression) *ArgumentListExpression {
	return &ArgumentListExpression{nodeImpl: newNodeImpl(NodeArgumentList), Arguments: arguments}
}

type DeclarationExpression struct {
	nodeImpl
	expressionMarker

	Modifiers []string            `json:"modifiers,omitempty"`
	Variable  *VariableExpression `json:"variable"`
	Value     Expression          `json:"value"`
}

func NewDeclarationExpression(modifiers []string, variable *VariableExpression, value Expression) *DeclarationExpression {
	return &DeclarationExpression{nodeImpl: newNodeImpl(NodeDeclarationExpression), Modifiers: modifiers, Variable: variable, Value: value}
}

type ConstructorCallExpression struct {
	nodeImpl
	expressionMarker

	Type      *ClassType              `json:"classType"`
	Arguments *ArgumentListExpression `json:"arguments"`
}

func NewConstructorCallExpression(typ *ClassType, arguments *ArgumentListExpression) *ConstructorCallExpression {
	return &ConstructorCallExpression{nodeImpl: newNodeImpl(NodeConstructorCall), Type: typ, Arguments: arguments}
}

// ArrayExpression is `new T[a][b]`; Sizes holds one expression per dimension.
type ArrayExpression struct {
	nodeImpl
	expressionMarker

	ElementType *ClassType   `json:"elementType"`
	Sizes       []Expression `json:"sizes"`
}

func NewArrayExpression(elementType *ClassType, sizes []Expression) *ArrayExpression {
	return &ArrayExpression{nodeImpl: newNodeImpl(NodeArrayExpression), ElementType: elementType, Sizes: sizes}
}

// Types and parameters

type ClassType struct {
	nodeImpl

	Name       string          `json:"name"`
	Dimensions int             `json:"dimensions,omitempty"`
	Generics   []*GenericsType `json:"generics,omitempty"`
	Dynamic    bool            `json:"dynamic,omitempty"`
}

func NewClassType(name string) *ClassType {
	return &ClassType{nodeImpl: newNodeImpl(NodeClassType), Name: name}
}

// GenericsType is one generic argument; a nil Type is the `?` wildcard.
type GenericsType struct {
	nodeImpl

	Type     *ClassType `json:"argumentType,omitempty"`
	Wildcard bool       `json:"wildcard"`
}

func NewGenericsType(typ *ClassType) *GenericsType {
	return &GenericsType{nodeImpl: newNodeImpl(NodeGenericsType), Type: typ}
}

func NewWildcardGenericsType() *GenericsType {
	return &GenericsType{nodeImpl: newNodeImpl(NodeGenericsType), Wildcard: true}
}

type Parameter struct {
	nodeImpl

	Type    *ClassType `json:"parameterType"`
	Name    string     `json:"name"`
	Default Expression `json:"default,omitempty"`
}

func NewParameter(typ *ClassType, name string) *Parameter {
	return &Parameter{nodeImpl: newNodeImpl(NodeParameter), Type: typ, Name: name}
}

type ParameterList struct {
	nodeImpl

	Parameters []*Parameter `json:"parameters"`
}

func NewParameterList(parameters []*Parameter) *ParameterList {
	return &ParameterList{nodeImpl: newNodeImpl(NodeParameterList), Parameters: parameters}
}

// Statements

type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type EmptyStatement struct {
	nodeImpl
	statementMarker
}

func NewEmptyStatement() *EmptyStatement {
	return &EmptyStatement{nodeImpl: newNodeImpl(NodeEmptyStatement)}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition *BooleanExpression `json:"condition"`
	Then      Statement          `json:"then"`
	Else      Statement          `json:"else"`
}

func NewIfStatement(condition *BooleanExpression, then, otherwise Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: otherwise}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition *BooleanExpression `json:"condition"`
	Body      Statement          `json:"body"`
}

func NewWhileStatement(condition *BooleanExpression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

// ForStatement covers both loop shapes. Classic loops carry the
// ForLoopDummy variable and a ClosureListExpression collection.
type ForStatement struct {
	nodeImpl
	statementMarker

	Variable   *Parameter `json:"variable"`
	Collection Expression `json:"collection"`
	Body       Statement  `json:"body"`
}

func NewForStatement(variable *Parameter, collection Expression, body Statement) *ForStatement {
	return &ForStatement{nodeImpl: newNodeImpl(NodeForStatement), Variable: variable, Collection: collection, Body: body}
}

// IsClassic reports whether the loop is the init/condition/update form.
func (f *ForStatement) IsClassic() bool {
	return f != nil && IsForLoopDummy(f.Variable)
}

type CaseStatement struct {
	nodeImpl
	statementMarker

	Expression Expression      `json:"expression"`
	Code       *BlockStatement `json:"code"`
}

func NewCaseStatement(expr Expression, code *BlockStatement) *CaseStatement {
	return &CaseStatement{nodeImpl: newNodeImpl(NodeCaseStatement), Expression: expr, Code: code}
}

type SwitchStatement struct {
	nodeImpl
	statementMarker

	Subject Expression       `json:"subject"`
	Cases   []*CaseStatement `json:"cases"`
	Default Statement        `json:"default"`
}

func NewSwitchStatement(subject Expression, cases []*CaseStatement, fallback Statement) *SwitchStatement {
	return &SwitchStatement{nodeImpl: newNodeImpl(NodeSwitchStatement), Subject: subject, Cases: cases, Default: fallback}
}

type CatchStatement struct {
	nodeImpl
	statementMarker

	Variable *Parameter `json:"variable"`
	Code     Statement  `json:"code"`
}

func NewCatchStatement(variable *Parameter, code Statement) *CatchStatement {
	return &CatchStatement{nodeImpl: newNodeImpl(NodeCatchStatement), Variable: variable, Code: code}
}

type TryCatchStatement struct {
	nodeImpl
	statementMarker

	Try     Statement         `json:"try"`
	Catches []*CatchStatement `json:"catches"`
	Finally Statement         `json:"finally"`
}

func NewTryCatchStatement(try Statement, catches []*CatchStatement, finally Statement) *TryCatchStatement {
	return &TryCatchStatement{nodeImpl: newNodeImpl(NodeTryCatchStatement), Try: try, Catches: catches, Finally: finally}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewReturnStatement(expr Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Expression: expr}
}

type ThrowStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewThrowStatement(expr Expression) *ThrowStatement {
	return &ThrowStatement{nodeImpl: newNodeImpl(NodeThrowStatement), Expression: expr}
}

type BreakStatement struct {
	nodeImpl
	statementMarker

	Label string `json:"label,omitempty"`
}

func NewBreakStatement(label string) *BreakStatement {
	return &BreakStatement{nodeImpl: newNodeImpl(NodeBreakStatement), Label: label}
}

type ContinueStatement struct {
	nodeImpl
	statementMarker

	Label string `json:"label,omitempty"`
}

func NewContinueStatement(label string) *ContinueStatement {
	return &ContinueStatement{nodeImpl: newNodeImpl(NodeContinueStatement), Label: label}
}
