package cst

// Kind tags a concrete syntax node. The set below is closed: converters map
// grammar-specific node names onto it, and anything they cannot map keeps its
// raw grammar name so lowering can report it as unsupported.
type Kind string

// Token kinds.
const (
	KindToken           Kind = "Token"
	KindIdentifier      Kind = "Identifier"
	KindGStringStart    Kind = "GStringStart"
	KindGStringPart     Kind = "GStringPart"
	KindGStringEnd      Kind = "GStringEnd"
	KindGStringPathPart Kind = "GStringPathPart"
)

// Expression kinds.
const (
	KindParen            Kind = "Paren"
	KindListConstructor  Kind = "ListConstructor"
	KindMapConstructor   Kind = "MapConstructor"
	KindMapEntry         Kind = "MapEntry"
	KindClosure          Kind = "Closure"
	KindBinary           Kind = "Binary"
	KindAssignment       Kind = "Assignment"
	KindTernary          Kind = "Ternary"
	KindElvis            Kind = "Elvis"
	KindUnary            Kind = "Unary"
	KindPrefix           Kind = "Prefix"
	KindPostfix          Kind = "Postfix"
	KindVariable         Kind = "Variable"
	KindPath             Kind = "Path"
	KindCall             Kind = "Call"
	KindMethodCall       Kind = "MethodCall"
	KindFieldAccess      Kind = "FieldAccess"
	KindInteger          Kind = "Integer"
	KindDecimal          Kind = "Decimal"
	KindString           Kind = "String"
	KindBool             Kind = "Bool"
	KindNull             Kind = "Null"
	KindGString          Kind = "GString"
	KindGStringPath      Kind = "GStringPath"
	KindClassName        Kind = "ClassName"
	KindGenericClassName Kind = "GenericClassName"
	KindDeclaration      Kind = "Declaration"
	KindNewInstance      Kind = "NewInstance"
	KindNewArray         Kind = "NewArray"
)

// Annotation value kinds.
const (
	KindAnnotationArray   Kind = "AnnotationArray"
	KindAnnotationBool    Kind = "AnnotationBool"
	KindAnnotationClass   Kind = "AnnotationClass"
	KindAnnotationDecimal Kind = "AnnotationDecimal"
	KindAnnotationInteger Kind = "AnnotationInteger"
	KindAnnotationNull    Kind = "AnnotationNull"
	KindAnnotationPath    Kind = "AnnotationPath"
	KindAnnotationString  Kind = "AnnotationString"
)

// Statement kinds.
const (
	KindBlock               Kind = "Block"
	KindStatementBlock      Kind = "StatementBlock"
	KindExpressionStatement Kind = "ExpressionStatement"
	KindIf                  Kind = "If"
	KindWhile               Kind = "While"
	KindClassicFor          Kind = "ClassicFor"
	KindForIn               Kind = "ForIn"
	KindForColon            Kind = "ForColon"
	KindSwitch              Kind = "Switch"
	KindCase                Kind = "Case"
	KindTry                 Kind = "Try"
	KindCatch               Kind = "Catch"
	KindReturn              Kind = "Return"
	KindThrow               Kind = "Throw"
	KindBreak               Kind = "Break"
	KindContinue            Kind = "Continue"
	KindCommand             Kind = "Command"
)

// Support kinds, consumed by the collaborator helpers rather than dispatched.
const (
	KindArgumentList    Kind = "ArgumentList"
	KindParameterList   Kind = "ParameterList"
	KindParameter       Kind = "Parameter"
	KindTypeDeclaration Kind = "TypeDeclaration"
	KindGenericList     Kind = "GenericList"
)

var tokenKinds = []Kind{
	KindToken, KindIdentifier, KindGStringStart, KindGStringPart, KindGStringEnd, KindGStringPathPart,
}

var expressionKinds = []Kind{
	KindParen, KindListConstructor, KindMapConstructor, KindMapEntry, KindClosure,
	KindBinary, KindAssignment, KindTernary, KindElvis, KindUnary, KindPrefix, KindPostfix,
	KindVariable, KindPath, KindCall, KindMethodCall, KindFieldAccess,
	KindInteger, KindDecimal, KindString, KindBool, KindNull, KindGString, KindGStringPath,
	KindClassName, KindGenericClassName, KindDeclaration, KindNewInstance, KindNewArray,
}

var annotationKinds = []Kind{
	KindAnnotationArray, KindAnnotationBool, KindAnnotationClass, KindAnnotationDecimal,
	KindAnnotationInteger, KindAnnotationNull, KindAnnotationPath, KindAnnotationString,
}

var statementKinds = []Kind{
	KindBlock, KindStatementBlock, KindExpressionStatement, KindIf, KindWhile,
	KindClassicFor, KindForIn, KindForColon, KindSwitch, KindTry,
	KindReturn, KindThrow, KindBreak, KindContinue, KindCommand,
	KindDeclaration, KindNewInstance, KindNewArray,
}

var supportKinds = []Kind{
	KindCase, KindCatch, KindArgumentList, KindParameterList, KindParameter, KindTypeDeclaration, KindGenericList,
}

var knownKinds = func() map[Kind]struct{} {
	known := make(map[Kind]struct{})
	for _, group := range [][]Kind{tokenKinds, expressionKinds, annotationKinds, statementKinds, supportKinds} {
		for _, kind := range group {
			known[kind] = struct{}{}
		}
	}
	return known
}()

// ExpressionKinds lists every kind the expression engine must handle.
func ExpressionKinds() []Kind { return append([]Kind(nil), expressionKinds...) }

// StatementKinds lists every kind the statement engine must handle.
// Declaration and instantiation kinds appear here and in ExpressionKinds.
func StatementKinds() []Kind { return append([]Kind(nil), statementKinds...) }

func AnnotationKinds() []Kind { return append([]Kind(nil), annotationKinds...) }

// Known reports whether kind belongs to the closed set.
func (k Kind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// IsToken reports whether nodes of this kind are leaf tokens.
func (k Kind) IsToken() bool {
	for _, kind := range tokenKinds {
		if kind == k {
			return true
		}
	}
	return false
}
