package ast

const (
	ThisName         = "this"
	ObjectTypeName   = "java.lang.Object"
	forLoopDummyName = "forLoopDummyParameter"
)

// This returns the implicit receiver used for unqualified calls.
func This() *VariableExpression {
	return NewVariableExpression(ThisName)
}

// ObjectType is the catch-all type used when a catch clause names no types.
func ObjectType() *ClassType {
	return NewClassType(ObjectTypeName)
}

// DynamicType is the type of an untyped (`def` or omitted) declaration.
func DynamicType() *ClassType {
	t := NewClassType(ObjectTypeName)
	t.Dynamic = true
	return t
}

// IsDynamic reports whether the type came from `def` or an omitted type.
func (t *ClassType) IsDynamic() bool {
	return t != nil && t.Dynamic
}

// ForLoopDummy is the placeholder variable of a classic for loop.
func ForLoopDummy() *Parameter {
	return NewParameter(ObjectType(), forLoopDummyName)
}

func IsForLoopDummy(p *Parameter) bool {
	return p != nil && p.Name == forLoopDummyName
}
