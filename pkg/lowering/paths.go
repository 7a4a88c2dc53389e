package lowering

import (
	"strings"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

// PathSegment is one identifier of a dotted chain.
type PathSegment struct {
	Name string
	Span ast.Span
}

// CallTarget is a dotted chain resolved as the target of a call.
type CallTarget struct {
	Receiver     ast.Expression
	Method       PathSegment
	ImplicitThis bool
}

// ResolveValue folds a.b.c into property reads on the variable a.
func ResolveValue(segments []PathSegment) (ast.Expression, error) {
	return resolveValue(ast.SetSpan, segments)
}

// ResolveForCall splits a.b.c into the receiver a.b and the method name c.
// A single segment is called on the implicit receiver.
func ResolveForCall(segments []PathSegment) (CallTarget, error) {
	return resolveForCall(ast.SetSpan, segments)
}

func resolveValue(stamp Stamper, segments []PathSegment) (ast.Expression, error) {
	if len(segments) == 0 {
		return nil, fatal(nil, "path: no segments")
	}
	return foldProperties(stamp, segments), nil
}

func resolveForCall(stamp Stamper, segments []PathSegment) (CallTarget, error) {
	switch len(segments) {
	case 0:
		return CallTarget{}, fatal(nil, "path: no segments")
	case 1:
		this := ast.This()
		stamp(this, segments[0].Span)
		return CallTarget{Receiver: this, Method: segments[0], ImplicitThis: true}, nil
	}
	last := len(segments) - 1
	return CallTarget{Receiver: foldProperties(stamp, segments[:last]), Method: segments[last]}, nil
}

func foldProperties(stamp Stamper, segments []PathSegment) ast.Expression {
	head := segments[0]
	variable := ast.NewVariableExpression(head.Name)
	stamp(variable, head.Span)
	var expr ast.Expression = variable
	for _, seg := range segments[1:] {
		key := ast.NewStringLiteral(seg.Name)
		stamp(key, seg.Span)
		prop := ast.NewPropertyExpression(expr, key, false, false)
		stamp(prop, ast.Cover(head.Span, seg.Span))
		expr = prop
	}
	return expr
}

// pathSegments reads the identifier tokens of a Path or ClassName node.
// A Path may also be a single Identifier or Variable leaf.
func pathSegments(node *cst.Node) ([]PathSegment, error) {
	if node == nil {
		return nil, fatal(nil, "path: missing path")
	}
	switch node.Kind {
	case cst.KindIdentifier, cst.KindVariable:
		if len(node.Children) == 0 {
			return []PathSegment{{Name: node.Text, Span: node.Span}}, nil
		}
	}
	var segments []PathSegment
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		switch {
		case child.Kind == cst.KindIdentifier:
			segments = append(segments, PathSegment{Name: child.Text, Span: child.Span})
		case child.Kind == cst.KindVariable:
			segments = append(segments, PathSegment{Name: leafName(child), Span: child.Span})
		case child.IsToken() && child.Text == ".":
		default:
			return nil, fatal(child, "path: unexpected %s in dotted name", child.Kind)
		}
	}
	if len(segments) == 0 {
		return nil, fatal(node, "path: no segments")
	}
	return segments, nil
}

// gstringPathSegments reads a `$a.b.c` placeholder: an identifier followed by
// path-part tokens whose text starts with the separating dot.
func gstringPathSegments(node *cst.Node) ([]PathSegment, error) {
	var segments []PathSegment
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		switch child.Kind {
		case cst.KindIdentifier:
			segments = append(segments, PathSegment{Name: child.Text, Span: child.Span})
		case cst.KindGStringPathPart:
			if len(child.Text) < 2 {
				return nil, fatal(child, "gstring: empty path part")
			}
			segments = append(segments, PathSegment{Name: child.Text[1:], Span: child.Span})
		default:
			return nil, fatal(child, "gstring: unexpected %s in path placeholder", child.Kind)
		}
	}
	if len(segments) == 0 {
		return nil, fatal(node, "gstring: empty path placeholder")
	}
	return segments, nil
}

func joinSegments(segments []PathSegment) string {
	names := make([]string, len(segments))
	for i, seg := range segments {
		names[i] = seg.Name
	}
	return strings.Join(names, ".")
}

// leafName returns the identifier a leaf-like node stands for: its own text,
// or the text of its first identifier child.
func leafName(node *cst.Node) string {
	if node == nil {
		return ""
	}
	if node.Text != "" || len(node.Children) == 0 {
		return node.Text
	}
	if id := node.FirstOfKind(cst.KindIdentifier); id != nil {
		return id.Text
	}
	return node.Content()
}
