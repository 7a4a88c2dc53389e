package ast

import (
	"fmt"
	"reflect"
)

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// ZeroSpan returns an empty span value.
func ZeroSpan() Span {
	return Span{}
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Cover returns the smallest span containing both a and b. Zero spans are ignored.
func Cover(a, b Span) Span {
	if a == (Span{}) {
		return b
	}
	if b == (Span{}) {
		return a
	}
	out := a
	if b.Start.Before(out.Start) {
		out.Start = b.Start
	}
	if out.End.Before(b.End) {
		out.End = b.End
	}
	return out
}

// Walk visits node and every node reachable from its fields, depth first.
// Returning false from visit skips the children of that node.
func Walk(node Node, visit func(Node) bool) {
	walkNode(node, visit, make(map[Node]struct{}))
}

func walkNode(node Node, visit func(Node) bool, visited map[Node]struct{}) {
	if node == nil {
		return
	}
	if val := reflect.ValueOf(node); val.Kind() == reflect.Pointer && val.IsNil() {
		return
	}
	if _, ok := visited[node]; ok {
		return
	}
	visited[node] = struct{}{}
	if !visit(node) {
		return
	}
	walkValue(derefValue(reflect.ValueOf(node)), visit, visited)
}

func walkValue(val reflect.Value, visit func(Node) bool, visited map[Node]struct{}) {
	if !val.IsValid() {
		return
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return
		}
		if val.CanInterface() {
			if node, ok := val.Interface().(Node); ok {
				walkNode(node, visit, visited)
				return
			}
		}
		walkValue(val.Elem(), visit, visited)
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			if !typ.Field(i).IsExported() {
				continue
			}
			walkValue(val.Field(i), visit, visited)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			walkValue(val.Index(i), visit, visited)
		}
	}
}

func derefValue(val reflect.Value) reflect.Value {
	for val.IsValid() && (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) {
		if val.IsNil() {
			return val
		}
		val = val.Elem()
	}
	return val
}

// CheckSpans returns an error naming the first node under root whose span is
// missing or inverted.
func CheckSpans(root Node) error {
	var failure error
	Walk(root, func(node Node) bool {
		if failure != nil {
			return false
		}
		span := node.Span()
		switch {
		case span == (Span{}):
			failure = fmt.Errorf("ast: %s has no span", node.NodeType())
		case span.End.Before(span.Start):
			failure = fmt.Errorf("ast: %s span %d:%d-%d:%d ends before it starts", node.NodeType(),
				span.Start.Line, span.Start.Column, span.End.Line, span.End.Column)
		}
		return failure == nil
	})
	return failure
}
