package dsl

import (
	"context"
	"reflect"

	molde "github.com/nordskog/molde"
)

// TupleSchema validates a fixed-length ordered sequence, one child schema per
// position. The native tuple shape is a fixed-size array; with coercion
// (the default) a variable-length slice is accepted too, provided its length
// matches the schema's arity.
type TupleSchema struct {
	items  []molde.Schema
	coerce bool
}

var _ molde.Schema = TupleSchema{}

// Tuple returns a tuple schema over the given positional child schemas.
func Tuple(items ...molde.Schema) TupleSchema {
	if len(items) == 0 {
		panic("dsl: tuple requires at least one element schema")
	}
	cp := make([]molde.Schema, len(items))
	for i, it := range items {
		if it == nil {
			panic("dsl: nil schema in tuple")
		}
		cp[i] = it
	}
	return TupleSchema{items: cp, coerce: true}
}

// NoCoerce restricts the accepted input shape to fixed-size arrays.
func (s TupleSchema) NoCoerce() TupleSchema { s.coerce = false; return s }

func (s TupleSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	elems, ok := tupleElements(v, s.coerce)
	if !ok {
		return nil, molde.Issues{typeIssue(at, "tuple", v)}
	}
	// An arity mismatch short-circuits: no element is evaluated.
	if len(elems) != len(s.items) {
		k := molde.KindTooSmall
		if len(elems) > len(s.items) {
			k = molde.KindTooBig
		}
		return nil, molde.Issues{molde.NewIssue(k, at, map[string]any{"expected": len(s.items), "got": len(elems)})}
	}
	out := make([]any, len(elems))
	var iss molde.Issues
	for i, child := range s.items {
		res, err := child.Parse(ctx, elems[i], at.Index(i))
		if err != nil {
			iss = molde.AppendIssues(iss, childIssues(err, at.Index(i))...)
			continue
		}
		out[i] = res
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func tupleElements(v any, coerce bool) ([]any, bool) {
	if seq, ok := v.([]any); ok {
		if !coerce {
			return nil, false
		}
		return seq, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
	case reflect.Slice:
		if !coerce {
			return nil, false
		}
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
