package dsl

import (
	"context"

	molde "github.com/nordskog/molde"
)

// DefaultSchema substitutes a fixed value when the input is nil. The wrapped
// schema never sees the nil; the default is returned as-is, unvalidated.
type DefaultSchema struct {
	child molde.Schema
	value any
}

var _ molde.Schema = DefaultSchema{}

// Default wraps child so that a nil input yields value instead of running
// child at all.
func Default(child molde.Schema, value any) DefaultSchema {
	if child == nil {
		panic("dsl: nil schema for Default")
	}
	return DefaultSchema{child: child, value: value}
}

func (s DefaultSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	if v == nil {
		return s.value, nil
	}
	return s.child.Parse(ctx, v, at)
}

// TransformSchema applies a function to the wrapped schema's successful
// result. On failure the function never runs and the child's issues pass
// through unchanged.
type TransformSchema struct {
	child molde.Schema
	fn    func(any) any
}

var _ molde.Schema = TransformSchema{}

// Transform wraps child with a post-validation mapping over its output.
func Transform(child molde.Schema, fn func(any) any) TransformSchema {
	if child == nil {
		panic("dsl: nil schema for Transform")
	}
	if fn == nil {
		panic("dsl: nil transform function")
	}
	return TransformSchema{child: child, fn: fn}
}

func (s TransformSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	res, err := s.child.Parse(ctx, v, at)
	if err != nil {
		return nil, err
	}
	return s.fn(res), nil
}
