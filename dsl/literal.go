package dsl

import (
	"context"
	"reflect"

	molde "github.com/nordskog/molde"
)

// LiteralSchema accepts exactly one expected value. Equality is loose by
// default (integer 10 equals float 10.0); Strict requires the runtime types
// to match as well.
type LiteralSchema struct {
	value  any
	strict bool
}

var _ molde.Schema = LiteralSchema{}

// Literal returns a schema accepting only v.
func Literal(v any) LiteralSchema { return LiteralSchema{value: v} }

// Strict switches to identity-preserving equality.
func (s LiteralSchema) Strict() LiteralSchema { s.strict = true; return s }

func (s LiteralSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	if s.matches(v) {
		return v, nil
	}
	return nil, molde.Issues{molde.NewIssue(molde.KindInvalidLiteral, at, map[string]any{"expected": s.value, "got": v})}
}

func (s LiteralSchema) matches(v any) bool {
	if s.strict {
		if s.value == nil || v == nil {
			return s.value == nil && v == nil
		}
		if reflect.TypeOf(s.value) != reflect.TypeOf(v) {
			return false
		}
		return reflect.DeepEqual(s.value, v)
	}
	if want, ok := numeric(s.value); ok {
		got, ok := numeric(v)
		return ok && want.f == got.f
	}
	return reflect.DeepEqual(s.value, v)
}
