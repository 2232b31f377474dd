package dsl

import (
	"context"

	molde "github.com/nordskog/molde"
)

// BoolSchema validates booleans. With coercion enabled any input is accepted:
// only nil and a native false are falsy, everything else coerces to true.
type BoolSchema struct {
	coerce bool
}

var _ molde.Schema = BoolSchema{}

// Bool returns a strict boolean schema.
func Bool() BoolSchema { return BoolSchema{} }

// Coerce enables truthy/falsy coercion.
func (s BoolSchema) Coerce() BoolSchema { s.coerce = true; return s }

func (s BoolSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if !s.coerce {
		return nil, molde.Issues{typeIssue(at, "boolean", v)}
	}
	if v == nil {
		return false, nil
	}
	return true, nil
}
