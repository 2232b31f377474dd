package dsl

import (
	"context"

	molde "github.com/nordskog/molde"
)

// AnySchema accepts every input unchanged.
type AnySchema struct{}

// NeverSchema rejects every input.
type NeverSchema struct{}

var (
	_ molde.Schema = AnySchema{}
	_ molde.Schema = NeverSchema{}
)

// Any returns the always-accept sentinel schema.
func Any() AnySchema { return AnySchema{} }

// Never returns the always-reject sentinel schema.
func Never() NeverSchema { return NeverSchema{} }

func (AnySchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	return v, nil
}

func (NeverSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	return nil, molde.Issues{typeIssue(at, "never", v)}
}
