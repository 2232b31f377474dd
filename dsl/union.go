package dsl

import (
	"context"

	molde "github.com/nordskog/molde"
)

// UnionSchema accepts the first alternative that parses the input. Later
// alternatives are never evaluated once one succeeds.
type UnionSchema struct {
	alts []molde.Schema
}

var _ molde.Schema = UnionSchema{}

// Union returns a schema over two or more alternatives, tried in order.
func Union(alts ...molde.Schema) UnionSchema {
	if len(alts) < 2 {
		panic("dsl: union needs at least two alternatives")
	}
	cp := make([]molde.Schema, len(alts))
	for i, a := range alts {
		if a == nil {
			panic("dsl: nil union alternative")
		}
		cp[i] = a
	}
	return UnionSchema{alts: cp}
}

func (s UnionSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	failures := make([]molde.Issues, 0, len(s.alts))
	for _, alt := range s.alts {
		res, err := alt.Parse(ctx, v, at)
		if err == nil {
			return res, nil
		}
		failures = append(failures, childIssues(err, at))
	}
	return nil, molde.Issues{molde.NewIssue(molde.KindInvalidUnion, at, map[string]any{
		"errors": failures,
	})}
}
