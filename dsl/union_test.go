package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	molde "github.com/nordskog/molde"
	g "github.com/nordskog/molde/dsl"
)

// countingSchema records how many times it was evaluated.
type countingSchema struct {
	n *int
}

func (s countingSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	*s.n++
	return v, nil
}

func TestUnion_FirstMatchWinsAndStopsEvaluation(t *testing.T) {
	ctx := context.Background()
	calls := 0
	s := g.Union(g.Number(), g.String(), countingSchema{n: &calls})

	v, err := molde.Parse(ctx, s, "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", v)
	require.Zero(t, calls, "alternatives after the first match must not run")
}

func TestUnion_AllFailuresCollected(t *testing.T) {
	ctx := context.Background()
	s := g.Union(g.Number(), g.String())

	_, err := molde.Parse(ctx, s, true)
	iss := parseIssues(t, err)
	require.Len(t, iss, 1)
	require.Equal(t, molde.KindInvalidUnion, iss[0].Kind)
	require.Equal(t, "/", iss[0].Path.String())

	failures := iss[0].Data["errors"].([]molde.Issues)
	require.Len(t, failures, 2)
	require.Equal(t, molde.KindInvalidType, failures[0][0].Kind)
	require.Equal(t, molde.KindInvalidType, failures[1][0].Kind)
}

func TestUnion_NestedPathThreading(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{
		"value": g.Union(g.Number(), g.Bool()),
	})

	_, err := molde.Parse(ctx, s, map[string]any{"value": "nope"})
	iss := parseIssues(t, err)
	require.Equal(t, "/value", iss[0].Path.String())
}

func TestUnion_ConstructionPanics(t *testing.T) {
	require.Panics(t, func() { g.Union(g.Number()) })
	require.Panics(t, func() { g.Union(g.Number(), nil) })
}
