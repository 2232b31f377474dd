package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	molde "github.com/nordskog/molde"
	g "github.com/nordskog/molde/dsl"
)

func TestList_EverySiblingEvaluated(t *testing.T) {
	ctx := context.Background()
	s := g.List(g.Number())

	_, err := molde.Parse(ctx, s, []any{[]any{}, map[string]any{}})
	iss := parseIssues(t, err)
	require.Len(t, iss, 2)
	require.Equal(t, molde.KindInvalidType, iss[0].Kind)
	require.Equal(t, "/0", iss[0].Path.String())
	require.Equal(t, "/1", iss[1].Path.String())
}

func TestList_LengthBoundsShortCircuitElements(t *testing.T) {
	ctx := context.Background()
	// Never would fail on every element; a single too_small proves elements
	// were not evaluated.
	s := g.List(g.Never()).Min(3)

	_, err := molde.Parse(ctx, s, []any{1})
	iss := parseIssues(t, err)
	require.Len(t, iss, 1)
	require.Equal(t, molde.KindTooSmall, iss[0].Kind)
	require.Equal(t, map[string]any{"min": 3, "got": 1}, iss[0].Data)
}

func TestList_MappingCoercionYieldsSortedPairs(t *testing.T) {
	ctx := context.Background()
	s := g.List(g.Number())

	v, err := molde.Parse(ctx, s, map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	require.Equal(t, []any{
		molde.Pair{Key: "a", Value: 1},
		molde.Pair{Key: "b", Value: 2},
	}, v)
}

func TestList_PairElementsKeepTheirKeys(t *testing.T) {
	ctx := context.Background()
	s := g.List(g.Number())

	v, err := molde.Parse(ctx, s, []any{molde.Pair{Key: "x", Value: 1}, 2})
	require.NoError(t, err)
	require.Equal(t, []any{molde.Pair{Key: "x", Value: 1}, 2}, v)

	// Keyed entries report their own key in the path, not the index.
	_, err = molde.Parse(ctx, s, []any{molde.Pair{Key: "x", Value: "no"}})
	iss := parseIssues(t, err)
	require.Equal(t, "/x", iss[0].Path.String())
}

func TestList_KeyOverrides(t *testing.T) {
	ctx := context.Background()
	s := g.List(g.Number()).Key(0, g.String()).Key("flag", g.Bool())

	v, err := molde.Parse(ctx, s, []any{"head", 2, molde.Pair{Key: "flag", Value: true}})
	require.NoError(t, err)
	require.Equal(t, []any{"head", 2, molde.Pair{Key: "flag", Value: true}}, v)

	// The index override does not apply to a keyed entry at that position.
	_, err = molde.Parse(ctx, s, []any{molde.Pair{Key: "other", Value: "str"}})
	iss := parseIssues(t, err)
	require.Equal(t, molde.KindInvalidType, iss[0].Kind)
}

func TestList_NoCoerceRejectsMappings(t *testing.T) {
	ctx := context.Background()
	s := g.List(g.Number()).NoCoerce()

	_, err := molde.Parse(ctx, s, map[string]any{"a": 1})
	iss := parseIssues(t, err)
	require.Len(t, iss, 1)
	require.Equal(t, molde.KindInvalidType, iss[0].Kind)
}
