package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	molde "github.com/nordskog/molde"
	g "github.com/nordskog/molde/dsl"
)

func TestMap_DeclaredKeyViolationCarriesPathAndData(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{"age": g.Number().Ge(0)})

	_, err := molde.Parse(ctx, s, map[string]any{"age": -10})
	iss := parseIssues(t, err)
	require.Len(t, iss, 1)
	require.Equal(t, molde.KindTooSmall, iss[0].Kind)
	require.Equal(t, "/age", iss[0].Path.String())
	require.Equal(t, map[string]any{"min": float64(0), "got": -10}, iss[0].Data)
}

func TestMap_AbsentKeysSeeNil(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{
		"name": g.Default(g.String(), "anonymous"),
		"age":  g.Number(),
	})

	_, err := molde.Parse(ctx, s, map[string]any{})
	iss := parseIssues(t, err)
	// name defaulted; only age failed on the nil sentinel.
	require.Len(t, iss, 1)
	require.Equal(t, "/age", iss[0].Path.String())
	require.Equal(t, molde.KindInvalidType, iss[0].Kind)
}

func TestMap_ForeignKeyPolicies(t *testing.T) {
	ctx := context.Background()
	base := g.Map(map[any]molde.Schema{"a": g.Number()})
	in := map[string]any{"a": 1, "x": "keep", "y": 2}

	// strip (default)
	v, err := molde.Parse(ctx, base, in)
	require.NoError(t, err)
	require.Equal(t, map[any]any{"a": 1}, v)

	// strict
	_, err = molde.Parse(ctx, base.ForeignKeys(molde.ForeignStrict), in)
	iss := parseIssues(t, err)
	require.Len(t, iss, 1)
	require.Equal(t, molde.KindUnrecognizedKeys, iss[0].Kind)
	require.Equal(t, "/", iss[0].Path.String())
	require.Equal(t, []string{"x", "y"}, iss[0].Data["keys"])

	// strict with no leftovers behaves like strip
	v, err = molde.Parse(ctx, base.ForeignKeys(molde.ForeignStrict), map[string]any{"a": 1})
	require.NoError(t, err)
	require.Equal(t, map[any]any{"a": 1}, v)

	// passthrough
	v, err = molde.Parse(ctx, base.ForeignKeys(molde.ForeignPassthrough), in)
	require.NoError(t, err)
	require.Equal(t, map[any]any{"a": 1, "x": "keep", "y": 2}, v)
}

func TestMap_FallbackConsumesForeignEntries(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{"a": g.Number()}).Fallback(g.String())

	v, err := molde.Parse(ctx, s, map[string]any{"a": 1, "x": "ok"})
	require.NoError(t, err)
	require.Equal(t, map[any]any{"a": 1, "x": "ok"}, v)

	// Declared and fallback failures merge into one collection.
	_, err = molde.Parse(ctx, s, map[string]any{"a": "bad", "y": 2})
	iss := parseIssues(t, err)
	require.Len(t, iss, 2)
	require.Equal(t, "/a", iss[0].Path.String())
	require.Equal(t, "/y", iss[1].Path.String())
}

func TestMap_KeyCoercion(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{1: g.String()}).KeyCoerce()

	// The string form of the declared key matches.
	v, err := molde.Parse(ctx, s, map[string]any{"1": "one"})
	require.NoError(t, err)
	require.Equal(t, map[any]any{1: "one"}, v)

	// The raw key wins when both forms are present, and both are consumed.
	v, err = molde.Parse(ctx, s.ForeignKeys(molde.ForeignStrict), map[any]any{1: "raw", "1": "coerced"})
	require.NoError(t, err)
	require.Equal(t, map[any]any{1: "raw"}, v)

	// Without coercion the string form stays foreign.
	_, err = molde.Parse(ctx, g.Map(map[any]molde.Schema{1: g.String()}), map[string]any{"1": "one"})
	iss := parseIssues(t, err)
	require.Equal(t, "/1", iss[0].Path.String())
	require.Equal(t, molde.KindInvalidType, iss[0].Kind)
}

func TestMap_SequenceCoercion(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{
		"name": g.String(),
		0:      g.Number(),
	})

	v, err := molde.Parse(ctx, s, []any{42, molde.Pair{Key: "name", Value: "n"}})
	require.NoError(t, err)
	require.Equal(t, map[any]any{"name": "n", 0: 42}, v)

	_, err = molde.Parse(ctx, s.NoCoerce(), []any{42})
	iss := parseIssues(t, err)
	require.Equal(t, molde.KindInvalidType, iss[0].Kind)
}

type serverConfig struct {
	Host    string
	Port    int
	Verbose bool
}

func TestMap_StructTargetKeepsFactoryDefaults(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{
		"host": g.String(),
		"port": g.Default(g.Number().Int(), nil),
	}).Into(func() any { return &serverConfig{Port: 8080, Verbose: true} })

	v, err := molde.Parse(ctx, s, map[string]any{"host": "localhost"})
	require.NoError(t, err)
	cfg := v.(*serverConfig)
	require.Equal(t, "localhost", cfg.Host)
	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.Verbose)

	v, err = molde.Parse(ctx, s, map[string]any{"host": "h", "port": 9})
	require.NoError(t, err)
	require.Equal(t, 9, v.(*serverConfig).Port)
}

func TestMap_ConstructionPanics(t *testing.T) {
	require.Panics(t, func() { g.Map(map[any]molde.Schema{"k": nil}) })
	require.Panics(t, func() { g.Map(map[any]molde.Schema{}).Field([]int{1}, g.Any()) })
	require.Panics(t, func() {
		g.Map(map[any]molde.Schema{}).Into(func() any { return serverConfig{} })
	})
}
