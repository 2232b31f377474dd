package dsl_test

import (
	"context"
	"strings"
	"testing"

	molde "github.com/nordskog/molde"
	g "github.com/nordskog/molde/dsl"
)

func TestDefault_NilSkipsChildEntirely(t *testing.T) {
	ctx := context.Background()
	// Never rejects everything; a successful parse proves it never ran.
	s := g.Default(g.Never(), 42)

	v, err := molde.Parse(ctx, s, nil)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected the default, got %v", v)
	}
}

func TestDefault_NonNilDelegates(t *testing.T) {
	ctx := context.Background()
	s := g.Default(g.Number().Ge(0), 0)

	if _, err := molde.Parse(ctx, s, -1); err == nil {
		t.Fatalf("non-nil input must run the wrapped schema")
	}
	v, err := molde.Parse(ctx, s, 7)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v != 7 {
		t.Fatalf("expected 7, got %v", v)
	}
}

func TestTransform_RunsOnSuccessOnly(t *testing.T) {
	ctx := context.Background()
	s := g.Transform(g.String(), func(v any) any {
		return strings.ToUpper(v.(string))
	})

	v, err := molde.Parse(ctx, s, "abc")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v != "ABC" {
		t.Fatalf("expected ABC, got %v", v)
	}

	// On failure the function never runs; the type assertion inside would
	// panic otherwise.
	_, err = molde.Parse(ctx, s, 42)
	iss := parseIssues(t, err)
	if iss[0].Kind != molde.KindInvalidType {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestWrap_Composition(t *testing.T) {
	ctx := context.Background()
	s := g.Map(map[any]molde.Schema{
		"level": g.Default(g.Transform(g.Number().Int(), func(v any) any {
			return v.(int) * 10
		}), 0),
	})

	v, err := molde.Parse(ctx, s, map[string]any{"level": 3})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v.(map[any]any)["level"] != 30 {
		t.Fatalf("unexpected result: %v", v)
	}

	v, err = molde.Parse(ctx, s, map[string]any{})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v.(map[any]any)["level"] != 0 {
		t.Fatalf("default should bypass the transform: %v", v)
	}
}
