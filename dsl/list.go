package dsl

import (
	"context"

	molde "github.com/nordskog/molde"
)

// ListSchema validates an ordered sequence with one element schema applied to
// every position. Specific keys or indices can carry override schemas. With
// coercion (the default) a keyed mapping is accepted and converted to a
// sequence of keyed entries first.
type ListSchema struct {
	element                  molde.Schema
	overrides                map[any]molde.Schema
	minLen, maxLen, exactLen *int
	coerce                   bool
}

var _ molde.Schema = ListSchema{}

// List returns a list schema applying element to every position.
func List(element molde.Schema) ListSchema {
	if element == nil {
		panic("dsl: nil element schema in list")
	}
	return ListSchema{element: element, coerce: true}
}

// Min sets the minimum length (inclusive).
func (s ListSchema) Min(n int) ListSchema { s.minLen = &n; return s }

// Max sets the maximum length (inclusive).
func (s ListSchema) Max(n int) ListSchema { s.maxLen = &n; return s }

// Length requires an exact length.
func (s ListSchema) Length(n int) ListSchema { s.exactLen = &n; return s }

// Key installs an override schema for entries whose own key, or positional
// index, equals k.
func (s ListSchema) Key(k any, child molde.Schema) ListSchema {
	if child == nil {
		panic("dsl: nil override schema for list key " + stringForm(k))
	}
	ov := make(map[any]molde.Schema, len(s.overrides)+1)
	for kk, vv := range s.overrides {
		ov[kk] = vv
	}
	ov[k] = child
	s.overrides = ov
	return s
}

// NoCoerce rejects keyed-mapping inputs.
func (s ListSchema) NoCoerce() ListSchema { s.coerce = false; return s }

func (s ListSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	var entries []entry
	if seq, ok := v.([]any); ok {
		entries = sequenceEntries(seq)
	} else if s.coerce {
		es, ok := mappingEntries(v)
		if !ok {
			return nil, molde.Issues{typeIssue(at, "list", v)}
		}
		entries = es
	} else {
		return nil, molde.Issues{typeIssue(at, "list", v)}
	}

	// Length bounds are checked first; violations short-circuit element
	// evaluation entirely.
	n := len(entries)
	var sizeIss molde.Issues
	if s.exactLen != nil && n != *s.exactLen {
		k := molde.KindTooSmall
		if n > *s.exactLen {
			k = molde.KindTooBig
		}
		sizeIss = molde.AppendIssues(sizeIss, molde.NewIssue(k, at, map[string]any{"length": *s.exactLen, "got": n}))
	}
	if s.minLen != nil && n < *s.minLen {
		sizeIss = molde.AppendIssues(sizeIss, molde.NewIssue(molde.KindTooSmall, at, map[string]any{"min": *s.minLen, "got": n}))
	}
	if s.maxLen != nil && n > *s.maxLen {
		sizeIss = molde.AppendIssues(sizeIss, molde.NewIssue(molde.KindTooBig, at, map[string]any{"max": *s.maxLen, "got": n}))
	}
	if len(sizeIss) > 0 {
		return nil, sizeIss
	}

	out := make([]any, n)
	var iss molde.Issues
	for i, e := range entries {
		childPath := at.Index(i)
		if e.keyed {
			childPath = at.With(e.key)
		}
		res, err := s.schemaFor(e, i).Parse(ctx, e.val, childPath)
		if err != nil {
			iss = molde.AppendIssues(iss, childIssues(err, childPath)...)
			continue
		}
		if e.keyed {
			out[i] = molde.Pair{Key: e.key, Value: res}
		} else {
			out[i] = res
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s ListSchema) schemaFor(e entry, i int) molde.Schema {
	if len(s.overrides) == 0 {
		return s.element
	}
	lookup := any(i)
	if e.keyed {
		lookup = e.key
	}
	if !canKey(lookup) {
		return s.element
	}
	if ov, ok := s.overrides[lookup]; ok {
		return ov
	}
	return s.element
}
