package dsl

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"

	molde "github.com/nordskog/molde"
)

// MapSchema validates a keyed mapping against a declared key set. Keys absent
// from the declaration follow the configured foreign-key handling: a policy
// (strip, strict, passthrough) or a fallback schema applied to every foreign
// entry. With coercion (the default) an ordered sequence is accepted and
// converted to a mapping first: Pair elements contribute their own key,
// everything else is keyed by its index.
//
// Declared-key and fallback evaluations always all run; their issues merge at
// the end. The foreign-key policy only applies once every evaluation
// succeeded.
type MapSchema struct {
	keyval     map[any]molde.Schema
	sortedKeys []any
	policy     molde.ForeignKeyPolicy
	fallback   molde.Schema
	coerce     bool
	keyCoerce  bool
	// canonical declared key -> string form; built once per schema, not per
	// call, when key coercion is enabled.
	stringForms map[any]string
	target      func() any
}

var _ molde.Schema = MapSchema{}

// Map returns a map schema over the declared key/schema pairs.
func Map(keyval map[any]molde.Schema) MapSchema {
	kv := make(map[any]molde.Schema, len(keyval))
	for k, child := range keyval {
		if child == nil {
			panic("dsl: nil schema for map key " + stringForm(k))
		}
		if !canKey(k) {
			panic("dsl: non-comparable map key " + stringForm(k))
		}
		kv[k] = child
	}
	s := MapSchema{keyval: kv, coerce: true}
	s.sortedKeys = sortedKeyList(kv)
	return s
}

// Field returns a copy with one more declared key.
func (s MapSchema) Field(k any, child molde.Schema) MapSchema {
	if child == nil {
		panic("dsl: nil schema for map key " + stringForm(k))
	}
	if !canKey(k) {
		panic("dsl: non-comparable map key " + stringForm(k))
	}
	kv := make(map[any]molde.Schema, len(s.keyval)+1)
	for kk, vv := range s.keyval {
		kv[kk] = vv
	}
	kv[k] = child
	s.keyval = kv
	s.sortedKeys = sortedKeyList(kv)
	if s.keyCoerce {
		s.stringForms = stringFormIndex(kv)
	}
	return s
}

// ForeignKeys selects the policy for keys outside the declared set.
func (s MapSchema) ForeignKeys(p molde.ForeignKeyPolicy) MapSchema {
	s.policy = p
	s.fallback = nil
	return s
}

// Fallback validates every foreign entry with child instead of applying a
// policy.
func (s MapSchema) Fallback(child molde.Schema) MapSchema {
	if child == nil {
		panic("dsl: nil fallback schema")
	}
	s.fallback = child
	return s
}

// KeyCoerce also matches declared keys by their string representation. The
// raw key form always takes precedence when both are present.
func (s MapSchema) KeyCoerce() MapSchema {
	s.keyCoerce = true
	s.stringForms = stringFormIndex(s.keyval)
	return s
}

// NoCoerce rejects ordered-sequence inputs.
func (s MapSchema) NoCoerce() MapSchema { s.coerce = false; return s }

// Into configures a struct target populated from the parsed mapping. factory
// must return a pointer to a fresh instance carrying the type's own field
// defaults; fields absent from the parsed mapping keep those defaults.
func (s MapSchema) Into(factory func() any) MapSchema {
	rv := reflect.ValueOf(factory())
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		panic("dsl: map struct target factory must return a struct pointer")
	}
	s.target = factory
	return s
}

func (s MapSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	work, ok := s.workingSet(v)
	if !ok {
		return nil, molde.Issues{typeIssue(at, "map", v)}
	}

	parsed := make(map[any]any, len(s.keyval))
	var iss molde.Issues

	for _, k := range s.sortedKeys {
		val, found := work[k]
		delete(work, k)
		if s.keyCoerce {
			sk := s.stringForms[k]
			if !found {
				val = work[sk]
			}
			delete(work, sk)
		}
		// Absent entries evaluate against the nil sentinel.
		res, err := s.keyval[k].Parse(ctx, val, at.With(k))
		if err != nil {
			iss = molde.AppendIssues(iss, childIssues(err, at.With(k))...)
			continue
		}
		parsed[k] = res
	}

	// Foreign entries run through the fallback schema even when declared keys
	// already failed, so callers see every violation in one pass.
	if s.fallback != nil {
		for _, k := range sortedWorkKeys(work) {
			res, err := s.fallback.Parse(ctx, work[k], at.With(k))
			delete(work, k)
			if err != nil {
				iss = molde.AppendIssues(iss, childIssues(err, at.With(k))...)
				continue
			}
			parsed[k] = res
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}

	if s.fallback == nil {
		switch s.policy {
		case molde.ForeignStrict:
			if len(work) > 0 {
				keys := make([]string, 0, len(work))
				for k := range work {
					keys = append(keys, stringForm(k))
				}
				sort.Strings(keys)
				return nil, molde.Issues{molde.NewIssue(molde.KindUnrecognizedKeys, at, map[string]any{"keys": keys})}
			}
		case molde.ForeignPassthrough:
			for k, val := range work {
				parsed[k] = val
			}
		}
	}

	if s.target != nil {
		return s.bind(parsed)
	}
	return parsed, nil
}

// workingSet copies the input into the mutable remaining-entries set.
func (s MapSchema) workingSet(v any) (map[any]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		out := make(map[any]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[any]any:
		out := make(map[any]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case []any:
		if !s.coerce {
			return nil, false
		}
		out := make(map[any]any, len(m))
		for i, el := range m {
			if p, ok := el.(molde.Pair); ok && canKey(p.Key) {
				out[p.Key] = p.Value
				continue
			}
			out[i] = el
		}
		return out, true
	}
	return nil, false
}

func (s MapSchema) bind(parsed map[any]any) (any, error) {
	src := make(map[string]any, len(parsed))
	for k, val := range parsed {
		src[stringForm(k)] = val
	}
	out := s.target()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		panic(fmt.Sprintf("dsl: map struct target: %v", err))
	}
	// A parsed mapping the target cannot hold is a schema-configuration
	// mistake, not a validation failure.
	if err := dec.Decode(src); err != nil {
		panic(fmt.Sprintf("dsl: map struct target does not fit parsed value: %v", err))
	}
	return out, nil
}

func sortedKeyList(kv map[any]molde.Schema) []any {
	keys := make([]any, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return stringForm(keys[i]) < stringForm(keys[j]) })
	return keys
}

func sortedWorkKeys(work map[any]any) []any {
	keys := make([]any, 0, len(work))
	for k := range work {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return stringForm(keys[i]) < stringForm(keys[j]) })
	return keys
}

func stringFormIndex(kv map[any]molde.Schema) map[any]string {
	idx := make(map[any]string, len(kv))
	for k := range kv {
		idx[k] = stringForm(k)
	}
	return idx
}
