// Package rules adds cross-value checks that run after a schema has parsed
// its input. A Rule inspects the parsed value as a whole, so it can relate
// entries to each other in ways per-key schemas cannot (conditional
// requirements, uniqueness across a list, and so on).
package rules

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	molde "github.com/nordskog/molde"
)

// Rule inspects a parsed value and reports any violations. A nil or empty
// result means the rule passed.
type Rule func(v any, at molde.Path) molde.Issues

// checked wraps a schema with post-parse rules. Rules only run when the
// wrapped schema succeeded; every rule runs and their issues merge.
type checked struct {
	schema molde.Schema
	rules  []Rule
}

var _ molde.Schema = checked{}

// Check returns s extended with post-parse rules.
func Check(s molde.Schema, rules ...Rule) molde.Schema {
	if s == nil {
		panic("rules: nil schema")
	}
	for _, r := range rules {
		if r == nil {
			panic("rules: nil rule")
		}
	}
	return checked{schema: s, rules: rules}
}

func (c checked) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	out, err := c.schema.Parse(ctx, v, at)
	if err != nil {
		return nil, err
	}
	var iss molde.Issues
	for _, r := range c.rules {
		iss = molde.AppendIssues(iss, r(out, at)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// Op is the comparison operator of a condition.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Conditional gates rules on the shape of the parsed value. Conditions
// address entries by JSON-Pointer style paths over the parsed result.
type Conditional struct {
	path string
	op   Op
	want any
	all  []Conditional
	any  []Conditional
}

// If builds a condition comparing the value at path against want.
func If(path string, op Op, want any) Conditional {
	return Conditional{path: normalize(path), op: op, want: want}
}

// IfAll requires every condition to hold.
func IfAll(conds ...Conditional) Conditional { return Conditional{all: conds} }

// IfAny requires at least one condition to hold.
func IfAny(conds ...Conditional) Conditional { return Conditional{any: conds} }

// And combines the receiver with more conditions, all of which must hold.
func (c Conditional) And(others ...Conditional) Conditional {
	return IfAll(append([]Conditional{c}, others...)...)
}

// Or combines the receiver with more conditions, any of which may hold.
func (c Conditional) Or(others ...Conditional) Conditional {
	return IfAny(append([]Conditional{c}, others...)...)
}

// Then returns a Rule running the given rules only when the condition holds.
func (c Conditional) Then(rules ...Rule) Rule {
	return func(v any, at molde.Path) molde.Issues {
		if !c.eval(v) {
			return nil
		}
		var all molde.Issues
		for _, r := range rules {
			if r == nil {
				continue
			}
			all = molde.AppendIssues(all, r(v, at)...)
		}
		return all
	}
}

func (c Conditional) eval(v any) bool {
	if len(c.all) > 0 {
		for _, sub := range c.all {
			if !sub.eval(v) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, sub := range c.any {
			if sub.eval(v) {
				return true
			}
		}
		return false
	}
	got, ok := valueAt(v, c.path)
	if !ok {
		return false
	}
	return compare(c.op, got, c.want)
}

// Required reports a violation for every named path whose value is absent
// or nil.
func Required(paths ...string) Rule {
	norm := make([]string, len(paths))
	for i, p := range paths {
		norm[i] = normalize(p)
	}
	return func(v any, at molde.Path) molde.Issues {
		var iss molde.Issues
		for _, p := range norm {
			if got, ok := valueAt(v, p); !ok || got == nil {
				iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindInvalidType, pathOf(at, p), map[string]any{
					"expected": "value", "got": "nil",
				}))
			}
		}
		return iss
	}
}

// AtLeastOne requires the list at path to hold at least one element. A
// missing or non-list value passes; pair it with Required when absence
// itself is a violation.
func AtLeastOne(path string) Rule {
	p := normalize(path)
	return func(v any, at molde.Path) molde.Issues {
		got, ok := valueAt(v, p)
		if !ok {
			return nil
		}
		if list, ok := got.([]any); ok && len(list) == 0 {
			return molde.Issues{molde.NewIssue(molde.KindTooSmall, pathOf(at, p), map[string]any{
				"min": 1, "got": 0,
			})}
		}
		return nil
	}
}

// UniqueBy requires elements of the list at collectionPath to carry distinct
// values at keyPath. Key values compare by their string form, so keep the
// keyed entry a single type across elements.
func UniqueBy(collectionPath, keyPath string) Rule {
	cp := normalize(collectionPath)
	kp := normalize(keyPath)
	return func(v any, at molde.Path) molde.Issues {
		got, ok := valueAt(v, cp)
		if !ok {
			return nil
		}
		list, ok := got.([]any)
		if !ok {
			return nil
		}
		seen := map[string]int{}
		var iss molde.Issues
		for i, el := range list {
			kv, ok := valueAt(el, kp)
			if !ok {
				continue
			}
			key := stringify(kv)
			if first, dup := seen[key]; dup {
				iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindNotUnique, pathOf(at, cp).Index(i), map[string]any{
					"key": key, "first": first, "dup": i,
				}))
				continue
			}
			seen[key] = i
		}
		return iss
	}
}

// ------- value access -------

func normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(p, "/")
}

// valueAt walks a parsed value along a JSON-Pointer style path. Map keys
// match by string form; list elements match by index, or by key for keyed
// Pair entries.
func valueAt(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func step(v any, seg string) (any, bool) {
	switch t := v.(type) {
	case map[string]any:
		out, ok := t[seg]
		return out, ok
	case map[any]any:
		for k, val := range t {
			if stringify(k) == seg {
				return val, true
			}
		}
		return nil, false
	case []any:
		for _, el := range t {
			if p, ok := el.(molde.Pair); ok && stringify(p.Key) == seg {
				return p.Value, true
			}
		}
		if i, err := strconv.Atoi(seg); err == nil && i >= 0 && i < len(t) {
			return t[i], true
		}
		return nil, false
	case molde.Pair:
		return step(t.Value, seg)
	}
	return nil, false
}

func pathOf(at molde.Path, p string) molde.Path {
	if p == "" {
		return at
	}
	for _, seg := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		if i, err := strconv.Atoi(seg); err == nil {
			at = at.Index(i)
			continue
		}
		at = at.Key(seg)
	}
	return at
}

func compare(op Op, got, want any) bool {
	gf, gok := asFloat(got)
	wf, wok := asFloat(want)
	if gok && wok {
		switch op {
		case Eq:
			return gf == wf
		case Ne:
			return gf != wf
		case Lt:
			return gf < wf
		case Le:
			return gf <= wf
		case Gt:
			return gf > wf
		case Ge:
			return gf >= wf
		}
		return false
	}
	switch op {
	case Eq:
		return reflect.DeepEqual(got, want)
	case Ne:
		return !reflect.DeepEqual(got, want)
	}
	gs, ws := stringify(got), stringify(want)
	switch op {
	case Lt:
		return gs < ws
	case Le:
		return gs <= ws
	case Gt:
		return gs > ws
	case Ge:
		return gs >= ws
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func stringify(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(string); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return reflect.TypeOf(v).String()
}
