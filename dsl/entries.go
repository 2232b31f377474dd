package dsl

import (
	"fmt"
	"reflect"
	"sort"

	molde "github.com/nordskog/molde"
)

// entry is a normalized element of an ordered input: keyed when it carries
// its own key (mapping origin or an explicit Pair), positional otherwise.
type entry struct {
	key   any
	val   any
	keyed bool
}

// sequenceEntries normalizes an ordered sequence: Pair elements become keyed
// entries, everything else keeps its positional index as key.
func sequenceEntries(seq []any) []entry {
	out := make([]entry, len(seq))
	for i, el := range seq {
		if p, ok := el.(molde.Pair); ok {
			out[i] = entry{key: p.Key, val: p.Value, keyed: true}
			continue
		}
		out[i] = entry{key: i, val: el}
	}
	return out
}

// mappingEntries flattens a keyed mapping into keyed entries. Entries are
// ordered by the string form of their keys so evaluation stays deterministic.
func mappingEntries(v any) ([]entry, bool) {
	switch m := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]entry, len(keys))
		for i, k := range keys {
			out[i] = entry{key: k, val: m[k], keyed: true}
		}
		return out, true
	case map[any]any:
		keys := make([]any, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return stringForm(keys[i]) < stringForm(keys[j]) })
		out := make([]entry, len(keys))
		for i, k := range keys {
			out[i] = entry{key: k, val: m[k], keyed: true}
		}
		return out, true
	}
	return nil, false
}

// stringForm renders a key for coercible-key matching and deterministic
// ordering.
func stringForm(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}

// canKey reports whether k can index a Go map.
func canKey(k any) bool {
	if k == nil {
		return true
	}
	return reflect.TypeOf(k).Comparable()
}
