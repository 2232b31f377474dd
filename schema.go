package molde

import "context"

// Schema is the contract every variant implements. Parse validates v, coerces
// it into its canonical representation, and returns either the parsed value or
// an Issues error carrying every violation found.
//
// at locates v within the root input; implementations extend it by exactly one
// segment per recursion level when descending into children. Evaluation is
// synchronous, single-pass, and free of side effects.
//
// Any external type implementing Schema participates in composition (as a
// map/list/tuple child or union alternative); the engine dispatches through
// this interface alone.
type Schema interface {
	Parse(ctx context.Context, v any, at Path) (any, error)
}

// Pair is an explicit key/value entry. List and map coercion treat a Pair
// element of an ordered sequence as a keyed entry, and keyed list results
// preserve their reconciled keys as Pairs.
type Pair struct {
	Key   any
	Value any
}

// ForeignKeyPolicy controls how map keys absent from the declared key set are
// handled once every declared-key evaluation has succeeded.
type ForeignKeyPolicy int

const (
	ForeignStrip       ForeignKeyPolicy = iota // Drop foreign keys.
	ForeignStrict                              // Reject foreign keys with an unrecognized_keys issue.
	ForeignPassthrough                         // Preserve foreign keys verbatim in the result.
)

func (p ForeignKeyPolicy) String() string {
	switch p {
	case ForeignStrict:
		return "strict"
	case ForeignPassthrough:
		return "passthrough"
	default:
		return "strip"
	}
}
