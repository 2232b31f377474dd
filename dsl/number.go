package dsl

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	molde "github.com/nordskog/molde"
)

// NumberSchema validates numeric inputs: native Go integers and floats plus
// json.Number (the shape FromJSON produces). Bounds are all evaluated
// independently; lt/gt are strict, le/ge inclusive.
type NumberSchema struct {
	lt, le, gt, ge *float64
	intOnly        bool
	step           *int64
}

var _ molde.Schema = NumberSchema{}

// Number returns an unconstrained number schema.
func Number() NumberSchema { return NumberSchema{} }

// Lt sets a strict upper bound.
func (s NumberSchema) Lt(v float64) NumberSchema { s.lt = &v; return s }

// Le sets an inclusive upper bound.
func (s NumberSchema) Le(v float64) NumberSchema { s.le = &v; return s }

// Gt sets a strict lower bound.
func (s NumberSchema) Gt(v float64) NumberSchema { s.gt = &v; return s }

// Ge sets an inclusive lower bound.
func (s NumberSchema) Ge(v float64) NumberSchema { s.ge = &v; return s }

// Int requires the value to be integral.
func (s NumberSchema) Int() NumberSchema { s.intOnly = true; return s }

// Step requires the value to be a multiple of n. Step implies Int.
func (s NumberSchema) Step(n int64) NumberSchema {
	s.step = &n
	s.intOnly = true
	return s
}

func (s NumberSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	num, ok := numeric(v)
	if !ok {
		return nil, molde.Issues{typeIssue(at, "number", v)}
	}
	var iss molde.Issues
	if s.gt != nil && num.f <= *s.gt {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindTooSmall, at, map[string]any{"gt": *s.gt, "got": num.canonical}))
	}
	if s.ge != nil && num.f < *s.ge {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindTooSmall, at, map[string]any{"min": *s.ge, "got": num.canonical}))
	}
	if s.lt != nil && num.f >= *s.lt {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindTooBig, at, map[string]any{"lt": *s.lt, "got": num.canonical}))
	}
	if s.le != nil && num.f > *s.le {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindTooBig, at, map[string]any{"max": *s.le, "got": num.canonical}))
	}
	// The integer check merges with other violations instead of short-circuiting.
	if s.intOnly && !num.integral {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindInvalidType, at, map[string]any{"expected": "integer", "got": "float"}))
	}
	// The step check only applies to integral values. Values outside the
	// int64 range cannot be verified and fail the check.
	if s.step != nil && num.integral && *s.step != 0 && (!num.exact || num.i%*s.step != 0) {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindNotMultipleOf, at, map[string]any{"multiple_of": *s.step, "got": num.canonical}))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return num.canonical, nil
}

type real interface {
	constraints.Integer | constraints.Float
}

// num is the uniform numeric view of an input value. canonical is what a
// successful parse returns: native numerics stay as given, json.Number
// coerces to int64 or float64. i is only meaningful when exact is set; a
// uint64 above MaxInt64 or a huge integral float does not fit.
type num struct {
	f         float64
	i         int64
	integral  bool
	exact     bool
	canonical any
}

func intNum[T constraints.Integer](v T, canonical any) (num, bool) {
	i := int64(v)
	// Only a uint64-sized value above MaxInt64 wraps; it flips the sign.
	return num{f: float64(v), i: i, integral: true, exact: (i < 0) == (v < 0), canonical: canonical}, true
}

const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0 // 1<<63; anything at or above overflows int64
)

func floatNum[T constraints.Float](v T, canonical any) (num, bool) {
	f := float64(v)
	n := num{f: f, integral: math.Trunc(f) == f, canonical: canonical}
	if n.integral && f >= minInt64Float && f < maxInt64Float {
		n.i = int64(f)
		n.exact = true
	}
	return n, true
}

func numeric(v any) (num, bool) {
	switch t := v.(type) {
	case int:
		return intNum(t, t)
	case int8:
		return intNum(t, t)
	case int16:
		return intNum(t, t)
	case int32:
		return intNum(t, t)
	case int64:
		return intNum(t, t)
	case uint:
		return intNum(t, t)
	case uint8:
		return intNum(t, t)
	case uint16:
		return intNum(t, t)
	case uint32:
		return intNum(t, t)
	case uint64:
		return intNum(t, t)
	case float32:
		return floatNum(t, t)
	case float64:
		return floatNum(t, t)
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return intNum(i, i)
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return floatNum(f, f)
		}
	}
	return num{}, false
}
