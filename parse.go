package molde

import "context"

// Parse is the primary entry point: it evaluates s against v with an empty
// path. On failure the returned error is an Issues collection describing every
// violation, not just the first one.
func Parse(ctx context.Context, s Schema, v any) (any, error) {
	if s == nil {
		panic("molde: nil schema")
	}
	out, err := s.Parse(ctx, v, nil)
	if err == nil {
		return out, nil
	}
	if iss, ok := AsIssues(err); ok {
		return nil, iss
	}
	// External Schema implementations may fail with a plain error; it
	// surfaces as a parse_error issue, same as inside a composite.
	return nil, Issues{NewIssue(KindParseError, nil, map[string]any{"error": err.Error()})}
}

// MustParse is the raising variant of Parse. On failure it panics with a
// *ParseFailure carrying the full issue collection; each issue renders as
// "message (in path /p)" on its own line.
func MustParse(ctx context.Context, s Schema, v any) any {
	out, err := Parse(ctx, s, v)
	if err == nil {
		return out
	}
	if iss, ok := AsIssues(err); ok {
		panic(&ParseFailure{Issues: iss})
	}
	panic(err)
}

// Is reports whether v conforms to the schema s.
func Is(ctx context.Context, s Schema, v any) bool {
	_, err := Parse(ctx, s, v)
	return err == nil
}
