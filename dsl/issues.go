package dsl

import (
	molde "github.com/nordskog/molde"
	"github.com/nordskog/molde/internal/kind"
)

// typeIssue builds the invalid_type issue every shape guard produces.
func typeIssue(at molde.Path, expected string, got any) molde.Issue {
	return molde.NewIssue(molde.KindInvalidType, at, map[string]any{
		"expected": expected,
		"got":      kind.Of(got).String(),
	})
}

// childIssues extracts a child schema's Issues. Plain errors from custom
// schemas are wrapped so composites always aggregate Issues.
func childIssues(err error, at molde.Path) molde.Issues {
	if iss, ok := molde.AsIssues(err); ok {
		return iss
	}
	return molde.Issues{molde.NewIssue(molde.KindParseError, at, map[string]any{"error": err.Error()})}
}
