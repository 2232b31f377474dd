package molde

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nordskog/molde/i18n"
)

// Issue kinds (exported consts for IDE completion and type safety by convention)
const (
	KindInvalidType      = "invalid_type"
	KindTooSmall         = "too_small"
	KindTooBig           = "too_big"
	KindNotMultipleOf    = "not_multiple_of"
	KindInvalidString    = "invalid_string"
	KindInvalidLiteral   = "invalid_literal"
	KindInvalidUnion     = "invalid_union"
	KindUnrecognizedKeys = "unrecognized_keys"
	KindNotUnique        = "not_unique"
	// Raised when an input cannot be decoded at all, or when a custom
	// schema fails with a plain error instead of Issues.
	KindParseError = "parse_error"
)

// Issue represents a single validation failure.
type Issue struct {
	Kind    string // One of the kinds listed above.
	Path    Path   // Location relative to the root value.
	Message string
	// Data carries structured parameters (e.g., {"min":1, "got":42}) so
	// callers can consume failures without parsing message strings.
	Data map[string]any
}

// NewIssue builds an Issue with its message rendered through the i18n catalog.
func NewIssue(kind string, at Path, data map[string]any) Issue {
	return Issue{Kind: kind, Path: at, Message: i18n.T(kind, data), Data: data}
}

// Issues is a non-empty ordered collection of validation failures. It
// implements error; two collections combine by concatenation in encounter
// order.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_small at /age
		fmt.Fprintf(b, "%s at %s", it.Kind, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ParseFailure is the panic value raised by MustParse. It renders every issue
// on its own line with the failing path appended.
type ParseFailure struct {
	Issues Issues
}

func (e *ParseFailure) Error() string {
	lines := make([]string, len(e.Issues))
	for i, it := range e.Issues {
		lines[i] = it.Message + " (in path " + it.Path.String() + ")"
	}
	return strings.Join(lines, "\n")
}
