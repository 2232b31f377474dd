package dsl

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	molde "github.com/nordskog/molde"
)

// StringSchema validates string inputs. The zero value accepts any string;
// configured constraints are all evaluated independently, so a failing input
// reports every violated constraint at once.
type StringSchema struct {
	minLen, maxLen, exactLen *int
	pattern                  *regexp.Regexp
	checkUTF8                bool
	checkUUID                bool
}

var _ molde.Schema = StringSchema{}

// String returns an unconstrained string schema.
func String() StringSchema { return StringSchema{} }

// Min sets the minimum length (inclusive, in runes).
func (s StringSchema) Min(n int) StringSchema { s.minLen = &n; return s }

// Max sets the maximum length (inclusive, in runes).
func (s StringSchema) Max(n int) StringSchema { s.maxLen = &n; return s }

// Length requires an exact length (in runes).
func (s StringSchema) Length(n int) StringSchema { s.exactLen = &n; return s }

// Regex requires the string to match pattern. It panics when the pattern does
// not compile; malformed schema configuration is a construction-time error.
func (s StringSchema) Regex(pattern string) StringSchema {
	s.pattern = regexp.MustCompile(pattern)
	return s
}

// ValidUTF8 requires the string to be well-formed UTF-8.
func (s StringSchema) ValidUTF8() StringSchema { s.checkUTF8 = true; return s }

// UUID requires the string to parse as a UUID.
func (s StringSchema) UUID() StringSchema { s.checkUUID = true; return s }

func (s StringSchema) Parse(ctx context.Context, v any, at molde.Path) (any, error) {
	sv, ok := v.(string)
	if !ok {
		return nil, molde.Issues{typeIssue(at, "string", v)}
	}
	var iss molde.Issues
	n := utf8.RuneCountInString(sv)
	if s.exactLen != nil && n != *s.exactLen {
		k := molde.KindTooSmall
		if n > *s.exactLen {
			k = molde.KindTooBig
		}
		iss = molde.AppendIssues(iss, molde.NewIssue(k, at, map[string]any{"length": *s.exactLen, "got": n}))
	}
	if s.minLen != nil && n < *s.minLen {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindTooSmall, at, map[string]any{"min": *s.minLen, "got": n}))
	}
	if s.maxLen != nil && n > *s.maxLen {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindTooBig, at, map[string]any{"max": *s.maxLen, "got": n}))
	}
	if s.checkUTF8 && !utf8.ValidString(sv) {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindInvalidString, at, map[string]any{"validation": "utf8"}))
	}
	if s.pattern != nil && !s.pattern.MatchString(sv) {
		iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindInvalidString, at, map[string]any{"validation": "pattern", "pattern": s.pattern.String()}))
	}
	if s.checkUUID {
		if _, err := uuid.Parse(sv); err != nil {
			iss = molde.AppendIssues(iss, molde.NewIssue(molde.KindInvalidString, at, map[string]any{"validation": "uuid"}))
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return sv, nil
}
