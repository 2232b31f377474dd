package molde

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a sub-value within the root input as a sequence of string keys
// and non-negative integer indices. The zero value addresses the root.
type Path []any

// With returns a new Path extended by one segment. The receiver's backing
// array is never shared with the result, so sibling fan-outs cannot alias.
func (p Path) With(seg any) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = seg
	return child
}

// Key extends the path with a string key.
func (p Path) Key(k string) Path { return p.With(k) }

// Index extends the path with an element index.
func (p Path) Index(i int) Path { return p.With(i) }

// String renders the path in JSON-Pointer style (for example: /items/2/price).
// The root path renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case string:
			b.WriteString(s)
		case int:
			b.WriteString(strconv.Itoa(s))
		default:
			fmt.Fprintf(b, "%v", s)
		}
	}
	return b.String()
}
