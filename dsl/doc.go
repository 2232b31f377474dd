// Package dsl provides the construction surface for every schema variant:
// leaf schemas (String, Number, Bool, Literal, Any, Never), composites
// (Tuple, List, Map, Union), and combinators (Default, Transform).
//
// Builders are immutable: every chaining method returns a modified copy, so a
// configured schema can be shared across parents and goroutines freely.
// Malformed configuration (nil children, unions with fewer than two
// alternatives, patterns that do not compile) panics at construction time;
// such mistakes are programmer errors, never validation issues.
package dsl
