// Package molde validates and coerces dynamically-typed values against
// declarative, immutable schemas.
//
// It provides:
//
//   - A single polymorphic contract (Schema.Parse) shared by every variant
//   - A stable error model via Issues (kind, path, message, structured data)
//   - Composite schemas (map, list, tuple, union) that aggregate every child
//     failure in one pass instead of stopping at the first
//   - Ingestion helpers that decode JSON/YAML bytes into the value shape the
//     engine consumes
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations
//     under internal/.
//   - Place schema builders under dsl/ and message catalogs under i18n/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Map(map[any]molde.Schema{"age": dsl.Number().Ge(0)})
//	v, err := molde.Parse(ctx, s, input)
//	v, err = molde.ParseJSON(ctx, s, data)
//
// Schemas hold configuration only and are never mutated after construction;
// sharing a schema sub-tree across parents or goroutines is safe.
package molde
