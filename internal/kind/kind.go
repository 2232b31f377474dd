// Package kind classifies runtime values into the categories the engine
// reasons about. Every invalid_type issue names categories from this set.
package kind

import (
	"encoding/json"
	"reflect"

	molde "github.com/nordskog/molde"
)

// Kind represents the runtime category of an input value.
type Kind int

const (
	Unknown Kind = iota
	Nil
	Bool
	Number
	String
	List
	Map
	Pair
)

func (k Kind) String() string {
	switch k {
	case Nil:
		return "nil"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case Map:
		return "map"
	case Pair:
		return "pair"
	default:
		return "unknown"
	}
}

// Of reports the category of v. json.Number counts as a number; Pair is the
// engine's explicit key/value entry. Unrecognized types (structs, channels,
// functions) classify as Unknown.
func Of(v any) Kind {
	switch v.(type) {
	case nil:
		return Nil
	case bool:
		return Bool
	case string:
		return String
	case json.Number:
		return Number
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Number
	case molde.Pair:
		return Pair
	case []any:
		return List
	case map[string]any, map[any]any:
		return Map
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return List
	case reflect.Map:
		return Map
	case reflect.String:
		return String
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number
	default:
		return Unknown
	}
}
