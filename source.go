package molde

import (
	"bytes"
	"context"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes JSON bytes into the dynamic value shape the engine
// consumes (map[string]any, []any, json.Number, string, bool, nil). Numbers
// are preserved as json.Number so integer/float distinctions survive decoding.
// Decode failures surface as a single parse_error issue.
func FromJSON(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{NewIssue(KindParseError, nil, map[string]any{"error": err.Error()})}
	}
	return v, nil
}

// FromYAML decodes YAML bytes into the dynamic value shape the engine
// consumes.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, Issues{NewIssue(KindParseError, nil, map[string]any{"error": err.Error()})}
	}
	return v, nil
}

// ParseJSON decodes JSON bytes and evaluates s against the result.
func ParseJSON(ctx context.Context, s Schema, data []byte) (any, error) {
	v, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, s, v)
}

// ParseYAML decodes YAML bytes and evaluates s against the result.
func ParseYAML(ctx context.Context, s Schema, data []byte) (any, error) {
	v, err := FromYAML(data)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, s, v)
}
