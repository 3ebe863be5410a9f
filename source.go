package jsonparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// The combinators consume an untyped tree produced by an external decoder.
// The helpers below are convenience front-ends over the decoders this module
// already depends on; any decoder yielding map[string]any works equally well.

// DecodeJSON decodes a single JSON object document into the untyped tree the
// combinators consume. Numbers are preserved as json.Number.
func DecodeJSON(data []byte) (map[string]any, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader is DecodeJSON over an io.Reader.
func DecodeJSONReader(r io.Reader) (map[string]any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("jsonparser: decode json: %w", err)
	}
	// reject trailing content after the first document
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("jsonparser: trailing content after JSON document")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("jsonparser: top-level JSON value is not an object")
	}
	return obj, nil
}

// DecodeYAML decodes a YAML mapping into the same untyped tree, normalizing
// map[any]any nodes into map[string]any so YAML and JSON inputs validate
// through one schema.
func DecodeYAML(data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jsonparser: decode yaml: %w", err)
	}
	obj := yamlAnyToStringMap(v)
	if obj == nil {
		return nil, errors.New("jsonparser: top-level YAML value is not a mapping")
	}
	return obj, nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
