package jsonparser

// Package jsonparser provides:
//
// - Applicative combinators for extracting typed records out of decoded JSON trees
// - One-pass accumulation of every failing field via the Result applicative (result/)
// - A self-describing spec map (field key -> description) derived from the combinators
// - Convenience decoders over goccy/go-json and yaml.v3 producing the untyped input tree
//
// Design policy:
// - Keep the public combinator API in the root package; keep the generic
//   Result algebra under result/ so Value/Field/Parser code reads without prefixes.
// - All descriptors (Value, Field, Parser) are immutable after construction
//   and safe for concurrent reuse; parsing never mutates input or descriptor.
// - All invalid input is reported in-band as Issues; no panics.
//
// Typical usage:
//
//	name := jsonparser.ForKey("Name", "name", jsonparser.String())
//	p := jsonparser.Apply(jsonparser.Pure(func(s string) Food { return Food{Name: s} }), name)
//	res := p.Parse(obj)
//	spec := p.Spec()
