package jsonparser_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	jp "github.com/ChrisAU/JSONParser"
)

// TestValue_Primitives covers type acceptance for each primitive Value, with
// decoder variations (json.Number vs float64) for numbers.
func TestValue_Primitives(t *testing.T) {
	if v, ok := jp.String().Parse("hello"); !ok || v != "hello" {
		t.Fatalf("string parse ok expected, got v=%v ok=%v", v, ok)
	}
	if _, ok := jp.String().Parse(1); ok {
		t.Fatalf("expected mismatch for non-string")
	}

	if v, ok := jp.Bool().Parse(true); !ok || v != true {
		t.Fatalf("bool parse ok expected, got v=%v ok=%v", v, ok)
	}
	if _, ok := jp.Bool().Parse("nope"); ok {
		t.Fatalf("expected mismatch for non-bool")
	}

	if v, ok := jp.Int().Parse(json.Number("42")); !ok || v != 42 {
		t.Fatalf("int from json.Number expected 42, got v=%v ok=%v", v, ok)
	}
	if v, ok := jp.Int().Parse(float64(7)); !ok || v != 7 {
		t.Fatalf("int from integral float64 expected 7, got v=%v ok=%v", v, ok)
	}
	if _, ok := jp.Int().Parse(7.5); ok {
		t.Fatalf("fractional number must not convert to int")
	}
	if _, ok := jp.Int().Parse("7"); ok {
		t.Fatalf("string must not convert to int")
	}

	if v, ok := jp.Float().Parse(json.Number("1.25")); !ok || v != 1.25 {
		t.Fatalf("float from json.Number expected 1.25, got v=%v ok=%v", v, ok)
	}
	if n, ok := jp.Number().Parse(float64(1.5)); !ok || n.String() != "1.5" {
		t.Fatalf("number from float64 expected 1.5, got %v ok=%v", n, ok)
	}

	if _, ok := jp.Object().Parse(map[string]any{"a": 1}); !ok {
		t.Fatalf("object parse expected ok")
	}
	if _, ok := jp.Array().Parse([]any{1, 2}); !ok {
		t.Fatalf("array parse expected ok")
	}
	if _, ok := jp.Array().Parse("not-an-array"); ok {
		t.Fatalf("expected mismatch for non-array")
	}
}

func TestValue_Date(t *testing.T) {
	d := jp.Date("02-01-2006")
	got, ok := d.Parse("21-07-1987")
	if !ok {
		t.Fatalf("expected valid date")
	}
	want := time.Date(1987, time.July, 21, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if _, ok := d.Parse("1987-07-21"); ok {
		t.Fatalf("wrong layout must not parse")
	}
	if _, ok := d.Parse(21); ok {
		t.Fatalf("non-string must not parse")
	}
	if !strings.Contains(d.Description(), "02-01-2006") {
		t.Fatalf("date description must carry the layout: %q", d.Description())
	}
}

// TestValue_Check verifies refinement behavior and the ", " description join.
func TestValue_Check(t *testing.T) {
	pos := jp.Int().Check("> 0", func(n int) bool { return n > 0 })
	if v, ok := pos.Parse(json.Number("1")); !ok || v != 1 {
		t.Fatalf("passing refinement expected ok, got v=%v ok=%v", v, ok)
	}
	if _, ok := pos.Parse(json.Number("0")); ok {
		t.Fatalf("failing refinement must look like a mismatch")
	}
	if got := pos.Description(); got != "Int, > 0" {
		t.Fatalf("check description expected %q, got %q", "Int, > 0", got)
	}
	// refinements stack left to right
	small := pos.Check("< 10", func(n int) bool { return n < 10 })
	if got := small.Description(); got != "Int, > 0, < 10" {
		t.Fatalf("stacked description expected %q, got %q", "Int, > 0, < 10", got)
	}
	if _, ok := small.Parse(json.Number("12")); ok {
		t.Fatalf("second refinement must apply")
	}
}

// TestValue_MapAndFlatMap verifies the " -> " description join and that
// FlatMap behaves exactly like Map.
func TestValue_MapAndFlatMap(t *testing.T) {
	upper := jp.Map(jp.String(), "uppercased", strings.ToUpper)
	if v, ok := upper.Parse("abc"); !ok || v != "ABC" {
		t.Fatalf("map expected ABC, got v=%v ok=%v", v, ok)
	}
	if got := upper.Description(); got != "String -> uppercased" {
		t.Fatalf("map description expected %q, got %q", "String -> uppercased", got)
	}

	fm := jp.FlatMap(jp.String(), "uppercased", strings.ToUpper)
	if fm.Description() != upper.Description() {
		t.Fatalf("flatMap description must match map")
	}
	v1, ok1 := upper.Parse("abc")
	v2, ok2 := fm.Parse("abc")
	if v1 != v2 || ok1 != ok2 {
		t.Fatalf("flatMap must behave identically to map")
	}
	if _, ok := fm.Parse(1); ok {
		t.Fatalf("flatMap over mismatch must fail like map")
	}
}

// Descriptors must be reusable: composing a derived Value never changes the
// original.
func TestValue_CompositionDoesNotMutate(t *testing.T) {
	base := jp.Int()
	_ = base.Check("> 0", func(n int) bool { return n > 0 })
	_ = jp.Map(base, "doubled", func(n int) int { return n * 2 })
	if base.Description() != "Int" {
		t.Fatalf("base description mutated: %q", base.Description())
	}
	if v, ok := base.Parse(json.Number("-5")); !ok || v != -5 {
		t.Fatalf("base behavior mutated: v=%v ok=%v", v, ok)
	}
}
