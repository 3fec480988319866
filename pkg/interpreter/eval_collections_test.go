package interpreter

import (
	"testing"

	"marl/interpreter-go/pkg/runtime"
)

func listOfNumbers(vals ...float64) *runtime.ListValue {
	list := &runtime.ListValue{Elements: make([]runtime.Value, 0, len(vals))}
	for _, v := range vals {
		list.Elements = append(list.Elements, runtime.NumberValue{Val: v})
	}
	return list
}

func TestConcatStringifies(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	env.Define("xs", listOfNumbers(1, 2))

	got := asString(t, mustEval(t, interp, el("concat", lit("n="), num(4), el("var", lit("xs"))), env))
	if got != "n=4[1, 2]" {
		t.Fatalf("unexpected concat output %q", got)
	}
}

func TestSplit(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	list := asList(t, mustEval(t, interp, el("split", lit("a,b,c"), lit(",")), env))
	if len(list.Elements) != 3 || asString(t, list.Elements[1]) != "b" {
		t.Fatalf("unexpected split result %#v", list.Elements)
	}
}

func TestLen(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	env.Define("xs", listOfNumbers(1, 2, 3))

	if got := asNumber(t, mustEval(t, interp, el("len", lit("héllo")), env)); got != 5 {
		t.Fatalf("string length counts runes, got %v", got)
	}
	if got := asNumber(t, mustEval(t, interp, el("len", el("var", lit("xs"))), env)); got != 3 {
		t.Fatalf("list length, got %v", got)
	}
	if kind := evalKind(t, interp, el("len", num(4)), env); kind != ErrTypeMismatch {
		t.Fatalf("expected TypeMismatch, got %s", kind)
	}
}

func TestAppendLeavesSourceUntouched(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	source := listOfNumbers(1, 2)
	env.Define("xs", source)

	grown := asList(t, mustEval(t, interp, el("append", el("var", lit("xs")), num(3)), env))
	if len(grown.Elements) != 3 || asNumber(t, grown.Elements[2]) != 3 {
		t.Fatalf("unexpected append result %#v", grown.Elements)
	}
	if len(source.Elements) != 2 {
		t.Fatalf("append must not mutate the source list")
	}
}

func TestFstLst(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	env.Define("xs", listOfNumbers(7, 8, 9))
	env.Define("empty", &runtime.ListValue{})

	if got := asNumber(t, mustEval(t, interp, el("fst", el("var", lit("xs"))), env)); got != 7 {
		t.Fatalf("fst returned %v", got)
	}
	if got := asNumber(t, mustEval(t, interp, el("lst", el("var", lit("xs"))), env)); got != 9 {
		t.Fatalf("lst returned %v", got)
	}
	if kind := evalKind(t, interp, el("fst", el("var", lit("empty"))), env); kind != ErrEmptyCollection {
		t.Fatalf("expected EmptyCollection, got %s", kind)
	}
}

func TestSliceListAndString(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	env.Define("xs", listOfNumbers(0, 1, 2, 3, 4))

	list := asList(t, mustEval(t, interp, el("slice", el("var", lit("xs")), num(1), num(3)), env))
	if len(list.Elements) != 2 || asNumber(t, list.Elements[0]) != 1 {
		t.Fatalf("unexpected list slice %#v", list.Elements)
	}
	got := asString(t, mustEval(t, interp, el("slice", lit("abcdef"), num(2), num(4)), env))
	if got != "cd" {
		t.Fatalf("unexpected string slice %q", got)
	}
	// Out-of-range bounds clamp.
	got = asString(t, mustEval(t, interp, el("slice", lit("abc"), num(-5), num(99)), env))
	if got != "abc" {
		t.Fatalf("expected clamped slice, got %q", got)
	}
	if kind := evalKind(t, interp, el("slice", num(1), num(0), num(1)), env); kind != ErrTypeMismatch {
		t.Fatalf("expected TypeMismatch, got %s", kind)
	}
}

// idx with a write operand returns the new value and mutates the list
// in place, observed through every binding of the same list.
func TestIdxWriteRoundTrip(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	shared := listOfNumbers(1, 2, 3)
	env.Define("xs", shared)
	env.Define("alias", shared)

	got := asNumber(t, mustEval(t, interp, el("idx", el("var", lit("xs")), num(0), num(99)), env))
	if got != 99 {
		t.Fatalf("idx write must return the written value, got %v", got)
	}
	through := asNumber(t, mustEval(t, interp, el("idx", el("var", lit("alias")), num(0)), env))
	if through != 99 {
		t.Fatalf("write must be visible through the alias, got %v", through)
	}
}

func TestIdxBoundsAndStringAccess(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	env.Define("xs", listOfNumbers(1))

	if kind := evalKind(t, interp, el("idx", el("var", lit("xs")), num(5)), env); kind != ErrIndexOutOfBounds {
		t.Fatalf("expected IndexOutOfBounds, got %s", kind)
	}
	got := asString(t, mustEval(t, interp, el("idx", lit("héllo"), num(1)), env))
	if got != "é" {
		t.Fatalf("unexpected character %q", got)
	}
	if kind := evalKind(t, interp, el("idx", lit("ab"), num(2)), env); kind != ErrIndexOutOfBounds {
		t.Fatalf("expected IndexOutOfBounds for index == length, got %s", kind)
	}
	if kind := evalKind(t, interp, el("idx", lit("ab"), num(0), num(9)), env); kind != ErrTypeMismatch {
		t.Fatalf("strings are read-only, got %s", kind)
	}
	if kind := evalKind(t, interp, el("idx", num(3), num(0)), env); kind != ErrTypeMismatch {
		t.Fatalf("expected TypeMismatch, got %s", kind)
	}
}

func TestObjKeyHasKey(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()

	pairs := el("append",
		el("append", el("tuple", el("tuple", lit("a"), num(1)), el("tuple", lit("b"), num(2))), // [["a",1],["b",2]]
			el("tuple", lit("c"), num(3))),
		el("tuple", lit("d"), num(4)),
	)
	mustEval(t, interp, el("def", lit("o"), el("obj", pairs)), env)

	if got := asNumber(t, mustEval(t, interp, el("key", el("var", lit("o")), lit("c")), env)); got != 3 {
		t.Fatalf("key read returned %v", got)
	}
	// A keyed write lands before the read.
	if got := asNumber(t, mustEval(t, interp, el("key", el("var", lit("o")), lit("z"), num(9)), env)); got != 9 {
		t.Fatalf("key write returned %v", got)
	}
	if !asBool(t, mustEval(t, interp, el("has-key", el("var", lit("o")), lit("z")), env)) {
		t.Fatalf("expected z present after write")
	}
	if kind := evalKind(t, interp, el("key", el("var", lit("o")), lit("missing")), env); kind != ErrKeyNotFound {
		t.Fatalf("expected KeyNotFound, got %s", kind)
	}
}

func TestObjRejectsMalformedPairs(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	env.Define("bad", listOfNumbers(1, 2))

	if kind := evalKind(t, interp, el("obj", el("var", lit("bad"))), env); kind != ErrInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %s", kind)
	}
	if kind := evalKind(t, interp, el("obj", num(1)), env); kind != ErrInvalidArgument {
		t.Fatalf("expected InvalidArgument for a non-list operand, got %s", kind)
	}
}

func TestTuple(t *testing.T) {
	interp, _ := newTestInterp()
	env := runtime.NewEnvironment()
	list := asList(t, mustEval(t, interp, el("tuple", num(1), lit("two")), env))
	if len(list.Elements) != 2 || asString(t, list.Elements[1]) != "two" {
		t.Fatalf("unexpected tuple %#v", list.Elements)
	}
}
