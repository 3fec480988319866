package interpreter

import (
	"testing"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

func TestStringifyScalars(t *testing.T) {
	cases := []struct {
		val  runtime.Value
		want string
	}{
		{runtime.NullValue{}, "null"},
		{runtime.BoolValue{Val: true}, "true"},
		{runtime.BoolValue{Val: false}, "false"},
		{runtime.NumberValue{Val: 3}, "3"},
		{runtime.NumberValue{Val: 1.5}, "1.5"},
		{runtime.NumberValue{Val: -0.25}, "-0.25"},
		{runtime.StringValue{Val: "plain"}, "plain"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.val); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestStringifyContainers(t *testing.T) {
	list := &runtime.ListValue{Elements: []runtime.Value{
		runtime.NumberValue{Val: 1},
		runtime.StringValue{Val: "two"},
		&runtime.ListValue{Elements: []runtime.Value{runtime.BoolValue{Val: true}}},
	}}
	if got := Stringify(list); got != "[1, two, [true]]" {
		t.Fatalf("unexpected list rendering %q", got)
	}

	object := runtime.NewObject()
	object.Entries["b"] = runtime.NumberValue{Val: 2}
	object.Entries["a"] = runtime.NumberValue{Val: 1}
	if got := Stringify(object); got != "{a: 1, b: 2}" {
		t.Fatalf("object keys must render sorted, got %q", got)
	}
}

func TestStringifyFunction(t *testing.T) {
	fn := &runtime.FunctionValue{Params: []string{"a", "b"}, Body: markup.Leaf("block", "")}
	if got := Stringify(fn); got != "<func (a, b)>" {
		t.Fatalf("unexpected function rendering %q", got)
	}
}
