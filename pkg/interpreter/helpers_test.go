package interpreter

import (
	"strconv"
	"testing"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

type captureSink struct {
	lines []string
}

func (s *captureSink) Emit(line string) {
	s.lines = append(s.lines, line)
}

type cannedSource struct {
	answers []string
	next    int
}

func (s *cannedSource) Request(message, fallback string) string {
	if s.next < len(s.answers) {
		answer := s.answers[s.next]
		s.next++
		return answer
	}
	return fallback
}

func newTestInterp() (*Interpreter, *captureSink) {
	sink := &captureSink{}
	return New(sink, &cannedSource{}), sink
}

// el builds an interior node; leaf a text node. A literal operand is
// written as a leaf block, the way marl documents spell literals.
func el(tag string, children ...*markup.Node) *markup.Node {
	return markup.El(tag, nil, children...)
}

func leaf(tag, text string) *markup.Node {
	return markup.Leaf(tag, text)
}

func lit(text string) *markup.Node {
	return markup.Leaf("block", text)
}

func num(v float64) *markup.Node {
	return lit(strconv.FormatFloat(v, 'f', -1, 64))
}

func mustEval(t *testing.T, i *Interpreter, node *markup.Node, env *runtime.Environment) runtime.Value {
	t.Helper()
	val, err := i.Evaluate(node, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return val
}

func evalKind(t *testing.T, i *Interpreter, node *markup.Node, env *runtime.Environment) ErrorKind {
	t.Helper()
	_, err := i.Evaluate(node, env)
	if err == nil {
		t.Fatalf("expected an error evaluating <%s>", node.Tag)
	}
	kind := KindOf(err)
	if kind == "" {
		t.Fatalf("expected an EvalError, got %T: %v", err, err)
	}
	return kind
}

func asNumber(t *testing.T, val runtime.Value) float64 {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok {
		t.Fatalf("expected number, got %#v", val)
	}
	return num.Val
}

func asString(t *testing.T, val runtime.Value) string {
	t.Helper()
	str, ok := val.(runtime.StringValue)
	if !ok {
		t.Fatalf("expected string, got %#v", val)
	}
	return str.Val
}

func asBool(t *testing.T, val runtime.Value) bool {
	t.Helper()
	b, ok := val.(runtime.BoolValue)
	if !ok {
		t.Fatalf("expected bool, got %#v", val)
	}
	return b.Val
}

func asList(t *testing.T, val runtime.Value) *runtime.ListValue {
	t.Helper()
	list, ok := val.(*runtime.ListValue)
	if !ok {
		t.Fatalf("expected list, got %#v", val)
	}
	return list
}
