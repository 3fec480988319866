package interpreter

import (
	"strings"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evalConcat(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := atLeastArgs("concat", node, 2); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, val := range vals {
		b.WriteString(Stringify(val))
	}
	return runtime.StringValue{Val: b.String()}, nil
}

func (i *Interpreter) evalSplit(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("split", node, 2); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	subject, ok := vals[0].(runtime.StringValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, "split", "first operand must be a string, got %s", vals[0].Kind())
	}
	sep, ok := vals[1].(runtime.StringValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, "split", "separator must be a string, got %s", vals[1].Kind())
	}
	parts := strings.Split(subject.Val, sep.Val)
	list := &runtime.ListValue{Elements: make([]runtime.Value, 0, len(parts))}
	for _, part := range parts {
		list.Elements = append(list.Elements, runtime.StringValue{Val: part})
	}
	return list, nil
}

func (i *Interpreter) evalLen(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("len", node, 1); err != nil {
		return nil, err
	}
	val, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	switch v := val.(type) {
	case runtime.StringValue:
		return runtime.NumberValue{Val: float64(len([]rune(v.Val)))}, nil
	case *runtime.ListValue:
		return runtime.NumberValue{Val: float64(len(v.Elements))}, nil
	default:
		return nil, failf(ErrTypeMismatch, "len", "operand must be a string or list, got %s", val.Kind())
	}
}

// evalAppend returns a new list; the source list is left untouched.
func (i *Interpreter) evalAppend(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("append", node, 2); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	list, ok := vals[0].(*runtime.ListValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, "append", "first operand must be a list, got %s", vals[0].Kind())
	}
	elements := make([]runtime.Value, 0, len(list.Elements)+1)
	elements = append(elements, list.Elements...)
	elements = append(elements, vals[1])
	return &runtime.ListValue{Elements: elements}, nil
}

func (i *Interpreter) evalFst(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.edgeElement("fst", node, env, false)
}

func (i *Interpreter) evalLst(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.edgeElement("lst", node, env, true)
}

func (i *Interpreter) edgeElement(op string, node *markup.Node, env *runtime.Environment, last bool) (runtime.Value, error) {
	if err := exactArgs(op, node, 1); err != nil {
		return nil, err
	}
	val, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	list, ok := val.(*runtime.ListValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, op, "operand must be a list, got %s", val.Kind())
	}
	if len(list.Elements) == 0 {
		return nil, failf(ErrEmptyCollection, op, "list is empty")
	}
	if last {
		return list.Elements[len(list.Elements)-1], nil
	}
	return list.Elements[0], nil
}

// evalSlice extracts a sub-range of a list or string. Bounds are
// clamped to the subject's length.
func (i *Interpreter) evalSlice(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("slice", node, 3); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	start, err := numberOperand("slice", vals[1])
	if err != nil {
		return nil, err
	}
	stop, err := numberOperand("slice", vals[2])
	if err != nil {
		return nil, err
	}
	switch subject := vals[0].(type) {
	case *runtime.ListValue:
		lo, hi := clampRange(int(start), int(stop), len(subject.Elements))
		elements := make([]runtime.Value, hi-lo)
		copy(elements, subject.Elements[lo:hi])
		return &runtime.ListValue{Elements: elements}, nil
	case runtime.StringValue:
		runes := []rune(subject.Val)
		lo, hi := clampRange(int(start), int(stop), len(runes))
		return runtime.StringValue{Val: string(runes[lo:hi])}, nil
	default:
		return nil, failf(ErrTypeMismatch, "slice", "operand must be a list or string, got %s", vals[0].Kind())
	}
}

func clampRange(lo, hi, length int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > length {
		hi = length
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// evalIdx reads (and for lists, optionally writes) a single position.
// List writes mutate the shared list in place; strings are read-only.
func (i *Interpreter) evalIdx(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := rangeArgs("idx", node, 2, 3); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	index, err := numberOperand("idx", vals[1])
	if err != nil {
		return nil, err
	}
	at := int(index)
	switch subject := vals[0].(type) {
	case *runtime.ListValue:
		if at < 0 || at >= len(subject.Elements) {
			return nil, failf(ErrIndexOutOfBounds, "idx", "index %d outside list of length %d", at, len(subject.Elements))
		}
		if len(vals) == 3 {
			subject.Elements[at] = vals[2]
		}
		return subject.Elements[at], nil
	case runtime.StringValue:
		if len(vals) == 3 {
			return nil, failf(ErrTypeMismatch, "idx", "strings are read-only")
		}
		runes := []rune(subject.Val)
		if at < 0 || at >= len(runes) {
			return nil, failf(ErrIndexOutOfBounds, "idx", "index %d outside string of length %d", at, len(runes))
		}
		return runtime.StringValue{Val: string(runes[at])}, nil
	default:
		return nil, failf(ErrTypeMismatch, "idx", "operand must be a list or string, got %s", vals[0].Kind())
	}
}

// evalObj builds an object from a list of 2-element tuples.
func (i *Interpreter) evalObj(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("obj", node, 1); err != nil {
		return nil, err
	}
	val, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	list, ok := val.(*runtime.ListValue)
	if !ok {
		return nil, failf(ErrInvalidArgument, "obj", "operand must be a list of pairs, got %s", val.Kind())
	}
	object := runtime.NewObject()
	for _, entry := range list.Elements {
		pair, ok := entry.(*runtime.ListValue)
		if !ok || len(pair.Elements) != 2 {
			return nil, failf(ErrInvalidArgument, "obj", "every entry must be a 2-element list")
		}
		object.Entries[Stringify(pair.Elements[0])] = pair.Elements[1]
	}
	return object, nil
}

// evalKey reads (and optionally writes) one object entry. A write
// happens before the read, so a fresh key never reports KeyNotFound.
func (i *Interpreter) evalKey(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := rangeArgs("key", node, 2, 3); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	object, ok := vals[0].(*runtime.ObjectValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, "key", "first operand must be an object, got %s", vals[0].Kind())
	}
	name := Stringify(vals[1])
	if len(vals) == 3 {
		object.Entries[name] = vals[2]
	}
	val, ok := object.Entries[name]
	if !ok {
		return nil, failf(ErrKeyNotFound, "key", "no key %q", name)
	}
	return val, nil
}

func (i *Interpreter) evalHasKey(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("has-key", node, 2); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	object, ok := vals[0].(*runtime.ObjectValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, "has-key", "first operand must be an object, got %s", vals[0].Kind())
	}
	_, present := object.Entries[Stringify(vals[1])]
	return runtime.BoolValue{Val: present}, nil
}

func (i *Interpreter) evalTuple(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("tuple", node, 2); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	return &runtime.ListValue{Elements: vals}, nil
}
