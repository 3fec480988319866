package interpreter

import (
	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

// evalBlock evaluates each operand in one freshly copied environment
// and yields the last value.
func (i *Interpreter) evalBlock(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	scope := env.Copy()
	var result runtime.Value = runtime.NullValue{}
	for _, child := range node.Children {
		val, err := i.Evaluate(child, scope)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

// evalIf evaluates the condition, then exactly one branch. The else
// branch is optional and untouched when the condition holds.
func (i *Interpreter) evalIf(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := rangeArgs("if", node, 2, 3); err != nil {
		return nil, err
	}
	cond, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(cond) {
		return i.Evaluate(node.Children[1], env)
	}
	if len(node.Children) == 3 {
		return i.Evaluate(node.Children[2], env)
	}
	return runtime.NullValue{}, nil
}

// evalWhile shares one copied environment across every condition check
// and body pass. Body values other than null and false accumulate into
// the result list.
func (i *Interpreter) evalWhile(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("while", node, 2); err != nil {
		return nil, err
	}
	scope := env.Copy()
	results := &runtime.ListValue{}
	for {
		cond, err := i.Evaluate(node.Children[0], scope)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(cond) {
			return results, nil
		}
		val, err := i.Evaluate(node.Children[1], scope)
		if err != nil {
			return nil, err
		}
		if !isSkippedLoopValue(val) {
			results.Elements = append(results.Elements, val)
		}
	}
}

func isSkippedLoopValue(val runtime.Value) bool {
	if _, isNull := val.(runtime.NullValue); isNull {
		return true
	}
	if b, isBool := val.(runtime.BoolValue); isBool && !b.Val {
		return true
	}
	return false
}

// evalFor runs a counted loop. The counter cell lives directly in the
// caller's frame (not a nested scope) so the body, evaluated in a fresh
// copy each pass, observes the updated value; after the loop the
// counter is removed so it does not leak.
func (i *Interpreter) evalFor(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("for", node, 5); err != nil {
		return nil, err
	}
	name, err := i.nameOperand("for", node.Children[0], env)
	if err != nil {
		return nil, err
	}
	bounds := make([]float64, 3)
	for k := 0; k < 3; k++ {
		val, err := i.Evaluate(node.Children[1+k], env)
		if err != nil {
			return nil, err
		}
		num, err := numberOperand("for", val)
		if err != nil {
			return nil, err
		}
		bounds[k] = num
	}
	start, stop, step := bounds[0], bounds[1], bounds[2]

	cell := env.Define(name, runtime.NumberValue{Val: start})
	defer env.Remove(name)

	results := &runtime.ListValue{}
	for {
		current, ok := cell.Value.(runtime.NumberValue)
		if !ok {
			return nil, failf(ErrTypeMismatch, "for", "loop counter '%s' became %s", name, cell.Value.Kind())
		}
		if current.Val > stop {
			return results, nil
		}
		val, err := i.Evaluate(node.Children[4], env.Copy())
		if err != nil {
			return nil, err
		}
		if _, isNull := val.(runtime.NullValue); !isNull {
			results.Elements = append(results.Elements, val)
		}
		// The cell is guaranteed to exist, so the increment writes it
		// directly, bypassing the assign-time resolution check. Re-read
		// first: the body may have mutated the counter through the
		// shared cell.
		after, ok := cell.Value.(runtime.NumberValue)
		if !ok {
			return nil, failf(ErrTypeMismatch, "for", "loop counter '%s' became %s", name, cell.Value.Kind())
		}
		cell.Value = runtime.NumberValue{Val: after.Val + step}
	}
}

// evalMap and evalFilter share one fresh environment across elements,
// rebinding the element name to a new cell per pass.
func (i *Interpreter) evalMap(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.mapFilter("map", node, env, false)
}

func (i *Interpreter) evalFilter(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.mapFilter("filter", node, env, true)
}

func (i *Interpreter) mapFilter(op string, node *markup.Node, env *runtime.Environment, keepSource bool) (runtime.Value, error) {
	if err := exactArgs(op, node, 3); err != nil {
		return nil, err
	}
	subject, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	list, ok := subject.(*runtime.ListValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, op, "first operand must be a list, got %s", subject.Kind())
	}
	name, err := i.nameOperand(op, node.Children[1], env)
	if err != nil {
		return nil, err
	}
	scope := env.Copy()
	results := &runtime.ListValue{}
	for _, element := range list.Elements {
		scope.Remove(name)
		scope.Define(name, element)
		val, err := i.Evaluate(node.Children[2], scope)
		if err != nil {
			return nil, err
		}
		if keepSource {
			if runtime.Truthy(val) {
				results.Elements = append(results.Elements, element)
			}
		} else {
			results.Elements = append(results.Elements, val)
		}
	}
	return results, nil
}

// evalReduce left-folds without a seed: the first element starts the
// accumulator, so an empty list is a failure rather than a default.
func (i *Interpreter) evalReduce(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("reduce", node, 4); err != nil {
		return nil, err
	}
	subject, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	list, ok := subject.(*runtime.ListValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, "reduce", "first operand must be a list, got %s", subject.Kind())
	}
	if len(list.Elements) == 0 {
		return nil, failf(ErrEmptyCollection, "reduce", "cannot reduce an empty list")
	}
	accName, err := i.nameOperand("reduce", node.Children[1], env)
	if err != nil {
		return nil, err
	}
	elemName, err := i.nameOperand("reduce", node.Children[2], env)
	if err != nil {
		return nil, err
	}
	scope := env.Copy()
	acc := list.Elements[0]
	for _, element := range list.Elements[1:] {
		scope.Remove(accName)
		scope.Define(accName, acc)
		scope.Remove(elemName)
		scope.Define(elemName, element)
		val, err := i.Evaluate(node.Children[3], scope)
		if err != nil {
			return nil, err
		}
		acc = val
	}
	return acc, nil
}
