package interpreter

import (
	"strings"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evalDefine(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("def", node, 2); err != nil {
		return nil, err
	}
	name, err := i.nameOperand("def", node.Children[0], env)
	if err != nil {
		return nil, err
	}
	value, err := i.Evaluate(node.Children[1], env)
	if err != nil {
		return nil, err
	}
	env.Define(name, value)
	return value, nil
}

func (i *Interpreter) evalAssign(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("mut", node, 2); err != nil {
		return nil, err
	}
	name, err := i.nameOperand("mut", node.Children[0], env)
	if err != nil {
		return nil, err
	}
	value, err := i.Evaluate(node.Children[1], env)
	if err != nil {
		return nil, err
	}
	if !env.Assign(name, value) {
		return nil, failf(ErrUndefinedVariable, "mut", "'%s' is not defined", name)
	}
	return value, nil
}

// evalLookup handles both forms: a leaf node whose text is the variable
// name, and a single operand evaluating to the name.
func (i *Interpreter) evalLookup(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	var name string
	if node.HasChildren() {
		if err := exactArgs("var", node, 1); err != nil {
			return nil, err
		}
		resolved, err := i.nameOperand("var", node.Children[0], env)
		if err != nil {
			return nil, err
		}
		name = resolved
	} else {
		name = strings.TrimSpace(node.Text)
	}
	val, ok := env.Get(name)
	if !ok {
		return nil, failf(ErrUndefinedVariable, "var", "'%s' is not defined", name)
	}
	return val, nil
}

func (i *Interpreter) evalIncrement(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.adjustVariable("inc", node, env, 1)
}

func (i *Interpreter) evalDecrement(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.adjustVariable("dec", node, env, -1)
}

// adjustVariable is lookup followed by assign of old ± delta.
func (i *Interpreter) adjustVariable(op string, node *markup.Node, env *runtime.Environment, sign float64) (runtime.Value, error) {
	if err := exactArgs(op, node, 2); err != nil {
		return nil, err
	}
	name, err := i.nameOperand(op, node.Children[0], env)
	if err != nil {
		return nil, err
	}
	deltaVal, err := i.Evaluate(node.Children[1], env)
	if err != nil {
		return nil, err
	}
	delta, err := numberOperand(op, deltaVal)
	if err != nil {
		return nil, err
	}
	current, ok := env.Get(name)
	if !ok {
		return nil, failf(ErrUndefinedVariable, op, "'%s' is not defined", name)
	}
	old, err := numberOperand(op, current)
	if err != nil {
		return nil, err
	}
	next := runtime.NumberValue{Val: old + sign*delta}
	env.Assign(name, next)
	return next, nil
}
