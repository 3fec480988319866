package interpreter

import (
	"strings"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evalBool(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("bool", node, 1); err != nil {
		return nil, err
	}
	val, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: runtime.Truthy(val)}, nil
}

func (i *Interpreter) evalTrue(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.boolLiteral("true", node, env, true)
}

func (i *Interpreter) evalFalse(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.boolLiteral("false", node, env, false)
}

// boolLiteral yields the literal when the node is bare; otherwise it
// compares the operand's (or text's) truthiness against the literal.
func (i *Interpreter) boolLiteral(op string, node *markup.Node, env *runtime.Environment, literal bool) (runtime.Value, error) {
	var operand runtime.Value
	switch {
	case node.HasChildren():
		if err := exactArgs(op, node, 1); err != nil {
			return nil, err
		}
		val, err := i.Evaluate(node.Children[0], env)
		if err != nil {
			return nil, err
		}
		operand = val
	case strings.TrimSpace(node.Text) == "":
		return runtime.BoolValue{Val: literal}, nil
	default:
		operand = literalValue(node)
	}
	return runtime.BoolValue{Val: runtime.Truthy(operand) == literal}, nil
}

func (i *Interpreter) evalAnd(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	vals, err := i.comparisonOperands("and", node, env)
	if err != nil {
		return nil, err
	}
	// Every operand is evaluated; only the combination short-circuits,
	// yielding the deciding operand itself rather than a bool.
	for _, val := range vals[:len(vals)-1] {
		if !runtime.Truthy(val) {
			return val, nil
		}
	}
	return vals[len(vals)-1], nil
}

func (i *Interpreter) evalOr(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	vals, err := i.comparisonOperands("or", node, env)
	if err != nil {
		return nil, err
	}
	for _, val := range vals[:len(vals)-1] {
		if runtime.Truthy(val) {
			return val, nil
		}
	}
	return vals[len(vals)-1], nil
}

func (i *Interpreter) evalNot(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("not", node, 1); err != nil {
		return nil, err
	}
	val, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: !runtime.Truthy(val)}, nil
}
