package interpreter

import (
	"math"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evalAdd(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.foldNumeric("add", node, env, func(a, b float64) float64 { return a + b })
}

func (i *Interpreter) evalSub(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.foldNumeric("sub", node, env, func(a, b float64) float64 { return a - b })
}

func (i *Interpreter) evalMul(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.foldNumeric("mul", node, env, func(a, b float64) float64 { return a * b })
}

func (i *Interpreter) evalDiv(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.foldNumeric("div", node, env, func(a, b float64) float64 { return a / b })
}

func (i *Interpreter) evalMod(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.foldNumeric("mod", node, env, math.Mod)
}

func (i *Interpreter) evalPow(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.foldNumeric("pow", node, env, math.Pow)
}

// foldNumeric evaluates every operand, then folds left with the given
// operator. Division by zero follows float64 semantics (±Inf, NaN).
func (i *Interpreter) foldNumeric(op string, node *markup.Node, env *runtime.Environment, combine func(a, b float64) float64) (runtime.Value, error) {
	if err := atLeastArgs(op, node, 2); err != nil {
		return nil, err
	}
	vals, err := i.evaluateAll(node, env, -1)
	if err != nil {
		return nil, err
	}
	acc, err := numberOperand(op, vals[0])
	if err != nil {
		return nil, err
	}
	for _, val := range vals[1:] {
		operand, err := numberOperand(op, val)
		if err != nil {
			return nil, err
		}
		acc = combine(acc, operand)
	}
	return runtime.NumberValue{Val: acc}, nil
}

func (i *Interpreter) evalEq(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	vals, err := i.comparisonOperands("eq", node, env)
	if err != nil {
		return nil, err
	}
	for _, other := range vals[1:] {
		if !runtime.StrictEquals(vals[0], other) {
			return runtime.BoolValue{Val: false}, nil
		}
	}
	return runtime.BoolValue{Val: true}, nil
}

func (i *Interpreter) evalNe(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	vals, err := i.comparisonOperands("ne", node, env)
	if err != nil {
		return nil, err
	}
	for _, other := range vals[1:] {
		if runtime.StrictEquals(vals[0], other) {
			return runtime.BoolValue{Val: false}, nil
		}
	}
	return runtime.BoolValue{Val: true}, nil
}

func (i *Interpreter) evalGt(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.ordered("gt", node, env, func(cmp int) bool { return cmp > 0 })
}

func (i *Interpreter) evalGte(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.ordered("gte", node, env, func(cmp int) bool { return cmp >= 0 })
}

func (i *Interpreter) evalLt(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.ordered("lt", node, env, func(cmp int) bool { return cmp < 0 })
}

func (i *Interpreter) evalLte(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	return i.ordered("lte", node, env, func(cmp int) bool { return cmp <= 0 })
}

// comparisonOperands enforces the ≥2 arity and evaluates everything up
// front: evaluation is never lazy, only the comparison decision
// short-circuits.
func (i *Interpreter) comparisonOperands(op string, node *markup.Node, env *runtime.Environment) ([]runtime.Value, error) {
	if err := atLeastArgs(op, node, 2); err != nil {
		return nil, err
	}
	return i.evaluateAll(node, env, -1)
}

// ordered tests the first operand against every other with one
// ordering predicate.
func (i *Interpreter) ordered(op string, node *markup.Node, env *runtime.Environment, accept func(cmp int) bool) (runtime.Value, error) {
	vals, err := i.comparisonOperands(op, node, env)
	if err != nil {
		return nil, err
	}
	for _, other := range vals[1:] {
		cmp, err := compareValues(op, vals[0], other)
		if err != nil {
			return nil, err
		}
		if !accept(cmp) {
			return runtime.BoolValue{Val: false}, nil
		}
	}
	return runtime.BoolValue{Val: true}, nil
}

// compareValues orders number against number or string against string.
func compareValues(op string, a, b runtime.Value) (int, error) {
	switch av := a.(type) {
	case runtime.NumberValue:
		bv, ok := b.(runtime.NumberValue)
		if !ok {
			return 0, failf(ErrTypeMismatch, op, "cannot order number against %s", b.Kind())
		}
		switch {
		case av.Val < bv.Val:
			return -1, nil
		case av.Val > bv.Val:
			return 1, nil
		default:
			return 0, nil
		}
	case runtime.StringValue:
		bv, ok := b.(runtime.StringValue)
		if !ok {
			return 0, failf(ErrTypeMismatch, op, "cannot order string against %s", b.Kind())
		}
		switch {
		case av.Val < bv.Val:
			return -1, nil
		case av.Val > bv.Val:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, failf(ErrTypeMismatch, op, "%s values have no ordering", a.Kind())
	}
}
