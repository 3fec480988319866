package interpreter

import (
	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

// evalFunc builds a closure: the parameter list is resolved once,
// eagerly, in a fresh environment; the body stays unevaluated. No
// environment is captured. The call site decides what the body sees.
func (i *Interpreter) evalFunc(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := exactArgs("func", node, 2); err != nil {
		return nil, err
	}
	spec, err := i.Evaluate(node.Children[0], env.Copy())
	if err != nil {
		return nil, err
	}
	var params []string
	switch v := spec.(type) {
	case runtime.StringValue:
		if v.Val != "" {
			params = []string{v.Val}
		}
	case *runtime.ListValue:
		params = make([]string, 0, len(v.Elements))
		for _, el := range v.Elements {
			name, ok := el.(runtime.StringValue)
			if !ok {
				return nil, failf(ErrInvalidArgument, "func", "parameter names must be strings, got %s", el.Kind())
			}
			params = append(params, name.Val)
		}
	default:
		return nil, failf(ErrInvalidArgument, "func", "parameter operand must be a string or list of strings, got %s", spec.Kind())
	}
	return &runtime.FunctionValue{Params: params, Body: node.Children[1]}, nil
}

// evalCall invokes a closure with the call-time environment rule: the
// call-site environment is copied and its fresh local mapping binds
// each parameter to a new cell holding the corresponding argument.
func (i *Interpreter) evalCall(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	if err := rangeArgs("call", node, 1, 2); err != nil {
		return nil, err
	}
	callee, err := i.Evaluate(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*runtime.FunctionValue)
	if !ok {
		return nil, failf(ErrTypeMismatch, "call", "first operand must be a function, got %s", callee.Kind())
	}
	var args []runtime.Value
	if len(node.Children) == 2 {
		argVal, err := i.Evaluate(node.Children[1], env)
		if err != nil {
			return nil, err
		}
		argList, ok := argVal.(*runtime.ListValue)
		if !ok {
			return nil, failf(ErrInvalidArgument, "call", "argument operand must be a list, got %s", argVal.Kind())
		}
		args = argList.Elements
	}
	return i.Invoke(fn, args, env)
}

// Invoke applies a closure to already-evaluated arguments. Missing
// arguments bind as null, surplus arguments are dropped.
func (i *Interpreter) Invoke(fn *runtime.FunctionValue, args []runtime.Value, callSite *runtime.Environment) (runtime.Value, error) {
	frame := callSite.Copy()
	for k, param := range fn.Params {
		var arg runtime.Value = runtime.NullValue{}
		if k < len(args) {
			arg = args[k]
		}
		frame.Define(param, arg)
	}
	return i.Evaluate(fn.Body, frame)
}
