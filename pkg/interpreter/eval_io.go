package interpreter

import (
	"strings"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

// evalPrint joins its operand values into one line and hands it to the
// sink. A leaf print emits its text verbatim. The separator defaults to
// a single space and can be overridden with a sep attribute.
func (i *Interpreter) evalPrint(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	var line string
	if node.HasChildren() {
		vals, err := i.evaluateAll(node, env, -1)
		if err != nil {
			return nil, err
		}
		parts := make([]string, 0, len(vals))
		for _, val := range vals {
			parts = append(parts, Stringify(val))
		}
		line = strings.Join(parts, node.Attr("sep", " "))
	} else {
		line = node.Text
	}
	i.out.Emit(line)
	return runtime.StringValue{Val: line}, nil
}

// evalRead asks the input source for a line, passing a prompt message
// and a default. A leaf read uses its text as the message.
func (i *Interpreter) evalRead(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	message, fallback := "", ""
	if node.HasChildren() {
		if err := rangeArgs("read", node, 1, 2); err != nil {
			return nil, err
		}
		vals, err := i.evaluateAll(node, env, 2)
		if err != nil {
			return nil, err
		}
		message = Stringify(vals[0])
		if len(vals) == 2 {
			fallback = Stringify(vals[1])
		}
	} else {
		message = strings.TrimSpace(node.Text)
	}
	return runtime.StringValue{Val: i.in.Request(message, fallback)}, nil
}
