package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

// Sink receives one finished line per print operation. Attribute-driven
// styling is the sink's concern, configured once by the host.
type Sink interface {
	Emit(line string)
}

// Source answers read operations with a line of input.
type Source interface {
	Request(message, fallback string) string
}

type builtinFunc func(i *Interpreter, node *markup.Node, env *runtime.Environment) (runtime.Value, error)

type builtin struct {
	name string
	eval builtinFunc
	// leafText marks operations that interpret the text of a leaf node
	// themselves (var, true, false, print, read) instead of receiving
	// the generic literal resolution.
	leafText bool
}

// Interpreter dispatches marl nodes to the builtin catalog. It holds no
// variable state of its own; the root environment is owned by the host
// and passed into Run.
type Interpreter struct {
	builtins map[string]*builtin
	out      Sink
	in       Source
}

// New wires an interpreter to its I/O capabilities and builds the
// complete operation catalog. Registration panics on a duplicate tag,
// so a malformed catalog fails at startup rather than at dispatch time.
func New(out Sink, in Source) *Interpreter {
	i := &Interpreter{
		builtins: make(map[string]*builtin, 48),
		out:      out,
		in:       in,
	}
	i.registerCatalog()
	return i
}

func (i *Interpreter) register(name string, eval builtinFunc) {
	i.registerLeaf(name, eval, false)
}

func (i *Interpreter) registerLeaf(name string, eval builtinFunc, leafText bool) {
	if _, dup := i.builtins[name]; dup {
		panic(fmt.Sprintf("duplicate builtin registration: %s", name))
	}
	i.builtins[name] = &builtin{name: name, eval: eval, leafText: leafText}
}

func (i *Interpreter) registerCatalog() {
	// variables
	i.register("def", (*Interpreter).evalDefine)
	i.register("mut", (*Interpreter).evalAssign)
	i.registerLeaf("var", (*Interpreter).evalLookup, true)
	i.register("inc", (*Interpreter).evalIncrement)
	i.register("dec", (*Interpreter).evalDecrement)
	// control flow
	i.register("block", (*Interpreter).evalBlock)
	i.register("if", (*Interpreter).evalIf)
	i.register("while", (*Interpreter).evalWhile)
	i.register("for", (*Interpreter).evalFor)
	i.register("map", (*Interpreter).evalMap)
	i.register("filter", (*Interpreter).evalFilter)
	i.register("reduce", (*Interpreter).evalReduce)
	// arithmetic
	i.register("add", (*Interpreter).evalAdd)
	i.register("sub", (*Interpreter).evalSub)
	i.register("mul", (*Interpreter).evalMul)
	i.register("div", (*Interpreter).evalDiv)
	i.register("mod", (*Interpreter).evalMod)
	i.register("pow", (*Interpreter).evalPow)
	// comparison
	i.register("eq", (*Interpreter).evalEq)
	i.register("ne", (*Interpreter).evalNe)
	i.register("gt", (*Interpreter).evalGt)
	i.register("gte", (*Interpreter).evalGte)
	i.register("lt", (*Interpreter).evalLt)
	i.register("lte", (*Interpreter).evalLte)
	// boolean
	i.register("bool", (*Interpreter).evalBool)
	i.registerLeaf("true", (*Interpreter).evalTrue, true)
	i.registerLeaf("false", (*Interpreter).evalFalse, true)
	i.register("and", (*Interpreter).evalAnd)
	i.register("or", (*Interpreter).evalOr)
	i.register("not", (*Interpreter).evalNot)
	// strings, lists, objects
	i.register("concat", (*Interpreter).evalConcat)
	i.register("split", (*Interpreter).evalSplit)
	i.register("len", (*Interpreter).evalLen)
	i.register("append", (*Interpreter).evalAppend)
	i.register("fst", (*Interpreter).evalFst)
	i.register("lst", (*Interpreter).evalLst)
	i.register("slice", (*Interpreter).evalSlice)
	i.register("idx", (*Interpreter).evalIdx)
	i.register("obj", (*Interpreter).evalObj)
	i.register("key", (*Interpreter).evalKey)
	i.register("has-key", (*Interpreter).evalHasKey)
	i.register("tuple", (*Interpreter).evalTuple)
	// functions
	i.register("func", (*Interpreter).evalFunc)
	i.register("call", (*Interpreter).evalCall)
	// I/O
	i.registerLeaf("print", (*Interpreter).evalPrint, true)
	i.registerLeaf("read", (*Interpreter).evalRead, true)
}

// Fault records one failed top-level node.
type Fault struct {
	Index int
	Tag   string
	Err   error
}

func (f Fault) Error() string {
	return fmt.Sprintf("node %d <%s>: %v", f.Index, f.Tag, f.Err)
}

// Run evaluates every top-level node in order against the host-owned
// root environment. A failing node is recorded and does not prevent
// evaluation of the nodes after it; the root environment keeps whatever
// state was established before the failure.
func (i *Interpreter) Run(nodes []*markup.Node, root *runtime.Environment) []Fault {
	var faults []Fault
	for idx, node := range nodes {
		if _, err := i.Evaluate(node, root); err != nil {
			faults = append(faults, Fault{Index: idx, Tag: node.Tag, Err: err})
		}
	}
	return faults
}

// Evaluate dispatches one node. Unknown tags are the only dynamic
// dispatch failure; a known tag on a leaf node resolves to its literal
// unless the operation interprets leaf text itself.
func (i *Interpreter) Evaluate(node *markup.Node, env *runtime.Environment) (runtime.Value, error) {
	op, ok := i.builtins[node.Tag]
	if !ok {
		return nil, failf(ErrUnknownOperation, node.Tag, "no such operation")
	}
	if !node.HasChildren() && !op.leafText {
		return literalValue(node), nil
	}
	return op.eval(i, node, env)
}

// literalValue resolves leaf text: when the trimmed text is empty or
// does not parse as a number, the value is the string holding the
// original, untrimmed text. The trim exists only for the test, never
// for the returned string.
func literalValue(node *markup.Node) runtime.Value {
	trimmed := strings.TrimSpace(node.Text)
	if trimmed == "" {
		return runtime.StringValue{Val: node.Text}
	}
	if num, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return runtime.NumberValue{Val: num}
	}
	return runtime.StringValue{Val: node.Text}
}

// evaluateAll evaluates up to limit children in encounter order; a
// negative limit evaluates them all. Children beyond the limit are
// never evaluated.
func (i *Interpreter) evaluateAll(node *markup.Node, env *runtime.Environment, limit int) ([]runtime.Value, error) {
	kids := node.Children
	if limit >= 0 && len(kids) > limit {
		kids = kids[:limit]
	}
	vals := make([]runtime.Value, 0, len(kids))
	for _, child := range kids {
		val, err := i.Evaluate(child, env)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	return vals, nil
}

//-----------------------------------------------------------------------------
// Shared operand helpers
//-----------------------------------------------------------------------------

func exactArgs(op string, node *markup.Node, n int) error {
	if len(node.Children) != n {
		return failf(ErrArity, op, "expects exactly %d operands, got %d", n, len(node.Children))
	}
	return nil
}

func atLeastArgs(op string, node *markup.Node, n int) error {
	if len(node.Children) < n {
		return failf(ErrArity, op, "expects at least %d operands, got %d", n, len(node.Children))
	}
	return nil
}

func rangeArgs(op string, node *markup.Node, min, max int) error {
	if len(node.Children) < min || len(node.Children) > max {
		return failf(ErrArity, op, "expects %d to %d operands, got %d", min, max, len(node.Children))
	}
	return nil
}

// nameOperand evaluates a child that must yield a variable name.
func (i *Interpreter) nameOperand(op string, child *markup.Node, env *runtime.Environment) (string, error) {
	val, err := i.Evaluate(child, env)
	if err != nil {
		return "", err
	}
	str, ok := val.(runtime.StringValue)
	if !ok {
		return "", failf(ErrTypeMismatch, op, "name operand must be a string, got %s", val.Kind())
	}
	return strings.TrimSpace(str.Val), nil
}

func numberOperand(op string, val runtime.Value) (float64, error) {
	num, ok := val.(runtime.NumberValue)
	if !ok {
		return 0, failf(ErrTypeMismatch, op, "operand must be a number, got %s", val.Kind())
	}
	return num.Val, nil
}
