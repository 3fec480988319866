package runtime

import (
	"fmt"

	"marl/interpreter-go/pkg/markup"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Containers
//-----------------------------------------------------------------------------

// ListValue uses a pointer receiver so every binding that holds the
// list observes in-place element writes.
type ListValue struct {
	Elements []Value
}

func (v *ListValue) Kind() Kind { return KindList }

// ObjectValue maps string keys to values; insertion order carries no
// semantics. Shared by reference like ListValue.
type ObjectValue struct {
	Entries map[string]Value
}

func (v *ObjectValue) Kind() Kind { return KindObject }

// NewObject returns an empty object.
func NewObject() *ObjectValue {
	return &ObjectValue{Entries: make(map[string]Value)}
}

//-----------------------------------------------------------------------------
// Functions
//-----------------------------------------------------------------------------

// FunctionValue is a closure as plain data: parameter names plus an
// unevaluated body node. It deliberately carries no environment; the
// call operation extends whatever environment is active at the call
// site (call-time capture, not lexical capture).
type FunctionValue struct {
	Params []string
	Body   *markup.Node
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// Truthy implements marl truthiness: null is false, bool is itself,
// numbers are true when nonzero, strings and containers when non-empty,
// functions always.
func Truthy(val Value) bool {
	switch v := val.(type) {
	case NullValue:
		return false
	case BoolValue:
		return v.Val
	case NumberValue:
		return v.Val != 0
	case StringValue:
		return v.Val != ""
	case *ListValue:
		return len(v.Elements) > 0
	case *ObjectValue:
		return len(v.Entries) > 0
	case *FunctionValue:
		return true
	default:
		return false
	}
}

// StrictEquals compares without coercion: scalars by value; lists,
// objects and functions by identity.
func StrictEquals(a, b Value) bool {
	switch av := a.(type) {
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Val == bv.Val
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Val == bv.Val
	case *ListValue:
		bv, ok := b.(*ListValue)
		return ok && av == bv
	case *ObjectValue:
		bv, ok := b.(*ObjectValue)
		return ok && av == bv
	case *FunctionValue:
		bv, ok := b.(*FunctionValue)
		return ok && av == bv
	default:
		return false
	}
}
