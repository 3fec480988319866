package interpreter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"marl/interpreter-go/pkg/runtime"
)

// Stringify renders a value for output. Scalars print bare; lists and
// objects use a compact textual form with object keys sorted for
// deterministic output.
func Stringify(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.NullValue:
		return "null"
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NumberValue:
		return strconv.FormatFloat(v.Val, 'f', -1, 64)
	case runtime.StringValue:
		return v.Val
	case *runtime.ListValue:
		parts := make([]string, 0, len(v.Elements))
		for _, el := range v.Elements {
			parts = append(parts, Stringify(el))
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case *runtime.ObjectValue:
		keys := make([]string, 0, len(v.Entries))
		for k := range v.Entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, Stringify(v.Entries[k])))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
	case *runtime.FunctionValue:
		return fmt.Sprintf("<func (%s)>", strings.Join(v.Params, ", "))
	default:
		return fmt.Sprintf("[%s]", val.Kind())
	}
}
