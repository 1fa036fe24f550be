/*
File    : step/objects/compare.go
Project : Step interpreter
*/
package objects

import "strings"

// maxDepth bounds recursion through nested lists during rendering and
// equality. Step programs can build self-referential lists (a[i] = a);
// exceeding the budget is reported as a runtime error instead of hanging.
const maxDepth = 64

// IsTruthy maps a Step value to its boolean meaning for `if`, `while`,
// `and`, `or`, and `assert`. Exactly 0, 0.0, "", [], and None are false;
// every other value is true.
func IsTruthy(obj StepObject) bool {
	switch obj := obj.(type) {
	case *Integer:
		return obj.Value != 0
	case *Float:
		return obj.Value != 0.0
	case *Str:
		return len(obj.Value) > 0
	case *List:
		return len(obj.Elements) > 0
	case *None:
		return false
	default:
		// Callables and anything else are truthy
		return true
	}
}

// BoolToInteger converts a native bool to the Step integer 1 or 0.
// Comparisons and logical operators have no boolean type to produce.
func BoolToInteger(b bool) *Integer {
	if b {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}

// Equals reports deep structural equality between two Step values:
//   - numbers compare by numeric value (int 1 equals float 1.0)
//   - strings compare by bytes
//   - lists compare structurally and recursively, element by element
//   - None equals None
//   - callables compare by identity
//   - values of different types are unequal
//
// A self-referential list that exceeds the depth budget yields a runtime
// error rather than infinite recursion.
func Equals(a, b StepObject) (bool, *Error) {
	return equalsDepth(a, b, 0)
}

func equalsDepth(a, b StepObject, depth int) (bool, *Error) {
	if depth > maxDepth {
		return false, &Error{
			Kind:    RuntimeErrorKind,
			Message: "comparison depth exceeded (self-referential list?)",
		}
	}

	// Numbers compare across the int/float boundary by numeric value
	if an, aIsNum := numericValue(a); aIsNum {
		if bn, bIsNum := numericValue(b); bIsNum {
			return an == bn, nil
		}
		return false, nil
	}

	if a.GetType() != b.GetType() {
		return false, nil
	}

	switch a := a.(type) {
	case *Str:
		return a.Value == b.(*Str).Value, nil
	case *None:
		return true, nil
	case *List:
		other := b.(*List)
		if len(a.Elements) != len(other.Elements) {
			return false, nil
		}
		for i := range a.Elements {
			eq, err := equalsDepth(a.Elements[i], other.Elements[i], depth+1)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	default:
		// Callables (and signals, which never reach here in practice)
		// compare by identity
		return a == b, nil
	}
}

// numericValue extracts the float64 magnitude of an Integer or Float.
// Exact int64 values beyond 2^53 lose precision under this comparison,
// which matches the reference semantics of mixed int/float compares.
func numericValue(obj StepObject) (float64, bool) {
	switch obj := obj.(type) {
	case *Integer:
		return float64(obj.Value), true
	case *Float:
		return obj.Value, true
	default:
		return 0, false
	}
}

// Render produces the canonical string of a value, as used by the `str`
// builtin and by `print`. It fails with a runtime error when a
// self-referential list exceeds the depth budget.
func Render(obj StepObject) (string, *Error) {
	s, ok := renderDepth(obj, 0)
	if !ok {
		return "", &Error{
			Kind:    RuntimeErrorKind,
			Message: "render depth exceeded (self-referential list?)",
		}
	}
	return s, nil
}

// renderDepth walks nested lists with a depth budget. Non-list values
// delegate to their own ToString.
func renderDepth(obj StepObject, depth int) (string, bool) {
	if depth > maxDepth {
		return "", false
	}

	list, isList := obj.(*List)
	if !isList {
		return obj.ToString(), true
	}

	var builder strings.Builder
	builder.WriteString("[")
	for i, elem := range list.Elements {
		if i > 0 {
			builder.WriteString(", ")
		}
		s, ok := renderDepth(elem, depth+1)
		if !ok {
			return "", false
		}
		builder.WriteString(s)
	}
	builder.WriteString("]")
	return builder.String(), true
}
