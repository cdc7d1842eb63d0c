package lox

import "strconv"

// isTruthy implements the language's truthiness rule: everything is truthy
// except nil and boolean false. Zero and the empty string are truthy.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}

	if b, ok := v.(bool); ok {
		return b
	}

	return true
}

// valuesEqual implements structural equality: nil equals only nil,
// otherwise equality delegates to the natural comparison for the operands'
// shared kind. Operands of different kinds are never equal.
func valuesEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	return a == b
}

// stringify renders a value for print and for string-coercion in '+'. Nil
// becomes "nil"; booleans become "true"/"false"; whole-number doubles drop
// their trailing ".0"; other numbers use their decimal form; strings are
// rendered verbatim.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}

		return "false"
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}

		return text
	case string:
		return val
	default:
		return ""
	}
}
