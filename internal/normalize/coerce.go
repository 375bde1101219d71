package normalize

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Coerce converts a raw value into the parameter's kind.
//
// Strings are parsed; native Go scalars are accepted where they fit the kind.
func Coerce(p Param, raw any) (Value, error) {
	if s, ok := raw.(string); ok {
		return parseString(p, s)
	}

	switch p.Kind {
	case Bool:
		if b, ok := raw.(bool); ok {
			return BoolValue(b), nil
		}
	case Int:
		if i, ok := asInt(raw); ok {
			return IntValue(i), nil
		}
	case Float:
		if f, ok := asFloat(raw); ok {
			return FloatValue(f), nil
		}
	case String:
		switch raw.(type) {
		case int, int64, float64, bool:
			return StringValue(fmt.Sprint(raw)), nil
		}
	case Enum:
		// Enums only come in as strings
	}
	return Value{}, fmt.Errorf("%w: expected %s, got %T", ErrInvalidValue, p.Kind, raw)
}

// parseString parses a string into the parameter's kind.
func parseString(p Param, s string) (Value, error) {
	switch p.Kind {
	case Bool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "yes":
			return BoolValue(true), nil
		case "false", "0", "no":
			return BoolValue(false), nil
		}
		return Value{}, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)

	case Int:
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
		}
		return IntValue(i), nil

	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
		}
		return FloatValue(f), nil

	case Enum:
		if !slices.Contains(p.Enum, s) {
			return Value{}, fmt.Errorf("%w: %q is not one of %s", ErrInvalidValue, s, strings.Join(p.Enum, ", "))
		}
		return EnumValue(s), nil

	default:
		return StringValue(s), nil
	}
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
