package normalize

import (
	"slices"
	"strconv"
)

// Value is a scalar parameter value tagged with its kind.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int
	Float float64
	Str   string
}

// BoolValue returns a Bool value.
func BoolValue(b bool) Value { return Value{Kind: Bool, Bool: b} }

// IntValue returns an Int value.
func IntValue(i int) Value { return Value{Kind: Int, Int: i} }

// FloatValue returns a Float value.
func FloatValue(f float64) Value { return Value{Kind: Float, Float: f} }

// StringValue returns a String value.
func StringValue(s string) Value { return Value{Kind: String, Str: s} }

// EnumValue returns an Enum value.
func EnumValue(s string) Value { return Value{Kind: Enum, Str: s} }

// String renders the value the way ffmpeg-normalize expects it on the command line.
func (v Value) String() string {
	switch v.Kind {
	case Bool:
		return strconv.FormatBool(v.Bool)
	case Int:
		return strconv.Itoa(v.Int)
	case Float:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Str
	}
}

// Any returns the value as a plain Go scalar.
func (v Value) Any() any {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Int:
		return v.Int
	case Float:
		return v.Float
	default:
		return v.Str
	}
}

// ParameterSet maps canonical parameter names to resolved values.
type ParameterSet map[string]Value

// Names returns the set's keys in parameter table order.
func (ps ParameterSet) Names() []string {
	names := make([]string, 0, len(ps))
	for _, p := range Params {
		if _, ok := ps[p.Name]; ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// Plain converts the set to a map of plain Go scalars (e.g. for JSON).
func (ps ParameterSet) Plain() map[string]any {
	out := make(map[string]any, len(ps))
	for k, v := range ps {
		out[k] = v.Any()
	}
	return out
}

// Args renders the set as ffmpeg-normalize long flags in table order.
//
// Bool parameters become a bare flag when true and are omitted when false.
// Other values are joined to their flag ("--post-filter=-n") so a value
// starting with "-" is never read as an option of its own.
func (ps ParameterSet) Args() []string {
	args := make([]string, 0, len(ps))
	for _, name := range ps.Names() {
		v := ps[name]
		flag := LongFlag(name)
		if v.Kind == Bool {
			if v.Bool {
				args = append(args, flag)
			}
			continue
		}
		args = append(args, flag+"="+v.String())
	}
	return slices.Clip(args)
}
