package parser

import (
	"strconv"

	"inventree-sync/core/utils"
)

// Kind is the type of an extracted field value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is a normalized field value. Only the member matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// StringValue wraps s.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue parses a numeric token with an optional comma decimal separator.
// Tokens without a fractional part become KindInt, all others KindFloat.
func NumberValue(s string) (Value, error) {
	i, f, isInt, err := utils.ParseNumber(s)
	if err != nil {
		return Value{}, err
	}
	if isInt {
		return IntValue(i), nil
	}
	return FloatValue(f), nil
}

// Number returns the value as a float64 for numeric kinds.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

// String renders the value the way it is written into catalog attributes:
// 470, 12.5, true.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return utils.FormatNumber(v.Float)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}
