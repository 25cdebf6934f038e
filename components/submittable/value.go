package submittable

import (
	"strconv"
	"strings"
)

// Value is the tagged string/number union an input can hold. The numeric
// flag is fixed at capture time so later comparisons know whether to coerce.
type Value struct {
	raw     string
	num     float64
	numeric bool
}

func StringValue(s string) Value {
	return Value{raw: s}
}

func NumberValue(f float64) Value {
	return Value{
		raw:     strconv.FormatFloat(f, 'f', -1, 64),
		num:     f,
		numeric: true,
	}
}

func (v Value) String() string {
	return v.raw
}

func (v Value) Numeric() bool {
	return v.numeric
}

// Float returns the numeric interpretation of the value.
func (v Value) Float() (float64, bool) {
	if v.numeric {
		return v.num, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
	return f, err == nil
}

// Equal compares a captured baseline (the receiver) against a live value.
// When either side is numeric the other is coerced to a number first, so
// "5" and 5 never register as an edit. A live value that cannot be coerced
// against a numeric baseline is unequal.
func (v Value) Equal(other Value) bool {
	if v.numeric || other.numeric {
		vf, vok := v.Float()
		of, ook := other.Float()
		if !vok || !ook {
			return false
		}
		return vf == of
	}
	return v.raw == other.raw
}
