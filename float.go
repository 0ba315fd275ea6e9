package word64

import (
	"math"
)

// Numeric float conversion and raw bit reinterpretation are both provided
// here; they are easy to mix up. WordFromFloat64 and AsFloat64 convert the
// VALUE, truncating or rounding as needed. WordFromDouble, AsDouble and the
// JSValue pair move the raw binary64 bit PATTERN and never change a bit,
// except for the boxing bias.

// WordFromFloat64 creates a Word from the numeric value of f, truncated
// toward zero. Negative values store their two's complement pattern. Values
// outside [-(1<<63), 1<<64) clamp to the nearest representable pattern and
// set inRange to false, as does NaN.
func WordFromFloat64(f float64) (out Word, inRange bool) {
	if f == 0 {
		return 0, true

	} else if f < 0 {
		if f >= minInt64Float {
			return Word(int64(f)), true
		}
		return minInt64Word, false

	} else if f < wrapUint64Float {
		return Word(f), true

	} else if f != f { // (f != f) == NaN
		return 0, false

	} else {
		return MaxWord, false
	}
}

// AsFloat64 returns the numeric value of the Word as a float64, reading the
// bits as an unsigned integer. Values above 1<<53 may round. This is a value
// conversion; for the raw bit pattern use AsDouble.
func (w Word) AsFloat64() float64 {
	return float64(w)
}

// WordFromDouble creates a Word holding the raw IEEE-754 binary64 bit
// pattern of d. No numeric conversion takes place; WordFromDouble(1.0) is
// 0x3ff0000000000000.
func WordFromDouble(d float64) Word {
	return Word(math.Float64bits(d))
}

// AsDouble reinterprets the Word's bits as an IEEE-754 binary64 value.
// Patterns at or above 0xfffe000000000000 are NaNs whose payloads collide
// with the tag space of a NaN-boxing engine; exposing one as a double and
// storing it back would corrupt the value, so AsDouble refuses them with
// ErrUnrepresentable. Infinities and ordinary NaNs pass through untouched.
func (w Word) AsDouble() (float64, error) {
	if w >= nanTagFloor {
		return 0, ErrUnrepresentable.New("%s is inside the NaN tag space", w)
	}
	return math.Float64frombits(uint64(w)), nil
}

// WordFromJSValue creates the Word a NaN-boxing engine would store for the
// double d: the bit pattern of d plus the 1<<48 bias.
func WordFromJSValue(d float64) Word {
	return Word(math.Float64bits(d)) + jsValueBias
}

// AsJSValue decodes the Word as a NaN-boxed engine value slot. The engine
// stores a double as its bit pattern plus a 1<<48 bias, so slots strictly
// between 0x0001000000000000 and 0xffff000000000000 decode by subtracting
// the bias. Every other pattern holds a tagged pointer or integer rather
// than a double and fails with ErrUnrepresentable.
//
// The decodable window lines up with AsDouble: any slot AsJSValue accepts
// decodes to a pattern AsDouble also accepts.
func (w Word) AsJSValue() (float64, error) {
	if w <= jsValueBias || w >= jsValueLimit {
		return 0, ErrUnrepresentable.New("%s is not a boxed double", w)
	}
	return math.Float64frombits(uint64(w - jsValueBias)), nil
}
