package word64

// Common values.
const (
	Zero Word = 0
	One  Word = 1

	// MaxWord is the largest value a Word can hold.
	MaxWord Word = 1<<64 - 1
)

const (
	maxUint64 = 1<<64 - 1
	minInt64  = -1 << 63

	minInt64Float   = float64(minInt64)      // -(1<<63)
	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	// minInt64Word is the two's complement pattern of the most negative
	// int64. WordFromFloat64 clamps to it for floats below the window.
	minInt64Word Word = 1 << 63
)

const (
	// A NaN-boxing engine stores a double as its bit pattern plus
	// jsValueBias. Slot patterns at or below the bias, or at or above
	// jsValueLimit, hold tagged pointers and integers, not doubles.
	jsValueBias  Word = 1 << 48
	jsValueLimit Word = 0xFFFF000000000000

	// nanTagFloor is the lowest NaN bit pattern a NaN-boxing engine claims
	// for its tag space. AsDouble refuses patterns at or above it.
	nanTagFloor Word = 0xFFFE000000000000
)
