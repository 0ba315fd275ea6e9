package word64

type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Word) Word {
	if a > b {
		return a - b
	} else if a < b {
		return b - a
	}
	return 0
}

func Larger(a, b Word) Word {
	if a < b {
		return b
	}
	return a
}

func Smaller(a, b Word) Word {
	if a > b {
		return b
	}
	return a
}
