package word64

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// Word is a 64-bit machine word: 8 bytes in little-endian order, readable as
// an unsigned integer, a two's complement signed integer, or a raw IEEE-754
// binary64 bit pattern as the situation demands.
//
// Word is a plain value. Operations return new values and never modify their
// receiver; copies are independent. The zero value is ready to use.
type Word uint64

// WordFromInt64 creates a Word holding the two's complement bit pattern of v.
func WordFromInt64(v int64) Word { return Word(v) }

// RandWord generates a random Word from an external source.
func RandWord(source RandSource) Word {
	return Word(source.Uint64())
}

// WordFromString creates a Word from a string of big-endian hex digits, with
// or without a leading "0x". An odd number of digits reads as if padded on
// the left with a zero nibble; no digits at all decode to Zero. Strings
// wider than 16 digits fail with ErrLength, anything non-hex with ErrFormat.
func WordFromString(s string) (out Word, err error) {
	hex := s
	if len(hex) >= 2 && hex[0] == '0' && (hex[1] == 'x' || hex[1] == 'X') {
		hex = hex[2:]
	}
	if len(hex) > 16 {
		return 0, ErrLength.New("string %q is wider than 8 bytes", s)
	} else if len(hex) == 0 {
		return 0, nil
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, ErrFormat.New("string %q is not a hex quantity", s)
	}
	return Word(v), nil
}

// WordFromBytes creates a Word from exactly 8 bytes in little-endian order.
// Any other length fails with ErrLength.
func WordFromBytes(b []byte) (out Word, err error) {
	if len(b) != 8 {
		return 0, ErrLength.New("byte sequence is %d bytes, need 8", len(b))
	}
	return Word(binary.LittleEndian.Uint64(b)), nil
}

func (w Word) IsZero() bool { return w == 0 }

// Lo returns the low 32 bits of the Word.
func (w Word) Lo() uint32 { return uint32(w) }

// Hi returns the high 32 bits of the Word.
func (w Word) Hi() uint32 { return uint32(w >> 32) }

// Byte returns byte i of the Word, where byte 0 is the least significant.
// Byte panics if i is outside [0, 7].
func (w Word) Byte(i int) byte {
	if i < 0 || i > 7 {
		panic("word64: byte index out of range")
	}
	return byte(w >> (uint(i) * 8))
}

// Bytes returns the Word as 8 bytes in little-endian order.
func (w Word) Bytes() (b [8]byte) {
	binary.LittleEndian.PutUint64(b[:], uint64(w))
	return b
}

// AsUint64 returns the Word's unsigned integer value.
func (w Word) AsUint64() uint64 { return uint64(w) }

// AsInt64 returns the Word reinterpreted as a two's complement signed
// integer.
func (w Word) AsInt64() int64 { return int64(w) }

func (w Word) AsBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(w))
}

// Cmp returns 1 if w is larger than n, -1 if smaller, 0 if they are equal.
// Native comparison operators also work on Word; Cmp exists for call sites
// that want the three-way result.
func (w Word) Cmp(n Word) int {
	if w > n {
		return 1
	} else if w < n {
		return -1
	}
	return 0
}

const hexDigits = "0123456789abcdef"

// String returns the canonical form of the Word: "0x" followed by exactly 16
// lowercase hex digits, most significant first.
func (w Word) String() string {
	var b [18]byte
	b[0], b[1] = '0', 'x'
	for i := 0; i < 16; i++ {
		b[17-i] = hexDigits[(w>>(uint(i)*4))&0xF]
	}
	return string(b[:])
}

// Format implements fmt.Formatter. The %v and %s verbs produce the canonical
// hex form; numeric verbs (%d, %x, %o, %b and friends) format the unsigned
// integer value and accept the usual flags.
func (w Word) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		io.WriteString(s, w.String())
	default:
		w.AsBigInt().Format(s, c)
	}
}

func (w Word) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Word) UnmarshalText(bts []byte) (err error) {
	v, err := WordFromString(string(bts))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

func (w Word) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

func (w *Word) UnmarshalJSON(bts []byte) (err error) {
	// Words are always quoted in JSON; a bare JSON number would read as
	// decimal, not hex, so it is refused rather than misread.
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return ErrFormat.New("invalid JSON %s", string(bts))
	}
	v, err := WordFromString(string(bts[1 : ln-1]))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
