/*
Package word64 provides a 64-bit machine word type (Word) for memory
analysis and exploit development tooling: byte-level access, wrapping
two's-complement arithmetic, and bit-exact reinterpretation between words
and IEEE-754 doubles, including the biased "tagged double" encoding used
by NaN-boxing JavaScript engines.

Word is a value type; all operations return new values. The canonical
string form is "0x" followed by exactly 16 lowercase hex digits:

	w, _ := word64.WordFromString("0x41414141")
	fmt.Println(w.Add(word64.One))
	// Output: 0x0000000041414142

Word can be created from a variety of sources:

	Word(v)                                    any integer expression
	WordFromInt64(v int64) Word
	WordFromFloat64(f float64) (out Word, inRange bool)
	WordFromString(s string) (out Word, err error)
	WordFromBytes(b []byte) (out Word, err error)
	WordFromDouble(d float64) Word
	WordFromJSValue(d float64) Word
	RandWord(source RandSource) Word

Word supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Reinterpretation between Word and float64 is the reason this package
exists. AsDouble and WordFromDouble move the raw bit pattern between the
two domains without numeric conversion. AsJSValue and WordFromJSValue do
the same through the 2^48 bias a NaN-boxing engine applies before storing
a double, which is what an exploit needs when it reads or plants values
through a corrupted float array.
*/
package word64
