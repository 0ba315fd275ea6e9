package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/davecgh/go-spew/spew"
	word64 "github.com/shabbyrobe/go-word64"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/pcg"
	"golang.org/x/sys/unix"
)

const usage = `Qword inspector

Usage: inspect [flags] <word>...

Each argument is a hex qword ("0x" optional) and is described in every
interpretation the bits allow: unsigned, signed, bytes, raw double, NaN-boxed
double. With -d the arguments are doubles and the tool works backwards from
the bit pattern. With -f a raw dump file is mapped and rendered as a qword
table instead.`

var (
	dumpPath = flag.String("f", "", "map this raw dump file and render it as a qword table")
	doubles  = flag.Bool("d", false, "parse plain arguments as doubles instead of hex words")
	offset   = flag.Int64("off", 0, "start this many bytes into the dump file")
	limit    = flag.Int("n", 0, "render at most this many qwords (0 renders all)")
	random   = flag.Int("rand", 0, "describe this many deterministically random qwords and exit")
	verbose  = flag.Bool("v", false, "dump the parsed configuration and the dump summary")
	timings  = flag.Bool("stats", false, "print phase timings before exiting")

	rng pcg.T
)

func stats() {
	defer fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}
	if *timings {
		stats()
	}
}

func run() (err error) {
	defer mon.Start().Stop(&err)

	if *verbose {
		spew.Fdump(os.Stderr, map[string]interface{}{
			"file": *dumpPath, "doubles": *doubles, "off": *offset,
			"n": *limit, "rand": *random,
		})
	}

	if *dumpPath == "" && *random == 0 && flag.NArg() == 0 {
		fmt.Println(usage)
		return errs.New("nothing to inspect")
	}

	if *dumpPath != "" {
		if err := inspectDump(*dumpPath); err != nil {
			return err
		}
	}

	for i := 0; i < *random; i++ {
		describe(os.Stdout, word64.RandWord(&rng))
	}

	for _, arg := range flag.Args() {
		w, err := parseArg(arg)
		if err != nil {
			return err
		}
		describe(os.Stdout, w)
	}
	return nil
}

func parseArg(arg string) (word64.Word, error) {
	if *doubles {
		d, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return 0, errs.Wrap(err)
		}
		return word64.WordFromDouble(d), nil
	}
	return word64.WordFromString(arg)
}

// describe prints one word in every interpretation the bits allow.
func describe(out io.Writer, w word64.Word) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	b := w.Bytes()
	fmt.Fprintf(tw, "word\t%s\n", w)
	fmt.Fprintf(tw, "uint64\t%d\n", w)
	fmt.Fprintf(tw, "int64\t%d\n", w.AsInt64())
	fmt.Fprintf(tw, "bytes\t% x\n", b[:])
	fmt.Fprintf(tw, "lo/hi\t0x%08x 0x%08x\n", w.Lo(), w.Hi())
	fmt.Fprintf(tw, "double\t%s\n", describeDouble(w.AsDouble()))
	fmt.Fprintf(tw, "jsvalue\t%s\n", describeDouble(w.AsJSValue()))
	if !w.IsZero() {
		fmt.Fprintf(tw, "bits\tlen %d, ones %d, trailing zeros %d\n",
			w.BitLen(), w.OnesCount(), w.TrailingZeros())
	}
	fmt.Fprintln(tw)
}

func describeDouble(d float64, err error) string {
	if err != nil {
		return "-"
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// summary accumulates per-dump facts during the scan phase.
type summary struct {
	Qwords int
	Spare  int // trailing bytes that do not fill a qword
	Zeros  int
	Min    word64.Word
	Max    word64.Word
	Span   word64.Word
	Boxed  int // qwords AsJSValue accepts
}

func inspectDump(path string) (err error) {
	defer mon.Start().Stop(&err)

	data, err := mapDump(path)
	if err != nil {
		return err
	}
	defer unix.Munmap(data)

	if *offset < 0 || *offset > int64(len(data)) {
		return errs.New("offset %d is outside %s (%d bytes)", *offset, path, len(data))
	}
	region := data[*offset:]

	sum := scanDump(region)
	if err := renderDump(os.Stdout, region); err != nil {
		return err
	}

	fmt.Printf("qwords: %d  zeros: %d  boxed: %d  min: %s  max: %s  span: %s\n",
		sum.Qwords, sum.Zeros, sum.Boxed, sum.Min, sum.Max, sum.Span)
	if *verbose {
		spew.Fdump(os.Stderr, sum)
	}
	return nil
}

func mapDump(path string) (data []byte, err error) {
	defer mon.Start().Stop(&err)

	fh, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer fh.Close()

	fi, err := fh.Stat()
	if err != nil {
		return nil, errs.Wrap(err)
	}
	if fi.Size() == 0 {
		return nil, errs.New("%s is empty", path)
	}

	data, err = unix.Mmap(int(fh.Fd()), 0, int(fi.Size()),
		unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return data, nil
}

var scanThunk mon.Thunk

func scanDump(region []byte) (sum summary) {
	var err error
	timer := scanThunk.Start()
	defer timer.Stop(&err)

	sum.Qwords = len(region) / 8
	sum.Spare = len(region) % 8
	sum.Min = word64.MaxWord

	for i := 0; i < sum.Qwords; i++ {
		w, _ := word64.WordFromBytes(region[i*8 : i*8+8])
		if w.IsZero() {
			sum.Zeros++
		}
		if _, err := w.AsJSValue(); err == nil {
			sum.Boxed++
		}
		sum.Min = word64.Smaller(sum.Min, w)
		sum.Max = word64.Larger(sum.Max, w)
	}
	if sum.Qwords == 0 {
		sum.Min = word64.Zero
	}
	sum.Span = word64.Difference(sum.Min, sum.Max)
	return sum
}

func renderDump(out io.Writer, region []byte) (err error) {
	defer mon.Start().Stop(&err)

	qwords := len(region) / 8
	if *limit > 0 && qwords > *limit {
		qwords = *limit
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "OFFSET\tWORD\tINT64\tDOUBLE\tJSVALUE\n")
	for i := 0; i < qwords; i++ {
		w, err := word64.WordFromBytes(region[i*8 : i*8+8])
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%08x\t%s\t%d\t%s\t%s\n",
			*offset+int64(i*8), w, w.AsInt64(),
			describeDouble(w.AsDouble()), describeDouble(w.AsJSValue()))
	}
	return nil
}
