package argdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dump renders r as a human-readable debug tree: braces for maps, brackets
// for sequences, and an inline error("...") marker wherever a ReadError is
// hit, rather than aborting the whole dump. This is the presentation-only
// counterpart to the wire codec — it never participates in round-trip or
// ordering behavior, and its output format is not itself part of any
// invariant other code should depend on.
func Dump(r Reader) string {
	var b strings.Builder
	dumpReader(&b, r)
	return b.String()
}

func dumpReader(b *strings.Builder, r Reader) {
	v, err := r.Read()
	if err != nil {
		dumpError(b, err)
		return
	}
	dumpValue(b, v)
}

func dumpError(b *strings.Builder, err error) {
	fmt.Fprintf(b, "error(%q)", err.Error())
}

func dumpValue(b *strings.Builder, v Value) {
	switch v.Kind {
	case TypeNull:
		b.WriteString("null")
	case TypeBinary:
		b.WriteString("binary(")
		dumpByteSlice(b, v.Binary)
		b.WriteByte(')')
	case TypeBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case TypeFd:
		fmt.Fprintf(b, "fd(%d)", v.Fd.RawEncodedNumber())
	case TypeFloat:
		b.WriteString(dumpFloat(v.Float))
	case TypeInt:
		b.WriteString(v.Int.String())
	case TypeStr:
		s, err := v.Str.Str()
		if err != nil {
			dumpError(b, err)
			return
		}
		fmt.Fprintf(b, "%q", s)
	case TypeTimestamp:
		fmt.Fprintf(b, "timestamp(%d, %d)", v.Timestamp.Sec, v.Timestamp.Nsec)
	case TypeMap:
		dumpMap(b, v.Map)
	case TypeSeq:
		dumpSeq(b, v.Seq)
	}
}

func dumpByteSlice(b *strings.Builder, data []byte) {
	b.WriteByte('[')
	for i, by := range data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%d", by)
	}
	b.WriteByte(']')
}

func dumpFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// dumpMap and dumpSeq render exactly one trailing error marker if iteration
// stops early due to malformed data, mirroring the original's behavior of
// substituting error("...") for whichever entry couldn't be read, instead of
// discarding everything decoded up to that point.
func dumpMap(b *strings.Builder, it *MapIterator) {
	b.WriteByte('{')
	first := true
	for it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		dumpReader(b, it.Key())
		b.WriteString(": ")
		dumpReader(b, it.Value())
	}
	if err := it.Err(); err != nil {
		if !first {
			b.WriteString(", ")
		}
		dumpError(b, err)
		b.WriteString(": ")
		dumpError(b, err)
	}
	b.WriteByte('}')
}

func dumpSeq(b *strings.Builder, it *SeqIterator) {
	b.WriteByte('[')
	first := true
	for it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		dumpReader(b, it.Value())
	}
	if err := it.Err(); err != nil {
		if !first {
			b.WriteString(", ")
		}
		dumpError(b, err)
	}
	b.WriteByte(']')
}
