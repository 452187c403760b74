package argdata

import (
	"strconv"

	"github.com/nuxinl/go-argdata/internal/bigint"
)

// IntValue is an argdata integer: conceptually a big-endian two's-complement
// signed integer of arbitrary length, but classified at construction time
// into whichever of a uint64, an int64, or an arbitrary byte slice holds it
// most cheaply — see internal/bigint for the classification rule.
type IntValue struct {
	inner bigint.Int
}

// IntFromInt64 builds an IntValue from a signed machine-width value.
func IntFromInt64(v int64) IntValue { return IntValue{bigint.FromInt64(v)} }

// IntFromUint64 builds an IntValue from an unsigned machine-width value.
func IntFromUint64(v uint64) IntValue { return IntValue{bigint.FromUint64(v)} }

// IntFromInt8, IntFromInt16, ..., IntFromUint64 are the machine-width
// narrowing constructors, one per Go integer type, mirroring the original
// library's per-width impl_s!/impl_u! instantiations.
func IntFromInt8(v int8) IntValue   { return IntFromInt64(int64(v)) }
func IntFromInt16(v int16) IntValue { return IntFromInt64(int64(v)) }
func IntFromInt32(v int32) IntValue { return IntFromInt64(int64(v)) }

func IntFromUint8(v uint8) IntValue   { return IntFromUint64(uint64(v)) }
func IntFromUint16(v uint16) IntValue { return IntFromUint64(uint64(v)) }
func IntFromUint32(v uint32) IntValue { return IntFromUint64(uint64(v)) }

// IntFromBigBytes builds an IntValue from a big-endian two's-complement
// buffer of arbitrary length, as found on the wire.
func IntFromBigBytes(b []byte) IntValue { return IntValue{bigint.FromBytes(b)} }

// Uint64 returns the value as a uint64, if it fits.
func (v IntValue) Uint64() (uint64, bool) { return v.inner.Uint64() }

// Int64 returns the value as an int64, if it fits.
func (v IntValue) Int64() (int64, bool) { return v.inner.Int64() }

// Bytes returns the normalized big-endian two's-complement encoding of the
// value.
func (v IntValue) Bytes() []byte { return v.inner.Bytes() }

// Cmp orders two IntValues; see internal/bigint.Cmp for the ordering law.
func (v IntValue) Cmp(other IntValue) int { return bigint.Cmp(v.inner, other.inner) }

// String renders the value in plain decimal, used by Dump.
func (v IntValue) String() string {
	if u, ok := v.Uint64(); ok {
		return strconv.FormatUint(u, 10)
	}
	if s, ok := v.Int64(); ok {
		return strconv.FormatInt(s, 10)
	}
	return twosComplementToBig(v.Bytes()).String()
}

func (v IntValue) serializedLength() int { return v.inner.SerializedLength() }

func (v IntValue) appendTo(buf []byte) []byte { return v.inner.AppendTo(buf) }

// Integer is the set of Go integer types ReadInt can narrow an IntValue
// into.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ReadInt reads an IntValue from r and narrows it to T, reporting
// NoFit{OutOfRange} if the value doesn't fit in T's range (and whatever
// ReadIntValue returns if the value isn't an int at all).
func ReadInt[T Integer](r Reader) (T, error) {
	iv, err := r.ReadIntValue()
	if err != nil {
		var zero T
		return zero, err
	}
	return narrowInt[T](iv)
}

func narrowInt[T Integer](iv IntValue) (T, error) {
	allOnes := ^uint64(0)
	if T(allOnes) < 0 {
		v, ok := iv.Int64()
		if !ok {
			return 0, NoFit{Kind: OutOfRange}
		}
		t := T(v)
		if int64(t) != v {
			return 0, NoFit{Kind: OutOfRange}
		}
		return t, nil
	}
	v, ok := iv.Uint64()
	if !ok {
		return 0, NoFit{Kind: OutOfRange}
	}
	t := T(v)
	if uint64(t) != v {
		return 0, NoFit{Kind: OutOfRange}
	}
	return t, nil
}
