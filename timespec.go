package argdata

import "math/big"

// Timespec is a point in time relative to the Unix epoch, represented the
// way most timestamp libraries accept one: separate signed seconds and
// subsecond nanoseconds, rather than a single wide integer.
//
// A Go std library time.Time is deliberately not used here: argdata
// timestamps are encoded as arbitrary-precision signed nanosecond counts
// (up to 12 bytes on the wire) and can therefore represent instants outside
// what time.Time and its monotonic-reading invariants are built for.
type Timespec struct {
	// Sec is the number of seconds since the Unix epoch, possibly negative.
	Sec int64
	// Nsec is the number of subsecond nanoseconds, 0 <= Nsec < 1_000_000_000.
	Nsec uint32
}

var billion = big.NewInt(1_000_000_000)

// decodeTimespec interprets data as a big-endian two's-complement signed
// nanosecond count and splits it into seconds and nanoseconds. It reports
// TimestampOutOfRange if the encoded body is longer than 12 bytes, or if
// the second count would not fit in an int64.
func decodeTimespec(data []byte) (Timespec, error) {
	if len(data) > 12 {
		return Timespec{}, ReadError{Kind: TimestampOutOfRange}
	}
	ns := twosComplementToBig(data)
	sec, nsec := new(big.Int), new(big.Int)
	sec.DivMod(ns, billion, nsec) // Euclidean division: 0 <= nsec < billion always.
	if !sec.IsInt64() {
		return Timespec{}, ReadError{Kind: TimestampOutOfRange}
	}
	return Timespec{Sec: sec.Int64(), Nsec: uint32(nsec.Int64())}, nil
}

// encodeTimespecLength returns the number of bytes appendEncodedTimespec
// would append (not counting the leading tag byte).
func encodeTimespecLength(t Timespec) int {
	return twosComplementLength(nanoseconds(t))
}

// appendEncodedTimespec appends the minimal big-endian two's-complement
// nanosecond encoding of t to buf.
func appendEncodedTimespec(buf []byte, t Timespec) []byte {
	return appendTwosComplement(buf, nanoseconds(t))
}

func nanoseconds(t Timespec) *big.Int {
	v := new(big.Int).Mul(big.NewInt(t.Sec), billion)
	v.Add(v, big.NewInt(int64(t.Nsec)))
	return v
}

// twosComplementToBig interprets data as a big-endian two's-complement
// signed integer of arbitrary length.
func twosComplementToBig(data []byte) *big.Int {
	if len(data) == 0 {
		return new(big.Int)
	}
	if data[0] < 0x80 {
		return new(big.Int).SetBytes(data)
	}
	inverted := make([]byte, len(data))
	for i, b := range data {
		inverted[i] = ^b
	}
	v := new(big.Int).SetBytes(inverted)
	v.Add(v, big.NewInt(1))
	return v.Neg(v)
}

// twosComplementLength returns the minimal number of big-endian
// two's-complement bytes needed to represent v: the smallest n with
// -2^(8n-1) <= v < 2^(8n-1).
func twosComplementLength(v *big.Int) int {
	if v.Sign() == 0 {
		return 0
	}
	var magnitude *big.Int
	if v.Sign() < 0 {
		magnitude = new(big.Int).Not(v)
	} else {
		magnitude = v
	}
	return (magnitude.BitLen() + 8) / 8
}

// appendTwosComplement appends the minimal big-endian two's-complement
// encoding of v to buf.
func appendTwosComplement(buf []byte, v *big.Int) []byte {
	n := twosComplementLength(v)
	if n == 0 {
		return buf
	}
	var src *big.Int
	if v.Sign() < 0 {
		// Two's complement of a negative value in n bytes: 2^(8n) + v.
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
		src = new(big.Int).Add(mod, v)
	} else {
		src = v
	}
	raw := src.Bytes()
	start := len(buf)
	buf = append(buf, make([]byte, n)...)
	copy(buf[start+n-len(raw):], raw)
	return buf
}
