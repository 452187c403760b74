package argdata

import "io"

// Reader is anything that can be read as an argdata value: a lazily
// decoded slice of encoded bytes, or a value built directly in memory for
// serialization. Implementers supply either Read alone (embedding derive,
// which derives Type and the per-type accessors from it) or Type plus every
// per-type accessor directly, when a lazy decode can answer a single
// question cheaper than materializing a full Value would — Encoded does
// the latter.
//
// Whichever set an implementer supplies, the invariant holds both ways: if
// Type reports T, the matching ReadT must not return NoFit, and the field
// of the Value Read returns corresponding to T must agree with what ReadT
// returns.
type Reader interface {
	// Read decodes the full value in one step.
	Read() (Value, error)

	// Type reports the value's kind without necessarily decoding the rest
	// of it.
	Type() (Type, error)

	ReadNull() error
	ReadBinary() ([]byte, error)
	ReadBool() (bool, error)
	ReadEncodedFd() (EncodedFd, error)
	ReadFloat() (float64, error)
	ReadIntValue() (IntValue, error)
	ReadStrValue() (StrValue, error)
	ReadTimestamp() (Timespec, error)
	ReadMap() (*MapIterator, error)
	ReadSeq() (*SeqIterator, error)

	// SerializedLength reports how many bytes Serialize would write.
	SerializedLength() int

	// Serialize writes the wire encoding of the value to w. fdMap may be
	// nil, in which case any fd leaves serialize with their raw encoded
	// number unchanged rather than being remapped.
	Serialize(w io.Writer, fdMap FdMapping) error
}

// derive implements Type and the per-type accessors of Reader by calling a
// single Read method. Leaf and container builders embed derive and point
// it at themselves, so they only need to implement Read, SerializedLength,
// and Serialize.
type derive struct {
	reader interface{ Read() (Value, error) }
}

func (d derive) Type() (Type, error) {
	v, err := d.reader.Read()
	if err != nil {
		return 0, err
	}
	return v.Kind, nil
}

func (d derive) ReadNull() error {
	v, err := d.reader.Read()
	if err != nil {
		return err
	}
	if v.Kind != TypeNull {
		return NoFit{Kind: DifferentType}
	}
	return nil
}

func (d derive) ReadBinary() ([]byte, error) {
	v, err := d.reader.Read()
	if err != nil {
		return nil, err
	}
	if v.Kind != TypeBinary {
		return nil, NoFit{Kind: DifferentType}
	}
	return v.Binary, nil
}

func (d derive) ReadBool() (bool, error) {
	v, err := d.reader.Read()
	if err != nil {
		return false, err
	}
	if v.Kind != TypeBool {
		return false, NoFit{Kind: DifferentType}
	}
	return v.Bool, nil
}

func (d derive) ReadEncodedFd() (EncodedFd, error) {
	v, err := d.reader.Read()
	if err != nil {
		return EncodedFd{}, err
	}
	if v.Kind != TypeFd {
		return EncodedFd{}, NoFit{Kind: DifferentType}
	}
	return v.Fd, nil
}

func (d derive) ReadFloat() (float64, error) {
	v, err := d.reader.Read()
	if err != nil {
		return 0, err
	}
	if v.Kind != TypeFloat {
		return 0, NoFit{Kind: DifferentType}
	}
	return v.Float, nil
}

func (d derive) ReadIntValue() (IntValue, error) {
	v, err := d.reader.Read()
	if err != nil {
		return IntValue{}, err
	}
	if v.Kind != TypeInt {
		return IntValue{}, NoFit{Kind: DifferentType}
	}
	return v.Int, nil
}

func (d derive) ReadStrValue() (StrValue, error) {
	v, err := d.reader.Read()
	if err != nil {
		return StrValue{}, err
	}
	if v.Kind != TypeStr {
		return StrValue{}, NoFit{Kind: DifferentType}
	}
	return v.Str, nil
}

func (d derive) ReadTimestamp() (Timespec, error) {
	v, err := d.reader.Read()
	if err != nil {
		return Timespec{}, err
	}
	if v.Kind != TypeTimestamp {
		return Timespec{}, NoFit{Kind: DifferentType}
	}
	return v.Timestamp, nil
}

func (d derive) ReadMap() (*MapIterator, error) {
	v, err := d.reader.Read()
	if err != nil {
		return nil, err
	}
	if v.Kind != TypeMap {
		return nil, NoFit{Kind: DifferentType}
	}
	return v.Map, nil
}

func (d derive) ReadSeq() (*SeqIterator, error) {
	v, err := d.reader.Read()
	if err != nil {
		return nil, err
	}
	if v.Kind != TypeSeq {
		return nil, NoFit{Kind: DifferentType}
	}
	return v.Seq, nil
}

// defaultRead implements Read in terms of Type and the per-type accessors,
// for implementers (like Encoded) that supply those directly instead of a
// single Read. A ReadError from an accessor is a legitimate data error and
// propagates normally; a NoFit is not, since Type already committed to this
// accessor's type, so NoFit{DifferentType} there can only mean the Reader
// implementation itself is inconsistent, and that panics rather than
// returning a misleading error.
func defaultRead(r Reader) (Value, error) {
	t, err := r.Type()
	if err != nil {
		return Value{}, err
	}
	switch t {
	case TypeNull:
		if err := checkAccessorErr(t, r.ReadNull()); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeNull}, nil
	case TypeBinary:
		b, err := r.ReadBinary()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeBinary, Binary: b}, nil
	case TypeBool:
		b, err := r.ReadBool()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeBool, Bool: b}, nil
	case TypeFd:
		fd, err := r.ReadEncodedFd()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeFd, Fd: fd}, nil
	case TypeFloat:
		f, err := r.ReadFloat()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeFloat, Float: f}, nil
	case TypeInt:
		i, err := r.ReadIntValue()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeInt, Int: i}, nil
	case TypeStr:
		s, err := r.ReadStrValue()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeStr, Str: s}, nil
	case TypeTimestamp:
		ts, err := r.ReadTimestamp()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeTimestamp, Timestamp: ts}, nil
	case TypeMap:
		m, err := r.ReadMap()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeMap, Map: m}, nil
	case TypeSeq:
		s, err := r.ReadSeq()
		if err := checkAccessorErr(t, err); err != nil {
			return Value{}, err
		}
		return Value{Kind: TypeSeq, Seq: s}, nil
	default:
		panic(inconsistentReader(t, nil))
	}
}

// checkAccessorErr distinguishes a legitimate data error (returned as-is)
// from a Reader implementation bug (panics): Type already promised t, so the
// matching accessor returning NoFit{DifferentType} can only mean the two
// disagree about what this value is, never a caller or data issue.
func checkAccessorErr(t Type, err error) error {
	if err == nil {
		return nil
	}
	if nf, ok := err.(NoFit); ok && nf.Kind == DifferentType {
		panic(inconsistentReader(t, err))
	}
	return err
}

func inconsistentReader(t Type, err error) string {
	return "argdata: Reader reported Type " + t.String() + " but its matching accessor disagreed: " + errString(err)
}

func errString(err error) string {
	if err == nil {
		return "unknown type"
	}
	return err.Error()
}
