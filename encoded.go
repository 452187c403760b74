package argdata

import (
	"io"

	"github.com/nuxinl/go-argdata/internal/subfield"
)

// Encoded is an argdata value backed by a borrowed, already-encoded byte
// slice: decoding happens on demand, one accessor call at a time, rather
// than all at once. This is the lazy decoder spec.md describes — the
// counterpart of the original library's EncodedArgdata.
//
// Encoded supplies Type and the per-type accessors directly instead of a
// single Read, since answering "is this a bool, and if so which" from the
// first byte is cheaper than constructing a full Value tree up front.
type Encoded struct {
	bytes     []byte
	convertFd ConvertFd
}

// FromBytes wraps an encoded buffer with no fd-convert capability: any fd
// leaf in it reads as an EncodedFd whose Fd method always fails.
func FromBytes(b []byte) *Encoded {
	return &Encoded{bytes: b, convertFd: NoConvert{}}
}

// FromBytesWithFds wraps an encoded buffer whose fd leaves should be
// resolved through convertFd.
func FromBytesWithFds(b []byte, convertFd ConvertFd) *Encoded {
	return &Encoded{bytes: b, convertFd: convertFd}
}

// Bytes returns the original encoded buffer.
func (e *Encoded) Bytes() []byte { return e.bytes }

func (e *Encoded) Read() (Value, error) { return defaultRead(e) }

func (e *Encoded) Type() (Type, error) {
	if len(e.bytes) == 0 {
		return TypeNull, nil
	}
	return typeForTag(e.bytes[0])
}

func (e *Encoded) ReadNull() error {
	if len(e.bytes) == 0 {
		return nil
	}
	return NoFit{Kind: DifferentType}
}

func (e *Encoded) ReadBinary() ([]byte, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagBinary {
		return nil, NoFit{Kind: DifferentType}
	}
	return e.bytes[1:], nil
}

func (e *Encoded) ReadBool() (bool, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagBool {
		return false, NoFit{Kind: DifferentType}
	}
	data := e.bytes[1:]
	switch len(data) {
	case 0:
		return false, nil
	case 1:
		if data[0] == 1 {
			return true, nil
		}
	}
	return false, ReadError{Kind: InvalidBoolValue}
}

func (e *Encoded) ReadEncodedFd() (EncodedFd, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagFd {
		return EncodedFd{}, NoFit{Kind: DifferentType}
	}
	data := e.bytes[1:]
	if len(data) != 4 {
		return EncodedFd{}, ReadError{Kind: InvalidFdLength}
	}
	return NewEncodedFd(getUint32(data), e.convertFd), nil
}

func (e *Encoded) ReadFloat() (float64, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagFloat {
		return 0, NoFit{Kind: DifferentType}
	}
	data := e.bytes[1:]
	if len(data) != 8 {
		return 0, ReadError{Kind: InvalidFloatLength}
	}
	return getFloat64(data), nil
}

func (e *Encoded) ReadIntValue() (IntValue, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagInt {
		return IntValue{}, NoFit{Kind: DifferentType}
	}
	return IntFromBigBytes(e.bytes[1:]), nil
}

func (e *Encoded) ReadStrValue() (StrValue, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagStr {
		return StrValue{}, NoFit{Kind: DifferentType}
	}
	data := e.bytes[1:]
	if len(data) == 0 || data[len(data)-1] != 0 {
		return StrValue{}, ReadError{Kind: MissingNullTerminator}
	}
	return StrFromBytesWithNul(data), nil
}

func (e *Encoded) ReadTimestamp() (Timespec, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagTimestamp {
		return Timespec{}, NoFit{Kind: DifferentType}
	}
	return decodeTimespec(e.bytes[1:])
}

func (e *Encoded) ReadMap() (*MapIterator, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagMap {
		return nil, NoFit{Kind: DifferentType}
	}
	return newMapIterator(e), nil
}

func (e *Encoded) ReadSeq() (*SeqIterator, error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagSeq {
		return nil, NoFit{Kind: DifferentType}
	}
	return newSeqIterator(e), nil
}

func (e *Encoded) SerializedLength() int { return len(e.bytes) }

func (e *Encoded) Serialize(w io.Writer, fdMap FdMapping) error {
	if fdMap == nil {
		_, err := w.Write(e.bytes)
		return err
	}
	return rewriteSerialized(e.bytes, e.convertFd, w, fdMap)
}

// iterSubfieldNext is shared by the map and seq iteration paths: both walk
// length-prefixed children starting right after the tag byte, the only
// difference being whether a child is a lone element or half of a pair.
func (e *Encoded) iterSubfieldNext(cookie *int) (child []byte, ok bool, err error) {
	field, n, done, ferr := subfield.Next(e.bytes[*cookie:])
	*cookie += n
	if ferr != nil {
		return nil, false, ReadError{Kind: InvalidSubfield}
	}
	if done {
		return nil, false, nil
	}
	return field, true, nil
}

func (e *Encoded) mapNext(cookie *int) (key, value Ref, ok bool, err error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagMap {
		return nil, nil, false, nil
	}
	if *cookie == 0 {
		*cookie = 1
	}
	keyBytes, ok, err := e.iterSubfieldNext(cookie)
	if err != nil || !ok {
		return nil, nil, false, err
	}
	valueBytes, ok, err := e.iterSubfieldNext(cookie)
	if err != nil {
		return nil, nil, false, err
	}
	if !ok {
		return nil, nil, false, ReadError{Kind: InvalidKeyValuePair}
	}
	return FromBytesWithFds(keyBytes, e.convertFd), FromBytesWithFds(valueBytes, e.convertFd), true, nil
}

func (e *Encoded) seqNext(cookie *int) (value Ref, ok bool, err error) {
	if len(e.bytes) == 0 || e.bytes[0] != tagSeq {
		return nil, false, nil
	}
	if *cookie == 0 {
		*cookie = 1
	}
	itemBytes, ok, err := e.iterSubfieldNext(cookie)
	if err != nil || !ok {
		return nil, false, err
	}
	return FromBytesWithFds(itemBytes, e.convertFd), true, nil
}

// rewriteSerialized recursively copies source's bytes, remapping the raw
// numbers of any Fd leaves found inside (including nested inside maps and
// seqs) through fdMap, and leaving everything else — including any
// trailing bytes that don't parse as a well-formed subfield — untouched.
func rewriteSerialized(source []byte, convertFd ConvertFd, w io.Writer, fdMap FdMapping) error {
	typ, terr := typeOfBytes(source)
	if terr != nil {
		_, err := w.Write(source)
		return err
	}

	switch typ {
	case TypeMap, TypeSeq:
		lastWrite := 0
		offset := 1
		for {
			field, n, done, ferr := subfield.Next(source[offset:])
			if done || ferr != nil {
				break
			}
			if _, err := w.Write(source[lastWrite : offset+n-len(field)]); err != nil {
				return err
			}
			offset += n
			if err := rewriteSerialized(field, convertFd, w, fdMap); err != nil {
				return err
			}
			lastWrite = offset
		}
		_, err := w.Write(source[lastWrite:])
		return err

	case TypeFd:
		data := source[1:]
		if len(data) == 4 {
			raw := getUint32(data)
			if fd, err := convertFd.ConvertFd(raw); err == nil {
				return NewFd(fdMap.Map(fd), Identity{}).Serialize(w, nil)
			}
		}
		return InvalidFdValue().Serialize(w, nil)

	default:
		_, err := w.Write(source)
		return err
	}
}

// typeOfBytes is get_type applied to a bare byte slice, used by
// rewriteSerialized's recursion over subfield bodies rather than whole
// Encoded values.
func typeOfBytes(data []byte) (Type, error) {
	if len(data) == 0 {
		return TypeNull, nil
	}
	return typeForTag(data[0])
}
