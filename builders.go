package argdata

import (
	"io"

	"github.com/nuxinl/go-argdata/internal/subfield"
)

// Null is the argdata null value: present, but carrying no data. It
// serializes to zero bytes — not even a tag byte, since every other type's
// tag byte is itself the sentinel that distinguishes it from null.
type Null struct{ derive }

// NewNull returns the null value.
func NewNull() *Null {
	n := &Null{}
	n.derive = derive{reader: n}
	return n
}

func (n *Null) Read() (Value, error)                 { return Value{Kind: TypeNull}, nil }
func (n *Null) SerializedLength() int                { return 0 }
func (n *Null) Serialize(io.Writer, FdMapping) error { return nil }

// Binary is an argdata binary (byte string) value.
type Binary struct {
	derive
	value []byte
}

// NewBinary wraps b as a binary value. b is not copied.
func NewBinary(b []byte) *Binary {
	v := &Binary{value: b}
	v.derive = derive{reader: v}
	return v
}

func (v *Binary) Read() (Value, error) { return Value{Kind: TypeBinary, Binary: v.value}, nil }
func (v *Binary) SerializedLength() int { return 1 + len(v.value) }
func (v *Binary) Serialize(w io.Writer, _ FdMapping) error {
	if _, err := w.Write([]byte{tagBinary}); err != nil {
		return err
	}
	_, err := w.Write(v.value)
	return err
}

// Bool is an argdata boolean value.
type Bool struct {
	derive
	value bool
}

// NewBool wraps v as a boolean value.
func NewBool(v bool) *Bool {
	b := &Bool{value: v}
	b.derive = derive{reader: b}
	return b
}

func (b *Bool) Read() (Value, error) { return Value{Kind: TypeBool, Bool: b.value}, nil }
func (b *Bool) SerializedLength() int {
	if !b.value {
		return 1
	}
	return 2
}
func (b *Bool) Serialize(w io.Writer, _ FdMapping) error {
	if !b.value {
		_, err := w.Write([]byte{tagBool})
		return err
	}
	_, err := w.Write([]byte{tagBool, 1})
	return err
}

// Float is an argdata floating point value, always encoded as 8 bytes.
type Float struct {
	derive
	value float64
}

// NewFloat wraps v as a floating point value.
func NewFloat(v float64) *Float {
	f := &Float{value: v}
	f.derive = derive{reader: f}
	return f
}

func (f *Float) Read() (Value, error)  { return Value{Kind: TypeFloat, Float: f.value}, nil }
func (f *Float) SerializedLength() int { return 9 }
func (f *Float) Serialize(w io.Writer, _ FdMapping) error {
	var buf [9]byte
	buf[0] = tagFloat
	putFloat64(buf[1:], f.value)
	_, err := w.Write(buf[:])
	return err
}

// Int is an argdata integer value.
type Int struct {
	derive
	value IntValue
}

// NewInt wraps v as an integer value.
func NewInt(v IntValue) *Int {
	i := &Int{value: v}
	i.derive = derive{reader: i}
	return i
}

func (i *Int) Read() (Value, error)  { return Value{Kind: TypeInt, Int: i.value}, nil }
func (i *Int) SerializedLength() int { return 1 + i.value.serializedLength() }
func (i *Int) Serialize(w io.Writer, _ FdMapping) error {
	buf := make([]byte, 0, i.SerializedLength())
	buf = append(buf, tagInt)
	buf = i.value.appendTo(buf)
	_, err := w.Write(buf)
	return err
}

// Str is an argdata string value.
type Str struct {
	derive
	value StrValue
}

// NewStr wraps v as a string value.
func NewStr(v StrValue) *Str {
	s := &Str{value: v}
	s.derive = derive{reader: s}
	return s
}

func (s *Str) Read() (Value, error)  { return Value{Kind: TypeStr, Str: s.value}, nil }
func (s *Str) SerializedLength() int { return 1 + len(s.value.Bytes()) + 1 }
func (s *Str) Serialize(w io.Writer, _ FdMapping) error {
	if _, err := w.Write([]byte{tagStr}); err != nil {
		return err
	}
	if _, err := w.Write(s.value.Bytes()); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}

// Timestamp is an argdata timestamp value.
type Timestamp struct {
	derive
	value Timespec
}

// NewTimestamp wraps v as a timestamp value.
func NewTimestamp(v Timespec) *Timestamp {
	t := &Timestamp{value: v}
	t.derive = derive{reader: t}
	return t
}

func (t *Timestamp) Read() (Value, error) {
	return Value{Kind: TypeTimestamp, Timestamp: t.value}, nil
}
func (t *Timestamp) SerializedLength() int { return 1 + encodeTimespecLength(t.value) }
func (t *Timestamp) Serialize(w io.Writer, _ FdMapping) error {
	buf := make([]byte, 0, t.SerializedLength())
	buf = append(buf, tagTimestamp)
	buf = appendEncodedTimespec(buf, t.value)
	_, err := w.Write(buf)
	return err
}

// FdValue is an argdata value representing a single file descriptor,
// either of this process (built with ProcessFd) or as found encoded in
// some other argdata value (built with NewFd).
type FdValue struct {
	derive
	raw       uint32
	convertFd ConvertFd
}

// ProcessFd wraps fd as a value representing a real file descriptor of
// this process: serializing it records fd's own number (remapped through
// FdMapping, same as any other fd leaf).
func ProcessFd(fd Fd) *FdValue {
	return NewFd(uint32(int32(fd)), Identity{})
}

// NewFd wraps raw as a value representing a file descriptor found encoded
// elsewhere, resolved through convertFd.
func NewFd(raw uint32, convertFd ConvertFd) *FdValue {
	f := &FdValue{raw: raw, convertFd: convertFd}
	f.derive = derive{reader: f}
	return f
}

// InvalidFdValue returns a value representing a file descriptor that can
// never be resolved to a real fd, serializing as the wire sentinel
// 0xFFFFFFFF.
func InvalidFdValue() *FdValue {
	return NewFd(invalidRaw, NoConvert{})
}

func (f *FdValue) Read() (Value, error) {
	return Value{Kind: TypeFd, Fd: NewEncodedFd(f.raw, f.convertFd)}, nil
}
func (f *FdValue) SerializedLength() int { return 5 }
func (f *FdValue) Serialize(w io.Writer, fdMap FdMapping) error {
	raw := f.raw
	if fdMap != nil {
		if fd, err := f.convertFd.ConvertFd(f.raw); err == nil {
			raw = fdMap.Map(fd)
		} else {
			raw = invalidRaw
		}
	}
	buf := [5]byte{tagFd}
	putUint32(buf[1:], raw)
	_, err := w.Write(buf[:])
	return err
}

// writeSubfield writes a length-prefixed child, sharing the same framing
// logic used by the lazy decoder.
func writeSubfield(w io.Writer, body []byte) error {
	var lenBuf []byte
	lenBuf = subfield.WriteLength(lenBuf, len(body))
	if _, err := w.Write(lenBuf); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}
