package argdata

import (
	"bytes"
	"io"

	"github.com/nuxinl/go-argdata/internal/subfield"
)

// Pair is one key-value entry of a Map builder.
type Pair struct {
	Key   Reader
	Value Reader
}

// Map is an argdata value built in memory from an explicit list of
// key-value pairs, the "container of pairs" shape spec.md allows for map
// construction; MapFromSlices gives the other shape (a container of keys
// paired with a container of values).
type Map struct {
	derive
	pairs []Pair
}

// NewMap builds a map value from pairs, in iteration order. Non-goals
// carried over from the wire format apply here too: no key uniqueness or
// ordering is enforced or assumed.
func NewMap(pairs []Pair) *Map {
	m := &Map{pairs: pairs}
	m.derive = derive{reader: m}
	return m
}

// MapFromSlices builds a map value from two slices of keys and values,
// pairing them up by index. If the slices differ in length, the effective
// length is the shorter of the two; the trailing unpaired entries of the
// longer slice are dropped.
func MapFromSlices(keys, values []Reader) *Map {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Key: keys[i], Value: values[i]}
	}
	return NewMap(pairs)
}

func (m *Map) Read() (Value, error) {
	return Value{Kind: TypeMap, Map: newMapIterator(m)}, nil
}

func (m *Map) mapNext(cookie *int) (key, value Ref, ok bool, err error) {
	if *cookie >= len(m.pairs) {
		return nil, nil, false, nil
	}
	p := m.pairs[*cookie]
	*cookie++
	return p.Key, p.Value, true, nil
}

// SerializedLength implements Reader.
func (m *Map) SerializedLength() int {
	n := 1
	for _, p := range m.pairs {
		n += subfield.Length(p.Key.SerializedLength())
		n += subfield.Length(p.Value.SerializedLength())
	}
	return n
}

// Serialize implements Reader.
func (m *Map) Serialize(w io.Writer, fdMap FdMapping) error {
	if _, err := w.Write([]byte{tagMap}); err != nil {
		return err
	}
	for _, p := range m.pairs {
		if err := serializeChild(w, p.Key, fdMap); err != nil {
			return err
		}
		if err := serializeChild(w, p.Value, fdMap); err != nil {
			return err
		}
	}
	return nil
}

// Seq is an argdata value built in memory from an explicit list of
// elements.
type Seq struct {
	derive
	items []Reader
}

// NewSeq builds a seq value from items, in iteration order.
func NewSeq(items []Reader) *Seq {
	s := &Seq{items: items}
	s.derive = derive{reader: s}
	return s
}

func (s *Seq) Read() (Value, error) {
	return Value{Kind: TypeSeq, Seq: newSeqIterator(s)}, nil
}

func (s *Seq) seqNext(cookie *int) (value Ref, ok bool, err error) {
	if *cookie >= len(s.items) {
		return nil, false, nil
	}
	v := s.items[*cookie]
	*cookie++
	return v, true, nil
}

// SerializedLength implements Reader.
func (s *Seq) SerializedLength() int {
	n := 1
	for _, item := range s.items {
		n += subfield.Length(item.SerializedLength())
	}
	return n
}

// Serialize implements Reader.
func (s *Seq) Serialize(w io.Writer, fdMap FdMapping) error {
	if _, err := w.Write([]byte{tagSeq}); err != nil {
		return err
	}
	for _, item := range s.items {
		if err := serializeChild(w, item, fdMap); err != nil {
			return err
		}
	}
	return nil
}

// serializeChild renders r's encoding into a buffer so its length is known
// up front, then writes it behind a subfield length prefix.
func serializeChild(w io.Writer, r Reader, fdMap FdMapping) error {
	var buf bytes.Buffer
	buf.Grow(r.SerializedLength())
	if err := r.Serialize(&buf, fdMap); err != nil {
		return err
	}
	return writeSubfield(w, buf.Bytes())
}
