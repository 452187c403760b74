package argdata

// Ref is a reference to an argdata value, yielded by a map or seq
// iterator: either a slice of an encoded buffer together with its
// fd-convert capability, or a value built directly in memory. Go's
// interfaces already give this the open-ended shape the original library
// needs a dedicated ArgdataRef wrapper type for, so Ref is simply Reader.
type Ref = Reader

// Value is the result of Read: a snapshot of an argdata value's kind and
// its one relevant field. Only the field matching Kind is meaningful; the
// others are zero.
type Value struct {
	Kind      Type
	Binary    []byte
	Bool      bool
	Fd        EncodedFd
	Float     float64
	Int       IntValue
	Str       StrValue
	Timestamp Timespec
	Map       *MapIterator
	Seq       *SeqIterator
}

// MapIterable is implemented by a value's backing storage to drive a
// MapIterator: either the lazy encoded decoder or an in-memory builder.
type MapIterable interface {
	// mapNext advances cookie to the next key-value pair. ok is false once
	// the map is exhausted; err is non-nil only on malformed encoded data,
	// never merely because the map ended.
	mapNext(cookie *int) (key, value Ref, ok bool, err error)
}

// SeqIterable is implemented by a value's backing storage to drive a
// SeqIterator.
type SeqIterable interface {
	seqNext(cookie *int) (value Ref, ok bool, err error)
}

// MapIterator walks the key-value pairs of a map value one at a time,
// in the style of bufio.Scanner: call Next until it returns false, then
// check Err.
type MapIterator struct {
	src    MapIterable
	cookie int
	key    Ref
	value  Ref
	err    error
	done   bool
}

func newMapIterator(src MapIterable) *MapIterator {
	return &MapIterator{src: src}
}

// Next advances to the next key-value pair, reporting whether one was
// found.
func (it *MapIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	key, value, ok, err := it.src.mapNext(&it.cookie)
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		it.done = true
		return false
	}
	it.key, it.value = key, value
	return true
}

// Key returns the key of the pair most recently yielded by Next.
func (it *MapIterator) Key() Ref { return it.key }

// Value returns the value of the pair most recently yielded by Next.
func (it *MapIterator) Value() Ref { return it.value }

// Err returns the first error encountered during iteration, if any.
func (it *MapIterator) Err() error { return it.err }

// SeqIterator walks the elements of a seq value one at a time, in the
// style of bufio.Scanner.
type SeqIterator struct {
	src    SeqIterable
	cookie int
	value  Ref
	err    error
	done   bool
}

func newSeqIterator(src SeqIterable) *SeqIterator {
	return &SeqIterator{src: src}
}

// Next advances to the next element, reporting whether one was found.
func (it *SeqIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	value, ok, err := it.src.seqNext(&it.cookie)
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		it.done = true
		return false
	}
	it.value = value
	return true
}

// Value returns the element most recently yielded by Next.
func (it *SeqIterator) Value() Ref { return it.value }

// Err returns the first error encountered during iteration, if any.
func (it *SeqIterator) Err() error { return it.err }
