package argdata

import (
	"errors"
	"fmt"
)

// ReadErrorKind identifies why decoding encountered malformed data. Unlike
// NoFit, a ReadError means the bytes themselves are broken, not merely that
// they hold a different type than the caller asked for.
type ReadErrorKind int

const (
	// InvalidTag means the tag byte doesn't correspond to any known type.
	InvalidTag ReadErrorKind = iota
	// MissingNullTerminator means a string value wasn't null-terminated.
	MissingNullTerminator
	// InvalidUtf8 means a string value contained invalid UTF-8.
	InvalidUtf8
	// InvalidBoolValue means a bool value's body was neither empty (false)
	// nor the single byte 1 (true).
	InvalidBoolValue
	// InvalidFloatLength means a float value wasn't exactly 8 bytes.
	InvalidFloatLength
	// InvalidFdLength means a fd value wasn't exactly 4 bytes.
	InvalidFdLength
	// TimestampOutOfRange means a timestamp's encoded body is longer than
	// 12 bytes, or its second count doesn't fit in an int64.
	TimestampOutOfRange
	// InvalidSubfield means a map or seq child had an incomplete or
	// overlong length prefix.
	InvalidSubfield
	// InvalidKeyValuePair means a map had a key without a matching value.
	InvalidKeyValuePair
	// InvalidFdNumber means an encoded fd number doesn't name any fd
	// attached to the value being read (raw is carried for display only;
	// see EncodedFd.Fd for the typed error returned when converting fds).
	InvalidFdNumber
)

// ReadError reports that the bytes being decoded are malformed. It is a
// plain comparable value, never wrapped, so callers can compare it with ==
// or errors.Is against a specific ReadError value.
type ReadError struct {
	Kind ReadErrorKind
	// Tag holds the offending byte for InvalidTag.
	Tag byte
	// Raw holds the offending number for InvalidFdNumber.
	Raw uint32
}

func (e ReadError) Error() string {
	switch e.Kind {
	case InvalidTag:
		return fmt.Sprintf("argdata: invalid tag (0x%02X)", e.Tag)
	case MissingNullTerminator:
		return "argdata: string without nul terminator"
	case InvalidUtf8:
		return "argdata: invalid UTF-8"
	case InvalidBoolValue:
		return "argdata: invalid boolean value"
	case InvalidFloatLength:
		return "argdata: floating point data of invalid length"
	case InvalidFdLength:
		return "argdata: file descriptor data of invalid length"
	case TimestampOutOfRange:
		return "argdata: timestamp out of the accepted range"
	case InvalidSubfield:
		return "argdata: incomplete subfield"
	case InvalidKeyValuePair:
		return "argdata: incomplete key-value pair in map"
	case InvalidFdNumber:
		return fmt.Sprintf("argdata: file descriptor %d doesn't exist", int32(e.Raw))
	default:
		return "argdata: invalid data"
	}
}

// NoFitKind identifies why a typed read didn't return a value even though
// the bytes were well-formed.
type NoFitKind int

const (
	// OutOfRange means the value is too large or small for the requested
	// type's range.
	OutOfRange NoFitKind = iota
	// DifferentType means the value is of a different argdata type.
	DifferentType
)

// NoFit reports that a Reader method didn't fit the requested type, even
// though the data wasn't malformed. Like ReadError it is a plain comparable
// value.
type NoFit struct {
	Kind NoFitKind
}

func (e NoFit) Error() string {
	switch e.Kind {
	case OutOfRange:
		return "argdata: value out of range for requested type"
	case DifferentType:
		return "argdata: value is of a different type"
	default:
		return "argdata: value does not fit"
	}
}

// AsReadError reports whether err is (or wraps) a ReadError.
func AsReadError(err error) (ReadError, bool) {
	var re ReadError
	ok := errors.As(err, &re)
	return re, ok
}

// AsNoFit reports whether err is (or wraps) a NoFit.
func AsNoFit(err error) (NoFit, bool) {
	var nf NoFit
	ok := errors.As(err, &nf)
	return nf, ok
}
