// Package argdata implements a compact, self-describing, tagged-union
// binary encoding for passing structured startup arguments — and the file
// descriptors embedded within them — from one process to another.
//
// # Overview
//
// A value is read one of two ways: lazily from an already-encoded buffer
// (Encoded, FromBytes/FromBytesWithFds), answering each question by looking
// directly at the relevant bytes; or eagerly, from a value tree built in
// memory with the leaf/container constructors (Null, Binary, Bool, Int,
// Str, Timestamp, FdValue, Map, Seq). Both shapes implement Reader, so
// decoded and hand-built values are interchangeable anywhere a Reader is
// accepted.
//
// # Key Features
//
//   - Reader: the common interface for reading a value's type and contents,
//     whether lazily decoded or built in memory.
//   - Value/MapIterator/SeqIterator: a decoded snapshot of one value, with
//     bufio.Scanner-style iteration over map/seq children.
//   - IntValue/StrValue/Timespec: the three argdata leaf types that need
//     more than a single Go primitive to represent without loss.
//   - ConvertFd/FdMapping: the two capabilities needed to turn wire fd
//     numbers into real file descriptors and back.
//   - Dump: a human-readable debug rendering of any Reader.
//
// # Dependencies
//
// internal/subfield and internal/bigint for the wire-level framing and
// integer codecs; github.com/pkg/errors for PlatformArgdata's default error
// (the ReadError/NoFit error axes are plain values and are never wrapped).
//
// # Scope
//
// This package is the codec only: it has no opinion on how a buffer and its
// fds arrive at a process (that's PlatformArgdata's job to represent, and a
// host runtime's job to implement) or on spawning anything with the result.
package argdata
