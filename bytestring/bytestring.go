// Package bytestring provides an immutable byte-string value with a cached
// length and content hash.
//
// A String is built in two phases: Begin allocates a mutable buffer of a fixed
// length, the producer fills it, and End freezes the buffer and computes the
// hash. Once frozen the content never changes, so the hash can be used as a
// cheap inequality pre-check: equal content always has equal hashes, and a
// hash mismatch proves the strings differ.
//
// Basic usage:
//
//	b, _ := bytestring.Begin(5)
//	copy(b.Data(), "hello")
//	s := b.End()
//	s.Len()  // 5
//	s.Hash() // cached FNV-1a of the content
package bytestring

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/coregx/bytestr/internal/conv"
)

// MaxLen is the maximum length of a String in bytes.
const MaxLen = conv.MaxLen

// ErrLength indicates a requested buffer length outside [0, MaxLen].
var ErrLength = errors.New("invalid string length")

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// String is an immutable byte sequence with cached length and hash.
//
// The zero value is the empty string. Strings are safe for concurrent use;
// nothing mutates them after construction.
type String struct {
	data   []byte
	length int32
	hash   int32
}

// Builder is a write-once buffer that becomes a String.
//
// The buffer is exactly the length passed to Begin; producers write into
// Data() and call End exactly once. After End the Builder is spent and Data
// returns nil.
type Builder struct {
	data []byte
	done bool
}

// Begin starts building a String of exactly n bytes.
// Returns ErrLength if n is negative or exceeds MaxLen.
func Begin(n int) (*Builder, error) {
	if n < 0 || n > MaxLen {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}
	return &Builder{data: make([]byte, n)}, nil
}

// Data returns the mutable buffer, or nil once the Builder has been finalized.
func (b *Builder) Data() []byte {
	if b.done {
		return nil
	}
	return b.data
}

// End freezes the buffer, computes the content hash and returns the String.
// The Builder keeps no reference to the buffer afterwards, so no mutable
// handle to the finished value survives.
func (b *Builder) End() *String {
	if b.done {
		panic("bytestring: End called twice on the same Builder")
	}
	b.done = true
	data := b.data
	b.data = nil
	return &String{
		data:   data,
		length: conv.IntToInt32(len(data)),
		hash:   calcHash(data),
	}
}

// New copies buf into a freshly built String.
func New(buf []byte) *String {
	b, err := Begin(len(buf))
	if err != nil {
		// len(buf) is always a valid length on this platform.
		panic(err)
	}
	copy(b.Data(), buf)
	return b.End()
}

// FromString builds a String from a Go string.
func FromString(s string) *String {
	return New([]byte(s))
}

// calcHash computes the 32-bit FNV-1a hash of data.
func calcHash(data []byte) int32 {
	h := uint32(fnvOffset32)
	for _, c := range data {
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return int32(h)
}

// Len returns the length in bytes.
func (s *String) Len() int { return int(s.length) }

// Hash returns the cached content hash.
func (s *String) Hash() int32 {
	if s.data == nil {
		return calcHash(nil)
	}
	return s.hash
}

// View returns the underlying bytes without copying.
// The caller must not modify the returned slice.
func (s *String) View() []byte { return s.data }

// Bytes returns a copy of the content.
func (s *String) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// String returns the content as a Go string.
func (s *String) String() string { return string(s.data) }

// Equal reports whether a and b have identical content.
// The cached hash and length rule out most non-equal pairs before the byte
// comparison runs.
func Equal(a, b *String) bool {
	if a == b {
		return true
	}
	if a.Hash() != b.Hash() || a.Len() != b.Len() {
		return false
	}
	return bytes.Equal(a.data, b.data)
}

// EqualConst reports whether s equals a raw byte literal whose hash the
// caller has precomputed, without materializing a String for the literal.
func EqualConst(s *String, raw []byte, rawHash int32) bool {
	if s.Hash() != rawHash || s.Len() != len(raw) {
		return false
	}
	return bytes.Equal(s.data, raw)
}

// HashOf computes the content hash of a raw byte slice, for use with
// EqualConst.
func HashOf(raw []byte) int32 { return calcHash(raw) }

// Compare returns -1, 0 or 1 ordering a and b lexicographically by byte
// value; on an equal prefix the shorter string sorts first.
func Compare(a, b *String) int {
	return bytes.Compare(a.data, b.data)
}
