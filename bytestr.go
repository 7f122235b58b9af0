// Package bytestr provides byte-string processing operations: exact substring
// search and replacement built on a KMP engine, Lua-style pattern matching
// with captures, and a set of plain byte-array transforms.
//
// The package is the thin public surface over three engines:
//   - bytestring: immutable byte-string values with cached length and hash
//   - kmp: exact substring search yielding non-overlapping offsets
//   - pattern: a backtracking matcher for a byte-oriented pattern language
//
// All operations are stateless and allocate their working state per call;
// they are safe to use concurrently.
//
// Two kinds of negative outcome are kept strictly apart: "not found" is a
// normal result (-1, an empty slice, the input returned unchanged), while
// malformed patterns, invalid arguments and exceeded engine limits are
// returned as errors.
//
// Basic usage:
//
//	off, _ := bytestr.Find([]byte("ab"), []byte("ababab"), 0)   // 0
//	out, _ := bytestr.ReplaceAll([]byte("a"), []byte("o"), []byte("banana"), 0)
//	// out = "bonono"
//	caps, _ := bytestr.Match([]byte("hello world"), []byte("(%a+) (%a+)"), 1)
//	// caps[0] = "hello", caps[1] = "world"
package bytestr

import (
	"errors"
	"fmt"

	"github.com/coregx/bytestr/bytestring"
	"github.com/coregx/bytestr/internal/conv"
)

// Argument-validation errors. These are fatal per call and are never used
// for ordinary "not found" outcomes.
var (
	// ErrNegativeRepeat indicates a negative repetition count.
	ErrNegativeRepeat = errors.New("expected non-negative number of repetitions")

	// ErrNegativeStart indicates a negative start index.
	ErrNegativeStart = errors.New("expected non-negative start index")

	// ErrResultTooLong indicates the result would exceed the maximum string length.
	ErrResultTooLong = errors.New("result string is too long")

	// ErrNotByteSequence indicates a joined element that is not a byte sequence.
	ErrNotByteSequence = errors.New("not a byte sequence")
)

// Slice returns a copy of b in the half-open range [start, end).
//
// Negative indices count from the end of b (Python style); out-of-range
// indices clamp to the valid bounds, and end < start yields an empty slice.
func Slice(b []byte, start, end int) []byte {
	start = clampIndex(start, len(b))
	end = clampIndex(end, len(b))
	if end < start {
		end = start
	}
	out := make([]byte, end-start)
	copy(out, b[start:end])
	return out
}

// SliceFrom is Slice with the end defaulted to len(b).
func SliceFrom(b []byte, start int) []byte {
	return Slice(b, start, len(b))
}

// clampIndex resolves a possibly negative index against length n and clamps
// it into [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Repeat returns n copies of b concatenated.
// n must be non-negative and the result must fit the maximum string length.
func Repeat(b []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeRepeat
	}
	if n == 0 {
		return []byte{}, nil
	}
	total, ok := conv.MulLen(n, len(b))
	if !ok {
		return nil, ErrResultTooLong
	}
	builder, err := bytestring.Begin(total)
	if err != nil {
		return nil, err
	}
	buf := builder.Data()
	for p := 0; p < total; p += len(b) {
		copy(buf[p:], b)
	}
	return builder.End().View(), nil
}

// Join concatenates parts with sep between consecutive elements.
// Fails with ErrResultTooLong if the total length overflows.
func Join(parts [][]byte, sep []byte) ([]byte, error) {
	total := 0
	for i, part := range parts {
		var ok bool
		if i > 0 {
			if total, ok = conv.AddLen(total, len(sep)); !ok {
				return nil, ErrResultTooLong
			}
		}
		if total, ok = conv.AddLen(total, len(part)); !ok {
			return nil, ErrResultTooLong
		}
	}
	builder, err := bytestring.Begin(total)
	if err != nil {
		return nil, err
	}
	buf := builder.Data()
	p := 0
	for i, part := range parts {
		if i > 0 {
			p += copy(buf[p:], sep)
		}
		p += copy(buf[p:], part)
	}
	return builder.End().View(), nil
}

// JoinValues joins loosely typed parts, accepting []byte and string elements.
// Any other element fails with an error naming the offending index.
func JoinValues(parts []interface{}, sep []byte) ([]byte, error) {
	raw := make([][]byte, len(parts))
	for i, part := range parts {
		switch v := part.(type) {
		case []byte:
			raw[i] = v
		case string:
			raw[i] = []byte(v)
		default:
			return nil, fmt.Errorf("item %d of parts is %w, got %T", i, ErrNotByteSequence, part)
		}
	}
	return Join(raw, sep)
}

// CheckSet reports whether every byte of text is a member of the 256-bit set
// built from the bytes of set. With complement true the set is inverted
// before the check.
func CheckSet(set, text []byte, complement bool) bool {
	var bits [4]uint64
	for _, c := range set {
		bits[c>>6] |= 1 << (c & 63)
	}
	if complement {
		for i := range bits {
			bits[i] = ^bits[i]
		}
	}
	for _, c := range text {
		if bits[c>>6]&(1<<(c&63)) == 0 {
			return false
		}
	}
	return true
}

// ASCIILower returns a copy of b with ASCII uppercase letters lowered.
// Bytes outside A-Z are unchanged; there is no Unicode awareness.
func ASCIILower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 32
		}
		out[i] = c
	}
	return out
}

// ASCIIUpper returns a copy of b with ASCII lowercase letters uppered.
func ASCIIUpper(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 32
		}
		out[i] = c
	}
	return out
}

// Reverse returns a copy of b with the byte order reversed.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, j := 0, len(b)-1; i < len(b); i, j = i+1, j-1 {
		out[i] = b[j]
	}
	return out
}

// Bytes returns the byte values of b as a slice of ints.
func Bytes(b []byte) []int {
	out := make([]int, len(b))
	for i, c := range b {
		out[i] = int(c)
	}
	return out
}

// FromBytes builds a byte slice from integer byte values, truncating each
// value to its low 8 bits.
func FromBytes(vals ...int) []byte {
	out := make([]byte, len(vals))
	for i, v := range vals {
		out[i] = byte(v & 0xff)
	}
	return out
}
