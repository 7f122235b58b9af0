package bytestr

import (
	"github.com/coregx/bytestr/bytestring"
	"github.com/coregx/bytestr/internal/conv"
	"github.com/coregx/bytestr/kmp"
	"github.com/coregx/bytestr/pattern"
)

// newSearcher validates the shared (needle, text, start) contract of the
// exact-search operations and positions a KMP scan at start.
func newSearcher(needle, text []byte, start int) (*kmp.Searcher, error) {
	if start < 0 {
		return nil, ErrNegativeStart
	}
	s, err := kmp.NewSearcher(text, needle)
	if err != nil {
		return nil, err
	}
	s.Seek(start)
	return s, nil
}

// Find returns the offset of the first occurrence of needle in text at or
// after start, or -1 when absent. An empty needle is an error.
func Find(needle, text []byte, start int) (int, error) {
	s, err := newSearcher(needle, text, start)
	if err != nil {
		return 0, err
	}
	if off, ok := s.Next(); ok {
		return off, nil
	}
	return -1, nil
}

// FindAll returns the offsets of every non-overlapping occurrence of needle
// in text at or after start. Absence yields an empty slice, not an error.
func FindAll(needle, text []byte, start int) ([]int, error) {
	s, err := newSearcher(needle, text, start)
	if err != nil {
		return nil, err
	}
	offs := []int{}
	for off, ok := s.Next(); ok; off, ok = s.Next() {
		offs = append(offs, off)
	}
	return offs, nil
}

// Replace substitutes the first occurrence of needle at or after start with
// subst. When needle is absent the original text is returned unchanged.
func Replace(needle, subst, text []byte, start int) ([]byte, error) {
	s, err := newSearcher(needle, text, start)
	if err != nil {
		return nil, err
	}
	off, ok := s.Next()
	if !ok {
		return text, nil
	}

	total, lenOK := conv.AddLen(len(text)-len(needle), len(subst))
	if !lenOK {
		return nil, ErrResultTooLong
	}
	builder, err := bytestring.Begin(total)
	if err != nil {
		return nil, err
	}
	buf := builder.Data()
	p := copy(buf, text[:off])
	p += copy(buf[p:], subst)
	copy(buf[p:], text[off+len(needle):])
	return builder.End().View(), nil
}

// ReplaceAll substitutes every non-overlapping occurrence of needle at or
// after start with subst, streaming unmatched spans and substitutions into a
// growable buffer.
func ReplaceAll(needle, subst, text []byte, start int) ([]byte, error) {
	s, err := newSearcher(needle, text, start)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(text))
	last := 0
	for off, ok := s.Next(); ok; off, ok = s.Next() {
		out = append(out, text[last:off]...)
		out = append(out, subst...)
		last = off + len(needle)
		s.Seek(last)
	}
	out = append(out, text[last:]...)
	if len(out) > conv.MaxLen {
		return nil, ErrResultTooLong
	}
	return out, nil
}

// Split cuts text at every non-overlapping occurrence of delim at or after
// start. limit caps the number of cuts when non-negative; the remainder
// after the last cut (or the whole text) is always appended, so the result
// is never empty.
func Split(delim, text []byte, start, limit int) ([][]byte, error) {
	s, err := newSearcher(delim, text, start)
	if err != nil {
		return nil, err
	}
	var parts [][]byte
	last := 0
	for limit != 0 {
		off, ok := s.Next()
		if !ok {
			break
		}
		parts = append(parts, Slice(text, last, off))
		last = off + len(delim)
		limit--
	}
	parts = append(parts, SliceFrom(text, last))
	return parts, nil
}

// Match runs the pattern mini-language against text starting at the 1-based
// offset init. See package pattern for the language and the limit contract.
// The result is (nil, nil) when the pattern does not match.
func Match(text, pat []byte, init int) ([]pattern.Capture, error) {
	return pattern.Match(text, pat, init)
}
