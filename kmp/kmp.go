// Package kmp implements exact substring search with the Knuth-Morris-Pratt
// algorithm.
//
// A Searcher is built once per call from a text and a needle, and yields the
// offsets of successive non-overlapping occurrences: after reporting a match
// the scan resumes past the matched span, so a byte consumed by one match can
// never start the next one. The search is restartable via
// Seek, which lets callers resume scanning after splicing in a replacement.
//
// Example:
//
//	s, err := kmp.NewSearcher([]byte("ababab"), []byte("ab"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for off, ok := s.Next(); ok; off, ok = s.Next() {
//	    fmt.Println(off) // 0, 2, 4
//	}
package kmp

import "errors"

// ErrEmptyPattern indicates a zero-length needle.
// An empty needle has no well-defined sequence of non-overlapping offsets;
// callers must special-case it before constructing a Searcher.
var ErrEmptyPattern = errors.New("empty search pattern")

// Searcher is the per-call state of one KMP scan.
//
// It holds the text, the needle, the failure table built from the needle and
// the (text, needle) cursor pair. A Searcher is not safe for concurrent use;
// construct one per search.
type Searcher struct {
	text   []byte
	needle []byte

	// failure[k] is the length of the longest proper prefix of needle[:k+1]
	// that is also a suffix of it.
	failure []int

	i int // text cursor
	j int // needle cursor
}

// NewSearcher builds the failure table for needle and positions the search at
// the start of text. Returns ErrEmptyPattern if needle is empty.
func NewSearcher(text, needle []byte) (*Searcher, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyPattern
	}
	return &Searcher{
		text:    text,
		needle:  needle,
		failure: buildFailure(needle),
	}, nil
}

// buildFailure computes the KMP prefix function in O(len(needle)).
func buildFailure(needle []byte) []int {
	failure := make([]int, len(needle))
	j := 0
	for i := 1; i < len(needle); i++ {
		for j > 0 && needle[j] != needle[i] {
			j = failure[j-1]
		}
		if needle[j] == needle[i] {
			j++
		}
		failure[i] = j
	}
	return failure
}

// Seek rewinds the text cursor to i and resets the needle cursor, so the next
// Next call scans from offset i with no partial-match state.
func (s *Searcher) Seek(i int) {
	s.i = i
	s.j = 0
}

// Next returns the offset of the next non-overlapping occurrence of the
// needle, or false once the text is exhausted.
func (s *Searcher) Next() (int, bool) {
	i, j := s.i, s.j
	text, needle := s.text, s.needle
	for i < len(text) {
		if text[i] == needle[j] {
			if j == len(needle)-1 {
				// Resume one past the match with a fresh needle cursor:
				// a byte consumed by this match cannot start the next.
				s.i = i + 1
				s.j = 0
				return i - j, true
			}
			i++
			j++
		} else if j > 0 {
			j = s.failure[j-1]
		} else {
			i++
		}
	}
	s.i = i
	s.j = j
	return -1, false
}

// Index returns the offset of the first occurrence of needle in text, or -1.
// An empty needle yields -1; use NewSearcher directly to distinguish that
// case as an error.
func Index(text, needle []byte) int {
	s, err := NewSearcher(text, needle)
	if err != nil {
		return -1
	}
	if off, ok := s.Next(); ok {
		return off
	}
	return -1
}
