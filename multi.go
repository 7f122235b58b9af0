package bytestr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/bytestr/kmp"
)

// ErrNoNeedles indicates a multi-needle operation called with no needles.
var ErrNoNeedles = errors.New("no search needles given")

// ErrSubstArity indicates a ReplaceAny substitution list whose length matches
// neither the needle count nor one.
var ErrSubstArity = errors.New("substitution count must match needle count or be one")

// Occurrence is one hit of a multi-needle search: the matched span in the
// text and the index of the needle that produced it.
type Occurrence struct {
	Start   int
	End     int
	Pattern int
}

// buildAutomaton compiles the needles into an Aho-Corasick automaton.
// Empty needles are rejected the same way single-needle search rejects them.
func buildAutomaton(needles [][]byte) (*ahocorasick.Automaton, error) {
	if len(needles) == 0 {
		return nil, ErrNoNeedles
	}
	builder := ahocorasick.NewBuilder()
	for i, n := range needles {
		if len(n) == 0 {
			return nil, fmt.Errorf("needle %d: %w", i, kmp.ErrEmptyPattern)
		}
		builder.AddPattern(n)
	}
	return builder.Build()
}

// patternIndex recovers which needle produced the span text[start:end].
// With duplicate needles the lowest index wins.
func patternIndex(needles [][]byte, text []byte, start, end int) int {
	span := text[start:end]
	for i, n := range needles {
		if bytes.Equal(n, span) {
			return i
		}
	}
	return -1
}

// FindAny returns the leftmost occurrence of any needle in text at or after
// start. The second result is false when no needle occurs.
func FindAny(needles [][]byte, text []byte, start int) (Occurrence, bool, error) {
	if start < 0 {
		return Occurrence{}, false, ErrNegativeStart
	}
	auto, err := buildAutomaton(needles)
	if err != nil {
		return Occurrence{}, false, err
	}
	if start >= len(text) {
		return Occurrence{}, false, nil
	}
	m := auto.Find(text, start)
	if m == nil {
		return Occurrence{}, false, nil
	}
	return Occurrence{
		Start:   m.Start,
		End:     m.End,
		Pattern: patternIndex(needles, text, m.Start, m.End),
	}, true, nil
}

// FindAnyAll returns every non-overlapping occurrence of the needles in text
// at or after start, leftmost-first, resuming past the end of each hit.
func FindAnyAll(needles [][]byte, text []byte, start int) ([]Occurrence, error) {
	if start < 0 {
		return nil, ErrNegativeStart
	}
	auto, err := buildAutomaton(needles)
	if err != nil {
		return nil, err
	}
	occs := []Occurrence{}
	for at := start; at < len(text); {
		m := auto.Find(text, at)
		if m == nil {
			break
		}
		occs = append(occs, Occurrence{
			Start:   m.Start,
			End:     m.End,
			Pattern: patternIndex(needles, text, m.Start, m.End),
		})
		at = m.End
	}
	return occs, nil
}

// ReplaceAny substitutes every non-overlapping occurrence of needle i with
// subst[i]. A single-element subst broadcasts to all needles.
func ReplaceAny(needles, subst [][]byte, text []byte) ([]byte, error) {
	if len(subst) != len(needles) && len(subst) != 1 {
		return nil, ErrSubstArity
	}
	occs, err := FindAnyAll(needles, text, 0)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(text))
	last := 0
	for _, occ := range occs {
		rep := subst[0]
		if len(subst) > 1 {
			rep = subst[occ.Pattern]
		}
		out = append(out, text[last:occ.Start]...)
		out = append(out, rep...)
		last = occ.End
	}
	out = append(out, text[last:]...)
	return out, nil
}
