// Package pattern implements a backtracking matcher for a byte-oriented
// pattern mini-language in the Lua style.
//
// Patterns are interpreted directly against the source text; there is no
// compilation step. The language supports literal bytes, `.`, `%x` class
// shorthands (with uppercase negation), bracket classes `[...]` with ranges,
// balanced matching `%b`, frontier assertions `%f[set]`, backreferences
// `%1`-`%9`, numbered and position captures, `^`/`$` anchors and the
// quantifier suffixes `*` (greedy), `+` (greedy, one or more), `-` (lazy) and
// `?` (optional).
//
// Two hard limits are part of the contract: at most MaxCaptures simultaneous
// captures and a recursion budget of MaxDepth nested matching attempts.
// Exceeding either aborts the call with a fatal error; an ordinary failure to
// match is not an error and yields a nil capture list.
//
// Example:
//
//	caps, err := pattern.Match([]byte("hello world"), []byte("(%a+) (%a+)"), 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	caps[0].String() // "hello"
//	caps[1].String() // "world"
package pattern

import (
	"bytes"
	"fmt"
)

const (
	// MaxCaptures is the capture-table ceiling. A pattern that opens a
	// 257th capture fails with ErrTooManyCaptures.
	MaxCaptures = 256

	// MaxDepth is the recursion budget for one top-level Match call.
	// It persists across anchor-position attempts within the call.
	MaxDepth = 200

	escapeChar = '%'
)

// Capture length markers. Non-negative lengths are completed spans.
const (
	capUnfinished = -1
	capPosition   = -2
)

type capSpan struct {
	init int // 0-based offset into src
	len  int // completed length, capUnfinished or capPosition
}

// matchState is the per-call state of the backtracking engine. All fields
// are local to one Match invocation; nothing is shared or retained.
type matchState struct {
	src []byte // whole source text; offsets are absolute
	pat []byte // pattern with a leading '^' already stripped

	depth   int // remaining recursion budget
	level   int // number of captures opened so far
	capture [MaxCaptures]capSpan
}

// Match runs pat against text starting at the 1-based offset init.
//
// Offset rules: positive init is 1-based, zero clamps to 1, negative counts
// from the end with -1 denoting the last byte (clipped to 1 when before the
// start). A pattern starting with '^' is anchored: it is attempted exactly
// once at the start offset. Unanchored patterns are retried at each following
// offset until one attempt succeeds or the text is exhausted.
//
// On success the captures are returned in opening order; a pattern with no
// explicit captures yields a single Capture holding the whole matched span.
// On an ordinary non-match the result is (nil, nil). Malformed patterns and
// exceeded limits return a fatal error.
func Match(text, pat []byte, init int) ([]Capture, error) {
	start := posRelative(init, len(text)) - 1
	if start > len(text) {
		return nil, nil
	}

	anchor := len(pat) > 0 && pat[0] == '^'
	if anchor {
		pat = pat[1:]
	}

	ms := &matchState{
		src:   text,
		pat:   pat,
		depth: MaxDepth,
	}

	for s := start; ; s++ {
		ms.level = 0
		res, err := ms.match(s, 0)
		if err != nil {
			return nil, err
		}
		if res >= 0 {
			return ms.pushCaptures(s, res)
		}
		if anchor || s >= len(text) {
			return nil, nil
		}
	}
}

// posRelative converts a 1-based, possibly negative offset into a 1-based
// offset clipped to [1, len+1].
func posRelative(pos, length int) int {
	switch {
	case pos > 0:
		return pos
	case pos == 0:
		return 1
	case pos < -length:
		return 1
	default:
		return length + pos + 1
	}
}

// match attempts to match the pattern suffix at p against the source suffix
// at s. It returns the source position after the match, -1 on an ordinary
// non-match, or a fatal error. Sequential pattern forms advance s/p and loop;
// only the genuinely branching forms (quantifiers, captures) recurse.
func (ms *matchState) match(s, p int) (int, error) {
	if ms.depth == 0 {
		return -1, ErrTooComplex
	}
	ms.depth--
	defer func() { ms.depth++ }()

	for {
		if p == len(ms.pat) {
			return s, nil
		}

		switch ms.pat[p] {
		case '(':
			if p+1 < len(ms.pat) && ms.pat[p+1] == ')' {
				return ms.startCapture(s, p+2, capPosition)
			}
			return ms.startCapture(s, p+1, capUnfinished)

		case ')':
			return ms.endCapture(s, p+1)

		case '$':
			if p+1 == len(ms.pat) {
				if s == len(ms.src) {
					return s, nil
				}
				return -1, nil
			}
			// '$' not at the end is an ordinary literal.

		case escapeChar:
			if p+1 < len(ms.pat) {
				switch c := ms.pat[p+1]; {
				case c == 'b':
					ns, err := ms.matchBalance(s, p+2)
					if err != nil || ns < 0 {
						return -1, err
					}
					s, p = ns, p+4
					continue

				case c == 'f':
					np, ok, err := ms.matchFrontier(s, p+2)
					if err != nil || !ok {
						return -1, err
					}
					p = np
					continue

				case c >= '0' && c <= '9':
					ns, err := ms.matchCapture(s, c)
					if err != nil || ns < 0 {
						return -1, err
					}
					s, p = ns, p+2
					continue
				}
			}
			// Other escapes are single classes, handled below.
		}

		// Single class with an optional quantifier suffix.
		ep, err := ms.classEnd(p)
		if err != nil {
			return -1, err
		}

		if !ms.singleMatch(s, p, ep) {
			if ep < len(ms.pat) && (ms.pat[ep] == '*' || ms.pat[ep] == '?' || ms.pat[ep] == '-') {
				p = ep + 1 // quantifier accepts zero repetitions
				continue
			}
			return -1, nil // '+' or no suffix: must match at least once
		}

		var suffix byte
		if ep < len(ms.pat) {
			suffix = ms.pat[ep]
		}
		switch suffix {
		case '?':
			res, err := ms.match(s+1, ep+1)
			if err != nil || res >= 0 {
				return res, err
			}
			p = ep + 1 // fall back to zero instances
			continue

		case '+':
			return ms.maxExpand(s+1, p, ep) // one instance already consumed

		case '*':
			return ms.maxExpand(s, p, ep)

		case '-':
			return ms.minExpand(s, p, ep)

		default:
			s, p = s+1, ep
			continue
		}
	}
}

// classEnd returns the index one past the single-class item starting at p.
func (ms *matchState) classEnd(p int) (int, error) {
	c := ms.pat[p]
	p++
	switch c {
	case escapeChar:
		if p == len(ms.pat) {
			return 0, malformed("ends with '%'")
		}
		return p + 1, nil

	case '[':
		if p < len(ms.pat) && ms.pat[p] == '^' {
			p++
		}
		for {
			if p == len(ms.pat) {
				return 0, malformed("missing ']'")
			}
			cc := ms.pat[p]
			p++
			if cc == escapeChar && p < len(ms.pat) {
				p++ // skip escaped byte, e.g. '%]'
			}
			if p < len(ms.pat) && ms.pat[p] == ']' {
				return p + 1, nil
			}
		}

	default:
		return p, nil
	}
}

// singleMatch reports whether the byte at s matches the class item [p, ep).
func (ms *matchState) singleMatch(s, p, ep int) bool {
	if s >= len(ms.src) {
		return false
	}
	c := ms.src[s]
	switch ms.pat[p] {
	case '.':
		return true
	case escapeChar:
		return matchClass(c, ms.pat[p+1])
	case '[':
		return ms.matchBracketClass(c, p, ep-1)
	default:
		return ms.pat[p] == c
	}
}

// matchBracketClass reports whether c belongs to the bracket class starting
// at p (the '[') and ending at ec (the ']').
func (ms *matchState) matchBracketClass(c byte, p, ec int) bool {
	sig := true
	if ms.pat[p+1] == '^' {
		sig = false
		p++
	}
	for p++; p < ec; p++ {
		if ms.pat[p] == escapeChar {
			p++
			if matchClass(c, ms.pat[p]) {
				return sig
			}
		} else if p+1 < ec && ms.pat[p+1] == '-' && p+2 < ec {
			if ms.pat[p] <= c && c <= ms.pat[p+2] {
				return sig
			}
			p += 2
		} else if ms.pat[p] == c {
			return sig
		}
	}
	return !sig
}

// matchBalance matches a shortest balanced run starting at s. The two bytes
// at p are the opening and closing delimiters. Returns the position after the
// balancing close, or -1 when the source ends out of balance.
func (ms *matchState) matchBalance(s, p int) (int, error) {
	if p+1 >= len(ms.pat) {
		return 0, malformed("missing arguments to '%b'")
	}
	if s >= len(ms.src) || ms.src[s] != ms.pat[p] {
		return -1, nil
	}
	ob, cb := ms.pat[p], ms.pat[p+1]
	cont := 1
	for s++; s < len(ms.src); s++ {
		switch ms.src[s] {
		case cb:
			cont--
			if cont == 0 {
				return s + 1, nil
			}
		case ob:
			cont++
		}
	}
	return -1, nil
}

// matchFrontier evaluates a `%f[set]` assertion at s; p points at the '['.
// The previous byte is taken relative to the absolute start of the source
// (NUL at offset zero), regardless of the offset matching began at.
// On success it returns the pattern position after the class.
func (ms *matchState) matchFrontier(s, p int) (int, bool, error) {
	if p >= len(ms.pat) || ms.pat[p] != '[' {
		return 0, false, malformed("missing '[' after '%f' in pattern")
	}
	ep, err := ms.classEnd(p)
	if err != nil {
		return 0, false, err
	}
	var prev, cur byte
	if s > 0 {
		prev = ms.src[s-1]
	}
	if s < len(ms.src) {
		cur = ms.src[s]
	}
	if !ms.matchBracketClass(prev, p, ep-1) && ms.matchBracketClass(cur, p, ep-1) {
		return ep, true, nil
	}
	return 0, false, nil
}

// matchCapture matches a backreference %1-%9 (digit d) at s.
func (ms *matchState) matchCapture(s int, d byte) (int, error) {
	l := int(d) - '1'
	if l < 0 || l >= ms.level || ms.capture[l].len == capUnfinished {
		return 0, &SyntaxError{
			Detail: fmt.Sprintf("%%%d", l+1),
			Err:    ErrInvalidCaptureIndex,
		}
	}
	clen := ms.capture[l].len
	if clen == capPosition {
		// A position capture has no bytes to compare against.
		return -1, nil
	}
	if len(ms.src)-s >= clen &&
		bytes.Equal(ms.src[ms.capture[l].init:ms.capture[l].init+clen], ms.src[s:s+clen]) {
		return s + clen, nil
	}
	return -1, nil
}

// startCapture opens capture record what at s and tries the continuation.
// The capture is withdrawn when the continuation fails.
func (ms *matchState) startCapture(s, p, what int) (int, error) {
	if ms.level >= MaxCaptures {
		return 0, ErrTooManyCaptures
	}
	ms.capture[ms.level] = capSpan{init: s, len: what}
	ms.level++
	// Capture bookkeeping rides on the caller's depth budget: the capture
	// table's own ceiling bounds this recursion, and counting it against
	// MaxDepth would make the capture limit unreachable.
	ms.depth++
	res, err := ms.match(s, p)
	ms.depth--
	if err != nil {
		return -1, err
	}
	if res < 0 {
		ms.level--
	}
	return res, nil
}

// endCapture closes the most recently opened unfinished capture at s and
// tries the continuation, reopening the capture when it fails.
func (ms *matchState) endCapture(s, p int) (int, error) {
	l := ms.captureToClose()
	if l < 0 {
		return 0, ErrUnbalancedCapture
	}
	ms.capture[l].len = s - ms.capture[l].init
	ms.depth++ // see startCapture
	res, err := ms.match(s, p)
	ms.depth--
	if err != nil {
		return -1, err
	}
	if res < 0 {
		ms.capture[l].len = capUnfinished
	}
	return res, nil
}

// captureToClose finds the most recent unfinished capture, or -1.
func (ms *matchState) captureToClose() int {
	for l := ms.level - 1; l >= 0; l-- {
		if ms.capture[l].len == capUnfinished {
			return l
		}
	}
	return -1
}

// maxExpand consumes the maximal run of the class [p, ep) starting at s,
// then retries the continuation at each shorter run until one succeeds.
func (ms *matchState) maxExpand(s, p, ep int) (int, error) {
	i := 0
	for ms.singleMatch(s+i, p, ep) {
		i++
	}
	for ; i >= 0; i-- {
		res, err := ms.match(s+i, ep+1)
		if err != nil || res >= 0 {
			return res, err
		}
	}
	return -1, nil
}

// minExpand tries the continuation before each expansion, consuming one more
// instance of the class [p, ep) only when the continuation fails.
func (ms *matchState) minExpand(s, p, ep int) (int, error) {
	for {
		res, err := ms.match(s, ep+1)
		if err != nil || res >= 0 {
			return res, err
		}
		if !ms.singleMatch(s, p, ep) {
			return -1, nil
		}
		s++
	}
}

// pushCaptures materializes the capture table after a successful attempt
// spanning [s, e). A pattern with no explicit captures yields the whole span.
func (ms *matchState) pushCaptures(s, e int) ([]Capture, error) {
	n := ms.level
	if n == 0 {
		n = 1
	}
	caps := make([]Capture, 0, n)
	for i := 0; i < n; i++ {
		if i >= ms.level {
			caps = append(caps, Capture{text: ms.src, start: s, end: e})
			continue
		}
		switch ms.capture[i].len {
		case capUnfinished:
			return nil, ErrUnfinishedCapture
		case capPosition:
			caps = append(caps, Capture{text: ms.src, start: ms.capture[i].init, end: ms.capture[i].init, position: true})
		default:
			start := ms.capture[i].init
			caps = append(caps, Capture{text: ms.src, start: start, end: start + ms.capture[i].len})
		}
	}
	return caps, nil
}
