package pattern

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// mustMatch runs Match and fails the test on a fatal error.
func mustMatch(t *testing.T, text, pat string, init int) []Capture {
	t.Helper()
	caps, err := Match([]byte(text), []byte(pat), init)
	if err != nil {
		t.Fatalf("Match(%q, %q, %d) error = %v", text, pat, init, err)
	}
	return caps
}

// captureStrings flattens captures for comparison; position captures are
// rendered as "@N".
func captureStrings(caps []Capture) []string {
	if caps == nil {
		return nil
	}
	out := make([]string, len(caps))
	for i, c := range caps {
		if c.IsPosition() {
			out[i] = fmt.Sprintf("@%d", c.Position())
		} else {
			out[i] = c.String()
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
		pat  string
		want []string // nil means no match
	}{
		// Whole-match results (no explicit captures).
		{"literal", "hello world", "world", []string{"world"}},
		{"literal absent", "hello world", "mars", nil},
		{"dot", "abc", "b.", []string{"bc"}},
		{"empty pattern", "abc", "", []string{""}},

		// Class shorthands.
		{"digits", "order 1234 shipped", "%d+", []string{"1234"}},
		{"alpha run", "  leading", "%a+", []string{"leading"}},
		{"space", "a b", "%s", []string{" "}},
		{"upper", "camelCase", "%u", []string{"C"}},
		{"lower after upper", "Xy", "%u%l", []string{"Xy"}},
		{"alnum", "--ab1--", "%w+", []string{"ab1"}},
		{"hex", "0xDEADBEEF", "x%x+", []string{"xDEADBEEF"}},
		{"punct", "no? yes", "%p", []string{"?"}},
		{"control", "a\tb", "%c", []string{"\t"}},
		{"nul class", "a\x00b", "%z", []string{"\x00"}},
		{"negated digit", "12ab", "%D+", []string{"ab"}},
		{"negated space", " \t token", "%S+", []string{"token"}},

		// Escaped literals.
		{"escaped percent", "50%", "%d+%%", []string{"50%"}},
		{"escaped dot", "a.b", "a%.b", []string{"a.b"}},
		{"escaped paren", "f(x)", "f%(x%)", []string{"f(x)"}},

		// Bracket classes.
		{"bracket set", "cab", "[abc]+", []string{"cab"}},
		{"bracket negated", "xyz123", "[^%d]+", []string{"xyz"}},
		{"bracket range", "hello42", "[a-z]+", []string{"hello"}},
		{"bracket multi range", "a1B2", "[a-zA-Z0-9]+", []string{"a1B2"}},
		{"bracket class inside", "a 42", "[%d]+", []string{"42"}},
		{"bracket literal dash", "a-b", "[a%-b]+", []string{"a-b"}},
		{"bracket caret not first", "x^y", "[x^y]+", []string{"x^y"}},

		// Anchors.
		{"anchored start hit", "hello world", "^hello", []string{"hello"}},
		{"anchored start miss", "say hello", "^hello", nil},
		{"anchored end", "hello world", "world$", []string{"world"}},
		{"anchored end miss", "world peace", "world$", nil},
		{"fully anchored", "exact", "^exact$", []string{"exact"}},
		{"dollar mid-pattern literal", "a$b", "a$b", []string{"a$b"}},

		// Quantifiers.
		{"star greedy", "aaab", "a*", []string{"aaa"}},
		{"star zero", "bbb", "a*", []string{""}},
		{"plus", "aaab", "a+b", []string{"aaab"}},
		{"plus needs one", "bbb", "a+", nil},
		{"optional present", "colour", "colou?r", []string{"colour"}},
		{"optional absent", "color", "colou?r", []string{"color"}},
		{"greedy capture", "<a><b>", "<(.*)>", []string{"a><b"}},
		{"lazy capture", "<a><b>", "<(.-)>", []string{"a"}},
		{"lazy zero", "xy", "x.-y", []string{"xy"}},
		{"greedy backoff", "aaa", "a*a", []string{"aaa"}},

		// Captures.
		{"two words", "hello world", "(%a+) (%a+)", []string{"hello", "world"}},
		{"nested", "key=val", "((%a+)=(%a+))", []string{"key=val", "key", "val"}},
		{"position captures", "hello", "()ll()", []string{"@3", "@5"}},
		{"backreference", "abcabc", "(%a+)%1", []string{"abc"}},
		{"backreference repeat byte", "xx", "(.)%1", []string{"x"}},
		{"backreference miss", "abcdef", "(abc)%1", nil},
		{"backreference to position", "abc", "()%1", nil},
		{"backreference to later position", "abc", "(a)()%2", nil},

		// Balanced match.
		{"balanced parens", "(foo(bar))", "%b()", []string{"(foo(bar))"}},
		{"balanced inner start", "x(a(b)c)y", "%b()", []string{"(a(b)c)"}},
		{"balanced unclosed", "(open", "%b()", nil},
		{"balanced braces", "{a{b}}", "%b{}", []string{"{a{b}}"}},

		// Frontier.
		{"frontier word start", "THE (quick) fox", "%f[%a]%a+", []string{"THE"}},
		{"frontier at zero", "word", "%f[%a]%a+", []string{"word"}},
		{"frontier mid", "  spaced", "%f[%a]", []string{""}},
		{"frontier to end", "tail  ", "%f[%s]%s+$", []string{"  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := mustMatch(t, tt.text, tt.pat, 1)
			got := captureStrings(caps)
			if !equalStrings(got, tt.want) {
				t.Errorf("Match(%q, %q) captures = %v, want %v", tt.text, tt.pat, got, tt.want)
			}
		})
	}
}

func TestMatchInitOffset(t *testing.T) {
	tests := []struct {
		name string
		text string
		pat  string
		init int
		want []string
	}{
		{"init skips first hit", "ab ab", "ab", 2, []string{"ab"}},
		{"init zero clamps to one", "abc", "a", 0, []string{"a"}},
		{"negative init", "hello world", "%a+", -5, []string{"world"}},
		{"negative past start clips", "abc", "a", -99, []string{"a"}},
		{"init at end matches empty", "abc", "a*", 4, []string{""}},
		{"init past end", "abc", "a", 5, nil},
		{"anchored at init", "xxabc", "^abc", 3, []string{"abc"}},
		{"anchored at init miss", "xxabc", "^abc", 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := mustMatch(t, tt.text, tt.pat, tt.init)
			got := captureStrings(caps)
			if !equalStrings(got, tt.want) {
				t.Errorf("Match(%q, %q, %d) = %v, want %v", tt.text, tt.pat, tt.init, got, tt.want)
			}
		})
	}
}

func TestMatchCaptureOffsets(t *testing.T) {
	caps := mustMatch(t, "one two", "(%a+) (%a+)", 1)
	if len(caps) != 2 {
		t.Fatalf("got %d captures, want 2", len(caps))
	}
	if caps[0].Start() != 0 || caps[1].Start() != 4 {
		t.Errorf("capture starts = %d, %d; want 0, 4", caps[0].Start(), caps[1].Start())
	}
	if caps[0].IsPosition() || caps[1].IsPosition() {
		t.Error("span captures reported as positions")
	}
}

func TestMatchPositionCapture(t *testing.T) {
	caps := mustMatch(t, "hello", "()ll()", 1)
	if len(caps) != 2 {
		t.Fatalf("got %d captures, want 2", len(caps))
	}
	if !caps[0].IsPosition() || !caps[1].IsPosition() {
		t.Fatal("position captures not flagged")
	}
	if caps[0].Position() != 3 || caps[1].Position() != 5 {
		t.Errorf("positions = %d, %d; want 3, 5", caps[0].Position(), caps[1].Position())
	}
	if caps[0].Bytes() != nil {
		t.Error("position capture has non-nil bytes")
	}
}

// Frontier semantics: the byte before the search start is the byte at the
// absolute offset, not a synthetic NUL, even when matching begins mid-string.
func TestMatchFrontierMidStringStart(t *testing.T) {
	// Starting inside "ab cd" at the 'b': the previous byte is 'a', which is
	// in %a, so the frontier does not fire at the start offset; the first
	// frontier is before 'c'.
	caps := mustMatch(t, "ab cd", "%f[%a]%a+", 2)
	got := captureStrings(caps)
	if !equalStrings(got, []string{"cd"}) {
		t.Errorf("captures = %v, want [cd]", got)
	}
}

func TestMatchErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		pat  string
		want error
	}{
		{"trailing escape", "abc", "%", ErrMalformedPattern},
		{"trailing escape after run", "abc", "abc%", ErrMalformedPattern},
		{"unterminated bracket", "abc", "[abc", ErrMalformedPattern},
		{"unterminated negated bracket", "abc", "[^abc", ErrMalformedPattern},
		{"balance missing args", "abc", "%b", ErrMalformedPattern},
		{"balance one arg", "abc", "%b(", ErrMalformedPattern},
		{"frontier missing bracket", "abc", "%fx", ErrMalformedPattern},
		{"frontier at end", "abc", "%f", ErrMalformedPattern},
		{"close without open", "abc", ")", ErrUnbalancedCapture},
		{"close after literal", "ab", "ab)", ErrUnbalancedCapture},
		{"backref without capture", "abc", "%1", ErrInvalidCaptureIndex},
		{"backref zero", "abc", "%0", ErrInvalidCaptureIndex},
		{"backref out of range", "abc", "(a)%2", ErrInvalidCaptureIndex},
		{"backref still open", "aa", "(a%1)", ErrInvalidCaptureIndex},
		{"unfinished capture", "abc", "(", ErrUnfinishedCapture},
		{"unfinished nested", "abc", "(a(b", ErrUnfinishedCapture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Match([]byte(tt.text), []byte(tt.pat), 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("Match(%q, %q) error = %v, want %v", tt.text, tt.pat, err, tt.want)
			}
		})
	}
}

func TestMatchNoMatchIsNotAnError(t *testing.T) {
	caps, err := Match([]byte("abc"), []byte("z"), 1)
	if err != nil {
		t.Fatalf("no-match returned error: %v", err)
	}
	if caps != nil {
		t.Errorf("no-match returned captures: %v", caps)
	}
}

func TestMatchTooManyCaptures(t *testing.T) {
	pat := strings.Repeat("()", MaxCaptures+1)
	_, err := Match([]byte("x"), []byte(pat), 1)
	if !errors.Is(err, ErrTooManyCaptures) {
		t.Errorf("error = %v, want ErrTooManyCaptures", err)
	}
}

func TestMatchAtCaptureLimit(t *testing.T) {
	pat := strings.Repeat("()", MaxCaptures)
	caps, err := Match([]byte("x"), []byte(pat), 1)
	if err != nil {
		t.Fatalf("exactly MaxCaptures captures should succeed: %v", err)
	}
	if len(caps) != MaxCaptures {
		t.Errorf("got %d captures, want %d", len(caps), MaxCaptures)
	}
}

func TestMatchTooComplex(t *testing.T) {
	pat := strings.Repeat("a*", MaxDepth+50)
	_, err := Match([]byte(strings.Repeat("a", 10)), []byte(pat), 1)
	if !errors.Is(err, ErrTooComplex) {
		t.Errorf("error = %v, want ErrTooComplex", err)
	}
}

func TestMatchDepthWithinBudget(t *testing.T) {
	// Well under the budget: must succeed and restore the budget between
	// anchor attempts.
	pat := strings.Repeat("a*", 50) + "b"
	caps, err := Match([]byte("aaab"), []byte(pat), 1)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if caps[0].String() != "aaab" {
		t.Errorf("matched %q, want %q", caps[0].String(), "aaab")
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Match([]byte("abc"), []byte("[abc"), 1)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error %T is not a *SyntaxError", err)
	}
	if se.Detail != "missing ']'" {
		t.Errorf("Detail = %q, want %q", se.Detail, "missing ']'")
	}
	if !strings.Contains(se.Error(), "malformed pattern") {
		t.Errorf("Error() = %q does not name the condition", se.Error())
	}
}

func TestMatchOnBinaryInput(t *testing.T) {
	// The engine is byte-oriented: NUL and high bytes are ordinary data.
	text := []byte{0x00, 0xff, 'a', 0x00}
	caps, err := Match(text, []byte("%z%a"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if caps != nil {
		t.Fatalf("unexpected match %v", captureStrings(caps))
	}
	caps, err = Match(text, []byte("%a%z"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := captureStrings(caps); !equalStrings(got, []string{"a\x00"}) {
		t.Errorf("captures = %v, want [a\\x00]", got)
	}
}
