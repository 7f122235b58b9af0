package bytestring

import (
	"bytes"
	"testing"
)

func TestBeginEnd(t *testing.T) {
	b, err := Begin(5)
	if err != nil {
		t.Fatalf("Begin(5) error = %v", err)
	}
	copy(b.Data(), "hello")
	s := b.End()

	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if s.String() != "hello" {
		t.Errorf("String() = %q, want %q", s.String(), "hello")
	}
	if b.Data() != nil {
		t.Error("Data() after End should be nil")
	}
}

func TestBeginRejectsNegative(t *testing.T) {
	if _, err := Begin(-1); err == nil {
		t.Error("Begin(-1) should fail")
	}
}

func TestEndTwicePanics(t *testing.T) {
	b, _ := Begin(1)
	b.End()
	defer func() {
		if r := recover(); r == nil {
			t.Error("second End did not panic")
		}
	}()
	b.End()
}

func TestHashIsContentFunction(t *testing.T) {
	a := FromString("pattern engine")
	b := New([]byte("pattern engine"))
	c := FromString("Pattern engine")

	if a.Hash() != b.Hash() {
		t.Error("equal content must have equal hash")
	}
	if a.Hash() == c.Hash() {
		t.Error("different content hashed equal (FNV-1a collision on trivial input)")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal", "abc", "abc", true},
		{"different content", "abc", "abd", false},
		{"different length", "abc", "abcd", false},
		{"both empty", "", "", true},
		{"empty vs nonempty", "", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(FromString(tt.a), FromString(tt.b)); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualSamePointer(t *testing.T) {
	s := FromString("self")
	if !Equal(s, s) {
		t.Error("a string must equal itself")
	}
}

func TestEqualConst(t *testing.T) {
	s := FromString("needle")
	raw := []byte("needle")
	if !EqualConst(s, raw, HashOf(raw)) {
		t.Error("EqualConst should match identical content")
	}
	other := []byte("thread")
	if EqualConst(s, other, HashOf(other)) {
		t.Error("EqualConst matched different content")
	}
	// A wrong hash must short-circuit to false even for equal bytes.
	if EqualConst(s, raw, HashOf(raw)+1) {
		t.Error("EqualConst ignored the hash pre-check")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "abc", "abc", 0},
		{"less by byte", "abc", "abd", -1},
		{"greater by byte", "abd", "abc", 1},
		{"shorter is less", "ab", "abc", -1},
		{"longer is greater", "abc", "ab", 1},
		{"empty is least", "", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(FromString(tt.a), FromString(tt.b)); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBytesCopies(t *testing.T) {
	s := FromString("immutable")
	got := s.Bytes()
	got[0] = 'X'
	if !bytes.Equal(s.View(), []byte("immutable")) {
		t.Error("mutating Bytes() result changed the String content")
	}
}

func TestZeroValue(t *testing.T) {
	var s String
	if s.Len() != 0 {
		t.Errorf("zero value Len() = %d, want 0", s.Len())
	}
	if s.Hash() != FromString("").Hash() {
		t.Error("zero value hash differs from built empty string")
	}
}
