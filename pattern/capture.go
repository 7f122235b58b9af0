package pattern

// Capture is one captured result of a successful match: either a sub-span of
// the source text or, for a position capture `()`, a 1-based byte offset.
type Capture struct {
	text     []byte
	start    int
	end      int
	position bool
}

// IsPosition reports whether the capture records an offset instead of bytes.
func (c Capture) IsPosition() bool { return c.position }

// Position returns the recorded 1-based offset of a position capture.
// For span captures it returns the 1-based offset of the span start.
func (c Capture) Position() int { return c.start + 1 }

// Start returns the 0-based offset where the capture begins.
func (c Capture) Start() int { return c.start }

// Bytes returns the captured sub-span of the source, or nil for a position
// capture. The slice aliases the source text; it is not a copy.
func (c Capture) Bytes() []byte {
	if c.position {
		return nil
	}
	return c.text[c.start:c.end]
}

// String returns the captured bytes as a string (empty for position captures).
func (c Capture) String() string { return string(c.Bytes()) }
