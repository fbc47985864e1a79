package testutil

// ByteStream reads bytes sequentially from a byte slice.
//
// Fuzz and property tests derive every choice from it, so the same input
// always yields the same operation sequence. Reads past the end return zero.
type ByteStream struct {
	bytes []byte
	pos   int
}

// NewByteStream creates a stream over the given bytes.
func NewByteStream(b []byte) *ByteStream {
	return &ByteStream{bytes: b}
}

// HasMore reports whether unread bytes remain.
func (s *ByteStream) HasMore() bool {
	return s.pos < len(s.bytes)
}

// NextByte returns the next byte, or 0 if exhausted.
func (s *ByteStream) NextByte() byte {
	if s.pos >= len(s.bytes) {
		return 0
	}

	v := s.bytes[s.pos]
	s.pos++

	return v
}

// NextPercent returns a value in [0, 100).
func (s *ByteStream) NextPercent() int {
	return int(s.NextByte()) % 100
}

// NextBool returns a boolean derived from the next byte.
func (s *ByteStream) NextBool() bool {
	return s.NextByte()&1 == 1
}

// Pick returns one of options, or "" when options is empty.
func (s *ByteStream) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}

	return options[int(s.NextByte())%len(options)]
}

// NextTitle returns a lowercase word of 1-maxLen letters.
func (s *ByteStream) NextTitle(maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	length := 1 + int(s.NextByte())%maxLen

	out := make([]byte, length)
	for i := range out {
		out[i] = 'a' + s.NextByte()%26
	}

	return string(out)
}
