package corejson

// Segment is a lightweight, non-owning view of a slice of a character
// payload: (source, offset, count). The scanner reports every token's
// position as a Segment rather than copying bytes out of the payload;
// materializing an owned string is an explicit, separate step.
type Segment struct {
	source []byte
	offset int
	count  int
}

// Offset is the zero-based start of the segment within its source.
func (s Segment) Offset() int { return s.offset }

// Count is the number of bytes the segment spans.
func (s Segment) Count() int { return s.count }

// Bytes returns the underlying slice for this segment. The returned
// slice aliases the payload; callers that need to retain it across
// further scanner use must copy it.
func (s Segment) Bytes() []byte {
	if s.source == nil {
		return nil
	}
	return s.source[s.offset : s.offset+s.count]
}

// String materializes the segment as an owned string. This always
// allocates; callers that only need to compare the bytes should use
// Bytes instead.
func (s Segment) String() string {
	return string(s.Bytes())
}
