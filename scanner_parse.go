package corejson

import "fmt"

// TryBool extracts the current token as a bool. It fails (returns
// false, false) unless the current kind is Boolean.
func (s *Scanner) TryBool() (bool, bool) {
	if s.kind != KindBoolean {
		return false, false
	}
	return s.truth, true
}

// TryInt64 extracts the current token as an int64. It fails unless the
// current kind is Integer and its body fits in the range of int64.
func (s *Scanner) TryInt64() (int64, bool) {
	return s.tryInt64()
}

// TryUint64 extracts the current token as a uint64. It fails unless the
// current kind is Integer, its body carries no '-' sign, and it fits in
// the range of uint64.
func (s *Scanner) TryUint64() (uint64, bool) {
	return s.tryUint64()
}

// TryFloat64 extracts the current token as a float64. It accepts either
// Integer or Float, excluding the 0x/0X hex extension.
func (s *Scanner) TryFloat64() (float64, bool) {
	return s.tryFloat64()
}

// TryString extracts the current token's decoded string value. It
// accepts String and, so a caller can read a property's own name
// without a side channel, BeginProperty. Escapes are decoded into the
// scanner's reusable decode buffer only when the current token actually
// contains one; otherwise the payload bytes are returned verbatim with
// no allocation or copy beyond the string conversion itself.
func (s *Scanner) TryString() (string, bool) {
	return s.tryString()
}

// TryBoolOrNull extracts the current token as a bool, also succeeding
// with isNull=true when the current kind is Null.
func (s *Scanner) TryBoolOrNull() (v bool, isNull bool, ok bool) {
	if s.kind == KindNull {
		return false, true, true
	}
	v, ok = s.TryBool()
	return v, false, ok
}

// TryInt64OrNull extracts the current token as an int64, also
// succeeding with isNull=true when the current kind is Null.
func (s *Scanner) TryInt64OrNull() (v int64, isNull bool, ok bool) {
	if s.kind == KindNull {
		return 0, true, true
	}
	v, ok = s.TryInt64()
	return v, false, ok
}

// TryUint64OrNull extracts the current token as a uint64, also
// succeeding with isNull=true when the current kind is Null.
func (s *Scanner) TryUint64OrNull() (v uint64, isNull bool, ok bool) {
	if s.kind == KindNull {
		return 0, true, true
	}
	v, ok = s.TryUint64()
	return v, false, ok
}

// TryFloat64OrNull extracts the current token as a float64, also
// succeeding with isNull=true when the current kind is Null.
func (s *Scanner) TryFloat64OrNull() (v float64, isNull bool, ok bool) {
	if s.kind == KindNull {
		return 0, true, true
	}
	v, ok = s.TryFloat64()
	return v, false, ok
}

// TryStringOrNull extracts the current token's decoded string value,
// also succeeding with isNull=true when the current kind is Null.
func (s *Scanner) TryStringOrNull() (v string, isNull bool, ok bool) {
	if s.kind == KindNull {
		return "", true, true
	}
	v, ok = s.TryString()
	return v, false, ok
}

// DebugDump renders the scanner's current position, token kind and
// span, and container depth as a single line, for use in test failure
// messages and ad-hoc tracing.
func (s *Scanner) DebugDump() string {
	seg := s.TokenSegment()
	return fmt.Sprintf("pos=%d kind=%s offset=%d count=%d depth=%d",
		s.pos, s.kind, seg.Offset(), seg.Count(), s.scope.depth())
}
