package corejson

import (
	"math"
	"strconv"
)

// scanNumber recognizes a JSON number, or the 0x/0X hex-integer
// extension, starting at s.pos. A leading zero followed by more digits
// is tolerated rather than rejected (e.g. "007" scans as Integer 007);
// callers that need strict JSON numeric grammar should validate that
// separately.
func (s *Scanner) scanNumber() bool {
	start := s.pos
	pos := s.pos
	payload := s.payload

	if pos < len(payload) && payload[pos] == '-' {
		pos++
	}

	if pos+1 < len(payload) && payload[pos] == '0' && (payload[pos+1] == 'x' || payload[pos+1] == 'X') {
		pos += 2
		hexStart := pos
		for pos < len(payload) && isHexDigit(payload[pos]) {
			pos++
		}
		if pos == hexStart {
			return s.fail(start)
		}
		s.pos = pos
		s.setToken(KindInteger, start, pos-start)
		s.afterValueRecognized()
		return true
	}

	digitsStart := pos
	for pos < len(payload) && isDigit(payload[pos]) {
		pos++
	}
	if pos == digitsStart {
		return s.fail(start)
	}

	isFloat := false

	if pos+1 < len(payload) && payload[pos] == '.' && isDigit(payload[pos+1]) {
		pos++
		for pos < len(payload) && isDigit(payload[pos]) {
			pos++
		}
		isFloat = true
	}

	if pos < len(payload) && (payload[pos] == 'e' || payload[pos] == 'E') {
		look := pos + 1
		if look < len(payload) && (payload[look] == '+' || payload[look] == '-') {
			look++
		}
		expDigitsStart := look
		for look < len(payload) && isDigit(payload[look]) {
			look++
		}
		if look > expDigitsStart {
			pos = look
			isFloat = true
		}
	}

	s.pos = pos
	kind := KindInteger
	if isFloat {
		kind = KindFloat
	}
	s.setToken(kind, start, pos-start)
	s.afterValueRecognized()
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// tryInt64 parses the current Integer token's body (decimal digits with
// an optional leading '-') into v, accumulating overflow checks so that
// INT64_MIN remains representable. Returns false if the current token
// is not Integer, the body holds a non-digit (as a hex body does), or
// the value overflows int64.
func (s *Scanner) tryInt64() (v int64, ok bool) {
	if s.kind != KindInteger {
		return 0, false
	}
	body := s.TokenSegment().Bytes()
	neg := false
	i := 0
	if len(body) > 0 && body[0] == '-' {
		neg = true
		i = 1
	}
	// Hex bodies are rejected here: the 0x/0X extension only parses as
	// u64 (see tryUint64). The digit loop below naturally fails on the
	// 'x' byte, which is what we want.
	var neg64 int64
	for ; i < len(body); i++ {
		if !isDigit(body[i]) {
			return 0, false
		}
		d := int64(body[i] - '0')
		// Accumulate into a negative total throughout so that
		// math.MinInt64 stays representable regardless of the
		// leading sign.
		if neg64 < (math.MinInt64+d)/10 {
			return 0, false
		}
		neg64 = neg64*10 - d
	}
	if !neg {
		if neg64 == math.MinInt64 {
			return 0, false
		}
		return -neg64, true
	}
	return neg64, true
}

// tryUint64 parses the current Integer token's body into v. A 0x/0X
// prefix selects hexadecimal; otherwise decimal. The body must not carry
// a '-' sign.
func (s *Scanner) tryUint64() (v uint64, ok bool) {
	if s.kind != KindInteger {
		return 0, false
	}
	body := s.TokenSegment().Bytes()
	if len(body) > 0 && body[0] == '-' {
		return 0, false
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return parseHexU64(body[2:])
	}
	var total uint64
	for _, c := range body {
		if !isDigit(c) {
			return 0, false
		}
		d := uint64(c - '0')
		if total > (math.MaxUint64-d)/10 {
			return 0, false
		}
		total = total*10 + d
	}
	return total, true
}

func parseHexU64(digits []byte) (uint64, bool) {
	if len(digits) == 0 {
		return 0, false
	}
	var total uint64
	for _, c := range digits {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, false
		}
		if total > (math.MaxUint64-d)/16 {
			return 0, false
		}
		total = total*16 + d
	}
	return total, true
}

// tryFloat64 parses the current Integer or Float token's body via the
// host's canonical decimal-to-double parse. The hex-integer extension
// is rejected here; callers that need a hex value should use TryUint64.
func (s *Scanner) tryFloat64() (v float64, ok bool) {
	if !s.kind.IsNumber() {
		return 0, false
	}
	body := s.TokenSegment().Bytes()
	digits := body
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(body), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
