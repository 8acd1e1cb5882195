package corejson

// Scanner is a forward-only, single-pass tokenizer over an in-memory
// JSON payload. It reports tokens as Segment offsets into the payload
// without copying; string values are decoded into a retained scratch
// buffer only on explicit demand via TryString.
//
// A Scanner is reusable: Reset rewinds it over a new payload, reusing
// the container stack and decode buffer allocations so that scanning a
// steady stream of payloads performs no heap allocation beyond the
// initial sizing.
type Scanner struct {
	payload []byte
	pos     int

	segOffset int
	segCount  int
	kind      Kind

	closeFlag      bool
	invalidPending bool
	invalidAt      int

	decodeNeeded bool
	truth        bool

	scope   scopeStack
	decode  *FixedBuffer
	cfg     scannerConfig
}

// NewScanner allocates a Scanner sized for payloads around capacityHint
// bytes and containers nested depthHint deep. depthHint must be positive
// (it is only a sizing hint; the container stack still grows beyond it
// on demand).
func NewScanner(payload []byte, capacityHint, depthHint int, opts ...ScannerOption) (*Scanner, error) {
	if depthHint <= 0 {
		return nil, ErrInvalidDepth
	}
	var cfg scannerConfig
	for _, o := range opts {
		o(&cfg)
	}
	decodeCap := capacityHint
	if len(payload) > decodeCap {
		decodeCap = len(payload)
	}
	if cfg.decodeCapacityHint > decodeCap {
		decodeCap = cfg.decodeCapacityHint
	}
	s := &Scanner{
		scope:  newScopeStack(depthHint),
		decode: NewFixedBuffer(decodeCap),
		cfg:    cfg,
	}
	s.Reset(payload)
	return s, nil
}

// Reset rewinds the scanner over a new payload, reusing all retained
// allocations. The decode buffer grows to at least len(payload) if it
// is currently smaller.
func (s *Scanner) Reset(payload []byte) {
	s.payload = payload
	s.pos = 0
	s.segOffset = 0
	s.segCount = 0
	s.kind = KindNone
	s.closeFlag = false
	s.invalidPending = false
	s.invalidAt = 0
	s.decodeNeeded = false
	s.truth = false
	s.scope.reset()
	if len(payload) > s.decode.Cap() {
		s.decode.TryGrow(len(payload))
	}
	s.decode.Clear()
}

// TokenKind returns the kind of the token most recently produced by Next.
func (s *Scanner) TokenKind() Kind { return s.kind }

// TokenSegment returns the payload span of the token most recently
// produced by Next.
func (s *Scanner) TokenSegment() Segment {
	return Segment{source: s.payload, offset: s.segOffset, count: s.segCount}
}

// Next advances to the next token. It returns false iff the newly
// reached state is Complete or Invalid (i.e. EndOfPayload); once that
// happens every subsequent call returns false without altering
// TokenKind or TokenSegment.
func (s *Scanner) Next() bool {
	if s.kind.IsEndOfPayload() {
		return false
	}
	if s.invalidPending {
		return s.fail(s.invalidAt)
	}

	s.skipWhitespace()
	top := s.scope.top()

	if s.closeFlag {
		switch top.kind {
		case KindBeginArray:
			return s.emitEndArray()
		case KindBeginObject:
			return s.emitEndObject()
		case KindBeginProperty:
			return s.emitEndProperty()
		case KindNone:
			return s.emitComplete()
		}
	}

	switch top.kind {
	case KindBeginObject:
		return s.recognizeProperty()
	default:
		return s.recognizeValue()
	}
}

// Skip advances repeatedly until the container stack drops below its
// depth at entry (i.e. past the matching End-* of the currently open
// container), or until EndOfPayload.
func (s *Scanner) Skip() bool {
	startDepth := s.scope.depth()
	for {
		ok := s.Next()
		if !ok {
			return false
		}
		if s.scope.depth() < startDepth {
			return true
		}
	}
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.payload) {
		switch s.payload[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

func (s *Scanner) peek() (byte, bool) {
	if s.pos >= len(s.payload) {
		return 0, false
	}
	return s.payload[s.pos], true
}

func (s *Scanner) fail(at int) bool {
	s.kind = KindInvalid
	s.segOffset = at
	s.segCount = 0
	s.closeFlag = false
	s.invalidPending = false
	return false
}

func (s *Scanner) setToken(k Kind, offset, count int) {
	s.kind = k
	s.segOffset = offset
	s.segCount = count
}

// recognizeValue dispatches on the next non-whitespace byte and scans
// exactly one value, or one container-open.
func (s *Scanner) recognizeValue() bool {
	c, ok := s.peek()
	if !ok {
		return s.fail(s.pos)
	}
	switch c {
	case 'n':
		return s.scanLiteral("null", KindNull)
	case 't':
		return s.scanLiteral("true", KindBoolean, true)
	case 'f':
		return s.scanLiteral("false", KindBoolean, false)
	case '[':
		return s.openContainer(KindBeginArray)
	case '{':
		return s.openContainer(KindBeginObject)
	case '"':
		return s.scanStringValue()
	default:
		return s.scanNumber()
	}
}

func (s *Scanner) scanLiteral(lit string, kind Kind, truth ...bool) bool {
	start := s.pos
	if start+len(lit) > len(s.payload) || string(s.payload[start:start+len(lit)]) != lit {
		return s.fail(start)
	}
	s.pos += len(lit)
	s.setToken(kind, start, len(lit))
	if len(truth) > 0 {
		s.truth = truth[0]
	}
	s.afterValueRecognized()
	return true
}

func (s *Scanner) openContainer(kind Kind) bool {
	start := s.pos
	s.pos++
	s.scope.push(scopeFrame{kind: kind, start: start})
	s.setToken(kind, start, 1)
	top := s.scope.top()
	s.prepareForCloseContainer(top)
	return true
}

// afterValueRecognized runs the "prepare for close" step (spec step 5)
// for a scalar value recognized while the container it belongs to
// (array, property, or root) is unchanged on top of the stack.
func (s *Scanner) afterValueRecognized() {
	top := s.scope.top()
	switch top.kind {
	case KindBeginArray:
		s.prepareForCloseContainer(top)
	case KindBeginProperty, KindNone:
		s.closeFlag = true
	}
}

// prepareForCloseContainer implements the array/object close-lookahead:
// set closeFlag if the container's close character is next; otherwise
// consume exactly one separator if the container has already produced
// an element, or mark it as having produced one (its first) without
// requiring a separator. An unexpected non-separator when one is
// required is recorded as a pending Invalid, deferred to the next call
// to Next so that the token just produced is still reported first.
func (s *Scanner) prepareForCloseContainer(frame *scopeFrame) {
	s.skipWhitespace()
	var closeChar byte
	switch frame.kind {
	case KindBeginArray:
		closeChar = ']'
	case KindBeginObject:
		closeChar = '}'
	}
	c, ok := s.peek()
	if ok && c == closeChar {
		s.closeFlag = true
		return
	}
	if !frame.seen {
		frame.seen = true
		return
	}
	if ok && c == ',' {
		s.pos++
		return
	}
	s.invalidPending = true
	s.invalidAt = s.pos
}

func (s *Scanner) recognizeProperty() bool {
	c, ok := s.peek()
	if !ok || c != '"' {
		return s.fail(s.pos)
	}
	start := s.pos
	s.decodeNeeded = false
	if !s.scanStringBody() {
		return false
	}
	s.skipWhitespace()
	c, ok = s.peek()
	if !ok || c != ':' {
		return s.fail(s.pos)
	}
	s.pos++
	end := s.pos
	s.scope.push(scopeFrame{kind: KindBeginProperty, start: start})
	s.setToken(KindBeginProperty, start, end-start)
	return true
}

func (s *Scanner) emitEndArray() bool {
	frame := s.scope.pop()
	count := s.pos - frame.start + 1
	s.pos++
	s.setToken(KindEndArray, frame.start, count)
	s.closeFlag = false
	s.afterContainerClosed()
	return true
}

func (s *Scanner) emitEndObject() bool {
	frame := s.scope.pop()
	count := s.pos - frame.start + 1
	s.pos++
	s.setToken(KindEndObject, frame.start, count)
	s.closeFlag = false
	s.afterContainerClosed()
	return true
}

func (s *Scanner) emitEndProperty() bool {
	frame := s.scope.pop()
	prevEnd := s.segOffset + s.segCount
	count := prevEnd - frame.start
	s.setToken(KindEndProperty, frame.start, count)
	s.closeFlag = false
	top := s.scope.top()
	s.prepareForCloseContainer(top)
	return true
}

// afterContainerClosed re-runs prepare-for-close for the container now
// exposed at the top of the stack, after an array or object has just
// been popped.
func (s *Scanner) afterContainerClosed() {
	top := s.scope.top()
	switch top.kind {
	case KindBeginArray:
		s.prepareForCloseContainer(top)
	case KindBeginProperty, KindNone:
		s.closeFlag = true
	}
}

func (s *Scanner) emitComplete() bool {
	s.setToken(KindComplete, s.pos, 0)
	return false
}
