package corejson

// scopeFrame is a scanner container-stack element: the kind of the
// enclosing container (or KindNone for the root sentinel) plus the
// payload offset at which it opened. start is used to compute the span
// reported on the matching End-* token. seen tracks whether the
// container has produced at least one element yet, so the first
// element never requires a leading separator.
//
// The stack grows on demand past its construction-time depth hint;
// there is no hard nesting ceiling.
type scopeFrame struct {
	kind  Kind
	start int
	seen  bool
}

// scopeStack is a depth-tracked stack of scopeFrame, always containing
// at least the root sentinel (kind KindNone).
type scopeStack struct {
	frames []scopeFrame
}

func newScopeStack(depthHint int) scopeStack {
	s := scopeStack{frames: make([]scopeFrame, 0, depthHint)}
	s.frames = append(s.frames, scopeFrame{kind: KindNone, start: 0})
	return s
}

func (s *scopeStack) reset() {
	s.frames = s.frames[:0]
	s.frames = append(s.frames, scopeFrame{kind: KindNone, start: 0})
}

func (s *scopeStack) top() *scopeFrame {
	return &s.frames[len(s.frames)-1]
}

func (s *scopeStack) push(f scopeFrame) {
	s.frames = append(s.frames, f)
}

func (s *scopeStack) pop() scopeFrame {
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames = s.frames[:n]
	return f
}

func (s *scopeStack) depth() int {
	return len(s.frames)
}

// emitterStack is the emitter's container stack: just the kind of each
// open container, always containing at least the root sentinel.
type emitterStack struct {
	kinds []Kind
}

func newEmitterStack(depthHint int) emitterStack {
	s := emitterStack{kinds: make([]Kind, 0, depthHint)}
	s.kinds = append(s.kinds, KindNone)
	return s
}

func (s *emitterStack) reset() {
	s.kinds = s.kinds[:0]
	s.kinds = append(s.kinds, KindNone)
}

func (s *emitterStack) top() Kind {
	return s.kinds[len(s.kinds)-1]
}

func (s *emitterStack) push(k Kind) {
	s.kinds = append(s.kinds, k)
}

func (s *emitterStack) pop() Kind {
	n := len(s.kinds) - 1
	k := s.kinds[n]
	s.kinds = s.kinds[:n]
	return k
}

func (s *emitterStack) depth() int {
	return len(s.kinds)
}

func (s *emitterStack) atRoot() bool {
	return len(s.kinds) == 1
}
