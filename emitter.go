package corejson

import "fmt"

// TruncatedObjectMarker is the well-formed JSON fragment the emitter
// writes in place of a whole value when capacity runs out at the root,
// array, or fresh-property level.
const TruncatedObjectMarker = `{"(truncated)":true}`

// TruncatedPropertyMarker is the well-formed fragment the emitter writes
// in place of a whole property when capacity runs out inside an object.
const TruncatedPropertyMarker = `"(truncated)":true`

// Emitter builds a JSON document incrementally into a fixed-capacity
// buffer. It never exceeds that capacity: once a write or frame push
// cannot fit alongside the budget needed to close every open container,
// it self-truncates into a well-formed document ending in a truncated
// marker, and every further write is a no-op.
type Emitter struct {
	buf       *FixedBuffer
	scope     emitterStack
	truncated bool
	cfg       emitterConfig
}

// NewEmitter allocates an Emitter with the given buffer capacity and
// container-depth sizing hint. depth must be positive. The effective
// capacity is raised to at least len(TruncatedObjectMarker) so that
// truncation always fits.
func NewEmitter(capacity, depth int, opts ...EmitterOption) (*Emitter, error) {
	if depth <= 0 {
		return nil, ErrInvalidDepth
	}
	var cfg emitterConfig
	for _, o := range opts {
		o(&cfg)
	}
	if capacity < len(TruncatedObjectMarker) {
		capacity = len(TruncatedObjectMarker)
	}
	e := &Emitter{
		buf:   NewFixedBuffer(capacity),
		scope: newEmitterStack(depth),
		cfg:   cfg,
	}
	return e, nil
}

// Clear resets the emitter to its just-constructed state, retaining the
// buffer allocation.
func (e *Emitter) Clear() {
	e.buf.Clear()
	e.scope.reset()
	e.truncated = false
}

// Truncated reports whether the emitter has already self-truncated.
func (e *Emitter) Truncated() bool { return e.truncated }

// Depth reports the current container nesting depth (0 at root).
func (e *Emitter) Depth() int { return e.scope.depth() - 1 }

// TryResize changes the buffer's capacity iff the live content plus the
// current reserve still fits within newCapacity.
func (e *Emitter) TryResize(newCapacity int) bool {
	return e.buf.TryResize(newCapacity, e.reserveFor(e.scope.depth()))
}

// reserveFor is the number of bytes that must remain free with the
// container stack at the given depth (counting the root sentinel): one
// closing character for each of the depth-1 open containers, one for
// the separator writeTruncated may write before its marker, and room
// for the largest truncated-form marker.
func (e *Emitter) reserveFor(depth int) int {
	return depth + len(TruncatedObjectMarker)
}

func (e *Emitter) reserve() int { return e.reserveFor(e.scope.depth()) }

// beginAllowed reports whether a container-open or scalar value write is
// grammatically permitted given the top frame, independent of capacity.
func (e *Emitter) beginAllowed() bool {
	switch e.scope.top() {
	case KindNone:
		return e.buf.Len() == 0
	case KindBeginArray:
		return true
	case KindBeginObject:
		return false
	case KindBeginProperty:
		return e.buf.Last() == ':'
	default:
		return false
	}
}

// propertyAllowed reports whether open_property is grammatically
// permitted given the top frame.
func (e *Emitter) propertyAllowed() bool {
	return e.scope.top() == KindBeginObject
}

// needsSeparator reports whether a leading ',' must precede the next
// container, property, or value write under the current top frame.
func (e *Emitter) needsSeparator() bool {
	switch e.scope.top() {
	case KindBeginArray:
		return e.buf.Last() != '['
	case KindBeginObject:
		return e.buf.Last() != '{'
	default:
		return false
	}
}

// writeAtomic runs write, and on failure rolls the buffer back to its
// length before the call and transitions the emitter to its sticky
// truncated state. It is a no-op returning false once already truncated.
func (e *Emitter) writeAtomic(write func() bool) bool {
	if e.truncated {
		return false
	}
	mark := e.buf.Len()
	if write() {
		return true
	}
	e.buf.RestoreLength(mark)
	e.writeTruncated()
	return false
}

// writeTruncated emits the truncated marker appropriate to the current
// top frame and enters the sticky truncated state. The reserve budget
// maintained by every prior append guarantees this always fits.
func (e *Emitter) writeTruncated() {
	switch e.scope.top() {
	case KindNone:
		e.buf.AppendString(TruncatedObjectMarker, 0)
	case KindBeginArray:
		if e.buf.Last() != '[' {
			e.buf.AppendByte(',', 0)
		}
		e.buf.AppendString(TruncatedObjectMarker, 0)
	case KindBeginObject:
		if e.buf.Last() != '{' {
			e.buf.AppendByte(',', 0)
		}
		e.buf.AppendString(TruncatedPropertyMarker, 0)
	case KindBeginProperty:
		if e.buf.Last() == ':' {
			e.buf.AppendString(TruncatedObjectMarker, 0)
		} else {
			e.buf.AppendByte(',', 0)
			e.buf.AppendString(TruncatedPropertyMarker, 0)
		}
	}
	e.truncated = true
}

// OpenArray pushes an array frame, writing a leading separator first if
// needed. It returns false, without writing anything, if a container
// cannot grammatically open here (e.g. directly under an object).
func (e *Emitter) OpenArray() bool {
	if e.truncated || !e.beginAllowed() {
		return false
	}
	return e.writeAtomic(func() bool {
		r := e.reserveFor(e.scope.depth() + 1)
		if e.needsSeparator() && !e.buf.AppendByte(',', r) {
			return false
		}
		if !e.buf.AppendByte('[', r) {
			return false
		}
		e.scope.push(KindBeginArray)
		return true
	})
}

// OpenObject pushes an object frame, writing a leading separator first
// if needed.
func (e *Emitter) OpenObject() bool {
	if e.truncated || !e.beginAllowed() {
		return false
	}
	return e.writeAtomic(func() bool {
		r := e.reserveFor(e.scope.depth() + 1)
		if e.needsSeparator() && !e.buf.AppendByte(',', r) {
			return false
		}
		if !e.buf.AppendByte('{', r) {
			return false
		}
		e.scope.push(KindBeginObject)
		return true
	})
}

// OpenProperty pushes a property frame under the currently open object,
// writing the quoted, escaped name and a trailing ':'. name must be
// non-nil; a nil name is a caller precondition violation and panics with
// ErrMissingPropertyName (a non-positive depth at construction is
// instead reported by NewEmitter returning ErrInvalidDepth).
func (e *Emitter) OpenProperty(name *string) bool {
	if name == nil {
		panic(ErrMissingPropertyName)
	}
	if e.truncated || !e.propertyAllowed() {
		return false
	}
	return e.writeAtomic(func() bool {
		r := e.reserveFor(e.scope.depth() + 1)
		if e.needsSeparator() && !e.buf.AppendByte(',', r) {
			return false
		}
		if !e.buf.AppendByte('"', r) {
			return false
		}
		if !appendEscapedBody(e.buf, *name, r) {
			return false
		}
		if !e.buf.AppendByte('"', r) {
			return false
		}
		if !e.buf.AppendByte(':', r) {
			return false
		}
		e.scope.push(KindBeginProperty)
		return true
	})
}

// CloseToken pops the topmost frame: an array emits ']', an object
// emits '}', and a property whose value was never written first emits
// null (or, when null no longer fits, truncates with the object marker
// as its value). It is a no-op at the root. Unlike every other mutating
// method, CloseToken keeps working after the emitter has truncated,
// since finishing a truncated document still requires closing every
// open container. Closing characters are appended with no reserve: the
// reserve held back by every earlier write already includes a slot for
// each of them.
func (e *Emitter) CloseToken() bool {
	switch e.scope.top() {
	case KindNone:
		return false
	case KindBeginArray:
		e.scope.pop()
		e.buf.AppendByte(']', 0)
		return true
	case KindBeginObject:
		e.scope.pop()
		e.buf.AppendByte('}', 0)
		return true
	case KindBeginProperty:
		if e.buf.Last() == ':' && !e.buf.AppendString("null", e.reserveFor(e.scope.depth()-1)) {
			e.writeTruncated()
		}
		e.scope.pop()
		return true
	default:
		return false
	}
}

// DebugDump renders the emitter's buffer length, capacity, container
// depth, and truncated state as a single line, for test failure
// messages and ad-hoc tracing.
func (e *Emitter) DebugDump() string {
	return fmt.Sprintf("len=%d cap=%d depth=%d truncated=%t",
		e.buf.Len(), e.buf.Cap(), e.Depth(), e.truncated)
}

// Finish closes every remaining open container and returns the
// resulting buffer contents. It is idempotent to call once finished:
// further Finish calls simply return the same (now root-level) buffer.
func (e *Emitter) Finish() string {
	for !e.scope.atRoot() {
		e.CloseToken()
	}
	return e.buf.String()
}
