package corejson

import (
	"strconv"
	"testing"
)

func ptr(s string) *string { return &s }

func TestEmitterSimpleDocument(t *testing.T) {
	e, err := NewEmitter(64, 4)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if !e.OpenObject() {
		t.Fatalf("OpenObject failed")
	}
	if !e.OpenProperty(ptr("name")) {
		t.Fatalf("OpenProperty failed")
	}
	if !e.WriteString(ptr("ok")) {
		t.Fatalf("WriteString failed")
	}
	if !e.CloseToken() {
		t.Fatalf("CloseToken (property) failed")
	}
	if !e.OpenProperty(ptr("count")) {
		t.Fatalf("OpenProperty failed")
	}
	if !e.WriteInt64(3) {
		t.Fatalf("WriteInt64 failed")
	}
	got := e.Finish()
	want := `{"name":"ok","count":3}`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestEmitterClosePropertyDefaultsNull(t *testing.T) {
	e, err := NewEmitter(64, 4)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	e.OpenObject()
	e.OpenProperty(ptr("x"))
	got := e.Finish()
	want := `{"x":null}`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

// E6: emitter truncation of an array.
func TestEmitterTruncateArray(t *testing.T) {
	e, err := NewEmitter(50, 2)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if !e.OpenArray() {
		t.Fatalf("OpenArray failed")
	}
	n := 0
	for e.WriteInt64(int64(n)) {
		n++
	}
	got := e.Finish()
	want := `[0,1,2,3,4,5,6,7,8,9,10,11,{"(truncated)":true}]`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !e.Truncated() {
		t.Fatalf("expected Truncated() to be true")
	}
	if len(got) > 50 {
		t.Fatalf("result length %d exceeds capacity 50", len(got))
	}
}

// E7: emitter truncation of an object.
func TestEmitterTruncateObject(t *testing.T) {
	e, err := NewEmitter(50, 4)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if !e.OpenObject() {
		t.Fatalf("OpenObject failed")
	}
	i := 0
	for {
		name := strconv.Itoa(i)
		if !e.OpenProperty(&name) {
			break
		}
		if !e.WriteInt64(int64(i)) {
			break
		}
		e.CloseToken()
		i++
	}
	got := e.Finish()
	want := `{"0":0,"1":1,"2":2,"3":3,"(truncated)":true}`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

// Property 5: emitter capacity — finish() never exceeds C.
func TestEmitterCapacityNeverExceeded(t *testing.T) {
	for _, c := range []int{20, 21, 25, 30, 50, 100} {
		e, err := NewEmitter(c, 6)
		if err != nil {
			t.Fatalf("NewEmitter(%d): %v", c, err)
		}
		e.OpenArray()
		for k := 0; k < 200 && e.WriteInt64(int64(k*1000000)); k++ {
		}
		got := e.Finish()
		if len(got) > c {
			t.Fatalf("capacity %d: result length %d", c, len(got))
		}
	}
}

// Property 6: truncation well-formedness — every truncated finish()
// parses as valid JSON via the scanner.
func TestEmitterTruncationWellFormed(t *testing.T) {
	e, err := NewEmitter(30, 4)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	e.OpenObject()
	for i := 0; i < 50; i++ {
		name := strconv.Itoa(i)
		if !e.OpenProperty(&name) {
			break
		}
		e.WriteString(ptr("some moderately long value to force truncation"))
		e.CloseToken()
	}
	got := e.Finish()
	if !e.Truncated() {
		t.Fatalf("expected this document to truncate")
	}
	assertParsesFully(t, got)
}

func assertParsesFully(t *testing.T, doc string) {
	t.Helper()
	s, err := NewScanner([]byte(doc), len(doc), 8)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	for s.Next() {
	}
	if s.TokenKind() != KindComplete {
		t.Fatalf("document did not parse cleanly, ended at %s: %q", s.TokenKind(), doc)
	}
}

func TestEmitterClearResetsState(t *testing.T) {
	e, err := NewEmitter(64, 4)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	e.OpenArray()
	e.WriteInt64(1)
	e.Clear()
	e.Clear()
	if e.Depth() != 0 {
		t.Fatalf("expected root depth after Clear, got %d", e.Depth())
	}
	e.OpenArray()
	e.WriteInt64(9)
	got := e.Finish()
	if got != "[9]" {
		t.Fatalf("got %q", got)
	}
}

func TestEmitterOpenPropertyRejectsNilName(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic for a nil property name")
		}
	}()
	e, _ := NewEmitter(64, 4)
	e.OpenObject()
	e.OpenProperty(nil)
}

func TestEmitterRejectsUngrammaticalCalls(t *testing.T) {
	e, err := NewEmitter(64, 4)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if e.OpenProperty(ptr("x")) {
		t.Fatalf("open_property at the root must be rejected")
	}
	e.OpenObject()
	if e.WriteInt64(1) {
		t.Fatalf("a bare value directly under an object must be rejected")
	}
	if e.OpenArray() {
		t.Fatalf("a bare container directly under an object must be rejected")
	}
}

func TestEmitterInvalidDepthHint(t *testing.T) {
	if _, err := NewEmitter(64, 0); err != ErrInvalidDepth {
		t.Fatalf("got %v, want ErrInvalidDepth", err)
	}
}
