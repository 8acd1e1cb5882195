package corejson

import "testing"

func TestFixedBufferAppendCharReserve(t *testing.T) {
	b := NewFixedBuffer(4)
	if !b.AppendByte('a', 2) {
		t.Fatalf("expected append to succeed with room to spare")
	}
	if b.AppendByte('b', 3) {
		t.Fatalf("expected append to fail: length 1 + reserve 3 is not strictly below capacity 4")
	}
	if b.Len() != 1 {
		t.Fatalf("failed append must not mutate length, got %d", b.Len())
	}
}

func TestFixedBufferAppendStringNonStrict(t *testing.T) {
	b := NewFixedBuffer(4)
	if !b.AppendString("ab", 2) {
		t.Fatalf("expected non-strict append to succeed: 0+2+2 <= 4")
	}
	if b.AppendString("c", 2) {
		t.Fatalf("expected append to fail: 2+1+2 > 4")
	}
	if b.String() != "ab" {
		t.Fatalf("got %q", b.String())
	}
}

func TestFixedBufferAppendByteMarkRollback(t *testing.T) {
	b := NewFixedBuffer(4)
	b.AppendByte('x', 0)
	var mark int
	if !b.AppendByteMark('y', 0, &mark) {
		t.Fatalf("expected second append to succeed")
	}
	if mark != 1 {
		t.Fatalf("expected pre-append length 1, got %d", mark)
	}
	b.RestoreLength(mark)
	if b.String() != "x" {
		t.Fatalf("got %q after rollback", b.String())
	}
}

func TestFixedBufferTryGrowAndResize(t *testing.T) {
	b := NewFixedBuffer(2)
	b.AppendByte('a', 0)
	if b.TryGrow(2) {
		t.Fatalf("TryGrow to the same capacity must fail")
	}
	if !b.TryGrow(8) {
		t.Fatalf("TryGrow to a larger capacity must succeed")
	}
	if b.String() != "a" {
		t.Fatalf("content must survive grow, got %q", b.String())
	}
	if b.TryResize(0, 0) {
		t.Fatalf("TryResize below current length must fail")
	}
	if !b.TryResize(8, 0) {
		t.Fatalf("TryResize to a capacity that still fits the content must succeed")
	}
}

func TestFixedBufferClearAndLast(t *testing.T) {
	b := NewFixedBuffer(4)
	if b.Last() != 0 {
		t.Fatalf("empty buffer must report 0 as Last()")
	}
	b.AppendString("hi", 0)
	if b.Last() != 'i' {
		t.Fatalf("expected last byte 'i', got %q", b.Last())
	}
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("expected length 0 after Clear")
	}
	if b.Cap() != 4 {
		t.Fatalf("Clear must not change capacity")
	}
}
