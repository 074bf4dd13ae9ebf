package weft

import (
	"testing"
	"time"
)

type stringMsg string

func msgCmd(s string) Cmd {
	return func() Msg { return stringMsg(s) }
}

func TestBatchCompaction(t *testing.T) {
	if Batch() != nil {
		t.Error("Batch() should be nil")
	}
	if Batch(nil, nil) != nil {
		t.Error("Batch(nil, nil) should be nil")
	}

	single := Batch(nil, msgCmd("only"), nil)
	if single == nil {
		t.Fatal("Batch with one live member should not be nil")
	}
	if got := single(); got != stringMsg("only") {
		t.Errorf("single-member batch returned %v, want the member's message", got)
	}

	multi := Batch(msgCmd("a"), msgCmd("b"))
	members, ok := multi().(batchMsg)
	if !ok {
		t.Fatalf("multi-member batch returned %T, want batchMsg", multi())
	}
	if len(members) != 2 {
		t.Errorf("batch has %d members, want 2", len(members))
	}
}

func TestSequenceCompaction(t *testing.T) {
	if Sequence() != nil {
		t.Error("Sequence() should be nil")
	}
	single := Sequence(nil, msgCmd("only"))
	if got := single(); got != stringMsg("only") {
		t.Errorf("single-member sequence returned %v, want the member's message", got)
	}

	multi := Sequence(msgCmd("a"), nil, msgCmd("b"))
	members, ok := multi().(sequenceMsg)
	if !ok {
		t.Fatalf("multi-member sequence returned %T, want sequenceMsg", multi())
	}
	if len(members) != 2 {
		t.Errorf("sequence has %d live members, want 2", len(members))
	}
}

func TestTick(t *testing.T) {
	const delay = 20 * time.Millisecond
	start := time.Now()
	msg := Tick(delay, func(at time.Time) Msg { return at })()
	elapsed := time.Since(start)

	if elapsed < delay {
		t.Errorf("tick fired after %v, want at least %v", elapsed, delay)
	}
	at, ok := msg.(time.Time)
	if !ok {
		t.Fatalf("tick produced %T, want time.Time", msg)
	}
	if at.Before(start) {
		t.Error("tick timestamp predates the command")
	}
}
