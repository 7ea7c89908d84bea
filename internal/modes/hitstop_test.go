package modes

import "testing"

func TestHitStopActiveIffPositive(t *testing.T) {
	var h HitStop
	if h.Active() {
		t.Fatal("fresh hit-stop reports active")
	}
	h.Trigger(1)
	if !h.Active() {
		t.Fatal("triggered hit-stop not active")
	}
	h.Advance()
	if h.Active() {
		t.Fatal("active after counter reached zero")
	}
}

func TestHitStopCountsDownNeverBelowZero(t *testing.T) {
	var h HitStop
	h.Trigger(3)
	for want := 2; want >= 0; want-- {
		h.Advance()
		if h.FramesLeft() != want {
			t.Fatalf("FramesLeft = %d, want %d", h.FramesLeft(), want)
		}
	}
	// Advancing an expired counter is a no-op, never negative.
	h.Advance()
	if h.FramesLeft() != 0 {
		t.Errorf("FramesLeft after extra advance = %d, want 0", h.FramesLeft())
	}
}

func TestHitStopTriggerKeepsLongerFreeze(t *testing.T) {
	var h HitStop
	h.Trigger(10)
	h.Trigger(4)
	if h.FramesLeft() != 10 {
		t.Errorf("shorter re-trigger shrank the freeze: %d", h.FramesLeft())
	}
}

func TestInputBufferMergesByOR(t *testing.T) {
	var h HitStop
	h.Trigger(3)
	h.Buffer(true, false, 100)
	h.Buffer(false, false, 110) // empty event must not clear earlier flags
	h.Buffer(false, true, 120)

	h.Advance()
	h.Advance()
	ev, flushed := h.Advance()
	if !flushed {
		t.Fatal("buffer was not flushed when the counter reached zero")
	}
	if !ev.PendingTap || !ev.PendingSwap {
		t.Errorf("merged event = %+v, want tap and swap both set", ev)
	}
	if ev.Timestamp != 120 {
		t.Errorf("Timestamp = %v, want latest event time 120", ev.Timestamp)
	}
}

func TestInputBufferFlushesExactlyOnce(t *testing.T) {
	var h HitStop
	h.Trigger(1)
	h.Buffer(true, false, 50)

	if _, flushed := h.Advance(); !flushed {
		t.Fatal("no flush on reaching zero")
	}
	if _, flushed := h.Advance(); flushed {
		t.Fatal("second flush of the same buffered event")
	}

	// A fresh freeze with nothing buffered flushes nothing.
	h.Trigger(1)
	if _, flushed := h.Advance(); flushed {
		t.Fatal("flush with empty buffer")
	}
}
