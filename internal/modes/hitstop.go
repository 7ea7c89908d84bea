package modes

// HitStopFrames is the fixed simulation freeze on a lock-triggering collision.
const HitStopFrames = 10

// InputBuffer is the single-slot buffer for player input arriving during a
// hit-stop freeze. Events merge by logical OR so nothing is dropped;
// Timestamp tracks the latest merged event.
type InputBuffer struct {
	PendingTap  bool
	PendingSwap bool
	Timestamp   float64
}

func (b *InputBuffer) pending() bool {
	return b.PendingTap || b.PendingSwap
}

// HitStop freezes the simulation for a fixed number of frames while capturing
// player input losslessly. At most one buffered event exists between trigger
// and flush.
type HitStop struct {
	frames int
	buffer InputBuffer
}

// Trigger starts a freeze of n frames, replacing any shorter remaining freeze.
func (h *HitStop) Trigger(n int) {
	if n > h.frames {
		h.frames = n
	}
}

// Active reports whether the simulation is currently frozen.
func (h *HitStop) Active() bool {
	return h.frames > 0
}

// FramesLeft reports the remaining freeze length.
func (h *HitStop) FramesLeft() int {
	return h.frames
}

// Buffer merges an input event into the slot. Flags already set stay set.
func (h *HitStop) Buffer(tap, swap bool, now float64) {
	if !tap && !swap {
		return
	}
	h.buffer.PendingTap = h.buffer.PendingTap || tap
	h.buffer.PendingSwap = h.buffer.PendingSwap || swap
	h.buffer.Timestamp = now
}

// Advance decrements the freeze counter, never below zero. The instant the
// counter reaches zero the buffer is flushed exactly once: the returned event
// is the OR-merge of everything captured during the freeze, and flushed is
// false when nothing was pending. Calling Advance with no freeze running is a
// no-op.
func (h *HitStop) Advance() (ev InputBuffer, flushed bool) {
	if h.frames == 0 {
		return InputBuffer{}, false
	}
	h.frames--
	if h.frames > 0 {
		return InputBuffer{}, false
	}
	if !h.buffer.pending() {
		return InputBuffer{}, false
	}
	ev = h.buffer
	h.buffer = InputBuffer{}
	return ev, true
}

// Reset clears the counter and any buffered input.
func (h *HitStop) Reset() {
	*h = HitStop{}
}
