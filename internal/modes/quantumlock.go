package modes

// Quantum Lock timing constants. These are gameplay invariants, not tuning:
// the phase thresholds and window lengths are what the rest of the engine
// (scoring, spawning, rendering) is balanced around.
const (
	LockDuration  = 8000.0 // ms, fixed for every activation
	GhostDuration = 1500.0 // ms of invulnerability-only grace after a natural end

	warningThreshold = 0.75
	exitingThreshold = 0.80

	midlineHitDebounce = 500.0 // ms between counted hazard touches
	midlineHitLimit    = 3     // touches before punitive termination

	waveAdvanceRate = 0.004 // wave offset radians per ms, visual only

	// GhostOpacity is the render alpha for the rider during ghost phase.
	// The renderer may smooth-fade around it.
	GhostOpacity = 0.5
)

// Phase is the Quantum Lock lifecycle phase.
type Phase uint8

const (
	PhaseInactive Phase = iota
	PhaseActive
	PhaseWarning // final quarter of the window
	PhaseExiting // connector easing back toward its original length
	PhaseGhost   // post-mode grace period; the mode itself is over
)

// String returns the HUD label for a phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "LOCKED"
	case PhaseWarning:
		return "WARNING"
	case PhaseExiting:
		return "EXITING"
	case PhaseGhost:
		return "GHOST"
	default:
		return "OFF"
	}
}

// QuantumLockState owns the activation/duration/phase/ghost lifecycle of the
// primary bonus mode, plus the paused timers of the two lower-priority modes
// while the lock holds them suspended.
//
// Invariant: Phase == PhaseGhost implies Active == false. Ghost is a grace
// period after the mode, never the mode itself.
type QuantumLockState struct {
	Active                  bool
	StartTime               float64 // ms, session clock at activation
	Duration                float64 // always LockDuration
	OriginalConnectorLength float64 // captured once at activation
	WaveOffset              float64
	Phase                   Phase
	GhostEndTime            float64

	// Timers stored verbatim by the coordinator's pause calls and assigned
	// back verbatim on resume. Never recomputed from elapsed time.
	PausedOverdriveTime float64
	PausedResonanceTime float64

	MidlineHits        int
	LastMidlineHitTime float64
}

// Activate starts (or restarts) the lock window. Valid from any state and
// always succeeds; callers are expected not to re-activate during active play.
func (q *QuantumLockState) Activate(now, connectorLength float64) {
	q.Active = true
	q.StartTime = now
	q.Duration = LockDuration
	q.OriginalConnectorLength = connectorLength
	q.WaveOffset = 0
	q.Phase = PhaseActive
	q.MidlineHits = 0
	q.LastMidlineHitTime = 0
}

// Progress reports wall-clock progress through the window, clamped to [0, 1].
func (q *QuantumLockState) Progress(now float64) float64 {
	if q.Duration <= 0 {
		return 0
	}
	p := (now - q.StartTime) / q.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// phaseFromProgress derives the phase from window progress alone.
func phaseFromProgress(p float64) Phase {
	switch {
	case p >= 1.0:
		return PhaseGhost
	case p >= exitingThreshold:
		return PhaseExiting
	case p >= warningThreshold:
		return PhaseWarning
	default:
		return PhaseActive
	}
}

// Update advances the lock by one frame. Idempotent when neither active nor
// in ghost. Phase order within one activation is strictly
// active → warning → exiting → ghost and never moves backward, because
// progress is monotonic for a fixed StartTime.
func (q *QuantumLockState) Update(now, dt float64) {
	if q.Phase == PhaseGhost {
		if now >= q.GhostEndTime {
			q.Phase = PhaseInactive
			q.GhostEndTime = 0
			q.WaveOffset = 0
		}
		return
	}
	if !q.Active {
		return
	}

	q.WaveOffset += waveAdvanceRate * dt

	p := q.Progress(now)
	next := phaseFromProgress(p)
	if next == PhaseGhost {
		q.Phase = PhaseGhost
		q.GhostEndTime = now + GhostDuration
		q.Active = false
		return
	}
	q.Phase = next
}

// RegisterMidlineHit counts a hazard-wave touch, debounced to one per 500ms.
// Returns true when the punitive limit has been reached; the caller is
// responsible for forcing the lock to end.
func (q *QuantumLockState) RegisterMidlineHit(now float64) bool {
	if !q.Active {
		return false
	}
	if q.LastMidlineHitTime != 0 && now-q.LastMidlineHitTime < midlineHitDebounce {
		return false
	}
	q.LastMidlineHitTime = now
	q.MidlineHits++
	return q.MidlineHits >= midlineHitLimit
}

// ForceEnd terminates the lock punitively. Ghost phase is skipped.
func (q *QuantumLockState) ForceEnd() {
	q.Active = false
	q.Phase = PhaseInactive
	q.GhostEndTime = 0
	q.MidlineHits = 0
	q.LastMidlineHitTime = 0
}

// GhostRemaining reports ms left in the ghost window, 0 when not in ghost.
func (q *QuantumLockState) GhostRemaining(now float64) float64 {
	if q.Phase != PhaseGhost {
		return 0
	}
	r := q.GhostEndTime - now
	if r < 0 {
		return 0
	}
	return r
}

// WaveAmplitudeScale is the phase-dependent scale the renderer applies to the
// hazard wave amplitude: full while locked, damping out toward the exit.
func (q *QuantumLockState) WaveAmplitudeScale() float64 {
	switch q.Phase {
	case PhaseActive:
		return 1.0
	case PhaseWarning:
		return 0.7
	case PhaseExiting:
		return 0.4
	default:
		return 0
	}
}

// Reset returns the record to its inactive literal (game over / new run).
func (q *QuantumLockState) Reset() {
	*q = QuantumLockState{}
}
