package modes

const (
	// ResonanceDuration is the window granted when a shard streak ignites.
	ResonanceDuration = 6000.0 // ms

	// ResonanceStreak is the unbroken shard count that ignites resonance.
	ResonanceStreak = 5

	// ResonanceMultiplier is the score multiplier while resonance holds
	// priority.
	ResonanceMultiplier = 2.0
)

// ResonanceState is the lowest-priority bonus mode. Unlike overdrive,
// suspension sets an explicit Paused flag instead of deactivating, because
// its HUD distinguishes "paused" from "off".
type ResonanceState struct {
	Active              bool
	Paused              bool
	PausedTimeRemaining float64
	RemainingTime       float64 // ms
	StreakCount         int
	Multiplier          float64
}

// RecordStreak notes one more unbroken shard pickup and reports whether the
// streak just crossed the ignition threshold.
func (r *ResonanceState) RecordStreak() bool {
	r.StreakCount++
	return r.StreakCount == ResonanceStreak
}

// BreakStreak resets the unbroken-shard counter. The running window, if any,
// is unaffected.
func (r *ResonanceState) BreakStreak() {
	r.StreakCount = 0
}

// Ignite starts (or refreshes) the resonance window.
func (r *ResonanceState) Ignite() {
	r.Active = true
	r.RemainingTime = ResonanceDuration
	r.Multiplier = ResonanceMultiplier
}

// Update counts the window down. Frozen while paused.
func (r *ResonanceState) Update(dt float64) {
	if !r.Active || r.Paused {
		return
	}
	r.RemainingTime -= dt
	if r.RemainingTime <= 0 {
		r.RemainingTime = 0
		r.Active = false
		r.Multiplier = 0
	}
}

// Reset returns the record to its inactive literal.
func (r *ResonanceState) Reset() {
	*r = ResonanceState{}
}
