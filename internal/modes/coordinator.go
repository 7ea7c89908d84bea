package modes

// Effect multipliers while the lock holds priority in its active window.
const (
	lockDistanceMultiplier = 3.0
	lockShardMultiplier    = 2.0
)

// PriorityMode is the single mode whose gameplay effects are in force this
// frame. Computed, never stored.
type PriorityMode uint8

const (
	ModeNone PriorityMode = iota
	ModeQuantumLock
	ModeOverdrive
	ModeResonance
)

// String returns the HUD label for a priority mode.
func (m PriorityMode) String() string {
	switch m {
	case ModeQuantumLock:
		return "QUANTUM LOCK"
	case ModeOverdrive:
		return "OVERDRIVE"
	case ModeResonance:
		return "RESONANCE"
	default:
		return "NONE"
	}
}

// Effects is the per-frame contract the rest of the simulation reads from
// whichever mode holds priority. Baseline is all multipliers 1, nothing
// suppressed, no invulnerability from this subsystem.
type Effects struct {
	Invulnerable       bool
	BlockObstacleSpawn bool
	FreezeSpeedRamp    bool
	DestroyOnContact   bool // overdrive: obstacles shatter instead of killing
	ShardMagnet        bool // overdrive: nearby shards drift to the rider
	DistanceMultiplier float64
	ShardMultiplier    float64
	ScoreMultiplier    float64
}

func baselineEffects() Effects {
	return Effects{DistanceMultiplier: 1, ShardMultiplier: 1, ScoreMultiplier: 1}
}

// TriggerResult is handed back to the collision subsystem when a qualifying
// pickup starts the lock. The shake/sound flags are consumed by the
// presentation layer, ShardRemoved by the spawner.
type TriggerResult struct {
	HitStopFrames int
	ScreenShake   bool
	ImpactSound   bool
	ShardRemoved  bool
}

// FrameResult is what one coordinator step hands back to the session.
type FrameResult struct {
	Ran          bool        // false: hit-stop swallowed this frame
	Input        InputBuffer // synthesized event flushed out of hit-stop
	InputFlushed bool
	Effects      Effects
}

// Coordinator owns the three mode records, the hit-stop freeze, and the
// connector animation for one run session. All state is session-scoped;
// nothing here is global, so concurrent sessions (tests included) stay
// isolated.
//
// Single-threaded by contract: the fixed step order inside Step is a
// correctness requirement. Pause/resume fire exactly once per edge — on
// activation, on the exiting→ghost transition, and on punitive termination —
// never every frame.
type Coordinator struct {
	Lock      QuantumLockState
	Overdrive OverdriveState
	Resonance ResonanceState
	Connector ConnectorAnimation
	HitStop   HitStop

	effects Effects
}

// NewCoordinator builds an all-inactive coordinator with the rider's resting
// connector length.
func NewCoordinator(connectorLength float64) *Coordinator {
	return &Coordinator{
		Connector: NewConnectorAnimation(connectorLength),
		effects:   baselineEffects(),
	}
}

// PriorityMode resolves the strict total priority order:
// quantum_lock > overdrive > resonance > none, first match wins. The lock
// holds priority through its ghost phase even though the mode itself is over.
func (c *Coordinator) PriorityMode() PriorityMode {
	if c.Lock.Active || c.Lock.Phase == PhaseGhost {
		return ModeQuantumLock
	}
	if c.Overdrive.Active {
		return ModeOverdrive
	}
	if c.Resonance.Active && !c.Resonance.Paused {
		return ModeResonance
	}
	return ModeNone
}

// pauseOverdrive parks the overdrive timer on the lock record and deactivates
// overdrive. No-op when overdrive is not running.
func (c *Coordinator) pauseOverdrive() {
	if !c.Overdrive.Active {
		return
	}
	c.Lock.PausedOverdriveTime = c.Overdrive.Timer
	c.Overdrive.Timer = 0
	c.Overdrive.Active = false
}

// resumeOverdrive restores the parked timer verbatim. The stored value is
// assigned directly, never recomputed from elapsed time, so restoration is
// exact for any value including non-integer timers. No-op when nothing is
// parked.
func (c *Coordinator) resumeOverdrive() {
	if c.Lock.PausedOverdriveTime <= 0 {
		return
	}
	c.Overdrive.Active = true
	c.Overdrive.Timer = c.Lock.PausedOverdriveTime
	c.Lock.PausedOverdriveTime = 0
}

// pauseResonance suspends resonance in place via its Paused flag. No-op when
// resonance is inactive or already paused — the already-paused guard keeps a
// second lock activation from overwriting the parked value with zero.
func (c *Coordinator) pauseResonance() {
	if !c.Resonance.Active || c.Resonance.Paused {
		return
	}
	c.Lock.PausedResonanceTime = c.Resonance.RemainingTime
	c.Resonance.PausedTimeRemaining = c.Resonance.RemainingTime
	c.Resonance.Paused = true
}

// resumeResonance lifts the suspension, assigning the stored remaining time
// back verbatim. No-op when resonance is not paused.
func (c *Coordinator) resumeResonance() {
	if !c.Resonance.Paused {
		return
	}
	c.Resonance.Paused = false
	c.Resonance.RemainingTime = c.Resonance.PausedTimeRemaining
	c.Resonance.PausedTimeRemaining = 0
	c.Lock.PausedResonanceTime = 0
}

// TriggerLock activates the lock off a qualifying collision: pauses the two
// lower-priority modes, starts the hit-stop freeze, and returns the flags the
// collision subsystem fans out to its consumers. Total: re-triggering during
// an active window simply restarts it.
func (c *Coordinator) TriggerLock(now, connectorLength float64) TriggerResult {
	c.pauseOverdrive()
	c.pauseResonance()
	c.Lock.Activate(now, connectorLength)
	c.HitStop.Trigger(HitStopFrames)
	return TriggerResult{
		HitStopFrames: HitStopFrames,
		ScreenShake:   true,
		ImpactSound:   true,
		ShardRemoved:  true,
	}
}

// RegisterMidlineHit forwards a hazard-wave touch to the lock and performs
// the punitive termination — resuming the suspended modes and hard-setting
// the connector, with ghost skipped — when the debounced hit limit is
// reached. Returns true on termination.
func (c *Coordinator) RegisterMidlineHit(now float64) bool {
	if !c.Lock.RegisterMidlineHit(now) {
		return false
	}
	original := c.Lock.OriginalConnectorLength
	c.Lock.ForceEnd()
	c.resumeOverdrive()
	c.resumeResonance()
	c.Connector.HardSet(original)
	return true
}

// BufferInput captures a player input event that arrived during hit-stop.
func (c *Coordinator) BufferInput(tap, swap bool, now float64) {
	c.HitStop.Buffer(tap, swap, now)
}

// Step advances the engine by one frame in the fixed evaluation order:
// hit-stop counter (flushing the buffer the instant it reaches zero), then —
// unless still frozen — the lock state machine, edge-triggered pause/resume,
// mode countdowns, the connector ease, and finally the published effect
// contract. Frozen frames skip everything after the counter and leave the
// previously published effects in place.
func (c *Coordinator) Step(now, dt float64) FrameResult {
	ev, flushed := c.HitStop.Advance()
	if c.HitStop.Active() {
		return FrameResult{Ran: false, Effects: c.effects}
	}

	prev := c.Lock.Phase
	c.Lock.Update(now, dt)

	// Natural end edge: the window expired into ghost this frame.
	if c.Lock.Phase == PhaseGhost && prev != PhaseGhost {
		c.resumeOverdrive()
		c.resumeResonance()
		c.Connector.HardSet(c.Lock.OriginalConnectorLength)
	}

	c.Overdrive.Update(dt)
	c.Resonance.Update(dt)
	c.Connector.Step(now, &c.Lock)

	c.effects = c.computeEffects()
	return FrameResult{Ran: true, Input: ev, InputFlushed: flushed, Effects: c.effects}
}

func (c *Coordinator) computeEffects() Effects {
	e := baselineEffects()
	switch c.PriorityMode() {
	case ModeQuantumLock:
		e.Invulnerable = true
		if c.Lock.Phase != PhaseGhost {
			e.BlockObstacleSpawn = true
			e.FreezeSpeedRamp = true
			e.DistanceMultiplier = lockDistanceMultiplier
			e.ShardMultiplier = lockShardMultiplier
		}
		// Ghost: invulnerability only; spawning and the speed ramp resume.
	case ModeOverdrive:
		e.DestroyOnContact = true
		e.ShardMagnet = true
	case ModeResonance:
		e.ScoreMultiplier = c.Resonance.Multiplier
	}
	return e
}

// Effects returns the contract published by the most recent Step.
func (c *Coordinator) Effects() Effects {
	return c.effects
}

// ShouldBlockObstacleSpawn is the spawner's per-decision query.
func (c *Coordinator) ShouldBlockObstacleSpawn() bool {
	return c.effects.BlockObstacleSpawn
}

// Reset returns every record to its inactive literal for a new run. The
// connector snaps back to the given resting length.
func (c *Coordinator) Reset(connectorLength float64) {
	c.Lock.Reset()
	c.Overdrive.Reset()
	c.Resonance.Reset()
	c.HitStop.Reset()
	c.Connector = NewConnectorAnimation(connectorLength)
	c.effects = baselineEffects()
}
