package modes

// OverdriveDuration is the window armed by completing the letter set.
const OverdriveDuration = 10000.0 // ms

// OverdriveState is the second-priority bonus mode. The letter-collection
// mask that arms it belongs to the session, not to this record.
//
// Pausing overdrive deactivates it outright and parks the timer on the lock
// record; its own HUD has no "paused" presentation to preserve.
type OverdriveState struct {
	Active bool
	Timer  float64 // ms remaining
}

// Start arms overdrive for the full window, restarting it if already running.
func (o *OverdriveState) Start() {
	o.Active = true
	o.Timer = OverdriveDuration
}

// Update counts the window down. Expiry deactivates; no grace period.
func (o *OverdriveState) Update(dt float64) {
	if !o.Active {
		return
	}
	o.Timer -= dt
	if o.Timer <= 0 {
		o.Timer = 0
		o.Active = false
	}
}

// Reset returns the record to its inactive literal.
func (o *OverdriveState) Reset() {
	*o = OverdriveState{}
}
