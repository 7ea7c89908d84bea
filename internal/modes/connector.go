package modes

import "math"

const (
	// IdealConnectorLength is the connector target while the lock is in its
	// active/warning phases.
	IdealConnectorLength = 140.0

	// connectorEaseWindow is the sub-window one ease runs over.
	connectorEaseWindow = 400.0 // ms
)

// elasticOut is an elastic-out ease of t in [0, 1]. Intermediate values
// legitimately overshoot past 1 and below 0 for the spring effect, but the
// endpoints are exact: eased(0) = 0 and eased(1) = 1, with no residue.
func elasticOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*(2*math.Pi/3)) + 1
}

// ConnectorAnimation interpolates the rider connector length toward a
// phase-derived target. While the lock is in active/warning/exiting it is the
// sole writer of the length; no other subsystem may touch it.
type ConnectorAnimation struct {
	Length float64

	target    float64
	from      float64
	easeStart float64
	easing    bool
}

// NewConnectorAnimation starts at the rider's resting length.
func NewConnectorAnimation(length float64) ConnectorAnimation {
	return ConnectorAnimation{Length: length}
}

// Locked reports whether this component currently owns the connector length.
func (c *ConnectorAnimation) Locked(phase Phase) bool {
	return phase == PhaseActive || phase == PhaseWarning || phase == PhaseExiting
}

// Step retargets and advances the ease for the current lock phase. During
// active/warning the target is the ideal length; during exiting it is the
// original length captured at activation. Outside the locked phases the
// length is left alone (HardSet handles the end edge).
func (c *ConnectorAnimation) Step(now float64, q *QuantumLockState) {
	if !c.Locked(q.Phase) {
		c.easing = false
		return
	}

	target := IdealConnectorLength
	if q.Phase == PhaseExiting {
		target = q.OriginalConnectorLength
	}
	if !c.easing || c.target != target {
		c.target = target
		c.from = c.Length
		c.easeStart = now
		c.easing = true
	}

	t := (now - c.easeStart) / connectorEaseWindow
	c.Length = c.from + (c.target-c.from)*elasticOut(t)
}

// HardSet pins the length to an exact value. Used on the edge where the mode
// fully ends, so the stored original is restored verbatim instead of the
// asymptotic eased value with its accumulated float drift.
func (c *ConnectorAnimation) HardSet(length float64) {
	c.Length = length
	c.easing = false
}
