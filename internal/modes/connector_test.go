package modes

import (
	"math"
	"testing"
)

func TestElasticOutEndpoints(t *testing.T) {
	if got := elasticOut(0); got != 0 {
		t.Errorf("elasticOut(0) = %v, want exactly 0", got)
	}
	if got := elasticOut(1); got != 1 {
		t.Errorf("elasticOut(1) = %v, want exactly 1", got)
	}
	if got := elasticOut(-0.5); got != 0 {
		t.Errorf("elasticOut(-0.5) = %v, want 0", got)
	}
	if got := elasticOut(1.5); got != 1 {
		t.Errorf("elasticOut(1.5) = %v, want 1", got)
	}
}

func TestElasticOutOvershoots(t *testing.T) {
	// The spring peaks near t = 0.15, where the sine term hits 1.
	overshot := false
	for tt := 0.05; tt < 1.0; tt += 0.01 {
		if elasticOut(tt) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("no t in (0,1) overshoots past 1")
	}
}

func TestElasticOutSettlesLate(t *testing.T) {
	for tt := 0.7; tt < 1.0; tt += 0.01 {
		if d := math.Abs(elasticOut(tt) - 1); d > 0.3 {
			t.Errorf("elasticOut(%v) is %v from 1, want within 0.3", tt, d)
		}
	}
}

func TestConnectorTargetsByPhase(t *testing.T) {
	var q QuantumLockState
	q.Activate(0, 80)
	c := NewConnectorAnimation(80)

	// Well past the ease window inside the active phase the length has
	// settled on the ideal constant.
	q.Update(2000, 16)
	c.Step(0, &q)
	c.Step(2000, &q)
	if math.Abs(c.Length-IdealConnectorLength) > 1e-9 {
		t.Errorf("active-phase length = %v, want %v", c.Length, IdealConnectorLength)
	}

	// Exiting retargets to the original captured at activation.
	q.Update(6500, 16)
	if q.Phase != PhaseExiting {
		t.Fatalf("phase at t=6500: %v, want exiting", q.Phase)
	}
	c.Step(6500, &q)
	c.Step(7900, &q)
	if math.Abs(c.Length-80) > 1e-9 {
		t.Errorf("exiting length = %v, want 80", c.Length)
	}
}

func TestHardSetRestoresExactValue(t *testing.T) {
	c := NewConnectorAnimation(80)
	var q QuantumLockState
	q.Activate(0, 80.000000123)
	q.Update(6500, 16)

	// Mid-ease, length is somewhere between targets with float residue.
	c.Step(6500, &q)
	c.Step(6600, &q)

	c.HardSet(q.OriginalConnectorLength)
	if c.Length != 80.000000123 {
		t.Errorf("hard-set length = %v, want the exact stored original", c.Length)
	}
}
