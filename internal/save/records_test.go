package save

import "testing"

// Nil-manager stores keep records in memory only; that is the degraded mode
// the game boots into when storage cannot be opened.
func TestStoreDegradedMode(t *testing.T) {
	st, err := NewStore(nil)
	if err != nil {
		t.Fatalf("NewStore(nil): %v", err)
	}

	best, err := st.RecordRun(120.5, 340)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if !best {
		t.Error("first run was not a best")
	}

	best, err = st.RecordRun(80, 100)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if best {
		t.Error("worse run reported as a best")
	}

	r := st.Records()
	if r.BestDistance != 120.5 || r.BestScore != 340 || r.TotalRuns != 2 {
		t.Errorf("records = %+v", r)
	}
}

func TestRecordRunSplitsBests(t *testing.T) {
	st, _ := NewStore(nil)
	st.RecordRun(100, 100)

	// A longer run with a worse score is still a best.
	best, _ := st.RecordRun(150, 50)
	if !best {
		t.Error("distance best not detected")
	}
	r := st.Records()
	if r.BestDistance != 150 || r.BestScore != 100 {
		t.Errorf("records = %+v", r)
	}
}
