package game

import "testing"

func TestLetterSetCompletion(t *testing.T) {
	var l LetterSet
	for i := 0; i < LetterCount-1; i++ {
		if l.Collect(i) {
			t.Fatalf("set complete after %d letters", i+1)
		}
	}
	if !l.Collect(LetterCount - 1) {
		t.Fatal("final letter did not complete the set")
	}
	if !l.Complete() || l.Count() != LetterCount {
		t.Errorf("set state after completion: count=%d", l.Count())
	}
}

func TestLetterSetDuplicatesAndBounds(t *testing.T) {
	var l LetterSet
	l.Collect(0)
	if l.Collect(0) {
		t.Error("duplicate letter completed the set")
	}
	if l.Count() != 1 {
		t.Errorf("duplicate changed the count: %d", l.Count())
	}
	if l.Collect(-1) || l.Collect(LetterCount) {
		t.Error("out-of-range letter accepted")
	}
}

func TestLetterSetMissing(t *testing.T) {
	var l LetterSet
	l.Collect(1)
	missing := l.Missing()
	if len(missing) != LetterCount-1 {
		t.Fatalf("missing = %v", missing)
	}
	for _, idx := range missing {
		if idx == 1 {
			t.Errorf("collected letter reported missing: %v", missing)
		}
	}
	l.Reset()
	if len(l.Missing()) != LetterCount {
		t.Error("reset did not empty the set")
	}
}

func TestEventLogRing(t *testing.T) {
	l := NewEventLog(3)
	l.Add("one", MsgInfo)
	l.Add("two", MsgBonus)
	if got := l.Recent(5); len(got) != 2 || got[0].Text != "one" {
		t.Fatalf("Recent = %v", got)
	}

	l.Add("three", MsgWarning)
	l.Add("four", MsgCritical) // evicts "one"
	got := l.Recent(3)
	if len(got) != 3 || got[0].Text != "two" || got[2].Text != "four" {
		t.Errorf("ring contents = %v", got)
	}
	if got[2].Priority != MsgCritical {
		t.Errorf("priority lost in the ring: %v", got[2])
	}

	l.Clear()
	if l.Len() != 0 || len(l.Recent(3)) != 0 {
		t.Error("clear left entries behind")
	}
}
