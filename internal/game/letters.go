package game

// OverdriveWord is the letter set that arms overdrive when completed.
const OverdriveWord = "OVER"

// LetterCount is the number of letters in the overdrive word.
const LetterCount = len(OverdriveWord)

// LetterSet tracks which overdrive letters the rider is carrying.
// Letters stack nowhere: each slot is either collected or not.
type LetterSet struct {
	collected [LetterCount]bool
}

// Collect marks a letter as carried. Returns true when this pickup completed
// the whole word. Collecting a duplicate is a no-op that never completes.
func (l *LetterSet) Collect(idx int) bool {
	if idx < 0 || idx >= LetterCount {
		return false
	}
	if l.collected[idx] {
		return false
	}
	l.collected[idx] = true
	return l.Complete()
}

// Has reports whether a letter slot is filled.
func (l *LetterSet) Has(idx int) bool {
	return idx >= 0 && idx < LetterCount && l.collected[idx]
}

// Complete reports whether every letter is carried.
func (l *LetterSet) Complete() bool {
	for _, c := range l.collected {
		if !c {
			return false
		}
	}
	return true
}

// Count returns the number of carried letters.
func (l *LetterSet) Count() int {
	n := 0
	for _, c := range l.collected {
		if c {
			n++
		}
	}
	return n
}

// Missing returns the indices of letters still to find, in word order.
func (l *LetterSet) Missing() []int {
	var idx []int
	for i, c := range l.collected {
		if !c {
			idx = append(idx, i)
		}
	}
	return idx
}

// Reset empties the set (overdrive armed, or new run).
func (l *LetterSet) Reset() {
	*l = LetterSet{}
}

// LetterGlyph returns the display character for a letter slot.
func LetterGlyph(idx int) byte {
	if idx < 0 || idx >= LetterCount {
		return '?'
	}
	return OverdriveWord[idx]
}
