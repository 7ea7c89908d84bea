package game

// MsgPriority controls the color of an entry in the HUD event log.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // gray
	MsgBonus                       // cyan, mode starts and pickups
	MsgWarning                     // yellow
	MsgCritical                    // red, punitive ends and game over
)

// Message is a single entry in the event log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// EventLog is a fixed-capacity ring of the most recent messages. Entries are
// single HUD lines; callers keep them short.
type EventLog struct {
	entries []Message
	head    int // index of the oldest entry
	count   int
}

// NewEventLog creates a log that keeps the most recent size messages.
func NewEventLog(size int) *EventLog {
	return &EventLog{entries: make([]Message, size)}
}

// Add appends a message, overwriting the oldest when the ring is full.
func (l *EventLog) Add(text string, priority MsgPriority) {
	if len(l.entries) == 0 {
		return
	}
	idx := (l.head + l.count) % len(l.entries)
	l.entries[idx] = Message{Text: text, Priority: priority}
	if l.count < len(l.entries) {
		l.count++
	} else {
		l.head = (l.head + 1) % len(l.entries)
	}
}

// Recent returns up to n messages, oldest first among those returned.
func (l *EventLog) Recent(n int) []Message {
	if n > l.count {
		n = l.count
	}
	out := make([]Message, 0, n)
	start := l.count - n
	for i := start; i < l.count; i++ {
		out = append(out, l.entries[(l.head+i)%len(l.entries)])
	}
	return out
}

// Len returns the number of stored messages.
func (l *EventLog) Len() int {
	return l.count
}

// Clear drops all messages (new run).
func (l *EventLog) Clear() {
	l.head = 0
	l.count = 0
}
