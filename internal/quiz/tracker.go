package quiz

import "langlearn/internal/vocab"

// Tracker is the in-memory set of records answered correctly in the
// current session. It is created empty at session start, cleared when a
// reload cycle begins, and never persisted.
type Tracker struct {
	seen map[vocab.Record]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[vocab.Record]struct{})}
}

// Mark records rec as mastered. Marking the same record twice is a no-op.
func (t *Tracker) Mark(rec vocab.Record) {
	t.seen[rec] = struct{}{}
}

// Contains reports whether rec has been mastered this session.
func (t *Tracker) Contains(rec vocab.Record) bool {
	_, ok := t.seen[rec]
	return ok
}

// Clear empties the tracker.
func (t *Tracker) Clear() {
	t.seen = make(map[vocab.Record]struct{})
}

// Size returns the number of mastered records.
func (t *Tracker) Size() int {
	return len(t.seen)
}
