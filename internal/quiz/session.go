package quiz

import (
	"errors"
	"fmt"

	"langlearn/internal/vocab"
)

// ErrNoRecords indicates the source file yielded no records, either at
// session start or after a reload.
var ErrNoRecords = errors.New("no words left in file")

// Phase is the current state of a quiz session.
type Phase int

const (
	// PhaseLoading is the initial state before Start has succeeded.
	PhaseLoading Phase = iota

	// PhasePresenting means a record can be selected and prompted.
	PhasePresenting

	// PhaseDeleteConfirm means the last answer was correct and the user
	// may remove the record from the backing file.
	PhaseDeleteConfirm

	// PhaseReloadConfirm means every record has been mastered and the
	// user may reload the file and start over.
	PhaseReloadConfirm

	// PhaseDone is terminal.
	PhaseDone
)

// Session is the quiz state machine. It owns its record snapshot and
// mastery tracker for the session's lifetime; the backing file is external
// and only touched through vocab.Load, vocab.Save and vocab.Remove. The
// session performs no I/O with the user itself; the caller drives it turn
// by turn, relaying prompts and answers.
type Session struct {
	path     string
	selector *Selector

	records []vocab.Record
	tracker *Tracker
	last    *vocab.Record
	current *vocab.Record
	phase   Phase
}

// NewSession creates a session over the file at path. Call Start before
// any other method.
func NewSession(path string, selector *Selector) *Session {
	return &Session{
		path:     path,
		selector: selector,
		tracker:  NewTracker(),
		phase:    PhaseLoading,
	}
}

// Start loads the initial record snapshot. Format and I/O errors are fatal
// and leave the session terminated.
func (s *Session) Start() error {
	records, err := vocab.Load(s.path)
	if err != nil {
		s.phase = PhaseDone
		return err
	}
	if len(records) == 0 {
		s.phase = PhaseDone
		return fmt.Errorf("%w: %s", ErrNoRecords, s.path)
	}
	s.records = records
	s.phase = PhasePresenting
	return nil
}

// Phase returns the current state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Current returns the record being prompted, valid after Next.
func (s *Session) Current() vocab.Record {
	if s.current == nil {
		return vocab.Record{}
	}
	return *s.current
}

// Total returns the size of the current record snapshot.
func (s *Session) Total() int {
	return len(s.records)
}

// Mastered returns the number of records answered correctly this cycle.
func (s *Session) Mastered() int {
	return s.tracker.Size()
}

// Next selects the record for this turn. Only valid in PhasePresenting.
func (s *Session) Next() vocab.Record {
	rec := s.selector.Pick(s.records, s.tracker, s.last)
	s.current = &rec
	s.last = &rec
	return rec
}

// Submit evaluates the user's answer for the current record. A correct
// answer marks the record mastered and moves to PhaseDeleteConfirm; a
// wrong one moves straight to the completion check. Before Next has
// presented a record there is nothing to evaluate and Submit is a no-op.
func (s *Session) Submit(answer string) Evaluation {
	if s.current == nil {
		return Evaluation{}
	}
	ev := Evaluate(*s.current, answer)
	if ev.Correct {
		s.tracker.Mark(*s.current)
		s.phase = PhaseDeleteConfirm
	} else {
		s.checkCompletion()
	}
	return ev
}

// ConfirmDelete resolves the deletion prompt. When remove is true the
// current record is deleted from the backing file; the file is re-read
// inside vocab.Remove so the rewrite never acts on a stale snapshot.
//
// A returned error is non-fatal: vocab.ErrNotFound means the record was
// already gone, and a save failure leaves the session running with its
// in-memory state ahead of disk. Either way the session advances.
func (s *Session) ConfirmDelete(remove bool) error {
	var err error
	if remove {
		err = vocab.Remove(s.path, *s.current)
	}
	s.checkCompletion()
	return err
}

// ConfirmReload resolves the reload prompt shown once every record is
// mastered. Declining terminates the session. Accepting re-reads the file:
// a load error or an empty result terminates with the error, otherwise the
// tracker and last-presented record are reset and the drill restarts over
// the fresh snapshot.
func (s *Session) ConfirmReload(reload bool) error {
	if !reload {
		s.phase = PhaseDone
		return nil
	}

	records, err := vocab.Load(s.path)
	if err != nil {
		s.phase = PhaseDone
		return err
	}
	if len(records) == 0 {
		s.phase = PhaseDone
		return fmt.Errorf("%w: %s", ErrNoRecords, s.path)
	}

	s.records = records
	s.tracker.Clear()
	s.last = nil
	s.current = nil
	s.checkCompletion()
	return nil
}

// Quit terminates the session from any state.
func (s *Session) Quit() {
	s.phase = PhaseDone
}

// checkCompletion moves to the reload prompt when every record in the
// snapshot has been mastered, and back to presenting otherwise.
func (s *Session) checkCompletion() {
	if s.tracker.Size() == len(s.records) {
		s.phase = PhaseReloadConfirm
	} else {
		s.phase = PhasePresenting
	}
}
