package quiz

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"langlearn/internal/vocab"
)

func writeWordFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func startSession(t *testing.T, path string) *Session {
	t.Helper()
	s := NewSession(path, NewSelector(rand.New(rand.NewPCG(3, 5))))
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestSessionSingleWordToReloadPrompt(t *testing.T) {
	path := writeWordFile(t, "words.txt", "fox: lis\n")
	s := startSession(t, path)

	rec := s.Next()
	if rec.Head != "fox" {
		t.Fatalf("Next().Head = %q, want %q", rec.Head, "fox")
	}

	ev := s.Submit(" LIS ")
	if !ev.Correct {
		t.Fatal("expected correct answer")
	}
	if s.Phase() != PhaseDeleteConfirm {
		t.Fatalf("Phase = %v, want PhaseDeleteConfirm", s.Phase())
	}

	if err := s.ConfirmDelete(false); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if s.Phase() != PhaseReloadConfirm {
		t.Errorf("Phase = %v, want PhaseReloadConfirm after full completion", s.Phase())
	}
}

func TestSessionTwoWordsCompletion(t *testing.T) {
	path := writeWordFile(t, "words.txt", "a: x\nb: y\n")
	s := startSession(t, path)

	for s.Phase() == PhasePresenting {
		rec := s.Next()
		if ev := s.Submit(rec.Translations); !ev.Correct {
			t.Fatalf("answer %q for %q judged wrong", rec.Translations, rec.Head)
		}
		if err := s.ConfirmDelete(false); err != nil {
			t.Fatalf("ConfirmDelete: %v", err)
		}
	}

	if s.Mastered() != 2 || s.Total() != 2 {
		t.Errorf("Mastered/Total = %d/%d, want 2/2", s.Mastered(), s.Total())
	}
	if s.Phase() != PhaseReloadConfirm {
		t.Errorf("Phase = %v, want PhaseReloadConfirm", s.Phase())
	}
}

func TestSessionWrongAnswerKeepsPresenting(t *testing.T) {
	path := writeWordFile(t, "words.txt", "a: x\nb: y\n")
	s := startSession(t, path)

	s.Next()
	ev := s.Submit("zzz")
	if ev.Correct {
		t.Fatal("expected wrong answer")
	}
	if s.Phase() != PhasePresenting {
		t.Errorf("Phase = %v, want PhasePresenting after wrong answer", s.Phase())
	}
	if s.Mastered() != 0 {
		t.Errorf("Mastered = %d, want 0", s.Mastered())
	}
}

func TestSessionSubmitBeforeNextIsNoOp(t *testing.T) {
	path := writeWordFile(t, "words.txt", "fox: lis\n")
	s := startSession(t, path)

	ev := s.Submit("lis")
	if ev.Correct {
		t.Fatal("no record has been presented; nothing can be correct")
	}
	if s.Phase() != PhasePresenting {
		t.Errorf("Phase = %v, want PhasePresenting", s.Phase())
	}
	if s.Mastered() != 0 {
		t.Errorf("Mastered = %d, want 0", s.Mastered())
	}
}

func TestSessionDeclineReloadTerminates(t *testing.T) {
	path := writeWordFile(t, "words.txt", "fox: lis\n")
	s := startSession(t, path)

	s.Next()
	s.Submit("lis")
	s.ConfirmDelete(false)

	if err := s.ConfirmReload(false); err != nil {
		t.Fatalf("ConfirmReload: %v", err)
	}
	if s.Phase() != PhaseDone {
		t.Errorf("Phase = %v, want PhaseDone after declined reload", s.Phase())
	}
}

func TestSessionAcceptReloadRestarts(t *testing.T) {
	path := writeWordFile(t, "words.txt", "fox: lis\n")
	s := startSession(t, path)

	s.Next()
	s.Submit("lis")
	s.ConfirmDelete(false)

	if err := s.ConfirmReload(true); err != nil {
		t.Fatalf("ConfirmReload: %v", err)
	}
	if s.Phase() != PhasePresenting {
		t.Fatalf("Phase = %v, want PhasePresenting after reload", s.Phase())
	}
	if s.Mastered() != 0 {
		t.Errorf("Mastered = %d, want 0 after reload", s.Mastered())
	}

	// The same word can be presented again immediately after a reload.
	rec := s.Next()
	if rec.Head != "fox" {
		t.Errorf("Next().Head = %q, want %q", rec.Head, "fox")
	}
}

func TestSessionDeleteRemovesFromFile(t *testing.T) {
	path := writeWordFile(t, "words.txt", "fox: lis\ndog: pies\n")
	s := startSession(t, path)

	// Answer until fox comes up, then delete it.
	for {
		rec := s.Next()
		s.Submit(rec.Translations)
		if rec.Head == "fox" {
			break
		}
		s.ConfirmDelete(false)
	}
	if err := s.ConfirmDelete(true); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}

	records, err := vocab.Load(path)
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if len(records) != 1 || records[0].Head != "dog" {
		t.Errorf("file after delete = %v, want only dog", records)
	}
}

func TestSessionDeleteNotFoundIsNonFatal(t *testing.T) {
	path := writeWordFile(t, "words.txt", "fox: lis\ndog: pies\n")
	s := startSession(t, path)

	for {
		rec := s.Next()
		s.Submit(rec.Translations)
		if rec.Head == "fox" {
			break
		}
		s.ConfirmDelete(false)
	}

	// Someone edited the file while the prompt was open.
	if err := os.WriteFile(path, []byte("dog: pies\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := s.ConfirmDelete(true)
	if !errors.Is(err, vocab.ErrNotFound) {
		t.Fatalf("ConfirmDelete = %v, want ErrNotFound", err)
	}
	if s.Phase() == PhaseDone {
		t.Error("not-found during delete must not terminate the session")
	}
}

func TestSessionStartFailsOnFormatError(t *testing.T) {
	path := writeWordFile(t, "words.txt", "cat|meow\n")
	s := NewSession(path, NewSelector(nil))

	err := s.Start()
	var ferr *vocab.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Start = %v, want *vocab.FormatError", err)
	}
	if s.Phase() != PhaseDone {
		t.Errorf("Phase = %v, want PhaseDone after failed load", s.Phase())
	}
}

func TestSessionReloadEmptyFileTerminates(t *testing.T) {
	path := writeWordFile(t, "words.txt", "fox: lis\n")
	s := startSession(t, path)

	s.Next()
	s.Submit("lis")
	s.ConfirmDelete(false)

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	err := s.ConfirmReload(true)
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("ConfirmReload = %v, want ErrNoRecords", err)
	}
	if s.Phase() != PhaseDone {
		t.Errorf("Phase = %v, want PhaseDone", s.Phase())
	}
}
