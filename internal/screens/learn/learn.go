// Package learn implements the quiz screen: one word is presented per
// turn, the typed translation is evaluated, and mastered words can be
// removed from the backing file on the spot.
package learn

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"langlearn/internal/quiz"
	"langlearn/internal/router"
	"langlearn/internal/screen"
	"langlearn/internal/ui/components"
	"langlearn/internal/ui/layout"
	"langlearn/internal/vocab"
)

// Recorder receives every evaluated answer. *history.Store satisfies it;
// a nil Recorder disables logging.
type Recorder interface {
	RecordAnswer(ctx context.Context, headword string, correct bool) error
}

// sessionInitMsg is sent when the initial file load completes.
type sessionInitMsg struct {
	Err error
}

// LearnScreen drives a quiz.Session over one word file.
type LearnScreen struct {
	path     string
	sess     *quiz.Session
	recorder Recorder

	input  components.TextInput
	eval   *quiz.Evaluation
	status string
	errMsg string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a learn screen for the file at path. recorder may be nil.
func New(path string, selector *quiz.Selector, recorder Recorder) *LearnScreen {
	return &LearnScreen{
		path:     path,
		sess:     quiz.NewSession(path, selector),
		recorder: recorder,
		input:    components.NewTextInput("Type the translation...", 0),
	}
}

func (l *LearnScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return sessionInitMsg{Err: l.sess.Start()} },
		l.input.Init(),
	)
}

func (l *LearnScreen) Title() string {
	return "Learning Mode"
}

// File implements app.FileProvider for the header.
func (l *LearnScreen) File() string {
	return l.path
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	switch {
	case l.errMsg != "" || l.sess.Phase() == quiz.PhaseDone:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case l.eval != nil && l.eval.Correct:
		return []layout.KeyHint{
			{Key: "Y", Description: "Remove word"},
			{Key: "N", Description: "Keep word"},
		}
	case l.eval != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case l.sess.Phase() == quiz.PhaseReloadConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Reload file"},
			{Key: "N", Description: "End session"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Enter (empty)", Description: "End session"},
		}
	}
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.nextWord()
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	if l.sess.Phase() == quiz.PhasePresenting && l.eval == nil {
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Load failure or finished session: any key goes back.
	if l.errMsg != "" || l.sess.Phase() == quiz.PhaseDone {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// The initial load runs as a command; no word exists to answer until
	// its message arrives.
	if l.sess.Phase() == quiz.PhaseLoading {
		return l, nil
	}

	// Deletion prompt after a correct answer.
	if l.eval != nil && l.eval.Correct {
		switch key {
		case "y", "Y":
			l.confirmDelete(true)
		case "n", "N", "esc", "enter":
			l.confirmDelete(false)
		}
		return l.afterTurn()
	}

	// Incorrect-answer feedback: any key continues.
	if l.eval != nil {
		l.eval = nil
		return l.afterTurn()
	}

	// Reload prompt once every word is mastered.
	if l.sess.Phase() == quiz.PhaseReloadConfirm {
		switch key {
		case "y", "Y":
			if err := l.sess.ConfirmReload(true); err != nil {
				l.errMsg = err.Error()
				return l, nil
			}
			l.status = "Words reloaded."
			return l.afterTurn()
		case "n", "N", "esc":
			l.sess.ConfirmReload(false)
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return l, nil
	}

	// Presenting a word.
	switch key {
	case "esc":
		l.sess.Quit()
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		return l.submitAnswer()
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// submitAnswer evaluates the typed translation. An empty answer is the
// quit sentinel.
func (l *LearnScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := l.input.Value()
	if answer == "" {
		l.sess.Quit()
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ev := l.sess.Submit(answer)
	l.eval = &ev
	l.input.Submit(ev.Correct)

	if l.recorder != nil {
		// Best-effort: a broken history store never interrupts the quiz.
		_ = l.recorder.RecordAnswer(context.Background(), l.sess.Current().Head, ev.Correct)
	}
	return l, nil
}

// confirmDelete resolves the deletion prompt and records the outcome for
// the status line.
func (l *LearnScreen) confirmDelete(remove bool) {
	head := l.sess.Current().Head
	err := l.sess.ConfirmDelete(remove)
	switch {
	case !remove:
		l.status = ""
	case err == nil:
		l.status = fmt.Sprintf("%q removed from file.", head)
	case errors.Is(err, vocab.ErrNotFound):
		l.status = fmt.Sprintf("%q was no longer in the file.", head)
	default:
		// Save failed; the session continues with its in-memory state.
		l.status = "Could not update file: " + err.Error()
	}
	l.eval = nil
}

// afterTurn advances the screen to match the session phase.
func (l *LearnScreen) afterTurn() (screen.Screen, tea.Cmd) {
	if l.sess.Phase() == quiz.PhasePresenting {
		l.nextWord()
	}
	return l, nil
}

func (l *LearnScreen) nextWord() {
	l.sess.Next()
	l.eval = nil
	l.input = components.NewTextInput("Type the translation...", 0)
}
