package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"langlearn/internal/quiz"
	"langlearn/internal/ui/theme"
)

func (l *LearnScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case l.errMsg != "":
		b.WriteString("  " + theme.Incorrect.Render(l.errMsg) + "\n")

	case l.sess.Phase() == quiz.PhaseDone:
		b.WriteString("  " + theme.Body.Render("Session finished.") + "\n")

	case l.eval != nil:
		l.renderFeedback(&b)

	case l.sess.Phase() == quiz.PhaseReloadConfirm:
		b.WriteString("  " + theme.Correct.Render("All words translated correctly!") + "\n\n")
		b.WriteString("  " + theme.Body.Render("Reload the file and keep going? (y/n)") + "\n")

	default:
		l.renderPrompt(&b)
	}

	return b.String()
}

func (l *LearnScreen) renderPrompt(b *strings.Builder) {
	progress := fmt.Sprintf("%d/%d mastered", l.sess.Mastered(), l.sess.Total())
	b.WriteString("  " + theme.Hint.Render(progress) + "\n\n")

	word := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(l.sess.Current().Head)
	b.WriteString("  " + theme.Body.Render("Translate: ") + word + "\n\n")
	b.WriteString("  " + l.input.View() + "\n")

	if l.status != "" {
		b.WriteString("\n  " + theme.Hint.Render(l.status) + "\n")
	}
}

func (l *LearnScreen) renderFeedback(b *strings.Builder) {
	if l.eval.Correct {
		b.WriteString("  " + theme.Correct.Render("Correct!") + "\n")
		if len(l.eval.Others) > 0 {
			b.WriteString("\n  " + theme.Body.Render("Also accepted: ") +
				theme.Translation.Render(strings.Join(l.eval.Others, "; ")) + "\n")
		}
		b.WriteString("\n  " + theme.Body.Render(
			fmt.Sprintf("Remove %q from the file? (y/n)", l.sess.Current().Head)) + "\n")
		return
	}

	b.WriteString("  " + theme.Incorrect.Render("Incorrect.") + "\n\n")
	b.WriteString("  " + theme.Body.Render("Accepted answers: ") +
		theme.Translation.Render(strings.Join(l.eval.All, "; ")) + "\n\n")
	b.WriteString("  " + theme.Hint.Render("Press any key to continue") + "\n")
}
