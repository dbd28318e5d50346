// Package pathprompt implements a small screen that asks for a file or
// directory path and hands it to an action. Transform actions report a
// status line and stay on the screen so several files can be processed in
// a row; mode actions replace the prompt with their own screen.
package pathprompt

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"langlearn/internal/router"
	"langlearn/internal/screen"
	"langlearn/internal/ui/components"
	"langlearn/internal/ui/layout"
	"langlearn/internal/ui/theme"
)

// Action runs against the entered path. It returns the screen to replace
// the prompt with (or nil to stay), and a status line to display.
type Action func(path string) (screen.Screen, string, error)

// PathPrompt asks for a path and runs an action on it.
type PathPrompt struct {
	title  string
	label  string
	action Action
	input  components.TextInput
	status string
	failed bool
}

var _ screen.Screen = (*PathPrompt)(nil)
var _ screen.KeyHintProvider = (*PathPrompt)(nil)

// New creates a prompt titled title, asking with label, running action on
// submit.
func New(title, label string, action Action) *PathPrompt {
	return &PathPrompt{
		title:  title,
		label:  label,
		action: action,
		input:  components.NewTextInput("path...", 0),
	}
}

func (p *PathPrompt) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PathPrompt) Title() string {
	return p.title
}

func (p *PathPrompt) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Run"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PathPrompt) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return p.submit()
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PathPrompt) submit() (screen.Screen, tea.Cmd) {
	path := p.input.Value()
	if path == "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	next, status, err := p.action(path)
	if err != nil {
		p.status = err.Error()
		p.failed = true
		return p, nil
	}
	if next != nil {
		return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	p.status = status
	p.failed = false
	p.input.Reset()
	return p, nil
}

func (p *PathPrompt) View(width, height int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("  " + p.label)

	line := "  " + p.input.View()

	out := "\n" + label + "\n\n" + line
	if p.status != "" {
		style := theme.Correct
		if p.failed {
			style = theme.Incorrect
		}
		out += "\n\n  " + style.Render(p.status)
	}
	return out
}
