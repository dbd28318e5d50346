// Package search implements the lookup screen: type a word, see its
// translations from the loaded file. Headwords that list alternatives
// separated by ';' match on any one of them.
package search

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"langlearn/internal/router"
	"langlearn/internal/screen"
	"langlearn/internal/ui/components"
	"langlearn/internal/ui/layout"
	"langlearn/internal/ui/theme"
	"langlearn/internal/vocab"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// SearchScreen looks up translations in one word file. The record set is
// re-read on every query so edits made outside the program are picked up.
type SearchScreen struct {
	path    string
	input   components.TextInput
	query   string
	results []vocab.Record
	errMsg  string
}

var _ screen.Screen = (*SearchScreen)(nil)
var _ screen.KeyHintProvider = (*SearchScreen)(nil)

// New creates a search screen over the file at path.
func New(path string) *SearchScreen {
	return &SearchScreen{
		path:  path,
		input: components.NewTextInput("Word to look up...", 0),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Title() string {
	return "Search Mode"
}

// File implements app.FileProvider for the header.
func (s *SearchScreen) File() string {
	return s.path
}

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Search"},
		{Key: "Enter (empty)", Description: "Back"},
	}
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s.search()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// search runs the lookup for the typed word. An empty query exits.
func (s *SearchScreen) search() (screen.Screen, tea.Cmd) {
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	s.query = query
	s.results, s.errMsg = nil, ""

	records, err := vocab.Load(s.path)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.results = Find(records, query)
	s.input.Reset()
	return s, nil
}

// Find returns every record whose headword, or any ';'-separated headword
// alternative, equals query under case folding.
func Find(records []vocab.Record, query string) []vocab.Record {
	want := fold.String(strings.TrimSpace(query))

	var out []vocab.Record
	for _, rec := range records {
		for _, head := range strings.Split(rec.Head, ";") {
			if fold.String(strings.TrimSpace(head)) == want {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func (s *SearchScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  " + theme.Body.Render("Look up: ") + s.input.View() + "\n")

	switch {
	case s.errMsg != "":
		b.WriteString("\n  " + theme.Incorrect.Render(s.errMsg) + "\n")
	case s.query == "":
	case len(s.results) == 0:
		b.WriteString("\n  " + theme.Hint.Render("No entry for "+s.query+".") + "\n")
	default:
		b.WriteString("\n")
		for _, rec := range s.results {
			b.WriteString("  " + theme.Body.Render(rec.Head+": ") +
				theme.Translation.Render(strings.Join(rec.Alternatives(), "; ")) + "\n")
		}
	}
	return b.String()
}
