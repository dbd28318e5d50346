// Package home implements the main menu screen.
package home

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"langlearn/internal/quiz"
	"langlearn/internal/router"
	"langlearn/internal/screen"
	"langlearn/internal/screens/learn"
	"langlearn/internal/screens/pathprompt"
	"langlearn/internal/screens/search"
	"langlearn/internal/transform"
	"langlearn/internal/ui/components"
	"langlearn/internal/ui/theme"
	"langlearn/internal/vocab"
)

// HomeScreen is the entry menu. Every mode and file transform starts here.
type HomeScreen struct {
	menu     components.Menu
	recorder learn.Recorder
	rnd      *rand.Rand
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. recorder may be nil when answer history is
// unavailable.
func New(recorder learn.Recorder) *HomeScreen {
	now := uint64(time.Now().UnixNano())
	h := &HomeScreen{
		recorder: recorder,
		rnd:      rand.New(rand.NewPCG(now, now>>32)),
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "Learning mode", Action: h.push("Learning Mode", "Path to word file:", h.openLearn)},
		{Label: "Search mode", Action: h.push("Search Mode", "Path to word file:", h.openSearch)},
		{Label: "Shuffle file", Action: h.push("Shuffle File", "Path to word file:", transformAction(func(p string) (string, error) {
			return transform.Shuffle(p, h.rnd)
		}))},
		{Label: "Swap columns", Action: h.push("Swap Columns", "Path to word file:", transformAction(transform.SwapColumns))},
		{Label: "Format file", Action: h.push("Format File", "Path to word file:", transformAction(transform.Format))},
		{Label: "Add delimiter", Action: h.push("Add Delimiter", "Path to word list:", transformAction(transform.AddDelimiter))},
		{Label: "Sort file", Action: h.push("Sort File", "Path to word file:", transformAction(transform.Sort))},
		{Label: "Find duplicates", Action: h.push("Find Duplicates", "Directory with word files:", scanDupes)},
		{Label: "Remove duplicates", Action: h.push("Remove Duplicates", "Directory with word files:", removeDupes)},
		{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	}
}

// push returns a menu action that opens a path prompt running action.
func (h *HomeScreen) push(title, label string, action pathprompt.Action) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: pathprompt.New(title, label, action)}
		}
	}
}

func (h *HomeScreen) openLearn(path string) (screen.Screen, string, error) {
	if err := vocab.CheckFile(path); err != nil {
		return nil, "", err
	}
	return learn.New(path, quiz.NewSelector(nil), h.recorder), "", nil
}

func (h *HomeScreen) openSearch(path string) (screen.Screen, string, error) {
	if err := vocab.CheckFile(path); err != nil {
		return nil, "", err
	}
	return search.New(path), "", nil
}

// transformAction adapts a file transform to a path prompt action.
func transformAction(fn func(path string) (string, error)) pathprompt.Action {
	return func(path string) (screen.Screen, string, error) {
		if err := vocab.CheckFile(path); err != nil {
			return nil, "", err
		}
		out, err := fn(path)
		if err != nil {
			return nil, "", err
		}
		return nil, "Written to " + out, nil
	}
}

func scanDupes(dir string) (screen.Screen, string, error) {
	dupes, err := transform.ScanDuplicates(dir)
	if err != nil {
		return nil, "", err
	}
	if len(dupes) == 0 {
		return nil, "No duplicates found.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d duplicated words:\n", len(dupes))
	for _, d := range dupes {
		locs := make([]string, len(d.Locations))
		for i, loc := range d.Locations {
			locs[i] = fmt.Sprintf("%s:%d", loc.File, loc.Line)
		}
		fmt.Fprintf(&b, "  %s  (%s)\n", d.Value, strings.Join(locs, ", "))
	}
	return nil, strings.TrimRight(b.String(), "\n"), nil
}

func removeDupes(dir string) (screen.Screen, string, error) {
	removed, err := transform.RemoveDuplicates(dir)
	if err != nil {
		return nil, "", err
	}
	if len(removed) == 0 {
		return nil, "No duplicates found.", nil
	}
	return nil, fmt.Sprintf("Removed %d duplicate lines.", len(removed)), nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Main Menu"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + theme.Subtitle.Render("What would you like to do?") + "\n\n")
	b.WriteString(h.menu.View())
	return b.String()
}
