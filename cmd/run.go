package cmd

import (
	"fmt"
	"os"

	"langlearn/internal/app"
	"langlearn/internal/history"
	"langlearn/internal/screens/home"
	"langlearn/internal/screens/learn"

	"github.com/spf13/cobra"
)

// runApp opens the history store and launches the TUI at the main menu.
func runApp(cmd *cobra.Command) error {
	recorder, closeStore := openHistory(cmd)
	defer closeStore()

	return app.Run(home.New(recorder))
}

// openHistory opens the answer history store. The store is optional; when
// it cannot be opened the app runs without logging.
func openHistory(cmd *cobra.Command) (learn.Recorder, func()) {
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *history.Store
		st, err = history.Open(dbPath)
		if err == nil {
			return st, func() { st.Close() }
		}
	}
	fmt.Fprintln(os.Stderr, "Answer history unavailable:", err)
	return nil, func() {}
}
