package cmd

import (
	"fmt"

	"langlearn/internal/history"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-word answer statistics, hardest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve history path: %w", err)
		}
		st, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer st.Close()

		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		tbl := table.New("Word", "Attempts", "Correct", "Accuracy")
		for _, w := range stats {
			tbl.AddRow(w.Headword, w.Attempts, w.Correct, fmt.Sprintf("%.0f%%", w.Accuracy()*100))
		}
		tbl.Print()
		return nil
	},
}
