package cmd

import (
	"langlearn/internal/history"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "langlearn",
	Short: "Terminal vocabulary trainer",
	Long:  "LangLearn is a terminal app for drilling foreign vocabulary from plain word files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history file (overrides LANGLEARN_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(addsepCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(dupesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the history path using --db flag (highest priority),
// then LANGLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultDBPath()
}
