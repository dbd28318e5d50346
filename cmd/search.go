package cmd

import (
	"langlearn/internal/app"
	"langlearn/internal/screens/search"
	"langlearn/internal/vocab"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <file>",
	Short: "Look up translations in a word file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := vocab.CheckFile(path); err != nil {
			return err
		}
		return app.Run(search.New(path))
	},
}
