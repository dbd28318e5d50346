package cmd

import (
	"langlearn/internal/app"
	"langlearn/internal/quiz"
	"langlearn/internal/screens/learn"
	"langlearn/internal/vocab"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn <file>",
	Short: "Start a learning session over a word file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := vocab.CheckFile(path); err != nil {
			return err
		}

		recorder, closeStore := openHistory(cmd)
		defer closeStore()

		return app.Run(learn.New(path, quiz.NewSelector(nil), recorder))
	},
}
