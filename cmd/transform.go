package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"langlearn/internal/transform"
	"langlearn/internal/vocab"

	"github.com/spf13/cobra"
)

// transformCmd builds a cobra command around a single-file transform. Every
// transform leaves the input untouched and writes a suffixed sibling file.
func transformCmd(use, short string, fn func(path string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := vocab.CheckFile(path); err != nil {
				return err
			}
			out, err := fn(path)
			if err != nil {
				return err
			}
			fmt.Println("Written to", out)
			return nil
		},
	}
}

var shuffleCmd = transformCmd("shuffle", "Randomize the order of entries", func(path string) (string, error) {
	now := uint64(time.Now().UnixNano())
	return transform.Shuffle(path, rand.New(rand.NewPCG(now, now>>32)))
})

var reverseCmd = transformCmd("reverse", "Swap the word and translation columns", transform.SwapColumns)

var formatCmd = transformCmd("format", "Normalize spacing and drop repeated entries", transform.Format)

var addsepCmd = transformCmd("addsep", "Append the column delimiter to a bare word list", transform.AddDelimiter)

var sortCmd = transformCmd("sort", "Sort entries alphabetically", transform.Sort)
