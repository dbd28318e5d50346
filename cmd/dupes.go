package cmd

import (
	"fmt"
	"strings"

	"langlearn/internal/transform"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

var dupesRemove bool

var dupesCmd = &cobra.Command{
	Use:   "dupes [dir]",
	Short: "Report words that appear more than once across a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		if dupesRemove {
			removed, err := transform.RemoveDuplicates(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d duplicate lines.\n", len(removed))
			return nil
		}

		dupes, err := transform.ScanDuplicates(dir)
		if err != nil {
			return err
		}
		if len(dupes) == 0 {
			fmt.Println("No duplicates found.")
			return nil
		}

		tbl := table.New("Word", "Occurrences", "Locations")
		for _, d := range dupes {
			locs := make([]string, len(d.Locations))
			for i, loc := range d.Locations {
				locs[i] = fmt.Sprintf("%s:%d", loc.File, loc.Line)
			}
			tbl.AddRow(d.Value, len(d.Locations), strings.Join(locs, ", "))
		}
		tbl.Print()
		return nil
	},
}

func init() {
	dupesCmd.Flags().BoolVar(&dupesRemove, "remove", false, "Delete duplicate lines, keeping the first occurrence in each file")
}
