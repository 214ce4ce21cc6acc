package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(titlesCmd)
}

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Print distinct titles, one per line, sorted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, s, err := openCollection()
		if err != nil {
			return err
		}
		renderLines(os.Stdout, s.Titles())
		return nil
	},
}
