package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Print distinct tags, one per line, sorted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, s, err := openCollection()
		if err != nil {
			return err
		}
		renderLines(os.Stdout, s.Tags())
		return nil
	},
}
