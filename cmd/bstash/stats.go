package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print bookmark statistics",
	Long: `Print the total bookmark count, the number of distinct tags, and a
per-tag count, sorted by tag.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, s, err := openCollection()
		if err != nil {
			return err
		}
		renderStats(os.Stdout, s.Stats())
		return nil
	},
}
