package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexander-shelton/BookmarkStash/internal/exporter"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export bookmarks to browser-importable HTML",
	Long: `Export all bookmarks as Netscape-format HTML, grouped into folders by
tag. Without a path the file lands in the configured export directory
as bookmarks-export-YYYY-MM-DD.html.

Examples:
  bstash export
  bstash export ~/backup/bookmarks.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	res, _, s, err := openCollection()
	if err != nil {
		return err
	}

	outputPath := exporter.DefaultExportPath(res.Config.ExportDir)
	if len(args) > 0 {
		outputPath = args[0]
	}

	html := exporter.ExportHTML(s.Bookmarks())
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	fmt.Printf("Exported %d bookmark(s) to %s\n", s.Len(), outputPath)
	return nil
}
