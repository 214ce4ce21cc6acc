package main

import (
	"github.com/spf13/cobra"

	"github.com/alexander-shelton/BookmarkStash/internal/config"
	"github.com/alexander-shelton/BookmarkStash/internal/storage"
	"github.com/alexander-shelton/BookmarkStash/internal/store"
)

var flagFile string

var rootCmd = &cobra.Command{
	Use:   "bstash",
	Short: "Personal bookmark manager",
	Long: `bstash is a personal bookmark manager backed by a flat JSON file.

Bookmarks are {url, title, tag} records. Commands print line-oriented
text (Title: / URL: / Tag: blocks) so menu launchers and shell scripts
can pipe and filter the output.

The backing file defaults to ~/.config/bstash/bookmarks.json and can be
overridden with --file, the BSTASH_FILE environment variable, or the
config file (in that order of precedence).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "bookmark file (overrides config file and BSTASH_FILE)")
	rootCmd.Version = Version
}

// SourceFlag is the provenance label for values set via --file.
const SourceFlag = "flag"

// resolveConfig loads the configuration and applies the --file flag,
// which beats every other source.
func resolveConfig() (*config.Result, error) {
	res, err := config.Load("")
	if err != nil {
		return nil, err
	}
	if flagFile != "" {
		res.Config.File = flagFile
		res.Sources["file"] = SourceFlag
	}
	return res, nil
}

// openCollection resolves the configuration once and loads the bookmark
// collection from the resolved backing file. The returned storage saves
// back to the same file.
func openCollection() (*config.Result, *storage.JSONStorage, *store.Store, error) {
	res, err := resolveConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	jsonStorage := storage.NewJSONStorage(res.Config.File)
	bookmarks, err := jsonStorage.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	return res, jsonStorage, store.New(bookmarks), nil
}
