package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-shelton/BookmarkStash/internal/config"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show each configuration value and where it came from: the --file
flag, a BSTASH_* environment variable, the config file, or the
built-in default.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigPath()
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func runConfig(cmd *cobra.Command, args []string) error {
	res, err := resolveConfig()
	if err != nil {
		return err
	}

	fmt.Printf("file: %s (%s)\n", res.Config.File, res.Sources["file"])
	fmt.Printf("browser: %s (%s)\n", orDefault(res.Config.Browser, "system default"), res.Sources["browser"])
	fmt.Printf("export_dir: %s (%s)\n", res.Config.ExportDir, res.Sources["export_dir"])

	if res.ConfigPath != "" {
		fmt.Printf("config file: %s\n", res.ConfigPath)
	} else {
		fmt.Printf("config file: %s (not present, run 'bstash config init')\n", config.DefaultConfigPath())
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
