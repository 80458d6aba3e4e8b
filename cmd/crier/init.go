package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [flags] [path]",
	Short: "Write a starter message catalog",
	Long:  `Create a catalog TOML file with example entries to resolve id-keyed messages against`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing catalog file")
}

const starterCatalog = `# crier message catalog.
# Each entry resolves a message id; provide text, html, or markdown.

[messages.record-missing]
text = "The record [: sub param=name :] was not found."
html = "The record <strong>[: sub param=name :]</strong> was not found."

[messages.maintenance]
markdown = "The service is **temporarily unavailable** for maintenance."
`

func runInit(cmd *cobra.Command, args []string) error {
	path := "crier.toml"
	if len(args) == 1 {
		path = args[0]
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(starterCatalog), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if !quietFlag(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}
