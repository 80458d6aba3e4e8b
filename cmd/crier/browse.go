package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"crier/internal/ingest"
	"crier/internal/msg"
	"crier/internal/msgfmt"
	"crier/internal/site"
	"crier/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [flags] <doc.xml>",
	Short: "Browse a message document interactively",
	Long:  `Ingest a document and page through each channel's rendered form in the terminal`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().String("catalog", "", "catalog file resolving id-keyed messages (.toml|.yaml)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	var opts msgfmt.Options
	catalogPath, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return fmt.Errorf("failed to get catalog flag: %w", err)
	}
	if catalogPath != "" {
		catalog, err := site.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		opts.Site = catalog
	}

	sink := msg.NewSink()
	if err := ingest.File(args[0], sink); err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewBrowserModel(sink, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
