package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"crier/internal/ingest"
	"crier/internal/msg"
	"crier/internal/msgfmt"
	"crier/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <doc.xml>",
	Short: "Validate a message document against the rendering contract",
	Long:  `Ingest a document and dry-run every channel in both output modes, reporting records that cannot render`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("catalog", "", "catalog file resolving id-keyed messages (.toml|.yaml)")
}

var (
	okLabel   = color.New(color.FgGreen).Sprint("ok")
	failLabel = color.New(color.FgRed, color.Bold).Sprint("FAIL")
)

func runCheck(cmd *cobra.Command, args []string) error {
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
	opts.DiagWriter = cmd.ErrOrStderr()

	sink := msg.NewSink()
	if err := ingest.File(args[0], sink); err != nil {
		return err
	}

	quiet := quietFlag(cmd)
	out := cmd.OutOrStdout()
	failures := 0
	for _, ch := range msg.AllChannels {
		for _, html := range []bool{false, true} {
			mode := msg.ModeText
			render := msgfmt.RenderText
			if html {
				mode = msg.ModeHTML
				render = msgfmt.RenderHTML
			}
			err := render(io.Discard, sink, ch, opts)
			if err != nil {
				failures++
				fmt.Fprintf(out, "%s  %s/%s: %v\n", failLabel, ch, mode, err)
				continue
			}
			if !quiet {
				fmt.Fprintf(out, "%s    %s/%s: %d records\n", okLabel, ch, mode, sink.Len(ch))
			}
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d render passes failed", failures, 2*len(msg.AllChannels))
	}
	if !quiet {
		fmt.Fprintf(out, "%s: %d records across %d channels\n", args[0], sink.Total(), len(msg.AllChannels))
	}
	return nil
}
