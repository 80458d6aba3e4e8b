package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"crier/internal/ingest"
	"crier/internal/msg"
	"crier/internal/msgfmt"
	"crier/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <doc.xml>...",
	Short: "Render message documents as text or HTML",
	Long:  `Ingest one or more XML message documents and render the selected channels to stdout`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("format", "text", "output format (text|html)")
	renderCmd.Flags().String("channel", "all", "channel to render (errors|warnings|notes|all)")
	renderCmd.Flags().String("catalog", "", "catalog file resolving id-keyed messages (.toml|.yaml)")
	renderCmd.Flags().String("heading", "auto", "heading behaviour for html output (auto|on|off)")
	renderCmd.Flags().Bool("show-msg-ids", false, "prepend visible output ids to html list items")
	renderCmd.Flags().String("id-prefix", "", "namespace prefix for html list item ids")
	renderCmd.Flags().Int("jobs", 0, "max parallel workers for multiple documents (0=auto)")
	renderCmd.Flags().String("out", "", "write output to a file instead of stdout")
	renderCmd.Flags().Bool("from-snapshot", false, "treat inputs as sink snapshots instead of XML documents")
	renderCmd.Flags().String("snapshot-out", "", "also save the ingested sink as a snapshot (single input only)")
}

type renderConfig struct {
	html         bool
	channels     []msg.Channel
	opts         msgfmt.Options
	fromSnapshot bool
	snapshotOut  string
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	if cfg.snapshotOut != "" && len(args) != 1 {
		return fmt.Errorf("--snapshot-out needs exactly one input document, got %d", len(args))
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Каждый документ рендерится в свой буфер, вывод — в порядке аргументов.
	results := make([]*bytes.Buffer, len(args))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			buf := new(bytes.Buffer)
			if err := renderOne(path, buf, cfg); err != nil {
				return err
			}
			results[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	for _, buf := range results {
		if _, err := io.Copy(out, buf); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// renderOne ingests a single document and renders its selected channels.
func renderOne(path string, w io.Writer, cfg renderConfig) error {
	var sink *msg.Sink
	if cfg.fromSnapshot {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open snapshot: %w", err)
		}
		sink, err = msg.ReadSnapshot(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	} else {
		sink = msg.NewSink()
		if err := ingest.File(path, sink); err != nil {
			return err
		}
	}

	if cfg.snapshotOut != "" {
		f, err := os.Create(cfg.snapshotOut)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		err = sink.WriteSnapshot(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.snapshotOut, err)
		}
	}

	for _, ch := range cfg.channels {
		var err error
		if cfg.html {
			err = msgfmt.RenderHTML(w, sink, ch, cfg.opts)
		} else {
			err = msgfmt.RenderText(w, sink, ch, cfg.opts)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func renderConfigFromFlags(cmd *cobra.Command) (renderConfig, error) {
	var cfg renderConfig

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return cfg, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "text":
	case "html":
		cfg.html = true
	default:
		return cfg, fmt.Errorf("unknown format %q (want text|html)", format)
	}

	channel, err := cmd.Flags().GetString("channel")
	if err != nil {
		return cfg, fmt.Errorf("failed to get channel flag: %w", err)
	}
	if channel == "all" {
		cfg.channels = msg.AllChannels
	} else {
		ch, err := msg.ParseChannel(channel)
		if err != nil {
			return cfg, err
		}
		cfg.channels = []msg.Channel{ch}
	}

	heading, err := cmd.Flags().GetString("heading")
	if err != nil {
		return cfg, fmt.Errorf("failed to get heading flag: %w", err)
	}
	switch heading {
	case "auto":
		cfg.opts.Heading = msgfmt.HeadingAuto
	case "on":
		cfg.opts.Heading = msgfmt.HeadingShown
	case "off":
		cfg.opts.Heading = msgfmt.HeadingHidden
	default:
		return cfg, fmt.Errorf("unknown heading mode %q (want auto|on|off)", heading)
	}

	cfg.opts.ShowMsgIDs, err = cmd.Flags().GetBool("show-msg-ids")
	if err != nil {
		return cfg, fmt.Errorf("failed to get show-msg-ids flag: %w", err)
	}
	cfg.opts.IDPrefix, err = cmd.Flags().GetString("id-prefix")
	if err != nil {
		return cfg, fmt.Errorf("failed to get id-prefix flag: %w", err)
	}

	catalogPath, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return cfg, fmt.Errorf("failed to get catalog flag: %w", err)
	}
	if catalogPath != "" {
		catalog, err := site.LoadCatalog(catalogPath)
		if err != nil {
			return cfg, err
		}
		cfg.opts.Site = catalog
	}

	cfg.fromSnapshot, err = cmd.Flags().GetBool("from-snapshot")
	if err != nil {
		return cfg, fmt.Errorf("failed to get from-snapshot flag: %w", err)
	}
	cfg.snapshotOut, err = cmd.Flags().GetString("snapshot-out")
	if err != nil {
		return cfg, fmt.Errorf("failed to get snapshot-out flag: %w", err)
	}
	return cfg, nil
}
