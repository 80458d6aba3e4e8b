package msgfmt

import (
	"fmt"
	"io"
	"strings"

	"crier/internal/msg"
)

// RenderText writes the channel as a bulleted plain-text block: "* " before
// the first entry, "\n* " before each subsequent one, terminated with a
// newline. An empty channel writes nothing and succeeds. Text output carries
// no heading; the label options exist for parity with the HTML renderer.
func RenderText(w io.Writer, s *msg.Sink, ch msg.Channel, opts Options) error {
	if !ch.Valid() {
		return fmt.Errorf("%w: %q", msg.ErrUnknownChannel, ch)
	}
	items, err := renderChannel(s.Items(ch), msg.ModeText, opts)
	if err != nil {
		return fmt.Errorf("render %s as text: %w", ch, err)
	}
	if len(items) == 0 {
		return nil
	}

	var b strings.Builder
	for i, item := range items {
		if i == 0 {
			b.WriteString("* ")
		} else {
			b.WriteString("\n* ")
		}
		b.WriteString(item.content)
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write %s text block: %w", ch, err)
	}
	return nil
}
