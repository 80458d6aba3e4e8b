package msgfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"crier/internal/msg"
)

// RenderHTML writes the channel as a classed container:
//
//	<div class="messages messages-<channel>[ messages-single]">
//	  <h2>Label</h2>
//	  <ul><li>...</li><li>...</li></ul>
//	</div>
//
// The messages-single class is present exactly when the deduplicated count is
// one, and the plural label is used exactly when it exceeds one. List items
// and the surrounding <ul> carry no inter-tag whitespace, so consumers can
// count rendered messages by counting <li> occurrences. An empty channel
// writes nothing and succeeds.
func RenderHTML(w io.Writer, s *msg.Sink, ch msg.Channel, opts Options) error {
	if !ch.Valid() {
		return fmt.Errorf("%w: %q", msg.ErrUnknownChannel, ch)
	}
	items, err := renderChannel(s.Items(ch), msg.ModeHTML, opts)
	if err != nil {
		return fmt.Errorf("render %s as html: %w", ch, err)
	}
	if len(items) == 0 {
		return nil
	}

	var b strings.Builder

	b.WriteString(`<div class="messages messages-`)
	b.WriteString(ch.String())
	if len(items) == 1 {
		b.WriteString(" messages-single")
	}
	b.WriteByte('"')
	writeExtraAttrs(&b, opts.DivAttrs)
	b.WriteString(">\n")

	if opts.heading(ch) {
		singular, plural := opts.labels(ch)
		label := singular
		if len(items) > 1 {
			label = plural
		}
		b.WriteString("  <h2>")
		b.WriteString(label)
		b.WriteString("</h2>\n")
	}

	b.WriteString("  <ul")
	writeExtraAttrs(&b, opts.ListAttrs)
	b.WriteByte('>')
	for _, item := range items {
		writeListItem(&b, item, opts)
	}
	b.WriteString("</ul>\n</div>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write %s html block: %w", ch, err)
	}
	return nil
}

// writeListItem emits one <li>. A record with an id gets a deterministic
// anchor (optionally namespaced with IDPrefix) and, under ShowMsgIDs, a
// visible "[ output-id ] " marker before the content.
func writeListItem(b *strings.Builder, item renderedItem, opts Options) {
	b.WriteString("<li")
	var outputID string
	if item.record.ID != "" {
		outputID = OutputID(item.record.ID, item.record.Params)
		anchor := outputID
		if opts.IDPrefix != "" {
			anchor = opts.IDPrefix + "~" + outputID
		}
		b.WriteString(` id="`)
		b.WriteString(anchor)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if opts.ShowMsgIDs && outputID != "" {
		b.WriteString("[ ")
		b.WriteString(outputID)
		b.WriteString(" ] ")
	}
	b.WriteString(item.content)
	b.WriteString("</li>")
}

// writeExtraAttrs renders caller-supplied attributes in sorted key order for
// deterministic output. Values are written verbatim.
func writeExtraAttrs(b *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, ` %s="%s"`, k, attrs[k])
	}
}
