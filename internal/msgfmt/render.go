package msgfmt

import (
	"fmt"

	"crier/internal/msg"
)

// renderedItem pairs one deduplicated rendered string with the record that
// produced its first occurrence.
type renderedItem struct {
	content string
	record  *msg.Message
}

// resolveTemplate picks the display template for one record, in the priority
// order of the rendering contract: resolver lookup by id, the template native
// to the mode, the opposite template HTML-escaped as a safe literal, and
// finally a contract-violation error carrying the full record dump.
//
// The cross-mode fallback escapes before tag expansion, mirroring the
// text-into-html direction; quoted tag attributes inside a fallback template
// therefore need their unquoted form.
func resolveTemplate(m *msg.Message, mode msg.Mode, opts Options) (string, error) {
	site := opts.siteFor(m)

	switch mode {
	case msg.ModeText:
		if site != nil && m.ID != "" {
			text, err := site.MessageText(m)
			if err != nil {
				return "", fmt.Errorf("resolve message %q: %w", m.ID, err)
			}
			return text, nil
		}
		if m.Text != "" {
			return m.Text, nil
		}
		if m.HTML != "" {
			return EscapeHTML(m.HTML), nil
		}
	case msg.ModeHTML:
		if site != nil && m.ID != "" {
			html, err := site.MessageHTML(m)
			if err != nil {
				return "", fmt.Errorf("resolve message %q: %w", m.ID, err)
			}
			return html, nil
		}
		if m.HTML != "" {
			return m.HTML, nil
		}
		if m.Text != "" {
			return EscapeHTML(m.Text), nil
		}
	}
	return "", fmt.Errorf("%w: %s", msg.ErrNoContent, m.Dump())
}

// renderChannel resolves, expands, and deduplicates every record. The first
// occurrence of each distinct rendered string wins and keeps its record;
// relative order of first occurrences is preserved.
func renderChannel(items []*msg.Message, mode msg.Mode, opts Options) ([]renderedItem, error) {
	rendered := make([]renderedItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, m := range items {
		template, err := resolveTemplate(m, mode, opts)
		if err != nil {
			return nil, err
		}
		content, err := expandTags(m, template, mode, opts)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[content]; ok {
			continue
		}
		seen[content] = struct{}{}
		rendered = append(rendered, renderedItem{content: content, record: m})
	}
	return rendered, nil
}
