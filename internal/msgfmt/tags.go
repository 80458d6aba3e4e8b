package msgfmt

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"crier/internal/msg"
)

// tagMarker matches one [: ... :] marker. Non-greedy and (?s) so a marker
// body may span newlines.
var tagMarker = regexp.MustCompile(`(?s)\[:(.*?):\]`)

// htmlEscaper covers the four characters the substitution contract escapes.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes &, ", < and > for embedding a literal in markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// expandTags replaces every tag marker in template, alternating literal
// segments with substitution results. template has already been chosen for
// mode; m supplies parameters and the optional resolver.
func expandTags(m *msg.Message, template string, mode msg.Mode, opts Options) (string, error) {
	matches := tagMarker.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var b strings.Builder
	last := 0
	for _, loc := range matches {
		b.WriteString(template[last:loc[0]])
		last = loc[1]

		body := strings.TrimSpace(template[loc[2]:loc[3]])
		if body == "" {
			continue
		}
		name, rest := splitTagBody(body)
		out, err := substituteTag(m, name, rest, mode, opts)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	b.WriteString(template[last:])
	return b.String(), nil
}

// splitTagBody separates the case-folded tag name from the raw attribute
// remainder on the first run of whitespace.
func splitTagBody(body string) (string, string) {
	idx := strings.IndexFunc(body, unicode.IsSpace)
	if idx < 0 {
		return cases.Fold().String(body), ""
	}
	return cases.Fold().String(body[:idx]), strings.TrimSpace(body[idx:])
}

// substituteTag dispatches one tag. The built-in sub tag reads a message
// parameter; anything else is delegated to the resolver's tag capability when
// present and degrades to an empty string otherwise.
func substituteTag(m *msg.Message, name, rawAttrs string, mode msg.Mode, opts Options) (string, error) {
	attrs := ParseAttrs(rawAttrs)

	if name == "sub" {
		param := attrs["param"]
		value, ok := m.Params[param]
		if !ok {
			fmt.Fprintf(opts.diag(), "crier: sub tag: message parameter %q is not set\n", param)
			return "", nil
		}
		out := fmt.Sprint(value)
		if mode == msg.ModeHTML {
			out = EscapeHTML(out)
		}
		return out, nil
	}

	site := opts.siteFor(m)
	tp, ok := site.(msg.TagProcessor)
	if !ok {
		// Нет резолвера или он не умеет теги — пустая подстановка.
		return "", nil
	}
	out, err := tp.ProcessTag(m, msg.Tag{Name: name, Attrs: attrs}, mode)
	if err != nil {
		return "", fmt.Errorf("process tag %q: %w", name, err)
	}
	return out, nil
}
