package msgfmt

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// attrToken matches one attribute token: key="quoted value", key=value, or a
// bare key. Quoted values may contain spaces; nothing else may.
var attrToken = regexp.MustCompile(`[^\s=]+(?:=(?:"[^"]*"|'[^']*'|\S*))?`)

// ParseAttrs parses a tag's inline attribute string into a map keyed by the
// case-folded attribute name. Later duplicates overwrite earlier ones. A bare
// key maps to the empty string. Empty or whitespace-only input yields an
// empty, non-nil map.
func ParseAttrs(raw string) map[string]string {
	attrs := make(map[string]string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return attrs
	}
	fold := cases.Fold()
	for _, token := range attrToken.FindAllString(raw, -1) {
		key := token
		value := ""
		if eq := strings.IndexByte(token, '='); eq >= 0 {
			key = token[:eq]
			value = unquote(strings.TrimSpace(token[eq+1:]))
		}
		key = fold.String(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		attrs[key] = value
	}
	return attrs
}

// unquote strips one layer of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '"', '\'':
			if s[len(s)-1] == s[0] {
				return s[1 : len(s)-1]
			}
		}
	}
	return s
}
