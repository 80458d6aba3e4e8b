package msg

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects the rendering flavour a template is resolved for.
type Mode uint8

const (
	// ModeText renders plain text.
	ModeText Mode = iota
	// ModeHTML renders markup.
	ModeHTML
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeHTML:
		return "html"
	}
	return "unknown"
}

// Tag describes one [: name attr=value :] marker handed to a resolver.
type Tag struct {
	Name  string
	Attrs map[string]string
}

// Site is the resolver contract for id-keyed message lookups. Lookup errors
// for unknown ids are propagated out of the enclosing render call, never
// masked.
type Site interface {
	MessageText(m *Message) (string, error)
	MessageHTML(m *Message) (string, error)
}

// TagProcessor is the optional resolver capability for custom tag markers.
// Resolvers that do not implement it simply contribute empty substitutions;
// detection happens via type assertion at render time. Return values are used
// verbatim, so implementations escape for the requested mode themselves.
type TagProcessor interface {
	ProcessTag(m *Message, tag Tag, mode Mode) (string, error)
}

// Message is one accumulated record. All fields are optional; see the package
// documentation for the render-time contract.
type Message struct {
	Text   string
	HTML   string
	ID     string
	Site   Site
	Params map[string]any
}

// New returns a record with a plain-text template.
func New(text string) *Message {
	return &Message{Text: text}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) *Message {
	return &Message{Text: fmt.Sprintf(format, args...)}
}

// NewHTML returns a record with an HTML template.
func NewHTML(html string) *Message {
	return &Message{HTML: html}
}

// NewID returns a record keyed into a resolver catalog.
func NewID(id string) *Message {
	return &Message{ID: id}
}

// WithParam sets one parameter and returns the record for chaining.
func (m *Message) WithParam(key string, value any) *Message {
	if m.Params == nil {
		m.Params = make(map[string]any, 4)
	}
	m.Params[key] = value
	return m
}

// WithSite attaches a per-record resolver override.
func (m *Message) WithSite(s Site) *Message {
	m.Site = s
	return m
}

// WithHTML sets the HTML template alongside an existing text one.
func (m *Message) WithHTML(html string) *Message {
	m.HTML = html
	return m
}

// Renderable reports whether the record carries at least one displayable
// source. A record with an ID still needs a resolver at render time, so this
// is a necessary, not sufficient, condition.
func (m *Message) Renderable() bool {
	return m.Text != "" || m.HTML != "" || m.ID != ""
}

// Dump renders the record for contract-violation diagnostics. Params are
// emitted in sorted key order so the dump is stable.
func (m *Message) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "text=%q html=%q id=%q", m.Text, m.HTML, m.ID)
	if m.Site != nil {
		b.WriteString(" site=present")
	}
	if len(m.Params) > 0 {
		keys := make([]string, 0, len(m.Params))
		for k := range m.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" params={")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, m.Params[k])
		}
		b.WriteByte('}')
	}
	return b.String()
}
