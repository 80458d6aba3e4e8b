// Package site provides catalog-backed implementations of the msg.Site
// resolver contract. A catalog maps message ids onto text, HTML, or markdown
// bodies loaded from TOML or YAML files; markdown bodies are rendered to HTML
// on demand.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"crier/internal/msg"
	"crier/internal/msgfmt"
)

// ErrUnknownID indicates an id the catalog has no entry for. The renderers
// propagate it out of the enclosing render call.
var ErrUnknownID = errors.New("message id not in catalog")

// Entry is one catalog record. At least one body must be set. Markdown, when
// present, backs both modes: the raw source for text, the rendered form for
// HTML.
type Entry struct {
	Text     string `toml:"text" yaml:"text"`
	HTML     string `toml:"html" yaml:"html"`
	Markdown string `toml:"markdown" yaml:"markdown"`
}

// Catalog resolves message ids against a static entry table. It implements
// msg.Site and the optional msg.TagProcessor capability (the "msg" tag
// inlines another catalog entry).
type Catalog struct {
	entries map[string]Entry
	md      goldmark.Markdown
}

// NewCatalog builds a catalog from an explicit entry table.
func NewCatalog(entries map[string]Entry) *Catalog {
	return &Catalog{entries: entries, md: goldmark.New()}
}

// catalogFile is the on-disk shape shared by the TOML and YAML loaders:
//
//	[messages.some-id]
//	text = "..."
type catalogFile struct {
	Messages map[string]Entry `toml:"messages" yaml:"messages"`
}

// LoadCatalog reads a catalog file, choosing the decoder by extension
// (.toml, .yaml, .yml).
func LoadCatalog(path string) (*Catalog, error) {
	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported catalog format %q", path, ext)
	}
	if file.Messages == nil {
		file.Messages = map[string]Entry{}
	}
	return NewCatalog(file.Messages), nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }

// IDs returns the catalog ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Catalog) lookup(id string) (Entry, error) {
	entry, ok := c.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	return entry, nil
}

// MessageText resolves the plain-text body for the record's id.
func (c *Catalog) MessageText(m *msg.Message) (string, error) {
	return c.textByID(m.ID)
}

// MessageHTML resolves the HTML body for the record's id.
func (c *Catalog) MessageHTML(m *msg.Message) (string, error) {
	return c.htmlByID(m.ID)
}

func (c *Catalog) textByID(id string) (string, error) {
	entry, err := c.lookup(id)
	if err != nil {
		return "", err
	}
	switch {
	case entry.Text != "":
		return entry.Text, nil
	case entry.Markdown != "":
		return strings.TrimSpace(entry.Markdown), nil
	case entry.HTML != "":
		return msgfmt.EscapeHTML(entry.HTML), nil
	}
	return "", fmt.Errorf("catalog entry %q has no body", id)
}

func (c *Catalog) htmlByID(id string) (string, error) {
	entry, err := c.lookup(id)
	if err != nil {
		return "", err
	}
	switch {
	case entry.HTML != "":
		return entry.HTML, nil
	case entry.Markdown != "":
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(entry.Markdown), &buf); err != nil {
			return "", fmt.Errorf("render markdown for %q: %w", id, err)
		}
		return strings.TrimSpace(buf.String()), nil
	case entry.Text != "":
		return msgfmt.EscapeHTML(entry.Text), nil
	}
	return "", fmt.Errorf("catalog entry %q has no body", id)
}

// ProcessTag implements the optional tag capability. The "msg" tag inlines
// another catalog entry: [: msg id=some-id :]. Unrecognized tag names
// contribute nothing, matching the empty-substitution contract.
func (c *Catalog) ProcessTag(m *msg.Message, tag msg.Tag, mode msg.Mode) (string, error) {
	if tag.Name != "msg" {
		return "", nil
	}
	id := tag.Attrs["id"]
	if id == "" {
		return "", nil
	}
	if mode == msg.ModeHTML {
		return c.htmlByID(id)
	}
	return c.textByID(id)
}
