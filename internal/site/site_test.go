package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"crier/internal/msg"
)

func writeCatalog(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

const tomlCatalog = `
[messages.greet]
text = "Hello, [: sub param=name :]"
html = "<em>Hello</em>"

[messages.maintenance]
markdown = "Service is **down** right now."

[messages.html-only]
html = "<b>markup</b>"
`

func TestLoadCatalogTOML(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t, "catalog.toml", tomlCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	text, err := c.MessageText(msg.NewID("greet"))
	if err != nil {
		t.Fatalf("MessageText: %v", err)
	}
	if text != "Hello, [: sub param=name :]" {
		t.Errorf("text = %q", text)
	}

	html, err := c.MessageHTML(msg.NewID("greet"))
	if err != nil {
		t.Fatalf("MessageHTML: %v", err)
	}
	if html != "<em>Hello</em>" {
		t.Errorf("html = %q", html)
	}
}

func TestLoadCatalogYAML(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t, "catalog.yaml", `
messages:
  greet:
    text: "hi there"
`))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	text, err := c.MessageText(msg.NewID("greet"))
	if err != nil {
		t.Fatalf("MessageText: %v", err)
	}
	if text != "hi there" {
		t.Errorf("text = %q", text)
	}
}

func TestLoadCatalogUnsupportedExtension(t *testing.T) {
	if _, err := LoadCatalog(writeCatalog(t, "catalog.ini", "x")); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestMarkdownEntryBacksBothModes(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t, "catalog.toml", tomlCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	text, err := c.MessageText(msg.NewID("maintenance"))
	if err != nil {
		t.Fatalf("MessageText: %v", err)
	}
	if text != "Service is **down** right now." {
		t.Errorf("text mode should carry raw markdown, got %q", text)
	}

	html, err := c.MessageHTML(msg.NewID("maintenance"))
	if err != nil {
		t.Fatalf("MessageHTML: %v", err)
	}
	if html != "<p>Service is <strong>down</strong> right now.</p>" {
		t.Errorf("html mode should render markdown, got %q", html)
	}
}

func TestHTMLOnlyEntryEscapesIntoText(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t, "catalog.toml", tomlCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	text, err := c.MessageText(msg.NewID("html-only"))
	if err != nil {
		t.Fatalf("MessageText: %v", err)
	}
	if text != "&lt;b&gt;markup&lt;/b&gt;" {
		t.Errorf("text fallback = %q", text)
	}
}

func TestUnknownIDPropagates(t *testing.T) {
	c := NewCatalog(map[string]Entry{})
	if _, err := c.MessageText(msg.NewID("nope")); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("err = %v, want ErrUnknownID", err)
	}
	if _, err := c.MessageHTML(msg.NewID("nope")); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("err = %v, want ErrUnknownID", err)
	}
}

func TestProcessTagInlinesCatalogEntries(t *testing.T) {
	c := NewCatalog(map[string]Entry{
		"signature": {Text: "-- the management", HTML: "<i>the management</i>"},
	})

	out, err := c.ProcessTag(msg.New("x"), msg.Tag{Name: "msg", Attrs: map[string]string{"id": "signature"}}, msg.ModeText)
	if err != nil {
		t.Fatalf("ProcessTag: %v", err)
	}
	if out != "-- the management" {
		t.Errorf("text inline = %q", out)
	}

	out, err = c.ProcessTag(msg.New("x"), msg.Tag{Name: "msg", Attrs: map[string]string{"id": "signature"}}, msg.ModeHTML)
	if err != nil {
		t.Fatalf("ProcessTag: %v", err)
	}
	if out != "<i>the management</i>" {
		t.Errorf("html inline = %q", out)
	}

	// Unknown tag names and missing ids contribute nothing.
	if out, err := c.ProcessTag(msg.New("x"), msg.Tag{Name: "widget"}, msg.ModeText); err != nil || out != "" {
		t.Errorf("unknown tag = %q, %v; want empty", out, err)
	}
	if out, err := c.ProcessTag(msg.New("x"), msg.Tag{Name: "msg", Attrs: map[string]string{}}, msg.ModeText); err != nil || out != "" {
		t.Errorf("msg tag without id = %q, %v; want empty", out, err)
	}
}

func TestIDsSorted(t *testing.T) {
	c := NewCatalog(map[string]Entry{"b": {Text: "2"}, "a": {Text: "1"}})
	ids := c.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs() = %v, want [a b]", ids)
	}
}
