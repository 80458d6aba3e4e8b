package msgfmt

import (
	"errors"
	"strings"
	"testing"

	"crier/internal/msg"
)

func TestRenderTextSingleRecord(t *testing.T) {
	s := msg.NewSink()
	if err := s.Error("X"); err != nil {
		t.Fatalf("Error: %v", err)
	}

	var b strings.Builder
	if err := RenderText(&b, s, msg.Errors, Options{}); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if got := b.String(); got != "* X\n" {
		t.Errorf("output = %q, want %q", got, "* X\n")
	}
}

func TestRenderTextEmptyChannelWritesNothing(t *testing.T) {
	var b strings.Builder
	if err := RenderText(&b, msg.NewSink(), msg.Warnings, Options{}); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if b.String() != "" {
		t.Errorf("empty channel produced output %q", b.String())
	}
}

func TestRenderTextDedupKeepsFirstOccurrenceOrder(t *testing.T) {
	s := msg.NewSink()
	for _, text := range []string{"dup", "unique", "dup", "last", "unique"} {
		if err := s.Error(text); err != nil {
			t.Fatalf("Error: %v", err)
		}
	}

	var b strings.Builder
	if err := RenderText(&b, s, msg.Errors, Options{}); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	want := "* dup\n* unique\n* last\n"
	if got := b.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRenderTextDedupComparesRenderedStrings(t *testing.T) {
	// Two different templates that substitute to the same string are one entry.
	s := msg.NewSink()
	if err := s.AddError(msg.New("Hello [: sub param=who :]").WithParam("who", "World")); err != nil {
		t.Fatalf("AddError: %v", err)
	}
	if err := s.Error("Hello World"); err != nil {
		t.Fatalf("Error: %v", err)
	}

	var b strings.Builder
	if err := RenderText(&b, s, msg.Errors, Options{}); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if got := b.String(); got != "* Hello World\n" {
		t.Errorf("output = %q, want %q", got, "* Hello World\n")
	}
}

func TestRenderTextResolverPriorityOverText(t *testing.T) {
	s := msg.NewSink()
	if err := s.AddError(msg.NewID("greet").WithParam("name", "Ada")); err != nil {
		t.Fatalf("AddError: %v", err)
	}

	site := stubSite{text: map[string]string{"greet": "Welcome, [: sub param=name :]"}}
	var b strings.Builder
	if err := RenderText(&b, s, msg.Errors, Options{Site: site}); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if got := b.String(); got != "* Welcome, Ada\n" {
		t.Errorf("output = %q, want %q", got, "* Welcome, Ada\n")
	}
}

func TestRenderTextHTMLOnlyFallbackEscapes(t *testing.T) {
	s := msg.NewSink()
	if err := s.AddError(msg.NewHTML("<b>bold</b>")); err != nil {
		t.Fatalf("AddError: %v", err)
	}

	var b strings.Builder
	if err := RenderText(&b, s, msg.Errors, Options{}); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if got := b.String(); got != "* &lt;b&gt;bold&lt;/b&gt;\n" {
		t.Errorf("output = %q, want %q", got, "* &lt;b&gt;bold&lt;/b&gt;\n")
	}
}

func TestRenderTextContractViolation(t *testing.T) {
	s := msg.NewSink()
	if err := s.AddError(&msg.Message{Params: map[string]any{"orphan": true}}); err != nil {
		t.Fatalf("AddError: %v", err)
	}

	var b strings.Builder
	err := RenderText(&b, s, msg.Errors, Options{})
	if !errors.Is(err, msg.ErrNoContent) {
		t.Fatalf("err = %v, want ErrNoContent", err)
	}
	if !strings.Contains(err.Error(), "orphan") {
		t.Errorf("error should dump the record, got %q", err.Error())
	}
}

func TestRenderTextUnknownChannel(t *testing.T) {
	var b strings.Builder
	err := RenderText(&b, msg.NewSink(), msg.Channel("bogus"), Options{})
	if !errors.Is(err, msg.ErrUnknownChannel) {
		t.Fatalf("err = %v, want ErrUnknownChannel", err)
	}
}
