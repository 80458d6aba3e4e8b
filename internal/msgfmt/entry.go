package msgfmt

import (
	"io"

	"crier/internal/msg"
)

// Per-channel render entry points: {errors, warnings, notes} x {text, html}.
// They are thin names over RenderText/RenderHTML; channel label and heading
// defaults are resolved inside the renderers.

func ErrorsText(w io.Writer, s *msg.Sink, opts Options) error {
	return RenderText(w, s, msg.Errors, opts)
}

func WarningsText(w io.Writer, s *msg.Sink, opts Options) error {
	return RenderText(w, s, msg.Warnings, opts)
}

func NotesText(w io.Writer, s *msg.Sink, opts Options) error {
	return RenderText(w, s, msg.Notes, opts)
}

func ErrorsHTML(w io.Writer, s *msg.Sink, opts Options) error {
	return RenderHTML(w, s, msg.Errors, opts)
}

func WarningsHTML(w io.Writer, s *msg.Sink, opts Options) error {
	return RenderHTML(w, s, msg.Warnings, opts)
}

func NotesHTML(w io.Writer, s *msg.Sink, opts Options) error {
	return RenderHTML(w, s, msg.Notes, opts)
}
