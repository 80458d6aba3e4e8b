package msgfmt

import (
	"io"
	"os"

	"crier/internal/msg"
)

// HeadingMode specifies whether the HTML renderer emits the <h2> label.
type HeadingMode uint8

const (
	// HeadingAuto shows the heading except on the notes channel.
	HeadingAuto HeadingMode = iota
	// HeadingShown always emits the label.
	HeadingShown
	HeadingHidden
)

// Options configures one render call. The zero value is usable: channel
// default labels, automatic heading, diagnostics to stderr.
type Options struct {
	// Site resolves id-keyed records and custom tags. A record's own Site
	// field wins over this one.
	Site msg.Site

	// Singular and Plural override the channel's default heading labels.
	Singular string
	Plural   string

	Heading HeadingMode

	// ShowMsgIDs prepends the visible "[ output-id ] " marker to each list
	// item that has one.
	ShowMsgIDs bool

	// IDPrefix, when non-empty, namespaces every li id as "prefix~outputid".
	IDPrefix string

	// DivAttrs and ListAttrs are extra attributes for the container div and
	// the ul. Values are emitted verbatim; escaping is the caller's job.
	DivAttrs  map[string]string
	ListAttrs map[string]string

	// DiagWriter receives non-fatal substitution diagnostics. Defaults to
	// os.Stderr.
	DiagWriter io.Writer
}

func (o Options) diag() io.Writer {
	if o.DiagWriter != nil {
		return o.DiagWriter
	}
	return os.Stderr
}

// siteFor picks the resolver for one record: the record's own site wins over
// the render-time one.
func (o Options) siteFor(m *msg.Message) msg.Site {
	if m.Site != nil {
		return m.Site
	}
	return o.Site
}

// heading resolves HeadingAuto against the channel being rendered.
func (o Options) heading(ch msg.Channel) bool {
	switch o.Heading {
	case HeadingShown:
		return true
	case HeadingHidden:
		return false
	}
	return ch != msg.Notes
}

// channelLabels holds the default singular/plural heading pairs.
var channelLabels = map[msg.Channel][2]string{
	msg.Errors:   {"Error", "Errors"},
	msg.Warnings: {"Warning", "Warnings"},
	msg.Notes:    {"Note", "Notes"},
}

// labels returns the effective singular and plural labels for the channel.
func (o Options) labels(ch msg.Channel) (string, string) {
	defaults := channelLabels[ch]
	singular, plural := defaults[0], defaults[1]
	if o.Singular != "" {
		singular = o.Singular
	}
	if o.Plural != "" {
		plural = o.Plural
	}
	return singular, plural
}
