// Package msg defines the core message model shared by producers and
// renderers.
//
// # Purpose
//
//   - Provide the Message record: the unit of accumulated information a code
//     path wants surfaced to a person later (an error, a warning, a note).
//   - Offer the Sink: three fixed, append-ordered channels (errors, warnings,
//     notes) with a strict accumulate-then-render lifecycle.
//   - Define the Site resolver contract used for catalog/localised lookups,
//     without implementing any resolver here.
//
// # Scope
//
// Package msg performs no formatting and no IO. Rendering lives in
// internal/msgfmt, catalog resolvers in internal/site, and document ingestion
// in internal/ingest.
//
// # Data model
//
// Message is the central record. It contains:
//
//   - Text – plain-text template, literal text interleaved with [: ... :]
//     tag markers.
//   - HTML – HTML template with the same marker syntax.
//   - ID – opaque key into a Site resolver's catalog; when a resolver is
//     available the ID lookup wins over Text/HTML.
//   - Site – optional per-record resolver, taking precedence over a resolver
//     supplied at render time.
//   - Params – extensible attribute bag consumed by sub tags and forwarded
//     to resolvers for id-based lookups.
//
// Templates are stored raw; markers are parsed at render time. A record that
// resolves to none of {ID+resolver, Text, HTML} violates the contract and
// fails at render time, not at creation time.
//
// # Channels and lifecycle
//
// A Sink owns exactly three channels. Records live unchanged in their channel
// until the whole channel is cleared, typically once per logical operation.
// Appends are serialized with a mutex; Items returns a snapshot copy so a
// render observes the channel as of the moment of the call.
//
// # Fail on error add
//
// A Sink may carry an OnError hook invoked after every append to the errors
// channel. internal/msgfmt provides a hook that renders the accumulated
// errors as text and returns ErrFailOnAdd, turning every error append into a
// distinguished failure the caller can act on.
package msg
