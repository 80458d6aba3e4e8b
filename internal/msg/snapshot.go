package msg

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when snapshotPayload format changes.
const snapshotSchemaVersion uint16 = 1

// snapshotMessage is the serializable subset of a Message. Site is a live
// object and is deliberately dropped; a reloaded record falls back to the
// resolver supplied at render time.
type snapshotMessage struct {
	Text   string
	HTML   string
	ID     string
	Params map[string]any
}

// snapshotPayload captures a whole sink for later replay.
type snapshotPayload struct {
	Schema uint16

	Errors   []snapshotMessage
	Warnings []snapshotMessage
	Notes    []snapshotMessage

	// Total record count, for validation on read.
	Count uint32
}

func toSnapshot(items []*Message) []snapshotMessage {
	out := make([]snapshotMessage, 0, len(items))
	for _, m := range items {
		out = append(out, snapshotMessage{
			Text:   m.Text,
			HTML:   m.HTML,
			ID:     m.ID,
			Params: m.Params,
		})
	}
	return out
}

func fromSnapshot(items []snapshotMessage) []*Message {
	out := make([]*Message, 0, len(items))
	for _, sm := range items {
		out = append(out, &Message{
			Text:   sm.Text,
			HTML:   sm.HTML,
			ID:     sm.ID,
			Params: sm.Params,
		})
	}
	return out
}

// WriteSnapshot serializes the sink contents to w.
func (s *Sink) WriteSnapshot(w io.Writer) error {
	payload := snapshotPayload{
		Schema:   snapshotSchemaVersion,
		Errors:   toSnapshot(s.Items(Errors)),
		Warnings: toSnapshot(s.Items(Warnings)),
		Notes:    toSnapshot(s.Items(Notes)),
	}
	total := len(payload.Errors) + len(payload.Warnings) + len(payload.Notes)
	count, err := safecast.Conv[uint32](total)
	if err != nil {
		return fmt.Errorf("snapshot count overflow: %w", err)
	}
	payload.Count = count

	if err := msgpack.NewEncoder(w).Encode(&payload); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot restores a sink from a snapshot previously written with
// WriteSnapshot. Unknown schema versions are rejected rather than guessed at.
func ReadSnapshot(r io.Reader) (*Sink, error) {
	var payload snapshotPayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d not supported (want %d)",
			payload.Schema, snapshotSchemaVersion)
	}
	total := len(payload.Errors) + len(payload.Warnings) + len(payload.Notes)
	count, err := safecast.Conv[uint32](total)
	if err != nil {
		return nil, fmt.Errorf("snapshot count overflow: %w", err)
	}
	if count != payload.Count {
		return nil, fmt.Errorf("snapshot count mismatch: header %d, decoded %d",
			payload.Count, count)
	}

	s := NewSink()
	s.channels[Errors] = fromSnapshot(payload.Errors)
	s.channels[Warnings] = fromSnapshot(payload.Warnings)
	s.channels[Notes] = fromSnapshot(payload.Notes)
	return s, nil
}
