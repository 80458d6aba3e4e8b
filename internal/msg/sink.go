package msg

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoContent indicates a record with no resolvable id, text, or html.
var ErrNoContent = errors.New("message has no renderable content")

// ErrFailOnAdd is returned by the fail-on-error-add hook after it has dumped
// the accumulated errors; see msgfmt.FailFast.
var ErrFailOnAdd = errors.New("error added while fail-on-error-add is enabled")

// Sink accumulates messages in three append-ordered channels. Appends are
// serialized, so concurrent producers are safe; Items returns a snapshot and
// is the view renderers work from.
type Sink struct {
	mu       sync.Mutex
	channels map[Channel][]*Message
	onError  func(*Sink) error
}

// NewSink returns an empty sink with the fail-on-error-add hook disabled.
func NewSink() *Sink {
	return &Sink{
		channels: map[Channel][]*Message{
			Errors:   nil,
			Warnings: nil,
			Notes:    nil,
		},
	}
}

// SetOnError installs the hook run after every append to the errors channel.
// A nil hook disables the behaviour.
func (s *Sink) SetOnError(fn func(*Sink) error) {
	s.mu.Lock()
	s.onError = fn
	s.mu.Unlock()
}

// OnErrorSet reports whether an error-append hook is installed.
func (s *Sink) OnErrorSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onError != nil
}

// Add appends one record to the named channel. For the errors channel the
// configured OnError hook, if any, runs after the append and its error is
// returned; the hook is invoked without the sink lock held so it may read the
// sink freely.
func (s *Sink) Add(ch Channel, m *Message) error {
	if !ch.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}
	s.mu.Lock()
	s.channels[ch] = append(s.channels[ch], m)
	hook := s.onError
	s.mu.Unlock()

	if ch == Errors && hook != nil {
		return hook(s)
	}
	return nil
}

// AddError appends to the errors channel.
func (s *Sink) AddError(m *Message) error { return s.Add(Errors, m) }

// AddWarning appends to the warnings channel.
func (s *Sink) AddWarning(m *Message) { _ = s.Add(Warnings, m) }

// AddNote appends to the notes channel.
func (s *Sink) AddNote(m *Message) { _ = s.Add(Notes, m) }

// Error appends a plain-text error record.
func (s *Sink) Error(text string) error { return s.AddError(New(text)) }

// Errorf appends a formatted plain-text error record.
func (s *Sink) Errorf(format string, args ...any) error {
	return s.AddError(Newf(format, args...))
}

// Warning appends a plain-text warning record and returns it for chaining.
func (s *Sink) Warning(text string) *Message {
	m := New(text)
	s.AddWarning(m)
	return m
}

// Warningf appends a formatted warning record.
func (s *Sink) Warningf(format string, args ...any) *Message {
	m := Newf(format, args...)
	s.AddWarning(m)
	return m
}

// Note appends a plain-text note record and returns it for chaining.
func (s *Sink) Note(text string) *Message {
	m := New(text)
	s.AddNote(m)
	return m
}

// Notef appends a formatted note record.
func (s *Sink) Notef(format string, args ...any) *Message {
	m := Newf(format, args...)
	s.AddNote(m)
	return m
}

// Items returns a snapshot copy of the channel contents in append order.
// The records themselves are shared, the slice is not.
func (s *Sink) Items(ch Channel) []*Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.channels[ch]
	out := make([]*Message, len(items))
	copy(out, items)
	return out
}

// Len returns the number of records in the channel.
func (s *Sink) Len(ch Channel) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.channels[ch])
}

// Any reports whether the channel holds at least one record.
func (s *Sink) Any(ch Channel) bool {
	return s.Len(ch) > 0
}

// Clear empties one channel. Records are never removed individually.
func (s *Sink) Clear(ch Channel) {
	s.mu.Lock()
	s.channels[ch] = nil
	s.mu.Unlock()
}

// Reset empties all three channels. The OnError hook stays installed.
func (s *Sink) Reset() {
	s.mu.Lock()
	for ch := range s.channels {
		s.channels[ch] = nil
	}
	s.mu.Unlock()
}

// Total returns the record count across all channels.
func (s *Sink) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, items := range s.channels {
		n += len(items)
	}
	return n
}

// defaultSink backs the package-level convenience helpers. Construct at
// process start; Reset between logical operations.
var defaultSink = NewSink()

// Default returns the process-wide default sink.
func Default() *Sink { return defaultSink }

// Error appends a plain-text error to the default sink.
func Error(text string) error { return defaultSink.Error(text) }

// Errorf appends a formatted error to the default sink.
func Errorf(format string, args ...any) error { return defaultSink.Errorf(format, args...) }

// Warning appends a plain-text warning to the default sink.
func Warning(text string) *Message { return defaultSink.Warning(text) }

// Note appends a plain-text note to the default sink.
func Note(text string) *Message { return defaultSink.Note(text) }

// Reset clears the default sink.
func Reset() { defaultSink.Reset() }
