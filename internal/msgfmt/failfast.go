package msgfmt

import (
	"io"
	"os"
	"sync"

	"crier/internal/msg"
)

// FailFast returns a Sink.OnError hook that renders the text form of all
// accumulated errors to w and then reports msg.ErrFailOnAdd, so every append
// to the errors channel becomes a distinguished failure.
func FailFast(w io.Writer, opts Options) func(*msg.Sink) error {
	return func(s *msg.Sink) error {
		if err := RenderText(w, s, msg.Errors, opts); err != nil {
			return err
		}
		return msg.ErrFailOnAdd
	}
}

var (
	failOnAddMu      sync.Mutex
	failOnAddEnabled bool
)

// SetFailOnAddError toggles the process-wide fail-on-error-add mode on the
// default sink. When enabled, any error append renders the current errors to
// stdout and returns msg.ErrFailOnAdd to the producer. Disabled by default;
// the setting persists until changed again.
func SetFailOnAddError(enabled bool) {
	failOnAddMu.Lock()
	defer failOnAddMu.Unlock()
	failOnAddEnabled = enabled
	if enabled {
		msg.Default().SetOnError(FailFast(os.Stdout, Options{}))
	} else {
		msg.Default().SetOnError(nil)
	}
}

// FailOnAddError reports the current process-wide fail-on-error-add mode.
func FailOnAddError() bool {
	failOnAddMu.Lock()
	defer failOnAddMu.Unlock()
	return failOnAddEnabled
}
