package msg

import (
	"errors"
	"fmt"
	"strings"
)

// Channel names one of the three fixed message sequences.
type Channel string

const (
	Errors   Channel = "errors"
	Warnings Channel = "warnings"
	Notes    Channel = "notes"
)

// AllChannels lists the channels in their conventional display order.
var AllChannels = []Channel{Errors, Warnings, Notes}

// ErrUnknownChannel indicates a channel name outside the fixed three.
var ErrUnknownChannel = errors.New("unknown message channel")

// Valid reports whether c is one of the three fixed channels.
func (c Channel) Valid() bool {
	switch c {
	case Errors, Warnings, Notes:
		return true
	}
	return false
}

func (c Channel) String() string {
	return string(c)
}

// ParseChannel maps a channel name (case-insensitive) onto a Channel.
func ParseChannel(name string) (Channel, error) {
	c := Channel(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return c, nil
}
