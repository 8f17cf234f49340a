package vbo

import "fmt"

// DuplicateChannelError is returned by Document.AddChannel when a channel
// with the same name is already present.
type DuplicateChannelError struct {
	Name ChannelName
}

func (e *DuplicateChannelError) Error() string {
	return fmt.Sprintf("vbo: duplicate channel %q", string(e.Name))
}

// FormatError is returned by Document.Write when a channel value cannot be
// rendered. It preserves the failing value and the underlying cause; the
// serializer never logs, the caller decides what to do with the failure.
type FormatError struct {
	Value ChannelValue
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("vbo: format %v: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
