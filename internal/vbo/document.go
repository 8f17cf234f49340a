package vbo

import (
	"fmt"
	"io"
	"time"
)

// Layouts for the "File created on" banner line.
const (
	bannerDateLayout = "02/01/2006"
	bannerTimeLayout = "15:04:05"
)

// Document accumulates channels, sample rows, a comment and a creation
// timestamp, then serializes them as one VBOX data file. It is built empty
// and only grows: channels and rows can be added but never removed.
//
// A Document is not safe for concurrent use; the intended lifecycle is a
// single owner that mutates and then serializes.
type Document struct {
	creationTime *time.Time
	comment      *string
	channels     []Channel
	samples      [][]ChannelValue

	now func() time.Time
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{now: time.Now}
}

// SetClock replaces the time source used when no creation time has been
// set. Serializing a document without a creation time stamps it with "now",
// which makes repeated runs differ; tests pin the clock with this hook.
func (d *Document) SetClock(now func() time.Time) {
	d.now = now
}

// SetCreationTime sets the timestamp of the banner line, replacing any
// previously set value.
func (d *Document) SetCreationTime(t time.Time) {
	d.creationTime = &t
}

// SetComment sets the text of the `[comments]` section, replacing any
// previous comment. Multi-line text is written verbatim.
func (d *Document) SetComment(comment string) {
	d.comment = &comment
}

// AddChannel appends a channel. Channel order is significant: it dictates
// the header, column-name and data-column order. Adding a channel whose
// name is already present fails with a DuplicateChannelError and leaves the
// document unchanged.
func (d *Document) AddChannel(c Channel) error {
	for _, existing := range d.channels {
		if existing.Name == c.Name {
			return &DuplicateChannelError{Name: c.Name}
		}
	}
	d.channels = append(d.channels, c)
	return nil
}

// Channels returns the channels in insertion order. The returned slice is
// shared; callers must not modify it.
func (d *Document) Channels() []Channel {
	return d.channels
}

// AddSample appends one row of values. The row is not checked against the
// channel list: neither its length nor the per-column value kinds are
// validated, so callers are responsible for alignment.
func (d *Document) AddSample(row []ChannelValue) {
	d.samples = append(d.samples, row)
}

// Write renders the document to w in the fixed five-section layout. It is a
// single pass over immutable state: the first sink error aborts the pass
// and is returned with its cause, leaving whatever was already written in
// place. Given the same document and a fixed clock the output is identical
// across calls.
func (d *Document) Write(w io.Writer) error {
	createdAt := d.now()
	if d.creationTime != nil {
		createdAt = *d.creationTime
	}
	if _, err := fmt.Fprintf(w, "File created on %s at %s\n\n",
		createdAt.Format(bannerDateLayout), createdAt.Format(bannerTimeLayout)); err != nil {
		return fmt.Errorf("vbo: write banner: %w", err)
	}

	if _, err := io.WriteString(w, "[header]\n"); err != nil {
		return fmt.Errorf("vbo: write header: %w", err)
	}
	for _, c := range d.channels {
		if _, err := fmt.Fprintf(w, "%s\n", c); err != nil {
			return fmt.Errorf("vbo: write header: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("vbo: write header: %w", err)
	}

	if d.comment != nil {
		if _, err := fmt.Fprintf(w, "[comments]\n%s\n\n", *d.comment); err != nil {
			return fmt.Errorf("vbo: write comments: %w", err)
		}
	}

	if _, err := io.WriteString(w, "[column names]\n"); err != nil {
		return fmt.Errorf("vbo: write column names: %w", err)
	}
	for _, c := range d.channels {
		// The trailing space after the last name is part of the historical
		// format; downstream consumers depend on it.
		if _, err := fmt.Fprintf(w, "%s ", c.Name); err != nil {
			return fmt.Errorf("vbo: write column names: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n\n"); err != nil {
		return fmt.Errorf("vbo: write column names: %w", err)
	}

	if _, err := io.WriteString(w, "[data]\n"); err != nil {
		return fmt.Errorf("vbo: write data: %w", err)
	}
	for _, row := range d.samples {
		for _, v := range row {
			text, err := v.Format()
			if err != nil {
				return &FormatError{Value: v, Err: err}
			}
			if _, err := fmt.Fprintf(w, "%s ", text); err != nil {
				return fmt.Errorf("vbo: write data: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("vbo: write data: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("vbo: write data: %w", err)
	}

	return nil
}
