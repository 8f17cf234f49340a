package vbo

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// TokenKind discriminates the two token types of the flat-file layout.
type TokenKind int

const (
	// TokenSectionHeader is a `[name]` line; Text carries the name without
	// the brackets.
	TokenSectionHeader TokenKind = iota
	// TokenLine is any other non-blank line, carried verbatim.
	TokenLine
)

// Token is one non-blank line of a VBOX data file.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits a VBOX data file into section headers and content lines.
// Blank lines carry no information in the format and are dropped.
func Tokenize(r io.Reader) ([]Token, error) {
	var tokens []Token
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			name := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			tokens = append(tokens, Token{Kind: TokenSectionHeader, Text: name})
			continue
		}
		tokens = append(tokens, Token{Kind: TokenLine, Text: line})
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("vbo: tokenize: %w", err)
	}
	return tokens, nil
}

// File is a VBOX data file read back from its textual form. Data rows are
// kept as raw string fields: the column value kinds are not recoverable
// from the text alone, so no typed reconstruction is attempted.
//
// ColumnNames are space-split with adjacent tokens re-joined when they form
// a standard channel name ("long accel", "lat accel"). The format gives a
// custom name containing a space no unambiguous reading; such names come
// back as separate columns.
type File struct {
	CreatedAt   time.Time
	Channels    []Channel
	Comment     string
	ColumnNames []string
	Rows        [][]string
}

const bannerPrefix = "File created on "

// Parse reads a VBOX data file back into its section structure. The banner
// line is optional; section order follows the writer's layout but unknown
// sections are skipped rather than rejected.
func Parse(r io.Reader) (*File, error) {
	tokens, err := Tokenize(r)
	if err != nil {
		return nil, err
	}

	f := &File{}
	section := ""
	var comment []string
	for _, tok := range tokens {
		if tok.Kind == TokenSectionHeader {
			section = tok.Text
			continue
		}

		switch section {
		case "":
			if strings.HasPrefix(tok.Text, bannerPrefix) {
				created, err := parseBanner(tok.Text)
				if err != nil {
					return nil, err
				}
				f.CreatedAt = created
			}
		case "header":
			f.Channels = append(f.Channels, parseChannelLine(tok.Text))
		case "comments":
			comment = append(comment, tok.Text)
		case "column names":
			f.ColumnNames = append(f.ColumnNames, parseColumnNames(tok.Text)...)
		case "data":
			f.Rows = append(f.Rows, strings.Fields(tok.Text))
		}
	}
	f.Comment = strings.Join(comment, "\n")
	return f, nil
}

// parseColumnNames splits a `[column names]` line into column names. A
// plain field split would shatter the standard names that contain a space,
// so adjacent tokens are re-joined when the pair is a standard name.
func parseColumnNames(line string) []string {
	fields := strings.Fields(line)
	names := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		if i+1 < len(fields) {
			joined := fields[i] + " " + fields[i+1]
			if ParseChannelName(joined).Standard() {
				names = append(names, joined)
				i++
				continue
			}
		}
		names = append(names, fields[i])
	}
	return names
}

func parseBanner(line string) (time.Time, error) {
	rest := strings.TrimPrefix(line, bannerPrefix)
	created, err := time.Parse(bannerDateLayout+" at "+bannerTimeLayout, rest)
	if err != nil {
		return time.Time{}, fmt.Errorf("vbo: parse banner %q: %w", line, err)
	}
	return created, nil
}

// parseChannelLine splits a `[header]` line into name and optional unit.
// Standard channel names may themselves contain a space ("long accel"), so
// the split is resolved against the known names and units: the whole line
// as a standard name wins, then standard-name + unit, then name + standard
// unit. Anything else is a custom channel name with no unit.
func parseChannelLine(line string) Channel {
	if name := ParseChannelName(line); name.Standard() {
		return NewChannel(name)
	}
	if i := strings.LastIndexByte(line, ' '); i > 0 {
		name := ParseChannelName(line[:i])
		unit := ParseChannelUnit(line[i+1:])
		if name.Standard() || unit.Standard() {
			return NewChannelWithUnit(name, unit)
		}
	}
	return NewChannel(ParseChannelName(line))
}
