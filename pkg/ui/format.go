package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format names an output format. The value is what --output accepts.
type Format string

const (
	// FormatAuto picks terminal or text output from the destination
	FormatAuto Format = "auto"
	// FormatTerminal renders a styled table
	FormatTerminal Format = "term"
	// FormatText renders plain aligned lines
	FormatText Format = "text"
	// FormatJSON renders the result as indented JSON
	FormatJSON Format = "json"
)

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// Formats lists the canonical format names, for flag help and completion
func Formats() []string {
	return []string{string(FormatAuto), string(FormatTerminal), string(FormatText), string(FormatJSON)}
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves a format name or alias, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want one of %s)",
		s, strings.Join(Formats(), ", ")).WithDetail("format", s)
}

// fdWriter is satisfied by *os.File and anything else backed by a descriptor
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// DetectFormat resolves FormatAuto for w. Only a colour-capable terminal
// gets the styled renderer; pipes, files, buffers and NO_COLOR get text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	f, ok := w.(fdWriter)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(w).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
