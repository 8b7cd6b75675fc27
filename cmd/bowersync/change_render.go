package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"bowersync/internal/manifest"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

const valueWidth = 48

func renderChanges(changes []manifest.Change, showUnchanged, colorize bool) string {
	rows := make([][]string, 0, len(changes))
	for _, change := range changes {
		if change.Kind == manifest.ChangeUnchanged && !showUnchanged {
			continue
		}
		rows = append(rows, []string{
			change.Key,
			changeLabel(change.Kind, colorize),
			formatValue(change.Before),
			formatValue(change.After),
		})
	}
	if len(rows) == 0 {
		return ""
	}
	return renderTable(
		[]string{"Key", "Change", "Before", "After"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

func changeLabel(kind manifest.ChangeKind, colorize bool) string {
	label := string(kind)
	if !colorize {
		return label
	}
	if color := changeColor(kind); color != "" {
		return color + label + ansiReset
	}
	return label
}

func changeColor(kind manifest.ChangeKind) string {
	switch kind {
	case manifest.ChangeAdded:
		return ansiGreen
	case manifest.ChangeChanged:
		return ansiYellow
	case manifest.ChangeRemoved:
		return ansiRed
	case manifest.ChangeUnchanged:
		return ansiDim
	default:
		return ""
	}
}

// formatValue renders a manifest value as compact JSON for table cells.
func formatValue(value any) string {
	if value == nil {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "<unencodable>"
	}
	return truncate(string(bytes.TrimRight(buf.Bytes(), "\n")), valueWidth)
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
