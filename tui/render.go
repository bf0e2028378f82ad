package tui

import (
	"fmt"
	"strings"

	"github.com/file-command-nexus/nexus/ledger"
)

// renderRecords formats the result history oldest first. Kept free of
// model state so it can be checked with plain records.
func renderRecords(records []ledger.Record, width int) string {
	if len(records) == 0 {
		return dimStyle.Render("No commands executed yet.")
	}
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for i, rec := range records {
		if i > 0 {
			b.WriteString("\n")
		}

		glyph := okGlyphStyle.Render("✓")
		if rec.Result.ReturnCode != 0 {
			glyph = failGlyphStyle.Render("✗")
		}

		question := rec.Question
		if question == "" {
			question = "(no command)"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", glyph, questionStyle.Render(question)))

		if rec.Result.Stdout != "" {
			b.WriteString(stdoutLabelStyle.Render("STDOUT:"))
			b.WriteString("\n")
			b.WriteString(wrap(rec.Result.Stdout, width))
			b.WriteString("\n")
		}
		if rec.Result.Stderr != "" {
			b.WriteString(stderrLabelStyle.Render("STDERR:"))
			b.WriteString("\n")
			b.WriteString(stderrStyle.Render(wrap(rec.Result.Stderr, width)))
			b.WriteString("\n")
		}

		b.WriteString(dimStyle.Render(rec.Timestamp.Format("15:04:05")))
		b.WriteString("\n")
	}
	return b.String()
}

// wrap hard-wraps text at width runes without touching existing
// newlines. Breaking on rune boundaries keeps multi-byte output intact.
func wrap(text string, width int) string {
	var out strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteString("\n")
		}
		runes := []rune(line)
		for len(runes) > width {
			out.WriteString(string(runes[:width]))
			out.WriteString("\n")
			runes = runes[width:]
		}
		out.WriteString(string(runes))
	}
	return out.String()
}
