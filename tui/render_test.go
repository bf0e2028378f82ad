package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/file-command-nexus/nexus/ledger"
)

func TestRenderRecordsEmpty(t *testing.T) {
	out := renderRecords(nil, 60)
	if !strings.Contains(out, "No commands executed yet") {
		t.Errorf("empty render = %q, want empty-state text", out)
	}
}

func TestRenderRecordsSuccess(t *testing.T) {
	records := []ledger.Record{
		{
			Question:  "summarize this file",
			Result:    ledger.Result{Stdout: "a concise summary", ReturnCode: 0},
			Timestamp: time.Date(2026, 3, 1, 14, 30, 5, 0, time.UTC),
		},
	}

	out := renderRecords(records, 60)
	if !strings.Contains(out, "✓") {
		t.Error("render missing success glyph")
	}
	if !strings.Contains(out, "summarize this file") {
		t.Error("render missing question")
	}
	if !strings.Contains(out, "STDOUT:") {
		t.Error("render missing STDOUT label")
	}
	if !strings.Contains(out, "a concise summary") {
		t.Error("render missing stdout text")
	}
	if strings.Contains(out, "STDERR:") {
		t.Error("render shows STDERR label with no stderr")
	}
	if !strings.Contains(out, "14:30:05") {
		t.Error("render missing timestamp")
	}
}

func TestRenderRecordsFailureGlyph(t *testing.T) {
	records := []ledger.Record{
		{
			Question:  "do something",
			Result:    ledger.Result{Stderr: "model unavailable", ReturnCode: 1},
			Timestamp: time.Now(),
		},
	}

	out := renderRecords(records, 60)
	if !strings.Contains(out, "✗") {
		t.Error("render missing failure glyph for nonzero returncode")
	}
	if !strings.Contains(out, "STDERR:") {
		t.Error("render missing STDERR label")
	}
	if !strings.Contains(out, "model unavailable") {
		t.Error("render missing stderr text")
	}
}

func TestRenderRecordsOrder(t *testing.T) {
	records := []ledger.Record{
		{Question: "first", Result: ledger.Result{Stdout: "one"}, Timestamp: time.Now()},
		{Question: "second", Result: ledger.Result{Stdout: "two"}, Timestamp: time.Now()},
	}

	out := renderRecords(records, 60)
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Error("records rendered newest first, want oldest first")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("abcdefghij", 4)
	want := "abcd\nefgh\nij"
	if got != want {
		t.Errorf("wrap() = %q, want %q", got, want)
	}

	if got := wrap("ab\ncd", 10); got != "ab\ncd" {
		t.Errorf("wrap() altered short lines: %q", got)
	}
}

func TestWrapMultiByte(t *testing.T) {
	got := wrap("日本語のテキスト", 5)
	want := "日本語のテ\nキスト"
	if got != want {
		t.Errorf("wrap() = %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Errorf("wrap() produced invalid UTF-8: %q", got)
	}
}

func TestRenderRecordsMultiByteStdout(t *testing.T) {
	records := []ledger.Record{
		{
			Question:  "translate this file",
			Result:    ledger.Result{Stdout: strings.Repeat("日本語のテキスト", 10)},
			Timestamp: time.Now(),
		},
	}

	out := renderRecords(records, 20)
	if !utf8.ValidString(out) {
		t.Error("renderRecords() produced invalid UTF-8")
	}
}
