// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import (
	"strings"
	"testing"
)

func TestConvert_PlainText(t *testing.T) {
	doc := Convert("hello world\nsecond line")

	if doc.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", doc.RowCount())
	}
	if doc.Lines[0].Text() != "hello world" {
		t.Errorf("Unexpected first line: %q", doc.Lines[0].Text())
	}
	if doc.Lines[1].Text() != "second line" {
		t.Errorf("Unexpected second line: %q", doc.Lines[1].Text())
	}
	if !doc.Lines[0].Runs[0].Style.IsZero() {
		t.Error("Expected unstyled run for plain text")
	}
}

func TestConvert_Empty(t *testing.T) {
	doc := Convert("")
	if doc.RowCount() != 0 {
		t.Errorf("Expected empty document, got %d rows", doc.RowCount())
	}
}

func TestConvert_TrailingNewline(t *testing.T) {
	doc := Convert("one\n")
	if doc.RowCount() != 1 {
		t.Errorf("Expected 1 row for trailing newline, got %d", doc.RowCount())
	}
}

func TestConvert_BasicColor(t *testing.T) {
	doc := Convert("\x1b[31mred\x1b[0m plain")

	if doc.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", doc.RowCount())
	}
	runs := doc.Lines[0].Runs
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Text != "red" || runs[0].Style.Fg != ansi16[1] {
		t.Errorf("Unexpected styled run: %+v", runs[0])
	}
	if runs[1].Text != " plain" || !runs[1].Style.IsZero() {
		t.Errorf("Unexpected reset run: %+v", runs[1])
	}
}

func TestConvert_Attributes(t *testing.T) {
	doc := Convert("\x1b[1;4;32mstyled\x1b[m")

	run := doc.Lines[0].Runs[0]
	if !run.Style.Bold {
		t.Error("Expected bold")
	}
	if !run.Style.Underline {
		t.Error("Expected underline")
	}
	if run.Style.Fg != ansi16[2] {
		t.Errorf("Expected green foreground, got %q", run.Style.Fg)
	}
}

func TestConvert_256Color(t *testing.T) {
	doc := Convert("\x1b[38;5;196mx\x1b[0m")

	run := doc.Lines[0].Runs[0]
	if run.Style.Fg != "#ff0000" {
		t.Errorf("Expected #ff0000 for palette 196, got %q", run.Style.Fg)
	}
}

func TestConvert_TrueColor(t *testing.T) {
	doc := Convert("\x1b[48;2;18;52;86mx\x1b[0m")

	run := doc.Lines[0].Runs[0]
	if run.Style.Bg != "#123456" {
		t.Errorf("Expected #123456 background, got %q", run.Style.Bg)
	}
}

func TestConvert_StyleResetsAtNewline(t *testing.T) {
	// No attribute persists across a line break unless re-asserted.
	doc := Convert("\x1b[31mred line\nnext line")

	if doc.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", doc.RowCount())
	}
	if !doc.Lines[1].Runs[0].Style.IsZero() {
		t.Error("Expected second line to start attribute-clean")
	}
}

func TestConvert_UnterminatedStyle(t *testing.T) {
	// Trailing style state at end of stream closes implicitly.
	doc := Convert("\x1b[33munclosed")

	if doc.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", doc.RowCount())
	}
	run := doc.Lines[0].Runs[0]
	if run.Text != "unclosed" {
		t.Errorf("Expected text to survive, got %q", run.Text)
	}
	if run.Style.Fg != ansi16[3] {
		t.Errorf("Expected yellow fg, got %q", run.Style.Fg)
	}
}

func TestConvert_MalformedSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // surviving plain text
	}{
		{"escape at eof", "text\x1b", "text"},
		{"truncated csi", "text\x1b[31", "text"},
		{"truncated extended color", "a\x1b[38;5mb", "ab"},
		{"non numeric param", "a\x1b[31;?mb", "ab"},
		{"bare escape", "a\x1bZb", "aZb"},
		{"osc swallowed", "a\x1b]0;title\x07b", "ab"},
		{"csi non sgr final", "a\x1b[2Jb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Convert(tt.input)
			var got string
			if doc.RowCount() > 0 {
				got = doc.Lines[0].Text()
			}
			if got != tt.want {
				t.Errorf("Expected %q to survive, got %q", tt.want, got)
			}
		})
	}
}

func TestConvert_UnknownSGRCodesInert(t *testing.T) {
	doc := Convert("\x1b[73mtext\x1b[0m")

	if doc.Lines[0].Text() != "text" {
		t.Errorf("Expected text preserved, got %q", doc.Lines[0].Text())
	}
	if !doc.Lines[0].Runs[0].Style.IsZero() {
		t.Error("Expected unknown code to leave style untouched")
	}
}

func TestHTML_Escaping(t *testing.T) {
	doc := Convert(`<b> & "quoted"`)

	html := doc.HTML()
	if strings.Contains(html, "<b>") {
		t.Error("Expected angle brackets escaped")
	}
	if !strings.Contains(html, "&lt;b&gt;") {
		t.Errorf("Expected escaped tag in output, got:\n%s", html)
	}
	if !strings.Contains(html, "&amp;") {
		t.Error("Expected escaped ampersand")
	}
	if !strings.Contains(html, "&quot;quoted&quot;") {
		t.Error("Expected escaped quotes")
	}
}

func TestHTML_StyledRun(t *testing.T) {
	doc := Convert("\x1b[1;31mdanger\x1b[0m")

	html := doc.HTML()
	if !strings.Contains(html, "color:"+ansi16[1]) {
		t.Errorf("Expected foreground style attribute, got:\n%s", html)
	}
	if !strings.Contains(html, "font-weight:bold") {
		t.Error("Expected bold style attribute")
	}
	if !strings.Contains(html, "danger") {
		t.Error("Expected run text in output")
	}
}

func TestPlain_RoundTrip(t *testing.T) {
	raw := "\x1b[32m+added line\x1b[0m\n context line\n\x1b[31m-removed line\x1b[0m"
	doc := Convert(raw)

	want := "+added line\n context line\n-removed line"
	if doc.Plain() != want {
		t.Errorf("Plain mismatch:\nwant %q\ngot  %q", want, doc.Plain())
	}
}

func TestXterm256(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ansi16[0]},
		{15, ansi16[15]},
		{16, "#000000"},
		{196, "#ff0000"},
		{231, "#ffffff"},
		{232, "#080808"},
		{255, "#eeeeee"},
		{-1, ""},
		{256, ""},
	}

	for _, tt := range tests {
		if got := xterm256(tt.n); got != tt.want {
			t.Errorf("xterm256(%d): expected %q, got %q", tt.n, tt.want, got)
		}
	}
}
