// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// HighlightFile reads a file and returns it with ANSI syntax highlighting
// for terminal preview. Binary and unreadable files return an error; files
// with no matching lexer come back plain.
func (v *Viewer) HighlightFile(path string) (string, error) {
	content, err := v.RawFile(path)
	if err != nil {
		return "", err
	}

	if !v.cfg.UI.SyntaxHighlight {
		return content, nil
	}
	return highlightCode(content, filepath.Base(path), v.cfg.UI.Theme), nil
}

// highlightCode applies syntax highlighting using the chroma library.
// Any failure falls back to the plain text.
func highlightCode(code, filename, theme string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	styleName := "monokai"
	if strings.ToLower(theme) == "light" {
		styleName = "friendly"
	}
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
