// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import "fmt"

// =============================================================================
// STYLE
// =============================================================================

// Style is the flat set of SGR attributes active for a run. Colors are hex
// strings like "#ff5f87" ("" means the terminal default).
type Style struct {
	Fg        string // Foreground color ("" = default)
	Bg        string // Background color ("" = default)
	Bold      bool
	Faint     bool
	Italic    bool
	Underline bool
}

// IsZero reports whether the style carries no attributes.
func (s Style) IsZero() bool {
	return s == Style{}
}

// =============================================================================
// COLOR TABLES
// =============================================================================

// ansi16 maps the 16 basic SGR colors to hex. The values follow the common
// xterm defaults; exact shades are a presentation concern, not a contract.
var ansi16 = [16]string{
	"#000000", // black
	"#cd0000", // red
	"#00cd00", // green
	"#cdcd00", // yellow
	"#0000ee", // blue
	"#cd00cd", // magenta
	"#00cdcd", // cyan
	"#e5e5e5", // white
	"#7f7f7f", // bright black
	"#ff0000", // bright red
	"#00ff00", // bright green
	"#ffff00", // bright yellow
	"#5c5cff", // bright blue
	"#ff00ff", // bright magenta
	"#00ffff", // bright cyan
	"#ffffff", // bright white
}

// xterm256 converts a 256-color palette index to hex.
func xterm256(n int) string {
	switch {
	case n < 0 || n > 255:
		return ""
	case n < 16:
		return ansi16[n]
	case n < 232:
		// 6x6x6 color cube
		n -= 16
		levels := [6]int{0, 95, 135, 175, 215, 255}
		r := levels[n/36]
		g := levels[(n/6)%6]
		b := levels[n%6]
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	default:
		// Grayscale ramp
		v := 8 + 10*(n-232)
		return fmt.Sprintf("#%02x%02x%02x", v, v, v)
	}
}

// rgbHex converts truecolor components to hex, clamping out-of-range values.
func rgbHex(r, g, b int) string {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}
