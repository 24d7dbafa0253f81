package lineedit

import (
	"fmt"
	"strings"
)

// ColorScheme colors the prompt, the edited text and listed completion candidates.
// A nil *ColorScheme renders plain text.
type ColorScheme struct {
	Name      string `json:"name"`
	Prefix    Color  `json:"prefix"`
	Input     Color  `json:"input"`
	Candidate Color  `json:"candidate"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault has a bold green prompt and white text.
var ThemeDefault = &ColorScheme{
	Name:      "default",
	Prefix:    Color{R: 0, G: 255, B: 0, Bold: true},
	Input:     Color{R: 255, G: 255, B: 255},
	Candidate: Color{R: 200, G: 200, B: 200},
}

// ThemeDark suits dark backgrounds.
var ThemeDark = &ColorScheme{
	Name:      "dark",
	Prefix:    Color{R: 102, G: 217, B: 239, Bold: true},
	Input:     Color{R: 248, G: 248, B: 242},
	Candidate: Color{R: 189, G: 147, B: 249},
}

// ThemeLight suits light backgrounds.
var ThemeLight = &ColorScheme{
	Name:      "light",
	Prefix:    Color{R: 0, G: 119, B: 187, Bold: true},
	Input:     Color{R: 36, G: 41, B: 46},
	Candidate: Color{R: 88, G: 96, B: 105},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:      "accessible",
	Prefix:    Color{R: 0, G: 114, B: 178, Bold: true},
	Input:     Color{R: 255, G: 255, B: 255},
	Candidate: Color{R: 230, G: 159, B: 0},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// paint wraps s in the color of pick, or returns s unchanged for a nil scheme.
func (cs *ColorScheme) paint(s string, pick func(*ColorScheme) Color) string {
	if cs == nil || s == "" {
		return s
	}
	return pick(cs).ToANSI() + s + Reset()
}
