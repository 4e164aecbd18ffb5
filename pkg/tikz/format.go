package tikz

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultName replaces point names that sanitize to nothing
const DefaultName = "P"

var (
	whitespace  = regexp.MustCompile(`\s+`)
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]`)
	trailingWS  = regexp.MustCompile(`(?m)[ \t\r\f\v]+$`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// FormatNumber rounds to three decimals, ties toward positive infinity, and
// never prints a negative zero
func FormatNumber(v float64) string {
	x := math.Floor(v*1000+0.5) / 1000
	if math.Abs(x) < 1e-9 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// SanitizeName reduces a display name to a TikZ-safe coordinate name
func SanitizeName(name string) string {
	safe := whitespace.ReplaceAllString(strings.TrimSpace(name), "")
	safe = unsafeChars.ReplaceAllString(safe, "")
	if safe == "" {
		return DefaultName
	}
	return safe
}

var labelEscaper = strings.NewReplacer(
	`\`, `\backslash{}`,
	`_`, `\_`,
	`^`, `\^{}`,
	`%`, `\%`,
	`#`, `\#`,
	`{`, `\{`,
	`}`, `\}`,
)

// EscapeLabel neutralizes LaTeX control characters in label text
func EscapeLabel(s string) string {
	return labelEscaper.Replace(s)
}

// Prettify strips trailing whitespace from every line and collapses runs of
// blank lines into one
func Prettify(s string) string {
	s = trailingWS.ReplaceAllString(s, "")
	return blankRuns.ReplaceAllString(s, "\n\n")
}
