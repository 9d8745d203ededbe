package resolver

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"
)

const maxInitials = 2

const badgeFmt = `<svg width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">` +
	`<circle cx="50" cy="50" r="48" fill="#7c3aed"/>` +
	`<text x="50" y="50" font-size="36" fill="white" text-anchor="middle" dominant-baseline="central" font-family="Arial, sans-serif" font-weight="bold">%s</text>` +
	`</svg>`

const dataURIPrefix = "data:image/svg+xml;base64,"

// Initials returns the upper-cased first letters of the first two
// words of name. Blank names yield "".
func Initials(name string) string {
	b := strings.Builder{}
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}

	runes := []rune(strings.ToUpper(b.String()))
	if len(runes) > maxInitials {
		runes = runes[:maxInitials]
	}

	return string(runes)
}

// Placeholder renders a circular SVG badge with the team initials as a
// base64 data URI. Same name, same bytes.
func Placeholder(name string) string {
	svg := fmt.Sprintf(badgeFmt, html.EscapeString(Initials(name)))
	return dataURIPrefix + base64.StdEncoding.EncodeToString([]byte(svg))
}
