// Package htmlsanitize strips dangerous markup from rich-text fields
// (event details, project descriptions) before they are stored or shown.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows user-generated-content markup: formatting, headings,
// lists, code, links (rel=nofollow forced), and tables with class,
// style, and span attributes. Scripts, iframes, style tags, and event
// handlers are stripped.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowTables()
	p.AllowAttrs("class", "style").OnElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	return p
}

// Sanitize returns s with unsafe HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes and marks the result safe for template output.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup. A stray < or > on
// its own (e.g. "5 < 10") does not count as markup.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML escapes s and wraps it in a paragraph, converting
// newlines to <br>.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders a stored value for templates: plain text is
// escaped and paragraph-wrapped, markup is sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
