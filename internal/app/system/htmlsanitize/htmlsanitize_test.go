package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize_StripsDangerousMarkup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		banned  []string
		allowed []string
	}{
		{
			name:   "script tag",
			input:  `<p>Workshop details</p><script>alert("x")</script>`,
			banned: []string{"<script", "alert"},
			allowed: []string{
				"<p>Workshop details</p>",
			},
		},
		{
			name:   "event handler attribute",
			input:  `<p onclick="steal()">Line follower bot</p>`,
			banned: []string{"onclick", "steal"},
			allowed: []string{
				"<p>Line follower bot</p>",
			},
		},
		{
			name:   "javascript href",
			input:  `<a href="javascript:alert(1)">rules</a>`,
			banned: []string{"javascript:"},
		},
		{
			name:   "iframe embed",
			input:  `<p>Demo video</p><iframe src="https://evil.example"></iframe>`,
			banned: []string{"<iframe"},
		},
		{
			name:   "style tag",
			input:  `<style>body{display:none}</style><p>Agenda</p>`,
			banned: []string{"<style"},
			allowed: []string{
				"<p>Agenda</p>",
			},
		},
		{
			name:   "img onerror",
			input:  `<img src="poster.png" onerror="run()">`,
			banned: []string{"onerror", "run()"},
		},
		{
			name:   "form elements",
			input:  `<form action="/x"><input name="a"><button>go</button></form>`,
			banned: []string{"<form", "<input", "<button"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			for _, s := range tt.banned {
				if strings.Contains(got, s) {
					t.Errorf("Sanitize(%q) = %q, must not contain %q", tt.input, got, s)
				}
			}
			for _, s := range tt.allowed {
				if !strings.Contains(got, s) {
					t.Errorf("Sanitize(%q) = %q, must keep %q", tt.input, got, s)
				}
			}
		})
	}
}

func TestSanitize_KeepsRichTextMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		keep  []string
	}{
		{
			name:  "formatting",
			input: `<b>ROBOCON</b> <u>finals</u> <s>postponed</s> on <mark>March 12</mark>, H<sub>2</sub>O, x<sup>2</sup>`,
			keep:  []string{"<b>", "<u>", "<s>", "<mark>", "<sub>", "<sup>"},
		},
		{
			name:  "headings and lists",
			input: `<h2>Eligibility</h2><ul><li>Any branch</li></ul><ol><li>Register</li></ol>`,
			keep:  []string{"<h2>", "<ul>", "<ol>", "<li>"},
		},
		{
			name:  "code and blockquote",
			input: `<blockquote>Build, break, repeat.</blockquote><pre><code>pio run</code></pre>`,
			keep:  []string{"<blockquote>", "<pre>", "<code>"},
		},
		{
			name:  "breaks and rules",
			input: `Line one<br>Line two<hr>`,
			keep:  []string{"<br", "<hr"},
		},
		{
			name:  "images",
			input: `<img src="https://cdn.example/bot.jpg" alt="bot">`,
			keep:  []string{"<img", `src="https://cdn.example/bot.jpg"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			for _, s := range tt.keep {
				if !strings.Contains(got, s) {
					t.Errorf("Sanitize(%q) = %q, must keep %q", tt.input, got, s)
				}
			}
		})
	}
}

func TestSanitize_ForcesNofollowOnLinks(t *testing.T) {
	got := Sanitize(`<a href="https://example.edu/rules">rulebook</a>`)
	if !strings.Contains(got, `rel="nofollow"`) {
		t.Errorf("expected rel=nofollow on links, got %q", got)
	}
	if !strings.Contains(got, `href="https://example.edu/rules"`) {
		t.Errorf("expected href preserved, got %q", got)
	}
}

func TestSanitize_AllowsTableMarkup(t *testing.T) {
	input := `<table class="schedule"><thead><tr><th colspan="2">Round</th></tr></thead>` +
		`<tbody><tr><td rowspan="2">Qualifier</td><td>10:00</td></tr></tbody></table>`
	got := Sanitize(input)
	for _, s := range []string{"<table", "<thead>", "<tbody>", "<tr>", "<th", "<td", `class="schedule"`, `colspan="2"`, `rowspan="2"`} {
		if !strings.Contains(got, s) {
			t.Errorf("table markup %q stripped, got %q", s, got)
		}
	}
}

func TestSanitize_AllowsStyleOnTableElements(t *testing.T) {
	got := Sanitize(`<table style="width:100%"><tr><td style="text-align:center">Cell</td></tr></table>`)
	if !strings.Contains(got, "style=") {
		t.Errorf("expected style attribute on table elements, got %q", got)
	}
}

func TestSanitize_StyleNotAllowedElsewhere(t *testing.T) {
	got := Sanitize(`<p style="position:fixed">Schedule</p>`)
	if strings.Contains(got, "style=") {
		t.Errorf("style must stay confined to table elements, got %q", got)
	}
}

func TestSanitize_Passthrough(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q", got)
	}
	if got := Sanitize("Weekly build night at the lab"); got != "Weekly build night at the lab" {
		t.Errorf("plain text changed: %q", got)
	}
}

func TestSanitizeToHTML(t *testing.T) {
	got := SanitizeToHTML(`<b>Open house</b><script>x()</script>`)
	if !strings.Contains(string(got), "<b>Open house</b>") {
		t.Errorf("safe markup lost: %q", got)
	}
	if strings.Contains(string(got), "<script") {
		t.Errorf("script survived: %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"Meet at the workshop", true},
		{"<p>details</p>", false},
		{"5 < 10", true},
		{"a > b", true},
		{"use <motor> tags", false},
	}
	for _, tt := range tests {
		if got := IsPlainText(tt.input); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	if got := PlainTextToHTML(""); got != "" {
		t.Errorf("empty input produced %q", got)
	}

	got := PlainTextToHTML("Round 1\nRound 2")
	if got != "<p>Round 1<br>Round 2</p>" {
		t.Errorf("newline conversion wrong: %q", got)
	}

	got = PlainTextToHTML(`Tolerance < 0.5mm & "snug" fit`)
	for _, s := range []string{"&lt;", "&amp;", "&#34;"} {
		if !strings.Contains(got, s) {
			t.Errorf("expected %q escaped in %q", s, got)
		}
	}
}

func TestPrepareForDisplay(t *testing.T) {
	if got := PrepareForDisplay(""); got != "" {
		t.Errorf("empty input produced %q", got)
	}

	// Plain text is escaped and paragraph-wrapped.
	got := string(PrepareForDisplay("Bring your own kit\nSnacks provided"))
	if got != "<p>Bring your own kit<br>Snacks provided</p>" {
		t.Errorf("plain text path wrong: %q", got)
	}

	// Markup is sanitized, not escaped.
	got = string(PrepareForDisplay(`<b>Finals</b><script>x()</script>`))
	if !strings.Contains(got, "<b>Finals</b>") || strings.Contains(got, "<script") {
		t.Errorf("markup path wrong: %q", got)
	}
}
