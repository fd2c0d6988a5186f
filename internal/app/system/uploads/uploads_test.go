package uploads

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo.jpg", "my_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{"weird<>|name?.png", "weird___name_.png"},
		{"", "file"},
		{"..", "file"},
		{"/", "file"},
	}
	for _, c := range cases {
		if got := sanitizeFilename(c.in); got != c.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 200) + ".png"
	got := sanitizeFilename(long)
	if len(got) > 100 {
		t.Errorf("sanitized name is %d chars, want <= 100", len(got))
	}
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("extension lost: %q", got)
	}
}
