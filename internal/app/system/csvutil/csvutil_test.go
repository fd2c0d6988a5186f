package csvutil

import (
	"encoding/csv"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestWriteDownload_RoundTrip(t *testing.T) {
	header := []string{"name", "status"}
	rows := [][]string{
		{`He said "hi"`, "pending"},
		{"comma, field", "line\nbreak"},
	}

	rec := httptest.NewRecorder()
	if err := WriteDownload(rec, "export.csv", header, rows); err != nil {
		t.Fatalf("WriteDownload() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "\xEF\xBB\xBF") {
		t.Error("output missing UTF-8 BOM")
	}
	if !strings.Contains(body, `"He said ""hi""","pending"`) {
		t.Errorf("quote escaping wrong, body:\n%s", body)
	}
	// Every field is quoted, even ones minimal quoting would leave bare.
	if !strings.Contains(body, "\"name\",\"status\"\r\n") {
		t.Errorf("header not fully quoted, body:\n%s", body)
	}

	// A standard CSV parser must reconstruct the original values exactly.
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(body, "\xEF\xBB\xBF")))
	got, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse back failed: %v", err)
	}
	want := append([][]string{header}, rows...)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriteDownload_Headers(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteDownload(rec, "members 2025.csv", []string{"a"}, nil); err != nil {
		t.Fatalf("WriteDownload() error = %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "members%202025.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1234", "'+1234"},
		{"-cmd", "'-cmd"},
		{"@import", "'@import"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeRow(t *testing.T) {
	got := SanitizeRow([]string{"=x", "ok"})
	if !reflect.DeepEqual(got, []string{"'=x", "ok"}) {
		t.Errorf("SanitizeRow() = %v", got)
	}
}
