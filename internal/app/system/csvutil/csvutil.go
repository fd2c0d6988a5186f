// Package csvutil writes review-list exports as downloadable CSV.
//
// Quoting is RFC 4180 with every field quoted (embedded quotes
// doubled), so the serialized form is stable regardless of content.
// Output carries a UTF-8 BOM and CRLF line endings so Excel opens the
// files correctly.
package csvutil

import (
	"bufio"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Sanitize prevents CSV formula injection: a leading =, +, - or @ would
// be executed by spreadsheet software, so it is prefixed with a quote.
func Sanitize(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

// SanitizeRow applies Sanitize to every field of a row.
func SanitizeRow(row []string) []string {
	out := make([]string, len(row))
	for i, f := range row {
		out[i] = Sanitize(f)
	}
	return out
}

// WriteDownload streams header plus rows to w as an attachment named
// filename. Rows are written as-is; callers sanitize free-text fields
// with Sanitize/SanitizeRow first.
func WriteDownload(w http.ResponseWriter, filename string, header []string, rows [][]string) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	bw := bufio.NewWriter(w)

	// UTF-8 BOM for Excel
	if _, err := bw.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	if err := writeRecord(bw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRecord(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeRecord writes one CRLF-terminated record with every field
// quoted. encoding/csv only quotes fields that need it, which makes
// the output depend on field content; exports always quote.
func writeRecord(w *bufio.Writer, record []string) error {
	for i, f := range record {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := w.WriteString(strings.ReplaceAll(f, `"`, `""`)); err != nil {
			return err
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}
