// Package derive computes display-only projections over in-memory
// collection snapshots: status filters, text search, duplicate detection,
// and timestamp ordering. Every function is pure; nothing here touches
// the database.
//
// Collections are small (hundreds of documents), so each review page
// fetches the whole collection once and derives its views from that
// snapshot rather than re-querying per filter change.
package derive

import (
	"sort"
	"strings"

	"github.com/roboticsclub/robohub/internal/app/system/normalize"
)

// StatusAll is the filter value that passes every document through.
const StatusAll = "all"

// FilterStatus returns the items whose status (via get) exactly matches
// status. StatusAll (or the empty string) passes everything through.
func FilterStatus[T any](items []T, status string, get func(T) string) []T {
	if status == "" || status == StatusAll {
		return items
	}
	var out []T
	for _, it := range items {
		if get(it) == status {
			out = append(out, it)
		}
	}
	return out
}

// Search returns the items whose display field (via get) contains q,
// case-insensitively. An empty query passes everything through.
func Search[T any](items []T, q string, get func(T) string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	var out []T
	for _, it := range items {
		if strings.Contains(strings.ToLower(get(it)), q) {
			out = append(out, it)
		}
	}
	return out
}

// DuplicateEmails groups items by normalized (trimmed, lowercased) email
// and returns the set of emails that appear more than once. Items with an
// empty email are never counted as duplicates of anything.
func DuplicateEmails[T any](items []T, email func(T) string) map[string]bool {
	counts := make(map[string]int)
	for _, it := range items {
		e := normalize.Email(email(it))
		if e == "" {
			continue
		}
		counts[e]++
	}
	dupes := make(map[string]bool)
	for e, n := range counts {
		if n > 1 {
			dupes[e] = true
		}
	}
	return dupes
}

// DuplicatesOnly restricts items to members of flagged duplicate groups,
// preserving original order.
func DuplicatesOnly[T any](items []T, email func(T) string) []T {
	dupes := DuplicateEmails(items, email)
	var out []T
	for _, it := range items {
		if dupes[normalize.Email(email(it))] {
			out = append(out, it)
		}
	}
	return out
}

// SortByTimestampDesc orders items by their epoch-millis timestamp,
// newest first. Missing timestamps are treated as 0, which places those
// items strictly after every item with a positive timestamp. The sort is
// stable: equal timestamps keep their original relative order.
func SortByTimestampDesc[T any](items []T, ts func(T) int64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return ts(out[i]) > ts(out[j])
	})
	return out
}
