// Package companylist loads the read-only list of known legitimate companies
// used by company verification.
package companylist

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minPartialMatch is the shortest name that may match inside a longer one.
const minPartialMatch = 4

// List is an immutable, case-insensitive set of company names.
type List struct {
	names []string
}

// NewList normalizes names (trim, collapse spaces, lowercase), dropping blanks
// and duplicates.
func NewList(names []string) *List {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))
	for _, n := range names {
		key := normalizeName(n)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, key)
	}
	sort.Strings(normalized)
	return &List{names: normalized}
}

// Contains reports whether name matches a listed company. Names match when
// equal, or when the shorter one appears as whole words inside the longer one
// and is at least minPartialMatch runes long. "Google India Pvt Ltd" matches
// "google"; "AI" matches nothing.
func (l *List) Contains(name string) bool {
	_, ok := l.Match(name)
	return ok
}

// Match returns the listed name that matched.
func (l *List) Match(name string) (string, bool) {
	if l == nil {
		return "", false
	}
	key := normalizeName(name)
	if key == "" {
		return "", false
	}
	for _, known := range l.names {
		if key == known || containsWords(key, known) || containsWords(known, key) {
			return known, true
		}
	}
	return "", false
}

// Len returns the number of listed companies.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Names returns a copy of the normalized names in sorted order.
func (l *List) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// containsWords reports whether sub occurs in s bounded by non-alphanumeric
// runes or the ends of s.
func containsWords(s, sub string) bool {
	if utf8.RuneCountInString(sub) < minPartialMatch {
		return false
	}
	for offset := 0; offset < len(s); {
		i := strings.Index(s[offset:], sub)
		if i < 0 {
			return false
		}
		start, end := offset+i, offset+i+len(sub)
		if isBoundary(s, start, -1) && isBoundary(s, end, 1) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		offset = start + size
	}
	return false
}

// isBoundary reports whether the rune before (dir -1) or at (dir 1) index i
// is absent or not a letter or digit.
func isBoundary(s string, i, dir int) bool {
	var r rune
	if dir < 0 {
		if i == 0 {
			return true
		}
		r, _ = utf8.DecodeLastRuneInString(s[:i])
	} else {
		if i >= len(s) {
			return true
		}
		r, _ = utf8.DecodeRuneInString(s[i:])
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
