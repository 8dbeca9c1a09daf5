// Package manufacturer turns scraped table rows into MIDI manufacturer
// records with an identifier-safe key and a canonical 32-bit code.
package manufacturer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brogergvhs/mfrgen/internal/scanner"
)

var codeRe = regexp.MustCompile(`^(?:([[:xdigit:]]{2})H ([[:xdigit:]]{2})H ([[:xdigit:]]{2})H|([[:xdigit:]]{2})H)$`)

type Record struct {
	RawCode string
	Name    string
	URL     string
	Status  string

	Key   string
	Code  string
	Value uint32
}

// Normalize derives key and code for a scraped row. The second result is
// false when the code column is not a 1-byte or 3-byte manufacturer ID,
// which is the normal outcome for header and footnote rows.
func Normalize(row scanner.Row) (Record, bool) {
	code, ok := CanonicalCode(row.Code)
	if !ok {
		return Record{}, false
	}

	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return Record{}, false
	}

	return Record{
		RawCode: row.Code,
		Name:    row.Name,
		URL:     row.URL,
		Status:  row.Status,
		Key:     Key(row.Name),
		Code:    code,
		Value:   uint32(v),
	}, true
}

// Key keeps only the ASCII letters of name.
func Key(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for i := 0; i < len(name); i++ {
		c := name[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// CanonicalCode maps "XXH" to "00XX0000" and "AAH BBH CCH" to "00AABBCC".
func CanonicalCode(raw string) (string, bool) {
	m := codeRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}

	if m[4] != "" {
		return "00" + m[4] + "0000", true
	}

	return "00" + m[1] + m[2] + m[3], true
}

// IsRescinded reports whether the registry marks the ID as withdrawn.
func (r Record) IsRescinded() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), "rescinded")
}
