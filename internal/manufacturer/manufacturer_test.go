package manufacturer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/mfrgen/internal/scanner"
)

func TestNormalizeShortID(t *testing.T) {
	r, ok := Normalize(scanner.Row{Code: "7FH", Name: "Foo Inc.", Status: "active"})

	require.True(t, ok)
	assert.Equal(t, "007F0000", r.Code)
	assert.Equal(t, uint32(0x007F0000), r.Value)
	assert.Equal(t, "FooInc", r.Key)
	assert.Equal(t, "7FH", r.RawCode)
	assert.Empty(t, r.URL)
}

func TestNormalizeExtendedID(t *testing.T) {
	r, ok := Normalize(scanner.Row{Code: "00H 01H 02H", Name: "Time/Warner Interactive", URL: "http://example.com"})

	require.True(t, ok)
	assert.Equal(t, "00000102", r.Code)
	assert.Equal(t, "TimeWarnerInteractive", r.Key)
	assert.Equal(t, "http://example.com", r.URL)
}

func TestCanonicalCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"01H", "00010000", true},
		{"7fH", "007f0000", true},
		{"00H 20H 3CH", "0000203C", true},
		{"7FH ", "", false},
		{"7F", "", false},
		{"7Fh", "", false},
		{"00H 01H", "", false},
		{"00H  01H 02H", "", false},
		{"00H 01H 02H 03H", "", false},
		{"G1H", "", false},
		{"ID", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := CanonicalCode(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejectsFootnotes(t *testing.T) {
	_, ok := Normalize(scanner.Row{Code: "*", Name: "Reserved for future use"})
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "Systems", Key("360 Systems"))
	assert.Equal(t, "AllenampHeathBrenell", Key("Allen &amp; Heath Brenell"))
	assert.Equal(t, "KMuse", Key("K-Muse"))
	assert.Equal(t, "Rolandmsik", Key("Roland müsik"))
	assert.Empty(t, Key("123 / 456"))
}

func rec(t *testing.T, code, name, status string) Record {
	t.Helper()

	r, ok := Normalize(scanner.Row{Code: code, Name: name, Status: status})
	require.True(t, ok)
	return r
}

func TestCollectorKeepsFirstOccurrence(t *testing.T) {
	c := NewCollector(CollectorOptions{})

	assert.Equal(t, Accepted, c.Add(rec(t, "01H", "First", "active")))
	assert.Equal(t, Accepted, c.Add(rec(t, "00H 00H 01H", "Extended", "active")))
	assert.Equal(t, Duplicate, c.Add(rec(t, "01H", "Second", "active")))
	assert.Equal(t, Duplicate, c.Add(rec(t, "00H 00H 01H", "Again", "---")))

	got := c.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "Extended", got[1].Name)
	assert.Equal(t, 2, c.Len())
}

func TestCollectorDuplicateIgnoresHexCase(t *testing.T) {
	c := NewCollector(CollectorOptions{})

	assert.Equal(t, Accepted, c.Add(rec(t, "7fH", "lower", "active")))
	assert.Equal(t, Duplicate, c.Add(rec(t, "7FH", "upper", "active")))
}

func TestCollectorRescinded(t *testing.T) {
	keep := NewCollector(CollectorOptions{})
	assert.Equal(t, Accepted, keep.Add(rec(t, "02H", "Gone", "rescinded")))

	skip := NewCollector(CollectorOptions{SkipRescinded: true})
	assert.Equal(t, Filtered, skip.Add(rec(t, "02H", "Gone", " Rescinded ")))
	assert.Equal(t, Accepted, skip.Add(rec(t, "02H", "Reassigned", "active")))
	assert.Equal(t, "Reassigned", skip.Records()[0].Name)
}

func TestCollectorRecordsIsACopy(t *testing.T) {
	c := NewCollector(CollectorOptions{})
	c.Add(rec(t, "01H", "A", "active"))

	got := c.Records()
	got[0].Name = "changed"

	assert.Equal(t, "A", c.Records()[0].Name)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "duplicate", Duplicate.String())
	assert.Equal(t, "filtered", Filtered.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
