package render

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/brogergvhs/mfrgen/internal/manufacturer"
	"github.com/brogergvhs/mfrgen/internal/util"
)

const (
	DatePlaceholder = "${date}"
	ListPlaceholder = "${manufacturerIdList}"

	// TimestampLayout is ISO-8601 with a numeric zone offset.
	TimestampLayout = "2006-01-02T15:04:05-07:00"
)

type Renderer struct {
	Now func() time.Time
}

func New() *Renderer {
	return &Renderer{Now: time.Now}
}

// Sort orders records by numeric code, keeping arrival order on ties.
func Sort(records []manufacturer.Record) {
	slices.SortStableFunc(records, func(a, b manufacturer.Record) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		default:
			return 0
		}
	})
}

func Line(r manufacturer.Record) string {
	return fmt.Sprintf("\t\t ManufacturerId%s \t = 0x%s /* %s / %s %s */", r.Key, r.Code, r.Status, r.Name, r.URL)
}

// Block formats a sorted copy of records, one constant per line.
func Block(records []manufacturer.Record) string {
	sorted := slices.Clone(records)
	Sort(sorted)

	lines := make([]string, len(sorted))
	for i, r := range sorted {
		lines[i] = Line(r)
	}

	return strings.Join(lines, ",\n")
}

func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Apply substitutes both placeholders literally; nothing else is touched.
func Apply(template, date, block string) string {
	return strings.NewReplacer(
		DatePlaceholder, date,
		ListPlaceholder, block,
	).Replace(template)
}

func (r *Renderer) Render(template string, records []manufacturer.Record) string {
	return Apply(template, Timestamp(r.Now()), Block(records))
}

// RenderFile reads the template, renders records into it and replaces
// outPath in a single write.
func (r *Renderer) RenderFile(templatePath, outPath string, records []manufacturer.Record) error {
	tpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	out := r.Render(string(tpl), records)

	if err := util.WriteFileAtomic(outPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
