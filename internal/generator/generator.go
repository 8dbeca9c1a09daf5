// Package generator runs the scan, normalize, collect and render stages
// that turn a manufacturer ID table snapshot into a generated header.
package generator

import (
	"fmt"
	"io"
	"os"

	"github.com/brogergvhs/mfrgen/internal/manufacturer"
	"github.com/brogergvhs/mfrgen/internal/render"
	"github.com/brogergvhs/mfrgen/internal/scanner"
	"github.com/brogergvhs/mfrgen/internal/ui"
)

type Options struct {
	InputPath    string
	TemplatePath string
	OutputPath   string

	SkipRescinded bool

	Log      *ui.Logger
	Renderer *render.Renderer
}

// Collect scans r and returns the accepted records in first-seen order.
func Collect(r io.Reader, opts manufacturer.CollectorOptions, logSvc *ui.Logger, stats *ui.Stats) ([]manufacturer.Record, error) {
	sc := scanner.New(r)
	col := manufacturer.NewCollector(opts)

	for sc.Scan() {
		row := sc.Row()
		stats.Rows++

		rec, ok := manufacturer.Normalize(row)
		if !ok {
			stats.Rejected++
			logSvc.Debugf("line %d: skipping row with code %q\n", row.Line, row.Code)
			continue
		}

		switch col.Add(rec) {
		case manufacturer.Duplicate:
			stats.Duplicates++
			logSvc.Debugf("line %d: duplicate code 0x%s (%s)\n", row.Line, rec.Code, rec.Name)
		case manufacturer.Filtered:
			stats.Filtered++
			logSvc.Debugf("line %d: rescinded 0x%s (%s)\n", row.Line, rec.Code, rec.Name)
		}
	}

	stats.Lines = sc.Lines()

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return col.Records(), nil
}

// Run reads the HTML snapshot, renders the template and writes the output.
// The output file is only written once everything else succeeded.
func Run(opts Options) (*ui.Stats, error) {
	logSvc := opts.Log
	if logSvc == nil {
		logSvc = ui.NewLogger(false)
	}
	rnd := opts.Renderer
	if rnd == nil {
		rnd = render.New()
	}

	in, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logSvc.Errorf("closing input file %s: %v\n", opts.InputPath, cerr)
		}
	}()

	stats := &ui.Stats{}

	records, err := Collect(in, manufacturer.CollectorOptions{SkipRescinded: opts.SkipRescinded}, logSvc, stats)
	if err != nil {
		return stats, fmt.Errorf("read input %s: %w", opts.InputPath, err)
	}

	if len(records) == 0 {
		logSvc.Infof("no manufacturer rows found in %s\n", opts.InputPath)
	}

	if err := rnd.RenderFile(opts.TemplatePath, opts.OutputPath, records); err != nil {
		return stats, err
	}

	stats.Written = len(records)
	return stats, nil
}
