// Package source downloads the MIDI manufacturer ID table snapshot that the
// generator reads. Generation never calls into this package.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/mfrgen/internal/ui"
	"github.com/brogergvhs/mfrgen/internal/util"
)

// ErrNoRows means the page came back without a manufacturer table, usually
// a bot challenge or a moved page.
var ErrNoRows = errors.New("no manufacturer rows in downloaded page")

type Fetcher struct {
	client   *http.Client
	retries  int
	backoff  time.Duration
	log      *ui.Logger
	progress *ui.MPBProgressManager
}

type FetcherOptions struct {
	Client   *http.Client
	Retries  int
	Backoff  time.Duration
	Log      *ui.Logger
	Progress *ui.MPBProgressManager
}

func NewFetcher(opts FetcherOptions) *Fetcher {
	f := &Fetcher{
		client:   opts.Client,
		retries:  opts.Retries,
		backoff:  opts.Backoff,
		log:      opts.Log,
		progress: opts.Progress,
	}
	if f.client == nil {
		f.client = http.DefaultClient
	}
	if f.retries < 1 {
		f.retries = 1
	}
	if f.backoff <= 0 {
		f.backoff = 500 * time.Millisecond
	}
	if f.log == nil {
		f.log = ui.NewLogger(false)
	}

	return f
}

type Result struct {
	Path  string
	Bytes int64
	Rows  int
}

// Fetch downloads target into dest. The page is staged in a part file and
// only renamed into place once it is known to contain table rows.
func (f *Fetcher) Fetch(ctx context.Context, target, dest string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := util.DoWithRetry(f.client, req, f.retries, f.backoff)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", target, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var body io.Reader = resp.Body
	var handle *ui.ProgressHandle
	if f.progress != nil {
		handle = f.progress.Register("snapshot", resp.ContentLength)
		proxy := handle.ProxyReader(resp.Body)
		defer func() {
			_ = proxy.Close()
		}()
		body = proxy
	}

	part, n, err := util.CopyToPart(body, dest)
	if handle != nil {
		handle.MarkDone(err == nil)
	}
	if err != nil {
		if part != "" {
			util.RemoveParts(part)
		}
		return nil, fmt.Errorf("download %s: %w", target, err)
	}

	rows, err := inspectFile(part)
	if err != nil {
		util.RemoveParts(part)
		return nil, err
	}
	f.log.Debugf("snapshot %s: %d bytes, %d rows\n", part, n, rows)

	if err := os.Rename(part, dest); err != nil {
		util.RemoveParts(part)
		return nil, err
	}

	return &Result{Path: dest, Bytes: n, Rows: rows}, nil
}

func inspectFile(path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = fh.Close()
	}()

	rows, err := Inspect(fh)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrNoRows
	}

	return rows, nil
}

// Inspect counts table rows shaped like manufacturer entries: exactly three
// cells, each wrapping its text in a paragraph.
func Inspect(r io.Reader) (int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0, err
	}

	count := 0
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td")
		if cells.Length() != 3 {
			return
		}
		if cells.Has("p").Length() != 3 {
			return
		}
		count++
	})

	return count, nil
}
