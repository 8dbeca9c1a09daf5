package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/mfrgen/internal/ui"
	"github.com/brogergvhs/mfrgen/internal/util"
)

const page = `<html><body><table>
<tr>
<td>
<p>41H</p>
</td>
<td>
<p><a href="http://www.roland.com">Roland Corporation</a></p>
</td>
<td>
<p>active</p>
</td>
</tr>
<tr><td><p>42H</p></td><td><p>Korg Inc.</p></td><td><p>active</p></td></tr>
<tr><td colspan="3"><p>note</p></td></tr>
</table></body></html>`

func newFetcher(srv *httptest.Server, progress *ui.MPBProgressManager) *Fetcher {
	return NewFetcher(FetcherOptions{
		Client: util.NewHTTPClient(util.HTTPClientOptions{
			Timeout:   5 * time.Second,
			UserAgent: "mfrgen-test",
			Transport: srv.Client().Transport,
		}),
		Retries:  3,
		Backoff:  time.Millisecond,
		Progress: progress,
	})
}

func TestInspect(t *testing.T) {
	rows, err := Inspect(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
}

func TestFetchRetriesAndWritesSnapshot(t *testing.T) {
	attempt := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempt++
		assert.Equal(t, "mfrgen-test", r.Header.Get("User-Agent"))
		if attempt == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, page)
	}))
	defer srv.Close()

	pm := ui.NewProgressManager(io.Discard)
	dest := filepath.Join(t.TempDir(), "ids.html")

	res, err := newFetcher(srv, pm).Fetch(context.Background(), srv.URL, dest)
	pm.Close()
	require.NoError(t, err)

	assert.Equal(t, 2, attempt)
	assert.Equal(t, dest, res.Path)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, int64(len(page)), res.Bytes)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, page, string(b))
	assert.NoFileExists(t, dest+util.PartSuffix)
}

func TestFetchRejectsPageWithoutTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html><body>Just a moment...</body></html>")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "ids.html")
	require.NoError(t, os.WriteFile(dest, []byte("old snapshot"), 0644))

	_, err := newFetcher(srv, nil).Fetch(context.Background(), srv.URL, dest)
	require.ErrorIs(t, err, ErrNoRows)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "old snapshot", string(b))
	assert.NoFileExists(t, dest+util.PartSuffix)
}

func TestFetchGivesUpAfterRetries(t *testing.T) {
	attempt := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempt++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "ids.html")

	_, err := newFetcher(srv, nil).Fetch(context.Background(), srv.URL, dest)

	assert.ErrorContains(t, err, "HTTP 403 after 3 attempts")
	assert.Equal(t, 3, attempt)
	assert.NoFileExists(t, dest)
}
