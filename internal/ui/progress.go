package ui

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type MPBProgressManager struct {
	p *mpb.Progress
}

func NewProgressManager(out io.Writer) *MPBProgressManager {
	if out == nil {
		out = os.Stdout
	}

	p := mpb.New(
		mpb.WithWidth(52),
		mpb.WithOutput(out),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	return &MPBProgressManager{p: p}
}

func (pm *MPBProgressManager) Close() {
	pm.p.Wait()
}

// Register adds a byte counting bar. A total <= 0 means the size is unknown
// and the bar completes when MarkDone is called.
func (pm *MPBProgressManager) Register(prefix string, total int64) *ProgressHandle {
	if total < 0 {
		total = 0
	}

	bar := pm.p.New(
		total,
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name(prefix+"  "),
		),

		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.CountersKibiByte(" | % .1f / % .1f", decor.WCSyncWidth),
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)

	return &ProgressHandle{bar: bar, known: total > 0}
}

type ProgressHandle struct {
	bar   *mpb.Bar
	known bool
}

// ProxyReader counts bytes read from r on the bar.
func (h *ProgressHandle) ProxyReader(r io.Reader) io.ReadCloser {
	return h.bar.ProxyReader(r)
}

// MarkDone completes the bar, or aborts it when the transfer failed.
func (h *ProgressHandle) MarkDone(ok bool) {
	if !ok {
		h.bar.Abort(false)
		return
	}

	if !h.known {
		h.bar.SetTotal(-1, true)
		return
	}

	h.bar.SetTotal(h.bar.Current(), true)
}
