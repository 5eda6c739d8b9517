// Package progress reports the throughput of long-running image writes,
// e.g. when formatting a real block device.
package progress

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gokrazy/fatimg/humanize"
)

var bytesWritten uint64

func Reset() uint64 {
	return atomic.SwapUint64(&bytesWritten, 0)
}

// Writer counts the bytes flowing through it. Wire it into an
// io.MultiWriter next to the actual target.
type Writer struct{}

func (w Writer) Write(p []byte) (n int, err error) {
	atomic.AddUint64(&bytesWritten, uint64(len(p)))
	return len(p), nil
}

type Reporter struct {
	total uint64

	mu     sync.Mutex
	status string
}

func (p *Reporter) SetStatus(status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
}

func (p *Reporter) SetTotal(total uint64) {
	atomic.StoreUint64(&p.total, total)
}

func (p *Reporter) getStatus() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Report prints the current write rate once per second until ctx is
// done.
func (p *Reporter) Report(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	last := atomic.LoadUint64(&bytesWritten)
	for {
		select {
		case <-ticker.C:
			written := atomic.LoadUint64(&bytesWritten)
			if written < last {
				// counter was reset
				last = 0
			}
			bytesPerS := written - last
			last = written
			rate := humanize.BPS(bytesPerS)
			status := rate
			if total := atomic.LoadUint64(&p.total); total > 0 {
				pct := float64(written) / float64(total) * 100
				status = fmt.Sprintf("%02.2f%% of %s, writing at %s",
					pct,
					humanize.Bytes(total),
					rate)
			}
			fmt.Printf("\r[%s] %s                 ", p.getStatus(), status)
		case <-ctx.Done():
			return
		}
	}
}
