package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"termbar/pkg/display"

	"github.com/dustin/go-humanize"
)

// progressWriter reports bytes written to a progress bar.
// Mutable
type progressWriter struct {
	bar     display.ProgressBar
	total   int64
	written int64
	start   time.Time
	now     func() time.Time

	// logEvery prints a line above the bar each time this many more bytes
	// have been written. Zero disables it.
	logEvery int64
	nextLog  int64
}

func newProgressWriter(bar display.ProgressBar, total int64) *progressWriter {
	return &progressWriter{
		bar:   bar,
		total: total,
		start: time.Now(),
		now:   time.Now,
	}
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n := len(p)
	pw.written += int64(n)

	if pw.total > 0 {
		elapsed := pw.now().Sub(pw.start).Seconds()
		var speed float64
		if elapsed > 0 {
			speed = float64(pw.written) / elapsed
		}
		pw.bar.SetTitle(fmt.Sprintf("%s / %s (%s/s)",
			humanize.Bytes(uint64(pw.written)),
			humanize.Bytes(uint64(pw.total)),
			humanize.Bytes(uint64(speed))))
		pw.bar.SetProgress(float64(pw.written) / float64(pw.total))
	} else {
		pw.bar.SetTitle(fmt.Sprintf("%s transferred", humanize.Bytes(uint64(pw.written))))
	}

	if pw.logEvery > 0 {
		if pw.nextLog == 0 {
			pw.nextLog = pw.logEvery
		}
		for pw.written >= pw.nextLog {
			pw.bar.Println(fmt.Sprintf("passed %s", humanize.Bytes(uint64(pw.nextLog))))
			pw.nextLog += pw.logEvery
		}
	}

	return n, nil
}

// zeroReader yields zero bytes forever.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// simulateTransfer copies size bytes in chunk sized pieces into the
// progress writer, pausing delay between chunks.
func simulateTransfer(ctx context.Context, pw *progressWriter, size, chunk int64, delay time.Duration) error {
	src := io.LimitReader(zeroReader{}, size)
	buf := make([]byte, chunk)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := pw.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
}
