package internal

import (
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"
)

// NewProgressLogger returns a writer that counts the bytes written to it and periodically logs the running total.
//
// For example, if verb is "compressed" and interval is `5*time.Second`, every 5 seconds the logger will print
// `compressed X / Y so far` where Y is the expected size. A negative size omits Y. Close prints the final total.
func NewProgressLogger(logger *log.Logger, verb string, size int64, interval time.Duration) io.WriteCloser {
	return &progressLogger{
		logger: logger,
		verb:   verb,
		rate:   &rate.Sometimes{Interval: interval},
		size:   size,
	}
}

type progressLogger struct {
	logger       *log.Logger
	verb         string
	rate         *rate.Sometimes
	offset, size int64
}

func (l *progressLogger) Write(p []byte) (n int, err error) {
	n = len(p)
	l.offset += int64(n)

	l.rate.Do(func() {
		l.logger.Printf("%s %s so far", l.verb, l.progress())
	})

	return n, nil
}

func (l *progressLogger) Close() error {
	l.logger.Printf("%s %s in total", l.verb, l.progress())
	return nil
}

func (l *progressLogger) progress() string {
	if l.size < 0 || l.offset == l.size {
		return humanize.IBytes(uint64(l.offset))
	}

	return humanize.IBytes(uint64(l.offset)) + " / " + humanize.IBytes(uint64(l.size))
}
