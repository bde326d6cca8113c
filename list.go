package xtar

import (
	"archive/tar"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// List writes one line per entry in the tar file at src, preceded by a "total <N>" line.
//
// Each line has the format "<mode>  <size>  <mtime>  <name>", where size is the stored (compressed) size and mtime is
// in local time. Only headers are read, so List succeeds even if the entry payloads are corrupt.
func List(ctx context.Context, src string, w io.Writer) error {
	if src == "" {
		return invalidArg(src)
	}

	f, err := os.Open(src)
	if err != nil {
		return statError(src, err)
	}
	defer f.Close()

	var (
		tr    = tar.NewReader(f)
		lines []string
	)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil && !(errors.Is(err, tar.ErrInsecurePath) && hdr != nil) {
			return ioError(src, fmt.Errorf("read tar header error: %w", err))
		}

		lines = append(lines, formatHeader(hdr))

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "total %d\n", len(lines))
	for _, line := range lines {
		_, _ = fmt.Fprintln(bw, line)
	}

	if err = bw.Flush(); err != nil {
		return ioError(src, fmt.Errorf("write listing error: %w", err))
	}

	return nil
}

// formatHeader formats a single listing line.
func formatHeader(hdr *tar.Header) string {
	size, mtime := "--", "--"
	if hdr.Size >= 0 {
		size = humanize.Bytes(uint64(hdr.Size))
	}
	if !hdr.ModTime.IsZero() {
		mtime = hdr.ModTime.Local().Format(time.DateTime)
	}

	return fmt.Sprintf("%s  %8s  %19s  %s", hdr.FileInfo().Mode()&(fs.ModeType|fs.ModePerm), size, mtime, hdr.Name)
}
