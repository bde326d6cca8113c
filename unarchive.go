package xtar

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyengg/xtar/codec"
	"github.com/nguyengg/xtar/internal/safety"
	"golang.org/x/time/rate"
)

// UnarchiveOptions customises Unarchive.
type UnarchiveOptions struct {
	// Stdout receives the decoded bytes of the entry selected by a non-empty filter.
	//
	// Defaults to os.Stdout.
	Stdout io.Writer

	// PreserveMode restores the permission bits stored in each entry header.
	//
	// By default, only the modification time is restored and files are created with mode 0666 before umask.
	PreserveMode bool

	// Reporter receives the Summary of a successful whole-archive run.
	//
	// Defaults to a no-op Reporter.
	Reporter Reporter

	// Logger receives periodic progress lines.
	//
	// Defaults to discarding everything.
	Logger *log.Logger

	// ProgressBar receives a copy of every decoded byte.
	ProgressBar io.Writer
}

// ParseSourceName returns the codec.Algorithm named by an existing archive file.
//
// The base name must have at least three dot-separated segments, and the second-to-last one is the codec tag. Unlike
// ParseTargetName, the name portion may contain dots.
func ParseSourceName(src string) (codec.Algorithm, error) {
	parts := strings.Split(filepath.Base(src), ".")
	if len(parts) < 3 {
		return 0, &Error{Kind: ErrInvalidArg, Path: src, Err: errors.New(`name must be in format "<name>.<codec>.tar"`)}
	}

	return codec.ParseTag(parts[len(parts)-2])
}

// Unarchive decodes the entries of the tar file at src.
//
// If filter is empty, every regular entry is decoded and written under dir (or the directory containing src if dir is
// empty) with its modification time restored. Entry names that would escape the output directory fail with
// ErrInvalidArg.
//
// If filter is non-empty, only the entry whose name equals filter is decoded and its bytes are written to
// UnarchiveOptions.Stdout; nothing is written to disk and no Summary is reported.
//
// Summary.Count is the number of entries decoded.
func Unarchive(ctx context.Context, src, dir, filter string, optFns ...func(*UnarchiveOptions)) (s Summary, err error) {
	opts := &UnarchiveOptions{
		Stdout:   os.Stdout,
		Reporter: noopReporter,
		Logger:   log.New(io.Discard, "", 0),
	}
	for _, fn := range optFns {
		fn(opts)
	}

	if src == "" {
		return s, invalidArg(src)
	}

	alg, err := ParseSourceName(src)
	if err != nil {
		return s, err
	}

	if dir == "" {
		dir = filepath.Dir(src)
	}

	start := time.Now()

	f, err := os.Open(src)
	if err != nil {
		return s, statError(src, err)
	}
	defer f.Close()

	var (
		tr        = tar.NewReader(f)
		sometimes = rate.Sometimes{Interval: 5 * time.Second}
		hdr       *tar.Header
		count     int
	)

	for {
		// insecure names are still returned with their header so that they are rejected by safety.SafeJoinUnder below.
		if hdr, err = tr.Next(); err == io.EOF {
			break
		} else if err != nil && !(errors.Is(err, tar.ErrInsecurePath) && hdr != nil) {
			return s, ioError(src, fmt.Errorf("read tar header error: %w", err))
		}

		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		if filter != "" && hdr.Name != filter {
			continue
		}

		if err = decodeEntry(ctx, alg, tr, hdr, dir, filter, opts); err != nil {
			return s, err
		}

		count++

		select {
		case <-ctx.Done():
			return s, ctx.Err()
		default:
			sometimes.Do(func() {
				opts.Logger.Printf(`[%d] done uncompressing "%s"`, count, hdr.Name)
			})
		}
	}

	s = Summary{
		Op:        OpUnarchive,
		Name:      src,
		Algorithm: alg,
		Count:     count,
		Duration:  time.Since(start),
	}

	if filter != "" {
		return s, nil
	}

	if fi, err := f.Stat(); err == nil {
		s.Size = fi.Size()
	}

	opts.Reporter.Report(s)

	return s, nil
}

// decodeEntry decodes the current entry of the tar reader to disk or to UnarchiveOptions.Stdout.
func decodeEntry(ctx context.Context, alg codec.Algorithm, tr *tar.Reader, hdr *tar.Header, dir, filter string, opts *UnarchiveOptions) error {
	var (
		r   = io.LimitReader(tr, hdr.Size)
		dst string
		err error
	)

	if filter == "" {
		if dst, err = safety.SafeJoinUnder(dir, hdr.Name); err != nil {
			return &Error{Kind: ErrInvalidArg, Path: hdr.Name, Err: err}
		}
	}

	data, err := Decode(ctx, alg, r, dst, FromHeader(hdr), func(o *DecodeOptions) {
		o.ProgressBar = opts.ProgressBar
		o.ApplyOptions = append(o.ApplyOptions, func(o *ApplyOptions) {
			o.Mode = opts.PreserveMode
		})
	})
	if err != nil {
		var de *codec.DecodeError
		if errors.As(err, &de) {
			return &Error{Kind: ErrCorrupt, Path: hdr.Name, Err: err}
		}

		return err
	}

	if filter != "" {
		if _, err = opts.Stdout.Write(data); err != nil {
			return ioError(hdr.Name, err)
		}
	}

	return nil
}
