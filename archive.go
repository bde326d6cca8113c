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
	"github.com/nguyengg/xtar/internal/scratch"
	"github.com/nguyengg/xtar/util"
	"golang.org/x/time/rate"
)

// DefaultLevel is the compression level used when ArchiveOptions.Level is not changed.
const DefaultLevel = 3

// ArchiveOptions customises Archive.
type ArchiveOptions struct {
	// Pattern selects the files under root to archive.
	//
	// Defaults to DefaultPattern.
	Pattern string

	// Level is the compression level applied to every entry.
	//
	// Only meaningful for codec.Algorithm that is Leveled. Defaults to DefaultLevel.
	Level int

	// TempDir is the parent of the scratch directory holding compressed entries until they are appended.
	//
	// Defaults to os.TempDir.
	TempDir string

	// Reporter receives the Summary of a successful run.
	//
	// Defaults to a no-op Reporter.
	Reporter Reporter

	// Logger receives periodic progress lines.
	//
	// Defaults to discarding everything.
	Logger *log.Logger

	// ProgressBar receives a copy of every source byte as it is compressed.
	ProgressBar io.Writer
}

// ParseTargetName returns the codec.Algorithm named by an archive file to be created.
//
// The base name must be exactly "<name>.<tag>.tar". An ErrInvalidArg error is returned if there are fewer than three
// dot-separated segments or if the third segment is not "tar"; an error matching ErrInvalidCompression is returned if
// the tag is unknown.
func ParseTargetName(target string) (codec.Algorithm, error) {
	parts := strings.Split(filepath.Base(target), ".")
	if len(parts) < 3 || parts[2] != "tar" {
		return 0, &Error{Kind: ErrInvalidArg, Path: target, Err: errors.New(`name must be in format "<name>.<codec>.tar"`)}
	}

	return codec.ParseTag(parts[1])
}

// Archive compresses every file under root that matches the pattern into a tar file at target.
//
// Each entry in the tar file is individually compressed with the algorithm named by target (see ParseTargetName), its
// name is the path relative to root, and its header carries the modification time and permission bits of the source
// file. The target file must not be nested inside root unless the pattern excludes it.
//
// On failure, the partially written target is left on disk. The scratch directory is always removed.
func Archive(ctx context.Context, root, target string, optFns ...func(*ArchiveOptions)) (s Summary, err error) {
	opts := &ArchiveOptions{
		Pattern:  DefaultPattern,
		Level:    DefaultLevel,
		Reporter: noopReporter,
		Logger:   log.New(io.Discard, "", 0),
	}
	for _, fn := range optFns {
		fn(opts)
	}

	if root == "" {
		return s, invalidArg(root)
	}
	if target == "" {
		return s, invalidArg(target)
	}

	alg, err := ParseTargetName(target)
	if err != nil {
		return s, err
	}

	if fi, err := os.Stat(root); err != nil {
		return s, statError(root, err)
	} else if !fi.IsDir() {
		return s, &Error{Kind: ErrInvalidArg, Path: root, Err: errors.New("not a directory")}
	}

	start := time.Now()

	dir, err := scratch.New(opts.TempDir)
	if err != nil {
		return s, ioError(opts.TempDir, err)
	}
	defer func() {
		if closeErr := dir.Close(); closeErr != nil {
			err = errors.Join(err, ioError(dir.Path(), closeErr))
		}
	}()

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return s, ioError(target, err)
	}

	tw := tar.NewWriter(f)
	closer := util.ChainCloser(tw.Close, f.Close)

	a := &archiver{
		ctx:    ctx,
		alg:    alg,
		opts:   opts,
		root:   root,
		target: target,
		dir:    dir,
		tw:     tw,
	}

	if err = a.run(); err != nil {
		_ = closer()
		return s, err
	}

	if err = closer(); err != nil {
		return s, ioError(target, fmt.Errorf("close tar writer error: %w", err))
	}

	fi, err := os.Stat(target)
	if err != nil {
		return s, statError(target, err)
	}

	s = Summary{
		Op:        OpArchive,
		Name:      target,
		Algorithm: alg,
		Level:     opts.Level,
		Count:     a.count,
		Size:      fi.Size(),
		Duration:  time.Since(start),
	}
	opts.Reporter.Report(s)

	return s, nil
}

// archiver holds the state of a single Archive run.
type archiver struct {
	ctx    context.Context
	alg    codec.Algorithm
	opts   *ArchiveOptions
	root   string
	target string
	dir    *scratch.Dir
	tw     *tar.Writer
	count  int
}

func (a *archiver) run() error {
	sometimes := rate.Sometimes{Interval: 5 * time.Second}

	targetAbs, _ := filepath.Abs(a.target)

	for path, err := range Enumerate(a.root, a.opts.Pattern) {
		if err != nil {
			return err
		}

		if abs, _ := filepath.Abs(path); abs == targetAbs {
			continue
		}

		if err = a.add(path); err != nil {
			return err
		}

		a.count++

		select {
		case <-a.ctx.Done():
			return a.ctx.Err()
		default:
			sometimes.Do(func() {
				a.opts.Logger.Printf(`[%d] done compressing "%s"`, a.count, path)
			})
		}
	}

	return nil
}

// add compresses one file into the scratch directory then appends it to the tar writer.
func (a *archiver) add(path string) error {
	name, err := RelName(a.root, path)
	if err != nil {
		return err
	}

	m, err := Capture(path)
	if err != nil {
		return err
	}

	tmp, err := a.dir.Name()
	if err != nil {
		return ioError(a.dir.Path(), err)
	}
	defer os.Remove(tmp)

	size, err := Encode(a.ctx, a.alg, path, tmp, a.opts.Level, func(o *EncodeOptions) {
		o.ProgressBar = a.opts.ProgressBar
	})
	if err != nil {
		return err
	}

	if err = a.tw.WriteHeader(m.header(name, size)); err != nil {
		return ioError(a.target, fmt.Errorf(`write header "%s" error: %w`, name, err))
	}

	f, err := os.Open(tmp)
	if err != nil {
		return ioError(tmp, err)
	}
	defer f.Close()

	if _, err = util.CopyBufferWithContext(a.ctx, a.tw, f, nil); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return ioError(a.target, fmt.Errorf(`append "%s" error: %w`, name, err))
	}

	return nil
}
