package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/xtar"
	"github.com/nguyengg/xtar/internal"
	"github.com/nguyengg/xtar/internal/config"
)

type Archive struct {
	Level    *int   `short:"l" long:"level" description:"compression level; defaults to the [archive] level config or 3"`
	Pattern  string `short:"p" long:"pattern" description:"files to include relative to ROOT; defaults to the [archive] pattern config or /**/*"`
	TempDir  string `long:"temp-dir" description:"parent directory of the scratch directory; defaults to the system temp directory"`
	Progress bool   `long:"progress" description:"show a progress bar of bytes compressed"`
	Args     struct {
		Root   flags.Filename `positional-arg-name:"ROOT" description:"the directory to archive" required:"yes"`
		Target flags.Filename `positional-arg-name:"TARGET" description:"the archive to create in format <name>.<codec>.tar where codec is one of gz, zst, br, zip, sz, lz4, xz" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	logger *log.Logger
}

func (c *Archive) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c.logger = internal.NewLogger(0, 1, string(c.Args.Target))

	if _, err := config.Load(ctx); err != nil {
		c.logger.Printf("load config error: %v", err)
	}
	cfg := config.ForArchive()

	root, err := expandPath(c.Args.Root)
	if err != nil {
		return err
	}
	target, err := expandPath(c.Args.Target)
	if err != nil {
		return err
	}

	level := xtar.DefaultLevel
	switch {
	case c.Level != nil:
		level = *c.Level
	case cfg.Level != nil:
		level = *cfg.Level
	}

	pattern := xtar.DefaultPattern
	switch {
	case c.Pattern != "":
		pattern = c.Pattern
	case cfg.Pattern != "":
		pattern = cfg.Pattern
	}

	// xtar.Archive reports the authoritative error if the preflight fails.
	n, size, err := countSources(ctx, root, pattern)
	if err != nil {
		n, size = 0, -1
	}

	var bar io.WriteCloser
	if c.Progress {
		bar = internal.DefaultBytes(size, "archiving")
	} else {
		bar = internal.NewProgressLogger(c.logger, "compressed", size, 5*time.Second)
	}

	if size < 0 {
		c.logger.Printf("start archiving")
	} else {
		c.logger.Printf("start archiving %d files (%s)", n, humanize.Bytes(uint64(size)))
	}

	_, err = xtar.Archive(ctx, root, target, func(opts *xtar.ArchiveOptions) {
		opts.Level = level
		opts.Pattern = pattern
		opts.TempDir = c.TempDir
		opts.Reporter = xtar.LogReporter(c.logger)
		opts.Logger = c.logger
		opts.ProgressBar = bar
	})
	_ = bar.Close()
	if err != nil {
		c.logger.Printf("archive error: %v", err)
		return err
	}

	return nil
}
