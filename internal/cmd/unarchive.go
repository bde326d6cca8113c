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

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/xtar"
	"github.com/nguyengg/xtar/internal"
	"github.com/nguyengg/xtar/internal/config"
)

type Unarchive struct {
	Dir          flags.Filename `short:"d" long:"dir" description:"output directory; defaults to the [unarchive] dir config or the directory containing SOURCE"`
	Entry        string         `short:"e" long:"entry" description:"print only the entry with this exact name to stdout instead of extracting"`
	PreserveMode bool           `long:"preserve-mode" description:"restore the permission bits of extracted files"`
	Progress     bool           `long:"progress" description:"show a progress bar of bytes decompressed"`
	Args         struct {
		Source flags.Filename `positional-arg-name:"SOURCE" description:"the archive to extract in format <name>.<codec>.tar" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	logger *log.Logger
}

func (c *Unarchive) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c.logger = internal.NewLogger(0, 1, string(c.Args.Source))

	if _, err := config.Load(ctx); err != nil {
		c.logger.Printf("load config error: %v", err)
	}
	cfg := config.ForUnarchive()

	src, err := expandPath(c.Args.Source)
	if err != nil {
		return err
	}

	dirName := c.Dir
	if dirName == "" {
		dirName = flags.Filename(cfg.Dir)
	}
	dir, err := expandPath(dirName)
	if err != nil {
		return err
	}

	var bar io.WriteCloser
	switch {
	case c.Progress:
		bar = internal.DefaultBytes(-1, "unarchiving")
	case c.Entry == "":
		bar = internal.NewProgressLogger(c.logger, "decompressed", -1, 5*time.Second)
	}

	if c.Entry == "" {
		c.logger.Printf("start unarchiving")
	}

	_, err = xtar.Unarchive(ctx, src, dir, c.Entry, func(opts *xtar.UnarchiveOptions) {
		opts.PreserveMode = c.PreserveMode || cfg.PreserveMode
		opts.Reporter = xtar.LogReporter(c.logger)
		opts.Logger = c.logger
		if bar != nil {
			opts.ProgressBar = bar
		}
	})
	if bar != nil {
		_ = bar.Close()
	}
	if err != nil {
		c.logger.Printf("unarchive error: %v", err)
		return err
	}

	return nil
}
