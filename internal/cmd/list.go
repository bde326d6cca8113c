package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/xtar"
	"github.com/nguyengg/xtar/internal"
)

type List struct {
	Args struct {
		Sources []flags.Filename `positional-arg-name:"SOURCE" description:"the archives to list" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *List) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	success := 0
	n := len(c.Args.Sources)
	for i, file := range c.Args.Sources {
		logger := internal.NewLogger(i, n, string(file))

		src, err := expandPath(file)
		if err == nil {
			if n > 1 {
				fmt.Printf("%s:\n", file)
			}

			err = xtar.List(ctx, src, os.Stdout)
		}

		if err == nil {
			success++
			continue
		}

		if errors.Is(err, context.Canceled) {
			break
		}

		logger.Printf("list error: %v", err)
	}

	if success != n {
		if n > 1 {
			log.Printf("successfully listed %d/%d archives", success, n)
		}

		return fmt.Errorf("failed to list %d/%d archives", n-success, n)
	}

	return nil
}
