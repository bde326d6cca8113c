package cmd

import (
	"context"
	"os"

	"github.com/nguyengg/xtar"
)

// countSources returns the number and total size of the files that xtar.Archive would compress.
func countSources(ctx context.Context, root, pattern string) (n int, size int64, err error) {
	for path, err := range xtar.Enumerate(root, pattern) {
		if err != nil {
			return n, size, err
		}

		fi, err := os.Stat(path)
		if err != nil {
			return n, size, err
		}

		n++
		size += fi.Size()

		select {
		case <-ctx.Done():
			return n, size, ctx.Err()
		default:
		}
	}

	return
}
